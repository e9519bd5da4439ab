package config

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, validates its SchemaVersion against the
// version this binary understands, and fills any unset fields with
// defaults via Normalize.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, validates schema compatibility, and
// normalizes missing fields.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SchemaVersion
	}
	if err := validateSchemaVersion(cfg.SchemaVersion); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// validateSchemaVersion rejects a config whose major version is newer than
// this binary's, since a major bump may carry field renames or removed
// keys this loader doesn't understand. Older or equal majors are accepted;
// Normalize already covers missing fields introduced by later minors.
func validateSchemaVersion(version string) error {
	v := canonicalSemver(version)
	current := canonicalSemver(SchemaVersion)
	if !semver.IsValid(v) {
		return fmt.Errorf("config: invalid schemaVersion %q", version)
	}
	if semver.Compare(semver.Major(v), semver.Major(current)) > 0 {
		return fmt.Errorf("config: schemaVersion %q is newer than supported %q", version, SchemaVersion)
	}
	return nil
}

// canonicalSemver prefixes a bare "1.0.0"-style version with "v", which
// golang.org/x/mod/semver requires.
func canonicalSemver(version string) string {
	if len(version) > 0 && version[0] != 'v' {
		return "v" + version
	}
	return version
}
