package config

import "testing"

func TestParseFillsDefaultsForOmittedFields(t *testing.T) {
	cfg, err := Parse([]byte(`touchSlop: 24`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TouchSlop != 24 {
		t.Fatalf("expected explicit touchSlop preserved, got %v", cfg.TouchSlop)
	}
	if cfg.DoubleTapSlop != 100 {
		t.Fatalf("expected omitted doubleTapSlop defaulted, got %v", cfg.DoubleTapSlop)
	}
}

func TestParseRejectsNewerMajorSchemaVersion(t *testing.T) {
	_, err := Parse([]byte(`schemaVersion: v2.0.0`))
	if err == nil {
		t.Fatalf("expected an error for a schema major version newer than supported")
	}
}

func TestParseAcceptsOlderOrEqualMajorSchemaVersion(t *testing.T) {
	if _, err := Parse([]byte(`schemaVersion: v1.0.0`)); err != nil {
		t.Fatalf("unexpected error for current schema version: %v", err)
	}
	if _, err := Parse([]byte(`schemaVersion: v1.5.2`)); err != nil {
		t.Fatalf("unexpected error for a newer minor within the same major: %v", err)
	}
}

func TestParseRejectsMalformedSchemaVersion(t *testing.T) {
	_, err := Parse([]byte(`schemaVersion: "not-a-version"`))
	if err == nil {
		t.Fatalf("expected an error for an invalid schemaVersion string")
	}
}
