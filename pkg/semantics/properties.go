package semantics

// SemanticsFlags is a bitset of boolean semantic traits.
//
// Built fresh: the teacher's pkg/semantics only ever retrieved the
// configuration/tree-merge shell (semantics.go), never the flag/action
// definitions call sites across pkg/widgets reference (e.g.
// SemanticsIsHidden, SemanticsIsFocusable) — those widget files are
// themselves out of scope (spec.md §1 Non-goal: widget library), so this
// keeps only the subset EnsureFocusable/Merge actually exercise.
type SemanticsFlags uint32

const (
	SemanticsIsHidden SemanticsFlags = 1 << iota
	SemanticsIsFocusable
	SemanticsIsFocused
	SemanticsIsButton
	SemanticsIsTextField
	SemanticsHasEnabledState
	SemanticsIsEnabled
	SemanticsIsSelected
)

// Has reports whether all bits in other are set.
func (f SemanticsFlags) Has(other SemanticsFlags) bool {
	return f&other == other
}

// Set returns f with other's bits set.
func (f SemanticsFlags) Set(other SemanticsFlags) SemanticsFlags {
	return f | other
}

// Clear returns f with other's bits cleared.
func (f SemanticsFlags) Clear(other SemanticsFlags) SemanticsFlags {
	return f &^ other
}

// SemanticsProperties holds the descriptive, non-action semantic state for
// a node: flags, label, and value text.
type SemanticsProperties struct {
	Flags SemanticsFlags
	Label string
	Value string
	Hint  string
}

// IsEmpty reports whether no semantic properties are set.
func (p SemanticsProperties) IsEmpty() bool {
	return p.Flags == 0 && p.Label == "" && p.Value == "" && p.Hint == ""
}

// Merge combines another set of properties into this one, preferring this
// one's fields when both are set.
func (p SemanticsProperties) Merge(other SemanticsProperties) SemanticsProperties {
	merged := p
	merged.Flags |= other.Flags
	if merged.Label == "" {
		merged.Label = other.Label
	}
	if merged.Value == "" {
		merged.Value = other.Value
	}
	if merged.Hint == "" {
		merged.Hint = other.Hint
	}
	return merged
}

// SemanticsAction identifies a platform-invokable action (tap, scroll,
// increase, dismiss, ...).
type SemanticsAction uint64

// CustomSemanticsAction names a widget-defined action not covered by the
// platform's standard action set.
type CustomSemanticsAction struct {
	Name string
	ID   int64
}

// SemanticsActions holds action handlers registered for a node. The handler
// bodies are owned by whatever built the configuration; this package only
// tracks which actions are present and forwards invocations.
type SemanticsActions struct {
	handlers map[SemanticsAction]func(args any)
	custom   []CustomSemanticsAction
}

// NewSemanticsActions returns an empty action set.
func NewSemanticsActions() *SemanticsActions {
	return &SemanticsActions{handlers: make(map[SemanticsAction]func(args any))}
}

// IsEmpty reports whether no actions are registered.
func (a *SemanticsActions) IsEmpty() bool {
	return a == nil || (len(a.handlers) == 0 && len(a.custom) == 0)
}

// On registers a handler for action.
func (a *SemanticsActions) On(action SemanticsAction, handler func(args any)) {
	a.handlers[action] = handler
}

// Invoke calls the handler registered for action, if any, and reports
// whether one was found.
func (a *SemanticsActions) Invoke(action SemanticsAction, args any) bool {
	if a == nil {
		return false
	}
	handler, ok := a.handlers[action]
	if !ok {
		return false
	}
	handler(args)
	return true
}

// Merge copies other's handlers and custom actions into a, without
// overwriting entries a already has.
func (a *SemanticsActions) Merge(other *SemanticsActions) {
	if other == nil {
		return
	}
	for action, handler := range other.handlers {
		if _, exists := a.handlers[action]; !exists {
			a.handlers[action] = handler
		}
	}
	a.custom = append(a.custom, other.custom...)
}
