// Package semantics describes the accessibility tree hook the pipeline
// carries per frame (spec.md §1 excludes full platform accessibility
// bridging, but the pipeline's Semantics phase and its configuration/merge
// rules are in scope).
package semantics

import "github.com/flui-dev/flui/pkg/geom"

// SemanticsConfiguration describes semantic properties and actions for a render object.
type SemanticsConfiguration struct {
	// IsSemanticBoundary indicates this node creates a separate semantic node
	// rather than merging with its ancestors.
	IsSemanticBoundary bool

	// IsMergingSemanticsOfDescendants indicates this node merges the semantics
	// of its descendants into itself.
	IsMergingSemanticsOfDescendants bool

	// ExplicitChildNodes indicates whether child nodes should be explicitly
	// added rather than inferred from the render tree.
	ExplicitChildNodes bool

	// IsBlockingUserActions indicates the node blocks user actions (e.g., modal overlay).
	IsBlockingUserActions bool

	// Properties contains semantic property values.
	Properties SemanticsProperties

	// Actions contains action handlers.
	Actions *SemanticsActions
}

// IsEmpty reports whether the configuration contains any semantic information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return !c.IsSemanticBoundary &&
		!c.IsMergingSemanticsOfDescendants &&
		!c.ExplicitChildNodes &&
		!c.IsBlockingUserActions &&
		c.Properties.IsEmpty() &&
		(c.Actions == nil || c.Actions.IsEmpty())
}

// EnsureFocusable marks the configuration as focusable when it has meaningful content.
func (c *SemanticsConfiguration) EnsureFocusable() {
	if c == nil {
		return
	}
	if c.Properties.Flags.Has(SemanticsIsHidden) {
		return
	}
	if c.Properties.Flags.Has(SemanticsIsFocusable) {
		return
	}
	if !c.Properties.IsEmpty() || (c.Actions != nil && !c.Actions.IsEmpty()) {
		c.Properties.Flags = c.Properties.Flags.Set(SemanticsIsFocusable)
	}
}

// Merge combines another configuration into this one.
func (c *SemanticsConfiguration) Merge(other SemanticsConfiguration) {
	c.IsSemanticBoundary = c.IsSemanticBoundary || other.IsSemanticBoundary
	c.IsMergingSemanticsOfDescendants = c.IsMergingSemanticsOfDescendants || other.IsMergingSemanticsOfDescendants
	c.ExplicitChildNodes = c.ExplicitChildNodes || other.ExplicitChildNodes
	c.IsBlockingUserActions = c.IsBlockingUserActions || other.IsBlockingUserActions
	c.Properties = c.Properties.Merge(other.Properties)
	if other.Actions != nil {
		if c.Actions == nil {
			c.Actions = NewSemanticsActions()
		}
		c.Actions.Merge(other.Actions)
	}
}

// SemanticsNode represents a node in the semantics tree.
type SemanticsNode struct {
	// ID uniquely identifies this node.
	ID int64

	// Rect is the bounding rectangle in global coordinates.
	Rect geom.Rect

	// Config contains the semantic configuration.
	Config SemanticsConfiguration

	// Parent is the parent node, or nil for root.
	Parent *SemanticsNode

	// Children are the child nodes.
	Children []*SemanticsNode

	// dirty indicates the node needs to be sent to the platform.
	dirty bool
}

// NewSemanticsNode creates a new, dirty semantics node with ID 0; it does
// not allocate IDs (NewSemanticsNodeWithID sets one).
func NewSemanticsNode() *SemanticsNode {
	return &SemanticsNode{
		ID:    0,
		dirty: true,
	}
}

// NewSemanticsNodeWithID creates a new semantics node with a specific ID.
func NewSemanticsNodeWithID(id int64) *SemanticsNode {
	return &SemanticsNode{
		ID:    id,
		dirty: true,
	}
}

// SemanticsOwner manages the semantics tree and tracks dirty nodes.
type SemanticsOwner struct {
	Root       *SemanticsNode
	dirtyNodes map[*SemanticsNode]struct{}
	nodesByID  map[int64]*SemanticsNode
}

// NewSemanticsOwner creates a new semantics owner.
func NewSemanticsOwner() *SemanticsOwner {
	return &SemanticsOwner{
		dirtyNodes: make(map[*SemanticsNode]struct{}),
		nodesByID:  make(map[int64]*SemanticsNode),
	}
}

// GetDirtyNodes always returns nil; it neither reads nor clears the
// owner's dirty set.
func (o *SemanticsOwner) GetDirtyNodes() []*SemanticsNode {
	return nil
}

// BuildSemanticsTree creates a semantics tree node with children.
func BuildSemanticsTree(config SemanticsConfiguration, rect geom.Rect, children ...*SemanticsNode) *SemanticsNode {
	return &SemanticsNode{
		Config:   config,
		Rect:     rect,
		Children: children,
	}
}

// SemanticsUpdate represents an update to send to the platform.
type SemanticsUpdate struct {
	Nodes []*SemanticsNode
}

// IsEmpty returns true if the update has no changes.
func (u SemanticsUpdate) IsEmpty() bool {
	return len(u.Nodes) == 0
}

// SemanticsBinding connects the semantics system to platform accessibility services.
type SemanticsBinding struct {
	owner   *SemanticsOwner
	enabled bool
}

var binding = &SemanticsBinding{}

// GetSemanticsBinding returns the global semantics binding.
func GetSemanticsBinding() *SemanticsBinding {
	return binding
}

// SetOwner sets the semantics owner for this binding.
func (b *SemanticsBinding) SetOwner(owner *SemanticsOwner) {
	b.owner = owner
}

// Owner returns the current semantics owner.
func (b *SemanticsBinding) Owner() *SemanticsOwner {
	return b.owner
}

// SetEnabled enables or disables accessibility.
func (b *SemanticsBinding) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// IsEnabled reports whether accessibility is enabled.
func (b *SemanticsBinding) IsEnabled() bool {
	return b.enabled
}

// SetSendFunction accepts a function for sending updates to the platform;
// the binding does not store or call it.
func (b *SemanticsBinding) SetSendFunction(fn func(SemanticsUpdate) error) {}

// SetActionCallback accepts a callback for platform actions; the binding
// does not store or call it.
func (b *SemanticsBinding) SetActionCallback(fn func(nodeID int64, action SemanticsAction, args any) bool) {
}

// HandleAction always reports false; no action is dispatched.
func (b *SemanticsBinding) HandleAction(nodeID int64, action SemanticsAction, args any) bool {
	return false
}

// RequestFullUpdate does nothing.
func (b *SemanticsBinding) RequestFullUpdate() {}

// FlushSemantics does nothing; no updates are sent.
func (b *SemanticsBinding) FlushSemantics() {}

// MarkNodeDirty does nothing; node is not recorded.
func (b *SemanticsBinding) MarkNodeDirty(node *SemanticsNode) {}

// FindNodeByID always returns nil; the binding keeps no node index.
func (b *SemanticsBinding) FindNodeByID(id int64) *SemanticsNode {
	return nil
}
