package graphics

import "github.com/flui-dev/flui/pkg/geom"

// LayerKind tags the variant of a Layer node (spec.md §4.4).
type LayerKind int

const (
	LayerContainer LayerKind = iota
	LayerOffset
	LayerTransform
	LayerClipRect
	LayerClipRRect
	LayerClipPath
	LayerOpacity
	LayerBackdropFilter
	LayerShaderMask
	LayerPicture
	LayerPointerListener
)

func (k LayerKind) String() string {
	switch k {
	case LayerOffset:
		return "offset"
	case LayerTransform:
		return "transform"
	case LayerClipRect:
		return "clip_rect"
	case LayerClipRRect:
		return "clip_rrect"
	case LayerClipPath:
		return "clip_path"
	case LayerOpacity:
		return "opacity"
	case LayerBackdropFilter:
		return "backdrop_filter"
	case LayerShaderMask:
		return "shader_mask"
	case LayerPicture:
		return "picture"
	case LayerPointerListener:
		return "pointer_listener"
	default:
		return "container"
	}
}

// Layer is a node in the retained layer tree the pipeline composites every
// frame (spec.md §4.4). Container-kind layers hold children; Picture layers
// hold a recorded DisplayList instead. Each layer carries bounds and, for
// Transform/Offset layers, its forward transform. Layers take no part in
// hit testing, which walks the render tree instead.
//
// Grounded on other_examples' retained-layer/texture-cache model (Layer,
// ZOrder, dirty bounds, opacity classification) adapted to spec.md's
// Container/Picture variant split; the teacher snapshot has no persistent
// layer tree of its own to ground this on directly (its engine re-walks the
// render tree and caches per-boundary DisplayLists instead).
type Layer struct {
	Kind     LayerKind
	Bounds   geom.Rect
	Children []*Layer

	// Transform/Offset-kind fields.
	Transform geom.Matrix

	// ClipRect/ClipRRect-kind fields.
	ClipRect  geom.Rect
	ClipRRect geom.RRect

	// Opacity-kind field, in [0,1].
	Opacity float64

	// Picture-kind field: the recorded draw commands for this subtree.
	Picture *DisplayList

	// PointerListener-kind field: opaque handler token resolved by the
	// hit-test/event-router package; graphics itself never calls it.
	PointerHandlerID uint64

	Dirty bool
}

// NewContainerLayer returns an empty container layer.
func NewContainerLayer() *Layer {
	return &Layer{Kind: LayerContainer}
}

// NewPictureLayer wraps a recorded DisplayList as a leaf layer.
func NewPictureLayer(dl *DisplayList) *Layer {
	bounds := geom.Rect{}
	if dl != nil {
		bounds = dl.Bounds()
	}
	return &Layer{Kind: LayerPicture, Picture: dl, Bounds: bounds}
}

// AppendChild adds child to a container-style layer.
func (l *Layer) AppendChild(child *Layer) {
	l.Children = append(l.Children, child)
	l.Bounds = l.Bounds.Union(child.Bounds)
}

// LocalTransform returns the transform this layer itself contributes
// (identity for non-Transform/Offset kinds).
func (l *Layer) LocalTransform() geom.Matrix {
	switch l.Kind {
	case LayerTransform:
		return l.Transform
	case LayerOffset:
		return l.Transform
	default:
		return geom.Identity()
	}
}

// Composite walks the layer tree, emitting each layer into the target
// canvas/scene sink in paint order (spec.md §4.3 composite()). The sink is
// an opaque external consumer (the GPU painter capability); graphics only
// walks the structure and replays Picture display lists onto whatever
// Canvas the sink hands back for a Picture layer.
func (l *Layer) Composite(sink SceneSink) {
	switch l.Kind {
	case LayerPicture:
		if l.Picture == nil {
			return
		}
		if c := sink.BeginPicture(l.Bounds); c != nil {
			l.Picture.Paint(c)
			sink.EndPicture()
		}
	case LayerOffset, LayerTransform:
		sink.PushTransform(l.Transform)
		l.compositeChildren(sink)
		sink.Pop()
	case LayerClipRect:
		sink.PushClipRect(l.ClipRect)
		l.compositeChildren(sink)
		sink.Pop()
	case LayerClipRRect:
		sink.PushClipRRect(l.ClipRRect)
		l.compositeChildren(sink)
		sink.Pop()
	case LayerOpacity:
		sink.PushOpacity(l.Opacity)
		l.compositeChildren(sink)
		sink.Pop()
	default:
		l.compositeChildren(sink)
	}
}

// PaintOnto walks the layer tree directly onto canvas, via a CanvasSceneSink
// wrapping it. Used when a cached layer needs to be replayed into an
// in-progress paint recording (PaintContext.PaintChildWithLayer) rather than
// the top-level engine composite pass, which drives Composite against its
// own sink.
func (l *Layer) PaintOnto(canvas Canvas) {
	l.Composite(NewCanvasSceneSink(canvas))
}

func (l *Layer) compositeChildren(sink SceneSink) {
	for _, child := range l.Children {
		child.Composite(sink)
	}
}

// SceneSink is the opaque external scene builder a composited layer tree is
// handed to (spec.md §6.3's GPU painter capability). The core never
// interprets what happens after BeginPicture/EndPicture/Push*/Pop.
type SceneSink interface {
	BeginPicture(bounds geom.Rect) Canvas
	EndPicture()
	PushTransform(m geom.Matrix)
	PushClipRect(r geom.Rect)
	PushClipRRect(r geom.RRect)
	PushOpacity(alpha float64)
	Pop()
}
