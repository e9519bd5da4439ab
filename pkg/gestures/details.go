package gestures

import "github.com/flui-dev/flui/pkg/geom"

// DragStartDetails describes the start of a drag gesture.
type DragStartDetails struct {
	Position geom.Offset
}

// DragUpdateDetails describes a drag update.
type DragUpdateDetails struct {
	Position     geom.Offset
	Delta        geom.Offset
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag gesture, including its
// release velocity.
type DragEndDetails struct {
	Position        geom.Offset
	Velocity        geom.Offset
	PrimaryVelocity float64
}

// TapDownDetails describes a tap's initial contact.
type TapDownDetails struct {
	Position geom.Offset
}

// TapUpDetails describes a tap's release.
type TapUpDetails struct {
	Position geom.Offset
}

// LongPressStartDetails describes a long press becoming recognized.
type LongPressStartDetails struct {
	Position geom.Offset
}

// LongPressMoveUpdateDetails describes pointer movement during a
// recognized long press.
type LongPressMoveUpdateDetails struct {
	Position geom.Offset
	Offset   geom.Offset
}

// LongPressEndDetails describes a long press's release.
type LongPressEndDetails struct {
	Position geom.Offset
}

// ScaleStartDetails describes a scale gesture's initial pointer set.
type ScaleStartDetails struct {
	FocalPoint geom.Offset
}

// ScaleUpdateDetails describes a scale gesture update.
type ScaleUpdateDetails struct {
	FocalPoint geom.Offset
	Scale      float64
	Rotation   float64 // radians
}

// ScaleEndDetails describes a scale gesture's release velocity.
type ScaleEndDetails struct {
	Velocity geom.Offset
}

// ForcePressDetails describes a force-press sample.
type ForcePressDetails struct {
	Position geom.Offset
	Pressure float64
}
