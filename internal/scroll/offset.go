package scroll

// Orientation selects the scroll axis of a one-dimensional request.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the name of the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Granularity is the discreteness of a scroll request. ByPrecisePixel
// deltas are never animated.
type Granularity int

const (
	ByLine Granularity = iota
	ByPage
	ByDocument
	ByPixel
	ByPrecisePixel
)

// Offset is a 2D scroll position in cell coordinates. Components are
// fractional while an animation is in flight.
type Offset struct {
	X float64
	Y float64
}

// Component returns the offset component along the given axis.
func (p Offset) Component(o Orientation) float64 {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// WithComponent returns a copy of the offset with the given axis replaced.
func (p Offset) WithComponent(o Orientation, v float64) Offset {
	if o == Horizontal {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// Moved returns the offset shifted by d along the given axis.
func (p Offset) Moved(o Orientation, d float64) Offset {
	return p.WithComponent(o, p.Component(o)+d)
}

// Result reports the outcome of a scroll request. When DidScroll is
// false the entire input delta is returned in UnusedDelta so the caller
// can chain it to an enclosing scrollable surface.
type Result struct {
	DidScroll   bool
	UnusedDelta float64
}
