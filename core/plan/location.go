package plan

import "fmt"

// Point is a precise coordinate on the projected grid, in metres.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Location is a multi-resolution place reference. Up to three
// representations may be held at once: a precise coordinate, a network link
// id and a zone/area id. A nil Loc, empty Link or empty Area means that
// representation is not set.
//
// Locations are value objects. Assigning one component's location to another
// must go through Copy so that later mutation of one does not leak into the
// other.
type Location struct {
	Loc  *Point
	Link string
	Area string
}

// Exists reports whether any representation is set.
func (l Location) Exists() bool {
	return l.Loc != nil || l.Link != "" || l.Area != ""
}

// Min returns a key for the most precise representation present, in the
// order coordinate > link > area. An empty string means no representation is
// set.
func (l Location) Min() string {
	switch {
	case l.Loc != nil:
		return l.Loc.String()
	case l.Link != "":
		return l.Link
	default:
		return l.Area
	}
}

// Max returns a key for the least precise representation present, in the
// order area > link > coordinate.
func (l Location) Max() string {
	switch {
	case l.Area != "":
		return l.Area
	case l.Link != "":
		return l.Link
	case l.Loc != nil:
		return l.Loc.String()
	default:
		return ""
	}
}

// Equal compares whichever representation both locations possess, preferring
// the most precise shared one. Comparing two locations with no shared
// representation returns ErrIncomparableLocations.
func (l Location) Equal(other Location) (bool, error) {
	if l.Loc != nil && other.Loc != nil {
		return *l.Loc == *other.Loc, nil
	}
	if l.Link != "" && other.Link != "" {
		return l.Link == other.Link, nil
	}
	if l.Area != "" && other.Area != "" {
		return l.Area == other.Area, nil
	}
	return false, ErrIncomparableLocations
}

// same is the internal comparison used by plan algorithms: incomparable
// locations are treated as unequal rather than failing the whole operation.
func (l Location) same(other Location) bool {
	eq, err := l.Equal(other)
	return err == nil && eq
}

// Copy returns a detached copy, including the coordinate.
func (l Location) Copy() Location {
	c := l
	if l.Loc != nil {
		p := *l.Loc
		c.Loc = &p
	}
	return c
}

func (l Location) String() string {
	return l.Min()
}
