package plan

import "errors"

var (
	// ErrSequence is returned when an append or validation finds the day
	// sequence does not alternate activities and legs.
	ErrSequence = errors.New("plan sequence must alternate activities and legs")
	// ErrTimes is returned when component times do not chain into a
	// continuous day.
	ErrTimes = errors.New("plan component times are not consistent")
	// ErrLocations is returned when leg locations do not match their
	// neighbouring activities.
	ErrLocations = errors.New("plan component locations are not consistent")
	// ErrIncomparableLocations is returned when two locations share no
	// representation and cannot be compared.
	ErrIncomparableLocations = errors.New("cannot compare locations without a shared representation")
	// ErrHomeRequired is returned by plan filling when a required home
	// activity cannot be found.
	ErrHomeRequired = errors.New("plan requires a home activity")
	// ErrNotActivity is returned when an index expected to address an
	// activity addresses something else.
	ErrNotActivity = errors.New("index does not address an activity")
	// ErrNotLeg is returned when an index expected to address a leg
	// addresses something else.
	ErrNotLeg = errors.New("index does not address a leg")
)
