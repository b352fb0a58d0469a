package catalog

import "errors"

var (
	// ErrInvalidRoom indicates a room definition that cannot be used.
	ErrInvalidRoom = errors.New("catalog: invalid room")
	// ErrInvalidLocation indicates a location definition that cannot be used.
	ErrInvalidLocation = errors.New("catalog: invalid location")
	// ErrInvalidPerson indicates a person whose email or name is unusable.
	ErrInvalidPerson = errors.New("catalog: invalid person")
)
