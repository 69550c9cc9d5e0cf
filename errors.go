package goldspiral

import "errors"

var (
	// ErrUnsupported is returned when a shape is asked to perform a movement it does not implement.
	ErrUnsupported = errors.New("unsupported operation for this shape")
	// ErrUnknownShape is returned by NewShape for shape names it does not know.
	ErrUnknownShape = errors.New("unknown shape")
	// ErrOddCoordinates is returned when the polygon coordinates cannot be paired into points.
	ErrOddCoordinates = errors.New("polygon coordinates should come in x,y pairs")
	// ErrIterations is returned for a negative iteration count.
	ErrIterations = errors.New("iteration count cannot be negative")
	// ErrInvalidConfig wraps every parameter validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)
