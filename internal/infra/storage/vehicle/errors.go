package vehicle

import "errors"

var (
	// ErrReadFile is returned when the data file cannot be read.
	ErrReadFile = errors.New("vehicle.store: failed to read data file")

	// ErrWriteFile is returned when the data file cannot be written.
	ErrWriteFile = errors.New("vehicle.store: failed to write data file")

	// ErrInvalidRecord is returned for a line that cannot be decoded.
	ErrInvalidRecord = errors.New("vehicle.store: invalid record")
)
