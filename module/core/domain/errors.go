package domain

import "errors"

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidZone        = errors.New("invalid zone")
)
