package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrOutOfRange        = errors.New("out of range")
	ErrConflict          = errors.New("conflict")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidLevelRange = errors.New("min level must be less than or equal to max level")
)

var (
	ErrElevatorNotFound = fmt.Errorf("elevator %w", ErrNotFound)
	ErrDemandNotFound   = fmt.Errorf("demand %w", ErrNotFound)
	ErrLevelOutOfRange  = fmt.Errorf("level %w", ErrOutOfRange)
	ErrDemandExists     = fmt.Errorf("%w: open demand already exists for level", ErrConflict)
	ErrElevatorExists   = fmt.Errorf("%w: elevator already exists", ErrConflict)
)
