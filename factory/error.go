package factory

import "errors"

var (
	// ErrUnsupportedWeapon the requested weapon matches neither weapon set
	ErrUnsupportedWeapon = errors.New("unsupported weapon")
)
