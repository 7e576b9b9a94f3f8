package builder

import "errors"

var (
	// ErrNoCooks KitchenManager needs at least one cook
	ErrNoCooks = errors.New("no cooks")

	// ErrUnknownFood no cook variant exists for the ordered food kind
	ErrUnknownFood = errors.New("unknown food kind")
)
