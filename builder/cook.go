package builder

// Cook accumulates one in-progress Food through discrete step calls before a
// final retrieval. A Cook is reusable across many products but holds at most
// one in-progress product at a time.
type Cook interface {
	Name() string

	// Kind reports which food variant this cook prepares.
	Kind() FoodKind

	// PrepareBase sets the base ingredient. The value is stored verbatim.
	PrepareBase(value string)

	// AddMeat sets the filling or topping. The value is stored verbatim.
	AddMeat(value string)

	// AddCheese sets the cheese. The value is stored verbatim.
	AddCheese(value string)

	// GetResult returns the accumulated product.
	GetResult() Food

	// StartNew discards the in-progress product and allocates a fresh empty one.
	StartNew()
}

func newCook(kind FoodKind, name string, opts ...Option) Cook {
	switch kind {
	case FoodPizza:
		return NewPizzaCook(name, opts...)
	case FoodSandwich:
		return NewSandwichCook(name, opts...)
	default:
		return nil
	}
}
