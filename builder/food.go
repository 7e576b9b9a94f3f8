package builder

// FoodKind is the closed set of food variants a Cook can prepare.
// Dispatch over kinds is always an explicit two-way switch.
type FoodKind int

const (
	FoodPizza FoodKind = iota
	FoodSandwich
)

func (k FoodKind) String() string {
	switch k {
	case FoodPizza:
		return "pizza"
	case FoodSandwich:
		return "sandwich"
	default:
		return "unknown"
	}
}

// Food is a finished product retrieved from a Cook. It has no identity
// beyond its fields and is never mutated after retrieval.
type Food interface {
	Kind() FoodKind

	Description() string
}
