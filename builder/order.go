package builder

// Order is a request for one food item. The ingredient values are free-form
// strings and are never validated.
type Order struct {
	Food   FoodKind
	Base   string
	Meat   string
	Cheese string
}
