package main

import (
	"fmt"

	"github.com/marcelofcabral/go-design-patterns/builder"
)

// The builder pattern separates the construction of a complex object from its
// representation, so the same step sequence can produce different products.
// Here a Cook accumulates one food item through discrete prepare/add steps,
// and the KitchenManager acts as the director: given an order it picks a cook
// of the right variant (hiring a new one when the kitchen has none) and
// drives it through the fixed base/meat/cheese sequence.
func main() {
	mario := builder.NewPizzaCook("Mario")
	mario.PrepareBase("thin crust")
	mario.AddMeat("pepperoni")
	mario.AddCheese("provolone")
	fmt.Println(mario.GetResult().Description())

	manager, err := builder.NewKitchenManager([]builder.Cook{mario})
	if err != nil {
		panic(err)
	}

	pizza, err := manager.FulfillOrder(builder.Order{
		Food:   builder.FoodPizza,
		Base:   "bread",
		Meat:   "ground beef",
		Cheese: "mozzarella",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(pizza.Description())

	// No sandwich cook is managed yet, so George gets hired for this one.
	sandwich, err := manager.FulfillOrder(builder.Order{
		Food:   builder.FoodSandwich,
		Base:   "rye bread",
		Meat:   "pastrami",
		Cheese: "swiss",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(sandwich.Description())
}
