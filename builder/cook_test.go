package builder

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-leo/gox/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
)

func TestPizzaCook_GetResult(t *testing.T) {
	cook := NewPizzaCook("Mario", Writer(io.Discard))
	cook.PrepareBase("thin crust")
	cook.AddMeat("pepperoni")
	cook.AddCheese("provolone")

	food := cook.GetResult()
	assert.Equal(t, FoodPizza, food.Kind())

	pizza, ok := food.(*Pizza)
	assert.True(t, ok)
	assert.Equal(t, "thin crust", pizza.Flour)
	assert.Equal(t, "pepperoni", pizza.Topping)
	assert.Equal(t, "provolone", pizza.Cheese)
}

func TestSandwichCook_GetResult(t *testing.T) {
	cook := NewSandwichCook("Luigi", Writer(io.Discard))
	cook.PrepareBase("rye bread")
	cook.AddMeat("pastrami")
	cook.AddCheese("swiss")

	food := cook.GetResult()
	assert.Equal(t, FoodSandwich, food.Kind())

	sandwich, ok := food.(*Sandwich)
	assert.True(t, ok)
	assert.Equal(t, "rye bread", sandwich.Bread)
	assert.Equal(t, "pastrami", sandwich.Filling)
	assert.Equal(t, "swiss", sandwich.Cheese)
}

func TestCook_StartNew(t *testing.T) {
	cook := NewPizzaCook("Mario", Writer(io.Discard))
	cook.PrepareBase("thick crust")
	cook.AddMeat("ham")
	cook.AddCheese("cheddar")
	first := cook.GetResult().(*Pizza)

	cook.StartNew()
	second := cook.GetResult().(*Pizza)

	assert.NotSame(t, first, second)
	assert.Equal(t, &Pizza{}, second)
	// the retrieved product keeps its fields
	assert.Equal(t, "thick crust", first.Flour)
}

func TestCook_ProgressMessages(t *testing.T) {
	var buf bytes.Buffer
	cook := NewSandwichCook("Luigi", Writer(&buf))
	cook.PrepareBase("baguette")
	cook.AddMeat("salami")
	cook.AddCheese("brie")
	cook.GetResult()

	out := buf.String()
	assert.Contains(t, out, "Luigi")
	assert.Contains(t, out, "baguette")
	assert.Contains(t, out, "salami")
	assert.Contains(t, out, "brie")
}

func TestPizza_JSON(t *testing.T) {
	cook := NewPizzaCook("Mario", Writer(io.Discard))
	cook.PrepareBase("bread")
	cook.AddMeat("ground beef")
	cook.AddCheese("mozzarella")

	data := errorx.Ignore(jsoniter.Marshal(cook.GetResult()))
	ja := jsonassert.New(t)
	ja.Assertf(string(data), `{"flour": "bread", "topping": "ground beef", "cheese": "mozzarella"}`)
}
