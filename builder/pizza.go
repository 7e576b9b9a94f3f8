package builder

import "fmt"

// Pizza is the product assembled by a PizzaCook.
type Pizza struct {
	Flour   string `json:"flour"`
	Topping string `json:"topping"`
	Cheese  string `json:"cheese"`
}

func (p *Pizza) Kind() FoodKind {
	return FoodPizza
}

func (p *Pizza) Description() string {
	return fmt.Sprintf("%s pizza topped with %s and %s", p.Flour, p.Topping, p.Cheese)
}

var _ Cook = (*PizzaCook)(nil)

// PizzaCook builds pizzas one step at a time.
type PizzaCook struct {
	name    string
	pizza   *Pizza
	options *option
}

func NewPizzaCook(name string, opts ...Option) *PizzaCook {
	return &PizzaCook{
		name:    name,
		pizza:   &Pizza{},
		options: newOption(opts...),
	}
}

func (c *PizzaCook) Name() string {
	return c.name
}

func (c *PizzaCook) Kind() FoodKind {
	return FoodPizza
}

func (c *PizzaCook) PrepareBase(value string) {
	c.pizza.Flour = value
	fmt.Fprintf(c.options.Writer, "%s kneads a %s base.\n", c.name, value)
}

func (c *PizzaCook) AddMeat(value string) {
	c.pizza.Topping = value
	fmt.Fprintf(c.options.Writer, "%s spreads %s over the base.\n", c.name, value)
}

func (c *PizzaCook) AddCheese(value string) {
	c.pizza.Cheese = value
	fmt.Fprintf(c.options.Writer, "%s sprinkles %s on top.\n", c.name, value)
}

func (c *PizzaCook) GetResult() Food {
	fmt.Fprintf(c.options.Writer, "%s pulls a finished pizza out of the oven.\n", c.name)
	return c.pizza
}

func (c *PizzaCook) StartNew() {
	c.pizza = &Pizza{}
}
