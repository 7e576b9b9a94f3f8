package builder

import "fmt"

// Sandwich is the product assembled by a SandwichCook.
type Sandwich struct {
	Bread   string `json:"bread"`
	Filling string `json:"filling"`
	Cheese  string `json:"cheese"`
}

func (s *Sandwich) Kind() FoodKind {
	return FoodSandwich
}

func (s *Sandwich) Description() string {
	return fmt.Sprintf("%s sandwich filled with %s and %s", s.Bread, s.Filling, s.Cheese)
}

var _ Cook = (*SandwichCook)(nil)

// SandwichCook builds sandwiches one step at a time.
type SandwichCook struct {
	name     string
	sandwich *Sandwich
	options  *option
}

func NewSandwichCook(name string, opts ...Option) *SandwichCook {
	return &SandwichCook{
		name:     name,
		sandwich: &Sandwich{},
		options:  newOption(opts...),
	}
}

func (c *SandwichCook) Name() string {
	return c.name
}

func (c *SandwichCook) Kind() FoodKind {
	return FoodSandwich
}

func (c *SandwichCook) PrepareBase(value string) {
	c.sandwich.Bread = value
	fmt.Fprintf(c.options.Writer, "%s slices the %s.\n", c.name, value)
}

func (c *SandwichCook) AddMeat(value string) {
	c.sandwich.Filling = value
	fmt.Fprintf(c.options.Writer, "%s layers %s between the slices.\n", c.name, value)
}

func (c *SandwichCook) AddCheese(value string) {
	c.sandwich.Cheese = value
	fmt.Fprintf(c.options.Writer, "%s adds a slice of %s.\n", c.name, value)
}

func (c *SandwichCook) GetResult() Food {
	fmt.Fprintf(c.options.Writer, "%s wraps up a finished sandwich.\n", c.name)
	return c.sandwich
}

func (c *SandwichCook) StartNew() {
	c.sandwich = &Sandwich{}
}
