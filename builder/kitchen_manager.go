package builder

import (
	"context"

	"golang.org/x/exp/slices"
)

// newCookName placeholder name for cooks hired on demand.
const newCookName = "George"

// KitchenManager is the director of the kitchen. It owns a non-empty
// collection of cooks, keeps one of them active, and drives the active cook
// through the fixed base/meat/cheese build sequence for each order.
type KitchenManager struct {
	cooks   []Cook
	active  Cook
	options *option
}

// NewKitchenManager fails with ErrNoCooks when given an empty collection.
// The first cook starts out active.
func NewKitchenManager(cooks []Cook, opts ...Option) (*KitchenManager, error) {
	if len(cooks) == 0 {
		return nil, ErrNoCooks
	}
	return &KitchenManager{
		cooks:   cooks,
		active:  cooks[0],
		options: newOption(opts...),
	}, nil
}

// Active returns the currently active cook.
func (m *KitchenManager) Active() Cook {
	return m.active
}

// Cooks returns a copy of the managed cook collection.
func (m *KitchenManager) Cooks() []Cook {
	return slices.Clone(m.cooks)
}

// FindSuitableCook makes a cook of the given kind active and returns it.
// The active cook is kept when it already matches; otherwise the first
// matching cook in collection order takes over; otherwise a new cook of the
// required kind is hired and appended. Returns nil for an unknown kind.
func (m *KitchenManager) FindSuitableCook(kind FoodKind) Cook {
	if m.active.Kind() == kind {
		return m.active
	}
	if i := slices.IndexFunc(m.cooks, func(c Cook) bool { return c.Kind() == kind }); i >= 0 {
		m.active = m.cooks[i]
		return m.active
	}
	cook := newCook(kind, newCookName, Writer(m.options.Writer))
	if cook == nil {
		return nil
	}
	m.cooks = append(m.cooks, cook)
	m.active = cook
	return m.active
}

// FulfillOrder selects a suitable cook, resets it, and runs the three build
// steps in fixed order before handing back the result.
func (m *KitchenManager) FulfillOrder(order Order) (Food, error) {
	cook := m.FindSuitableCook(order.Food)
	if cook == nil {
		return nil, ErrUnknownFood
	}
	cook.StartNew()
	cook.PrepareBase(order.Base)
	cook.AddMeat(order.Meat)
	cook.AddCheese(order.Cheese)
	return cook.GetResult(), nil
}

// Builder defers an order behind the generic Builder contract.
func (m *KitchenManager) Builder(order Order) Builder[Food] {
	return BuilderFunc[Food](func(_ context.Context) (Food, error) {
		return m.FulfillOrder(order)
	})
}
