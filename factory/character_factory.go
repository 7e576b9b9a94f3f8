package factory

import (
	"context"
	"fmt"

	"github.com/go-leo/gox/mathx/randx"
)

// CharacterSpec carries the creation parameters for the generic Factory
// contract.
type CharacterSpec struct {
	Name   string
	Weapon string
}

var _ Factory[Character, CharacterSpec] = (*CharacterFactory)(nil)

// CharacterFactory creates characters by classifying the requested weapon
// against the two weapon sets. It holds no state of its own.
type CharacterFactory struct {
	options *option
}

func NewCharacterFactory(opts ...Option) *CharacterFactory {
	return &CharacterFactory{options: newOption(opts...)}
}

// Create implements the generic Factory contract.
func (f *CharacterFactory) Create(_ context.Context, spec CharacterSpec) (Character, error) {
	return f.CreateNewCharacter(spec.Name, spec.Weapon)
}

// CreateNewCharacter classifies the weapon by membership in the mage set
// first, then the warrior set, so "Hands" resolves to a Mage. A weapon in
// neither set fails with ErrUnsupportedWeapon and constructs nothing.
func (f *CharacterFactory) CreateNewCharacter(name, weapon string) (Character, error) {
	if _, ok := mageWeapons[weapon]; ok {
		schools := []MageSchool{SchoolFire, SchoolIce}
		return &Mage{
			name:   name,
			level:  1,
			school: schools[randx.Intn(len(schools))],
			// the requested weapon is not threaded through; every mage
			// starts out with a scepter
			usesScepter: true,
			writer:      f.options.Writer,
		}, nil
	}
	if _, ok := warriorWeapons[weapon]; ok {
		classes := []WarriorClass{ClassBarbarian, ClassPaladin}
		return &Warrior{
			name:  name,
			level: 1,
			class: classes[randx.Intn(len(classes))],
			// the requested weapon is not threaded through; the armory
			// hands every warrior a sword
			weapon: "Sword",
			writer: f.options.Writer,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedWeapon, weapon)
}
