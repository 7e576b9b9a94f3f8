package main

import (
	"fmt"

	"github.com/marcelofcabral/go-design-patterns/factory"
)

// The factory pattern hides creation-time branching behind a single call.
// CharacterFactory inspects the requested weapon and returns one of two
// character variants with a randomly drawn sub-type. "Hands" is accepted by
// both weapon sets and resolves to a Mage because that set is checked first.
func main() {
	f := factory.NewCharacterFactory()

	for _, weapon := range []string{"Scepter", "Hammer", "Hands"} {
		character, err := f.CreateNewCharacter("Nick", weapon)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Requested %s, got a %s.\n", weapon, character.Role())
		character.UseAbility()
	}

	if _, err := f.CreateNewCharacter("Nick", "Slingshot"); err != nil {
		fmt.Println(err)
	}
}
