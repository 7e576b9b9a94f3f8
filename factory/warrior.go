package factory

import (
	"fmt"
	"io"
	"strings"
)

// WarriorClass is the fighting tradition a Warrior follows.
type WarriorClass string

const (
	ClassBarbarian WarriorClass = "Barbarian"
	ClassPaladin   WarriorClass = "Paladin"
)

var _ Character = (*Warrior)(nil)

// Warrior fights with whatever weapon the armory handed out.
type Warrior struct {
	name   string
	level  int
	class  WarriorClass
	weapon string
	writer io.Writer
}

func (w *Warrior) ID() string {
	return fmt.Sprintf("%s, the level %d %s %s", w.name, w.level, w.class, RoleWarrior)
}

func (w *Warrior) Role() Role {
	return RoleWarrior
}

func (w *Warrior) Level() int {
	return w.level
}

func (w *Warrior) Class() WarriorClass {
	return w.class
}

func (w *Warrior) Weapon() string {
	return w.weapon
}

func (w *Warrior) UseAbility() {
	fmt.Fprintf(w.writer, "%s swings the %s in a wide arc.\n", w.ID(), strings.ToLower(w.weapon))
}
