package factory

import (
	"fmt"
	"io"
)

// MageSchool is the magic school a Mage is born into.
type MageSchool string

const (
	SchoolFire MageSchool = "Fire"
	SchoolIce  MageSchool = "Ice"
)

var _ Character = (*Mage)(nil)

// Mage casts spells from its school, channeled through a scepter.
type Mage struct {
	name        string
	level       int
	school      MageSchool
	usesScepter bool
	writer      io.Writer
}

func (m *Mage) ID() string {
	return fmt.Sprintf("%s, the level %d %s %s", m.name, m.level, m.school, RoleMage)
}

func (m *Mage) Role() Role {
	return RoleMage
}

func (m *Mage) Level() int {
	return m.level
}

func (m *Mage) School() MageSchool {
	return m.school
}

func (m *Mage) UsesScepter() bool {
	return m.usesScepter
}

func (m *Mage) UseAbility() {
	switch m.school {
	case SchoolFire:
		if m.usesScepter {
			fmt.Fprintf(m.writer, "%s raises the scepter and hurls a roaring fireball.\n", m.ID())
		} else {
			fmt.Fprintf(m.writer, "%s cups bare hands and hurls a fireball.\n", m.ID())
		}
	case SchoolIce:
		if m.usesScepter {
			fmt.Fprintf(m.writer, "%s points the scepter and looses a shard of ice.\n", m.ID())
		} else {
			fmt.Fprintf(m.writer, "%s looses a shard of ice from bare hands.\n", m.ID())
		}
	}
}
