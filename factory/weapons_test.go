package factory

import (
	"io"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWeaponClassification(t *testing.T) {
	Convey("Given a character factory", t, func() {
		f := NewCharacterFactory(Writer(io.Discard))

		Convey("Every mage weapon produces a Mage", func() {
			for weapon := range mageWeapons {
				character, err := f.CreateNewCharacter("Nick", weapon)
				So(err, ShouldBeNil)
				So(character.Role(), ShouldEqual, RoleMage)
			}
		})

		Convey("Every warrior-only weapon produces a Warrior", func() {
			for weapon := range warriorWeapons {
				if _, ok := mageWeapons[weapon]; ok {
					continue
				}
				character, err := f.CreateNewCharacter("Conan", weapon)
				So(err, ShouldBeNil)
				So(character.Role(), ShouldEqual, RoleWarrior)
			}
		})

		Convey("The weapon tables map names to themselves", func() {
			for name, value := range mageWeapons {
				So(value, ShouldEqual, name)
			}
			for name, value := range warriorWeapons {
				So(value, ShouldEqual, name)
			}
		})

		Convey("A weapon in neither set is rejected", func() {
			character, err := f.CreateNewCharacter("Nick", "Slingshot")
			So(err, ShouldNotBeNil)
			So(character, ShouldBeNil)
		})
	})
}
