package factory

// Role identifies one of the two playable character variants.
type Role string

const (
	RoleMage    Role = "Mage"
	RoleWarrior Role = "Warrior"
)

// Character is a fully-specified playable character. Characters are
// constructed once, in a terminal state, and never mutated afterwards.
type Character interface {
	// ID derives an identifier string from the character's name, level,
	// sub-type and role.
	ID() string

	Role() Role

	// UseAbility emits one descriptive line for the character's signature
	// move. No state is mutated.
	UseAbility()
}
