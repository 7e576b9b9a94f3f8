package factory

// The weapon tables map valid weapon names to themselves and are used purely
// as membership sets partitioning the weapon namespace. "Hands" belongs to
// both sets; the factory checks the mage set first, so an ambiguous weapon
// always resolves to a Mage.
var (
	mageWeapons = map[string]string{
		"Hands":   "Hands",
		"Scepter": "Scepter",
	}

	warriorWeapons = map[string]string{
		"Hands":  "Hands",
		"Axe":    "Axe",
		"Sword":  "Sword",
		"Hammer": "Hammer",
	}
)
