package gamedata

var weaponTable = map[string]Weapon{
	"/Lotus/Weapons/Tenno/Rifle/Boltor":                                     {Name: "/Lotus/Language/Weapons/Boltor", ProductCategory: CategoryLongGuns},
	"/Lotus/Weapons/Tenno/Rifle/Rifle":                                      {Name: "/Lotus/Language/Weapons/Braton", ProductCategory: CategoryLongGuns},
	"/Lotus/Weapons/Tenno/Pistol/Bolto":                                     {Name: "/Lotus/Language/Weapons/Bolto", ProductCategory: CategoryPistols},
	"/Lotus/Weapons/Tenno/Pistol/Pistol":                                    {Name: "/Lotus/Language/Weapons/Lato", ProductCategory: CategoryPistols},
	"/Lotus/Weapons/Tenno/Pistols/DualBolto/DualBolto":                      {Name: "/Lotus/Language/Weapons/Akbolto", ProductCategory: CategoryPistols},
	"/Lotus/Weapons/Tenno/Melee/LongSword/LongSword":                        {Name: "/Lotus/Language/Weapons/Skana", ProductCategory: CategoryMelee},
	"/Lotus/Weapons/Tenno/Melee/Swords/StalkerTwo/StalkerTwoSmallSword":     {Name: "/Lotus/Language/Weapons/Paracesis", ProductCategory: CategoryMelee},
	"/Lotus/Weapons/SolarisUnited/Primary/LotusModularPrimary":              {Name: "/Lotus/Language/Weapons/Kitgun", ProductCategory: CategoryLongGuns},
	"/Lotus/Weapons/SolarisUnited/Secondary/LotusModularSecondary":          {Name: "/Lotus/Language/Weapons/Kitgun", ProductCategory: CategoryPistols},
	"/Lotus/Weapons/Ostron/Melee/LotusModularWeapon":                        {Name: "/Lotus/Language/Weapons/Zaw", ProductCategory: CategoryMelee},
	"/Lotus/Weapons/Sentients/OperatorAmplifiers/OperatorTrainingAmpWeapon": {Name: "/Lotus/Language/Weapons/Mote", ProductCategory: CategoryOperatorAmps},
	"/Lotus/Weapons/Tenno/Archwing/Primary/ArchGun/ArchGun":                 {Name: "/Lotus/Language/Weapons/Imperator", ProductCategory: CategorySpaceGuns},
}

var suitTable = map[string]Suit{
	"/Lotus/Powersuits/Excalibur/Excalibur": {Name: "/Lotus/Language/Suits/Excalibur", ProductCategory: CategorySuits},
	"/Lotus/Powersuits/Volt/Volt":           {Name: "/Lotus/Language/Suits/Volt", ProductCategory: CategorySuits},
	"/Lotus/Powersuits/Mag/Mag":             {Name: "/Lotus/Language/Suits/Mag", ProductCategory: CategorySuits},
}
