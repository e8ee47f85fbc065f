package gamedata

const (
	kubrowPetPath      = "/Lotus/Types/Game/KubrowPet/"
	playerPowerSuit    = "/Lotus/Types/Game/PowerSuits/PlayerPowerSuit"
	lotusLongGun       = "/Lotus/Weapons/Tenno/LotusLongGun"
	lotusPistol        = "/Lotus/Weapons/Tenno/Pistol/LotusPistol"
	lotusMeleeWeapon   = "/Lotus/Types/Game/LotusMeleeWeapon"
	spectreLoadoutType = "/Lotus/Types/Game/SpectreArmies/PlayerSpectre"
)

// Spectre loadout slot markers, in the order the client lists them.
const (
	SpectreSlotSuit    = playerPowerSuit
	SpectreSlotLongGun = lotusLongGun
	SpectreSlotPistol  = lotusPistol
	SpectreSlotMelee   = lotusMeleeWeapon
)

var recipeTable = map[string]Recipe{
	"/Lotus/Types/Recipes/Weapons/BoltorBlueprint": {
		ResultType: "/Lotus/Weapons/Tenno/Rifle/Boltor",
		BuildPrice: 15000,
		BuildTime:  43200,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Types/Items/MiscItems/Ferrite", ItemCount: 500},
			{ItemType: "/Lotus/Types/Items/MiscItems/PolymerBundle", ItemCount: 300},
			{ItemType: "/Lotus/Types/Items/MiscItems/Circuits", ItemCount: 400},
		},
	},
	"/Lotus/Types/Recipes/Weapons/AkboltoBlueprint": {
		ResultType: "/Lotus/Weapons/Tenno/Pistols/DualBolto/DualBolto",
		BuildPrice: 20000,
		BuildTime:  43200,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Weapons/Tenno/Pistol/Bolto", ItemCount: 1},
			{ItemType: "/Lotus/Weapons/Tenno/Pistol/Bolto", ItemCount: 1},
			{ItemType: "/Lotus/Types/Items/MiscItems/Ferrite", ItemCount: 250},
		},
	},
	"/Lotus/Types/Recipes/Weapons/StalkerTwoSmallSwordBlueprint": {
		ResultType: "/Lotus/Weapons/Tenno/Melee/Swords/StalkerTwo/StalkerTwoSmallSword",
		BuildPrice: 25000,
		BuildTime:  86400,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Types/Items/MiscItems/Gallium", ItemCount: 2},
			{ItemType: "/Lotus/Types/Items/MiscItems/Morphic", ItemCount: 2},
		},
	},
	"/Lotus/Types/Game/KubrowPet/Eggs/KubrowPetEggRecipe": {
		ResultType: kubrowPetPath + "IncubatedKubrowPet",
		BuildPrice: 0,
		BuildTime:  60,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: KubrowPetEggItem, ItemCount: 1},
		},
		SecretIngredientAction: ActionCreateKubrow,
		SecretIngredients: []TypeCount{
			{ItemType: kubrowPetPath + "ChargerKubrowPetPowerSuit", ItemCount: 1},
			{ItemType: kubrowPetPath + "FurtiveKubrowPetPowerSuit", ItemCount: 1},
			{ItemType: kubrowPetPath + "GuardKubrowPetPowerSuit", ItemCount: 1},
			{ItemType: kubrowPetPath + "HunterKubrowPetPowerSuit", ItemCount: 1},
			{ItemType: kubrowPetPath + "RetrieverKubrowPetPowerSuit", ItemCount: 1},
		},
	},
	"/Lotus/Types/Game/KubrowPet/Eggs/KubrowPetPrintRecipe": {
		ResultType: kubrowPetPath + "ImprintedTraitPrint",
		BuildPrice: 0,
		BuildTime:  10,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Types/Game/KubrowPet/Genetics/GeneticCodeTemplateItem", ItemCount: 1},
		},
		SecretIngredientAction: ActionDistillPrint,
	},
	"/Lotus/Types/Recipes/SpectreRecipes/PlayerSpectreRecipe": {
		ResultType: spectreLoadoutType,
		BuildPrice: 5000,
		BuildTime:  3600,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Types/Items/MiscItems/Neurodes", ItemCount: 2},
		},
		SecretIngredientAction: ActionSpectreLoadoutCopy,
		SecretIngredients: []TypeCount{
			{ItemType: playerPowerSuit, ItemCount: 1},
			{ItemType: lotusLongGun, ItemCount: 1},
			{ItemType: lotusPistol, ItemCount: 1},
			{ItemType: lotusMeleeWeapon, ItemCount: 1},
		},
	},
	"/Lotus/Types/Recipes/WarframeRecipes/UnbrandSuitRecipe": {
		ResultType: "/Lotus/Types/Items/MiscItems/UnbrandedSuit",
		BuildPrice: 0,
		BuildTime:  300,
		Num:        1,
		Ingredients: []TypeCount{
			{ItemType: "/Lotus/Types/Items/MiscItems/Forma", ItemCount: 1},
		},
		SecretIngredientAction: ActionUnbrand,
	},
	"/Lotus/Weapons/SolarisUnited/LotusGildKitgunBlueprint": {
		ResultType: "/Lotus/Weapons/SolarisUnited/LotusGildKitgun",
		Num:        1,
		SecretIngredients: []TypeCount{
			{ItemType: "/Lotus/Types/Items/Gems/Solaris/SolarisCommonGemACutItem", ItemCount: 10},
		},
		SyndicateStandingChange: &StandingChange{Tag: "SolarisSyndicate", Value: 5000},
	},
	"/Lotus/Weapons/Ostron/LotusGildZawBlueprint": {
		ResultType: "/Lotus/Weapons/Ostron/LotusGildZaw",
		Num:        1,
		SecretIngredients: []TypeCount{
			{ItemType: "/Lotus/Types/Gameplay/Eidolon/Resources/IraditeItem", ItemCount: 20},
			{ItemType: "/Lotus/Types/Gameplay/Eidolon/Resources/GrokdrulItem", ItemCount: 10},
		},
		SyndicateStandingChange: &StandingChange{Tag: "CetusSyndicate", Value: 5000},
	},
}
