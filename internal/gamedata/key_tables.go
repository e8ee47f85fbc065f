package gamedata

// Quest key chains. Stages with a Key point into levelKeyTable.
var keyTable = map[string]Key{
	"/Lotus/Types/Keys/VorsPrize/VorsPrizeQuestKeyChain": {
		Name: "/Lotus/Language/Quests/VorsPrize_Name",
		ChainStages: []ChainStage{
			{
				Key:                      "/Lotus/Types/Keys/VorsPrize/VorsPrizeMissionOneKey",
				ItemsToGiveWhenTriggered: []string{"/Lotus/StoreItems/Types/Items/ShipFeatureItems/ArsenalFeatureItem"},
			},
			{
				Key: "/Lotus/Types/Keys/VorsPrize/VorsPrizeMissionTwoKey",
				MessageToSendWhenTriggered: &Message{
					Sender:  "/Lotus/Language/Bosses/Lotus",
					Subject: "/Lotus/Language/G1Quests/VorsPrize_StageTwoInboxTitle",
					Body:    "/Lotus/Language/G1Quests/VorsPrize_StageTwoInboxBody",
					Icon:    "/Lotus/Interface/Icons/Npcs/Lotus_d.png",
				},
			},
			{
				ItemsToGiveWhenTriggered: []string{
					"/Lotus/StoreItems/Types/Items/ShipFeatureItems/ModsFeatureItem",
					"/Lotus/StoreItems/Types/Items/ShipFeatureItems/FoundryFeatureItem",
				},
				MessageToSendWhenTriggered: &Message{
					Sender:      "/Lotus/Language/Bosses/Lotus",
					Subject:     "/Lotus/Language/G1Quests/VorsPrize_FoundryInboxTitle",
					Body:        "/Lotus/Language/G1Quests/VorsPrize_FoundryInboxBody",
					Icon:        "/Lotus/Interface/Icons/Npcs/Lotus_d.png",
					Attachments: []string{"/Lotus/Types/Recipes/Weapons/BoltorBlueprint"},
				},
			},
		},
		Rewards: []KeyReward{
			{RewardType: RewardStoreItem, ItemType: "/Lotus/StoreItems/Types/Keys/DuviriQuest/DuviriQuestKeyChain"},
			{RewardType: RewardResource, ItemType: "/Lotus/Types/Items/MiscItems/Ferrite", Amount: 500},
			{RewardType: RewardRecipe, ItemType: "/Lotus/Types/Recipes/Weapons/AkboltoBlueprint", Amount: 1},
			{RewardType: RewardCredits, Amount: 5000},
		},
	},
	"/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonQuestKeyChain": {
		Name: "/Lotus/Language/Quests/SecondDream_Name",
		ChainStages: []ChainStage{
			{Key: "/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonMissionOneKey"},
			{
				MessageToSendWhenTriggered: &Message{
					Sender:  "/Lotus/Language/Bosses/Ordis",
					Subject: "/Lotus/Language/G1Quests/SecondDreamStageTwoInboxTitle",
					Body:    "/Lotus/Language/G1Quests/SecondDreamStageTwoInboxBody",
					Icon:    "/Lotus/Interface/Icons/Npcs/Ordis.png",
				},
			},
			{Key: "/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonMissionTwoKey"},
		},
	},
	"/Lotus/Types/Keys/NewWarQuest/NewWarQuestKeyChain": {
		Name: "/Lotus/Language/Quests/NewWar_Name",
		ChainStages: []ChainStage{
			{Key: "/Lotus/Types/Keys/NewWarQuest/NewWarMissionOneKey"},
			{ItemsToGiveWhenTriggered: []string{"/Lotus/StoreItems/Types/Items/MiscItems/NewWarNarmerMask"}},
		},
	},
	"/Lotus/Types/Keys/InfestedMicroplanetQuest/InfestedMicroplanetQuestKeyChain": {
		Name: "/Lotus/Language/Quests/HeartOfDeimos_Name",
		ChainStages: []ChainStage{
			{Key: "/Lotus/Types/Keys/InfestedMicroplanetQuest/InfestedMicroplanetMissionOneKey"},
			{
				MessageToSendWhenTriggered: &Message{
					Sender:  "/Lotus/Language/Bosses/Loid",
					Subject: "/Lotus/Language/InfestedMicroplanet/DeimosStageTwoInboxTitle",
					Body:    "/Lotus/Language/InfestedMicroplanet/DeimosStageTwoInboxBody",
					Icon:    "/Lotus/Interface/Icons/Npcs/Entrati/Loid.png",
				},
			},
		},
	},
	"/Lotus/Types/Keys/1999PrologueQuest/1999PrologueQuestKeyChain": {
		Name:        "/Lotus/Language/Quests/LotusEaters_Name",
		ChainStages: []ChainStage{{}},
	},
	"/Lotus/Types/Keys/DuviriQuest/DuviriQuestKeyChain": {
		Name: "/Lotus/Language/Quests/DuviriParadox_Name",
		ChainStages: []ChainStage{
			{ItemsToGiveWhenTriggered: []string{"/Lotus/StoreItems/Types/Items/MiscItems/DuviriDrifterMask"}},
			{},
		},
	},
	"/Lotus/Types/Keys/EntratiLab/EntratiQuestKeyChain": {
		Name:        "/Lotus/Language/Quests/WhispersInTheWalls_Name",
		ChainStages: []ChainStage{{}, {}},
	},
	"/Lotus/Types/Keys/1999Quest/1999QuestKeyChain": {
		Name:        "/Lotus/Language/Quests/TheHex_Name",
		ChainStages: []ChainStage{{}, {}},
	},
}

// Mission rewards for quest stages. VorsPrize covers both table formats.
var levelKeyTable = map[string]LevelKey{
	"/Lotus/Types/Keys/VorsPrize/VorsPrizeMissionOneKey": {
		LevelKeyRewards: &FixedRewards{
			Credits: 1000,
			Items:   []string{"/Lotus/StoreItems/Upgrades/Mods/Warframe/AvatarShieldMaxMod"},
			CountedItems: []TypeCount{
				{ItemType: "/Lotus/Types/Items/MiscItems/Alertium", ItemCount: 2},
			},
		},
	},
	"/Lotus/Types/Keys/VorsPrize/VorsPrizeMissionTwoKey": {
		LevelKeyRewards2: []KeyReward{
			{RewardType: RewardCredits, Amount: 2500},
			{RewardType: RewardResource, ItemType: "/Lotus/StoreItems/Types/Items/MiscItems/Ferrite", Amount: 300},
			{RewardType: RewardStoreItem, ItemType: "/Lotus/StoreItems/Upgrades/Mods/Rifle/WeaponDamageAmountMod"},
		},
	},
	"/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonMissionOneKey": {
		LevelKeyRewards2: []KeyReward{
			{RewardType: RewardCredits, Amount: 10000},
		},
	},
	"/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonMissionTwoKey": {
		LevelKeyRewards: &FixedRewards{
			Credits: 15000,
			CountedStoreItems: []TypeCount{
				{ItemType: "/Lotus/StoreItems/Types/Items/MiscItems/OrokinCell", ItemCount: 3},
			},
		},
	},
	"/Lotus/Types/Keys/NewWarQuest/NewWarMissionOneKey": {
		LevelKeyRewards2: []KeyReward{
			{RewardType: RewardCredits, Amount: 20000},
			{RewardType: RewardResource, ItemType: "/Lotus/StoreItems/Types/Items/MiscItems/Circuits", Amount: 400},
		},
	},
	"/Lotus/Types/Keys/InfestedMicroplanetQuest/InfestedMicroplanetMissionOneKey": {
		LevelKeyRewards: &FixedRewards{Credits: 5000},
	},
}

// Fixed quest completion grants. Quests missing here derive their grant from
// the key's Rewards list.
var questCompletionRewardTable = map[string][]TypeCount{
	"/Lotus/Types/Keys/OrokinMoonQuest/OrokinMoonQuestKeyChain": {
		{ItemType: "/Lotus/Types/Recipes/Weapons/StalkerTwoSmallSwordBlueprint", ItemCount: 1},
	},
	"/Lotus/Types/Keys/InfestedMicroplanetQuest/InfestedMicroplanetQuestKeyChain": {
		{ItemType: "/Lotus/Powersuits/Volt/Volt", ItemCount: 1},
		{ItemType: "/Lotus/Types/Items/MiscItems/Ferrite", ItemCount: 1000},
	},
	"/Lotus/Types/Keys/NewWarQuest/NewWarQuestKeyChain":             {},
	"/Lotus/Types/Keys/1999PrologueQuest/1999PrologueQuestKeyChain": {},
	"/Lotus/Types/Keys/DuviriQuest/DuviriQuestKeyChain":             {},
	"/Lotus/Types/Keys/EntratiLab/EntratiQuestKeyChain":             {},
	"/Lotus/Types/Keys/1999Quest/1999QuestKeyChain":                 {},
}
