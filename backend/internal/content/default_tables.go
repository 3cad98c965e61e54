package content

// DefaultTables returns a small, internally-consistent sample content-table
// set: enough treasure types, per-terrain creature tables, antagonist
// archetype pools, seasonal weather odds, ship classes, and name/place
// pools to run a simulation end-to-end and exercise every engine code path
// in tests. Embedding processes are expected to supply their own richer
// tables in production; this is the contract's reference implementation,
// grounded on the treasure-type letter codes spec.md §4.7 names (A-V, Nil).
func DefaultTables() *Tables {
	t := &Tables{
		MonsterToTreasureType: map[string]string{
			"^bandit":     "B",
			"^orc":        "D",
			"^goblin":     "D",
			"^wolf":       "Nil",
			"^cultist":    "E",
			"^pirate":     "B",
			"^dragon":     "H",
			"^.*lich.*":   "G",
			"^.*vampire.*": "G",
		},
		TreasureTypes: map[string]TreasureTypeConfig{
			"B": {
				Key:             "B",
				CoinChance:      map[string]float64{"cp": 0.5, "sp": 0.6, "gp": 0.3},
				CoinDice:        map[string]string{"cp": "2d6*100", "sp": "2d6*100", "gp": "1d4*100"},
				GemChance:       0.25,
				GemDice:         "1d6",
				JewelryChance:   0.1,
				JewelryDice:     "1d4",
				MagicChance:     0.1,
				MagicCount:      "1d2",
				MagicCategories: []string{"potion", "scroll"},
				TypicalValueMin: 50,
				TypicalValueMax: 600,
			},
			"D": {
				Key:             "D",
				CoinChance:      map[string]float64{"cp": 0.4, "sp": 0.5, "gp": 0.4, "pp": 0.05},
				CoinDice:        map[string]string{"cp": "1d8*100", "sp": "1d6*100", "gp": "2d6*10", "pp": "1d4*10"},
				GemChance:       0.4,
				GemDice:         "1d8",
				JewelryChance:   0.2,
				JewelryDice:     "1d4",
				MagicChance:     0.15,
				MagicCount:      "1d2",
				MagicCategories: []string{"weapon", "potion", "wand"},
				TypicalValueMin: 200,
				TypicalValueMax: 2000,
			},
			"E": {
				Key:             "E",
				CoinChance:      map[string]float64{"sp": 0.5, "gp": 0.5, "pp": 0.1},
				CoinDice:        map[string]string{"sp": "1d10*100", "gp": "1d6*100", "pp": "1d4*10"},
				GemChance:       0.3,
				GemDice:         "1d10",
				JewelryChance:   0.15,
				JewelryDice:     "1d6",
				MagicChance:     0.2,
				MagicCount:      "1d3",
				MagicCategories: []string{"scroll", "ring", "wondrous"},
				TypicalValueMin: 300,
				TypicalValueMax: 3000,
			},
			"G": {
				Key:             "G",
				CoinChance:      map[string]float64{"gp": 0.9, "pp": 0.5},
				CoinDice:        map[string]string{"gp": "4d6*1000", "pp": "2d6*100"},
				GemChance:       0.6,
				GemDice:         "3d6",
				JewelryChance:   0.5,
				JewelryDice:     "1d8",
				MagicChance:     0.6,
				MagicCount:      "1d4",
				MagicCategories: []string{"weapon", "armor", "ring", "rod", "wondrous"},
				IsLair:          true,
				TypicalValueMin: 5000,
				TypicalValueMax: 50000,
			},
			"H": {
				Key:             "H",
				CoinChance:      map[string]float64{"gp": 1.0, "pp": 0.8},
				CoinDice:        map[string]string{"gp": "6d6*1000", "pp": "3d6*1000"},
				GemChance:       0.8,
				GemDice:         "4d6",
				JewelryChance:   0.7,
				JewelryDice:     "2d6",
				MagicChance:     0.8,
				MagicCount:      "2d4",
				MagicCategories: []string{"weapon", "armor", "rod", "staff", "wondrous"},
				IsLair:          true,
				TypicalValueMin: 20000,
				TypicalValueMax: 200000,
			},
			"Nil": {
				Key:             "Nil",
				CoinChance:      map[string]float64{"cp": 0.2},
				CoinDice:        map[string]string{"cp": "1d6*10"},
				TypicalValueMin: 0,
				TypicalValueMax: 10,
			},
		},
		CreaturesByTerrain: map[string][]CreatureTableEntry{
			"road":      {{Name: "bandit", Weight: 5}, {Name: "wolf", Weight: 2}},
			"clear":     {{Name: "bandit", Weight: 3}, {Name: "wolf", Weight: 4}, {Name: "goblin", Weight: 3}},
			"forest":    {{Name: "wolf", Weight: 5}, {Name: "goblin", Weight: 4}, {Name: "cultist", Weight: 1}},
			"hills":     {{Name: "orc", Weight: 5}, {Name: "goblin", Weight: 3}},
			"mountains": {{Name: "orc", Weight: 4}, {Name: "dragon", Weight: 1}},
			"swamp":     {{Name: "cultist", Weight: 4}, {Name: "lich-thrall", Weight: 1}},
			"desert":    {{Name: "bandit", Weight: 4}, {Name: "vampire-thrall", Weight: 1}},
			"coastal":   {{Name: "pirate", Weight: 5}, {Name: "bandit", Weight: 2}},
			"ocean":     {{Name: "pirate", Weight: 6}},
			"reef":      {{Name: "pirate", Weight: 3}},
			"river":     {{Name: "bandit", Weight: 2}, {Name: "wolf", Weight: 3}},
		},
		Archetypes: map[string]AntagonistArchetypePool{
			"bandit-chief": {
				Epithets:    []string{"the Red Hand", "the Roadsmoke", "the Tollkeeper"},
				Motivations: []string{"greed", "territory", "revenge against a noble house"},
				Traits:      []string{"cunning", "ruthless", "charismatic"},
				Weaknesses:  []string{"overconfident", "loyal only to coin"},
				Actions:     []string{"raids a trade road", "extorts a settlement", "recruits deserters"},
			},
			"orc-warlord": {
				Epithets:    []string{"the Skullcrusher", "the Ashborn", "the Unbroken"},
				Motivations: []string{"conquest", "honor", "survival of the tribe"},
				Traits:      []string{"brutal", "disciplined", "superstitious"},
				Weaknesses:  []string{"rigid tactics", "distrusts magic"},
				Actions:     []string{"masses an army", "besieges a settlement", "challenges a rival chief"},
			},
			"dark-wizard": {
				Epithets:    []string{"the Pale Scholar", "the Nightbinder"},
				Motivations: []string{"forbidden knowledge", "immortality", "revenge"},
				Traits:      []string{"patient", "secretive", "arrogant"},
				Weaknesses:  []string{"physically frail", "overreliant on minions"},
				Actions:     []string{"steals a magic item", "curses a settlement", "binds a demon"},
			},
			"vampire": {
				Epithets:    []string{"the Crimson Count", "the Widow of Dusk"},
				Motivations: []string{"feeding", "legacy", "boredom"},
				Traits:      []string{"manipulative", "patient", "vain"},
				Weaknesses:  []string{"sunlight", "a mortal obsession"},
				Actions:     []string{"turns a noble", "drains a village quietly", "hosts a masquerade"},
			},
			"dragon": {
				Epithets:    []string{"the Mountain's Wrath", "the Last Ember"},
				Motivations: []string{"hoarding", "territory", "pride"},
				Traits:      []string{"ancient", "proud", "calculating"},
				Weaknesses:  []string{"a single vulnerable scale", "pride invites a bargain"},
				Actions:     []string{"burns a settlement", "demands tribute", "hunts a rival claimant"},
			},
			"cult-leader": {
				Epithets:    []string{"the Hollow Prophet", "the Veiled Voice"},
				Motivations: []string{"apotheosis", "revenge", "prophecy"},
				Traits:      []string{"fanatical", "persuasive", "patient"},
				Weaknesses:  []string{"dependent on followers", "fears exposure"},
				Actions:     []string{"converts a settlement", "performs a dark ritual", "assassinates a rival faith"},
			},
			"corrupt-noble": {
				Epithets:    []string{"the Gilded Viper", "the Velvet Tyrant"},
				Motivations: []string{"power", "wealth", "legacy"},
				Traits:      []string{"charming", "ruthless", "image-conscious"},
				Weaknesses:  []string{"overextended finances", "many enemies"},
				Actions:     []string{"frames a rival", "raises taxes", "hires an assassin"},
			},
			"renegade-knight": {
				Epithets:    []string{"the Oathbreaker", "the Fallen Banner"},
				Motivations: []string{"vengeance", "disillusionment", "survival"},
				Traits:      []string{"disciplined", "bitter", "skilled"},
				Weaknesses:  []string{"haunted by old oaths", "distrusted by all sides"},
				Actions:     []string{"raids a former liege", "protects the downtrodden", "duels a rival"},
			},
			"beast-lord": {
				Epithets:    []string{"the Wildcaller", "the Thornwarden"},
				Motivations: []string{"territory", "nature's balance", "revenge on loggers"},
				Traits:      []string{"feral", "protective", "unpredictable"},
				Weaknesses:  []string{"bound to its territory", "vulnerable away from beasts"},
				Actions:     []string{"sends a beast horde", "curses cut timber", "claims a forest"},
			},
			"necromancer": {
				Epithets:    []string{"the Graveherald", "the Pale Hand"},
				Motivations: []string{"power over death", "revenge", "research"},
				Traits:      []string{"cold", "meticulous", "patient"},
				Weaknesses:  []string{"bound to a phylactery-like focus", "feared even by allies"},
				Actions:     []string{"raises a graveyard", "besieges with undead", "steals corpses"},
			},
			"fey-lord": {
				Epithets:    []string{"the Thornless Crown", "the Mirrorwood Queen"},
				Motivations: []string{"caprice", "a broken bargain", "boredom"},
				Traits:      []string{"capricious", "ancient", "bound by old rules"},
				Weaknesses:  []string{"bound by its own word", "iron"},
				Actions:     []string{"curses a settlement", "steals a child", "offers a dangerous bargain"},
			},
			"demon-bound": {
				Epithets:    []string{"the Brandmarked", "the Hellward"},
				Motivations: []string{"escaping its pact", "corrupting its binder", "consuming souls"},
				Traits:      []string{"volatile", "clever", "ancient"},
				Weaknesses:  []string{"bound by its pact's terms", "a true name"},
				Actions:     []string{"corrupts a noble", "possesses a cult", "breaks its pact"},
			},
			"pirate-captain": {
				Epithets:    []string{"the Bloody Tide", "the Salt Reaver"},
				Motivations: []string{"plunder", "freedom", "revenge on a navy"},
				Traits:      []string{"bold", "charismatic", "superstitious"},
				Weaknesses:  []string{"mutinous crew", "a bounty on their head"},
				Actions:     []string{"raids a sea route", "sacks a port", "recruits a fleet"},
			},
			"sea-raider": {
				Epithets:    []string{"the Grey Wake", "the Hullbreaker"},
				Motivations: []string{"plunder", "territory", "glory"},
				Traits:      []string{"ferocious", "disciplined", "superstitious"},
				Weaknesses:  []string{"feuds within the fleet", "overextends supply"},
				Actions:     []string{"raids a coastal settlement", "blockades a port", "sinks a merchant fleet"},
			},
			"kraken-cult": {
				Epithets:    []string{"the Deep Chorus", "the Drowned Faith"},
				Motivations: []string{"appeasing the deep", "apotheosis", "revenge on sailors"},
				Traits:      []string{"fanatical", "secretive", "patient"},
				Weaknesses:  []string{"dependent on the kraken's favor", "fears dry land"},
				Actions:     []string{"sinks a ship in tribute", "converts a port", "calls the kraken"},
			},
			"ghost-ship": {
				Epithets:    []string{"the Drowned Wanderer", "the Fogbound"},
				Motivations: []string{"unfinished business", "curse", "vengeance"},
				Traits:      []string{"mournful", "relentless", "bound to the sea"},
				Weaknesses:  []string{"bound to its old wreck site", "a single unresolved grievance"},
				Actions:     []string{"lures ships to wreck", "haunts a sea route", "seeks its killer's heirs"},
			},
			"sea-witch": {
				Epithets:    []string{"the Tideweaver", "the Brinehollow Crone"},
				Motivations: []string{"bargains", "revenge", "curiosity"},
				Traits:      []string{"cunning", "patient", "capricious"},
				Weaknesses:  []string{"bound by the terms of her bargains", "tied to her grotto"},
				Actions:     []string{"curses a fleet", "offers a dangerous bargain", "calls a storm"},
			},
		},
		WeatherOddsBySeason: map[string]WeatherOdds{
			"spring": {"clear": 40, "rain": 30, "fog": 15, "storm": 10, "wind": 5},
			"summer": {"clear": 55, "rain": 20, "fog": 5, "storm": 15, "wind": 5},
			"autumn": {"clear": 35, "rain": 25, "fog": 20, "storm": 10, "wind": 10},
			"winter": {"clear": 25, "rain": 10, "fog": 15, "storm": 15, "wind": 10, "snow": 25},
		},
		WeatherEffects: map[string]WeatherEffect{
			"clear": {TravelSpeedMod: 1.0, EncounterChanceMod: 1.0},
			"rain":  {TravelSpeedMod: 0.85, EncounterChanceMod: 0.9, ReducedVisibility: true, MoodMod: -1},
			"fog":   {TravelSpeedMod: 0.7, EncounterChanceMod: 1.1, ReducedVisibility: true},
			"storm": {TravelSpeedMod: 0.4, EncounterChanceMod: 0.6, ReducedVisibility: true, MoodMod: -2},
			"wind":  {TravelSpeedMod: 0.9, EncounterChanceMod: 1.0},
			"snow":  {TravelSpeedMod: 0.5, EncounterChanceMod: 0.8, ReducedVisibility: true, MoodMod: -1},
		},
		ShipTypes: map[string]ShipTypeConfig{
			"sloop":      {Crew: 8, CargoCapacity: 2000, SpeedMPD: 90, Seaworthiness: 0.6, Cost: 2000, Marines: 2},
			"caravel":    {Crew: 20, CargoCapacity: 8000, SpeedMPD: 110, Seaworthiness: 0.75, Cost: 8000, Marines: 6},
			"galleon":    {Crew: 60, CargoCapacity: 25000, SpeedMPD: 80, Seaworthiness: 0.9, Cost: 30000, Marines: 20},
			"longship":   {Crew: 30, CargoCapacity: 6000, SpeedMPD: 120, Seaworthiness: 0.65, Cost: 6000, Marines: 15},
			"warship":    {Crew: 80, CargoCapacity: 10000, SpeedMPD: 85, Seaworthiness: 0.95, Cost: 45000, Marines: 40},
		},
		NamePool: []string{
			"Alaric", "Brynn", "Cedric", "Dara", "Eamon", "Fiora", "Garrick", "Helena",
			"Ivo", "Jessamine", "Kael", "Liora", "Magnus", "Nessa", "Oswin", "Petra",
			"Quillon", "Roswitha", "Soren", "Talia", "Ulric", "Vesna", "Wren", "Yorick",
		},
		PlacePool: []string{
			"Ashford", "Brackwater", "Cairnholt", "Duskmere", "Emberfall", "Fenmoor",
			"Greywatch", "Harrowgate", "Ironreach", "Kestrelholm", "Lowmarsh", "Millstone",
			"Northgate", "Oakhaven", "Pinebrook", "Ravenscar", "Saltmere", "Thornfield",
		},
	}
	return t
}
