package model

// ConsequenceTag is the tagged-variant discriminator for ConsequenceEntry
// payloads (spec.md §4.3; spec.md §9 calls for sum types here instead of
// a free-form map).
type ConsequenceTag string

const (
	ConsequenceSpawnRumor        ConsequenceTag = "spawn-rumor"
	ConsequenceSpawnAntagonist   ConsequenceTag = "spawn-antagonist"
	ConsequenceSettlementChange  ConsequenceTag = "settlement-change"
	ConsequenceTreasureInflux    ConsequenceTag = "treasure-influx"
	ConsequenceTreasureAttract   ConsequenceTag = "treasure-attract" // generic "treasure-{attractType}"
	ConsequenceGuildHeistTarget  ConsequenceTag = "guild-heist-target"
	ConsequenceRivalPartyConflict ConsequenceTag = "rival-party-conflict"
	ConsequenceDragonSeeksTreasure ConsequenceTag = "dragon-seeks-treasure"
	ConsequenceAntagonistSeeksItem ConsequenceTag = "antagonist-seeks-item"
	ConsequenceFactionAcquiresItem ConsequenceTag = "faction-acquires-item"
	ConsequenceBanditAmbush       ConsequenceTag = "bandit-ambush"
	ConsequenceFactionAction      ConsequenceTag = "faction-action"
)

// ConsequenceData is the payload carried by a ConsequenceEntry. Exactly
// one of the following groups of fields is populated, selected by Tag —
// a typed stand-in for the tagged variant spec.md §9 calls for, kept as
// a single struct (rather than one Go type per tag plus an interface)
// because every engine consumer needs only a handful of fields and a
// sum-type-via-interface would force type assertions at every dispatch
// site for no benefit.
type ConsequenceData struct {
	SettlementID  string `json:"settlementId,omitempty"`
	AntagonistID  string `json:"antagonistId,omitempty"`
	FactionID     string `json:"factionId,omitempty"`
	TargetID      string `json:"targetId,omitempty"`
	HoardID       string `json:"hoardId,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	AttractType   string `json:"attractType,omitempty"`
	Archetype     AntagonistArchetype `json:"archetype,omitempty"`
	Territory     string `json:"territory,omitempty"`
	FactionAction string `json:"factionAction,omitempty"`
}

// ConsequenceEntry is a future-scheduled effect (spec.md §3, §4.3).
// Dequeued once DueTurnIndex is reached.
type ConsequenceEntry struct {
	ID              string          `json:"id"`
	Tag             ConsequenceTag  `json:"tag"`
	TriggerEventID  string          `json:"triggerEventId,omitempty"`
	DueTurnIndex    int             `json:"dueTurnIndex"`
	Data            ConsequenceData `json:"data"`
	Priority        int             `json:"priority"`
	InsertionOrder  int             `json:"insertionOrder"`
}

// LogCategory enumerates LogEntry.Category values. "system" is reserved
// for failure-semantics entries (spec.md §7).
type LogCategory string

const (
	LogCategorySystem  LogCategory = "system"
	LogCategoryWeather LogCategory = "weather"
	LogCategoryEvent   LogCategory = "event"
	LogCategoryTravel  LogCategory = "travel"
	LogCategoryTreasure LogCategory = "treasure"
	LogCategoryNaval   LogCategory = "naval"
	LogCategoryMemory  LogCategory = "memory"
	LogCategoryRumor   LogCategory = "rumor"
	LogCategoryWar     LogCategory = "war"
)

// LogEntry is immutable once appended to the event log.
type LogEntry struct {
	Category  LogCategory `json:"category"`
	Summary   string      `json:"summary"`
	Details   string      `json:"details"`
	Location  *HexCoord   `json:"location,omitempty"`
	Actors    []string    `json:"actors,omitempty"`
	WorldTime int64       `json:"worldTime"`
	RealTime  int64       `json:"realTime"`
	Seed      string      `json:"seed"`
}

// WorldEventType enumerates the causality-engine dispatch types
// (spec.md §4.4).
type WorldEventType string

const (
	EventRaid          WorldEventType = "raid"
	EventBattle        WorldEventType = "battle"
	EventDeath         WorldEventType = "death"
	EventRobbery       WorldEventType = "robbery"
	EventDiscovery     WorldEventType = "discovery"
	EventAlliance      WorldEventType = "alliance"
	EventBetrayal      WorldEventType = "betrayal"
	EventConquest      WorldEventType = "conquest"
	EventDisaster      WorldEventType = "disaster"
	EventMiracle       WorldEventType = "miracle"
	EventAssassination WorldEventType = "assassination"
	EventRecruitment   WorldEventType = "recruitment"
	EventDefection     WorldEventType = "defection"
	EventTradeDeal     WorldEventType = "trade-deal"
	EventEmbargo       WorldEventType = "embargo"
	EventFestival      WorldEventType = "festival"
	EventPlague        WorldEventType = "plague"
	EventFamine        WorldEventType = "famine"
	EventUprising      WorldEventType = "uprising"
	EventProphecy      WorldEventType = "prophecy"
)

// RelationType enumerates a victim's relationship kinds consumed by the
// death handler (spec.md §4.4.3).
type RelationType string

const (
	RelationEnemy  RelationType = "enemy"
	RelationAlly   RelationType = "ally"
	RelationLover  RelationType = "lover"
	RelationKin    RelationType = "kin"
	RelationMentor RelationType = "mentor"
)

// Relationship is one entry of a death event's optional relationship
// list (spec.md §4.4.3: "from optional depth.relationships").
type Relationship struct {
	NPCID    string       `json:"npcId"`
	Type     RelationType `json:"type"`
	Strength int          `json:"strength"`
}

// WorldEventData carries the per-type-handler inputs a dispatched
// WorldEvent needs (spec.md §4.4.1-§4.4.8). As with ConsequenceData, one
// struct covers every handler's inputs since handlers only ever read a
// handful of these fields based on Type.
type WorldEventData struct {
	// raid
	Damage     int `json:"damage,omitempty"`
	Casualties int `json:"casualties,omitempty"`
	Loot       int `json:"loot,omitempty"`

	// battle
	Victor       string `json:"victor,omitempty"`
	Loser        string `json:"loser,omitempty"`
	Significance int    `json:"significance,omitempty"`

	// death / assassination
	VictimName    string         `json:"victimName,omitempty"`
	KilledBy      string         `json:"killedBy,omitempty"`
	Cause         string         `json:"cause,omitempty"`
	Relationships []Relationship `json:"relationships,omitempty"`

	// robbery
	IsCaravan        bool   `json:"isCaravan,omitempty"`
	CaravanFactionID string `json:"caravanFactionId,omitempty"`
	Value            int    `json:"value,omitempty"`

	// conquest
	Conqueror string `json:"conqueror,omitempty"`
	Previous  string `json:"previous,omitempty"`

	// common
	SettlementID string `json:"settlementId,omitempty"`
	FactionID    string `json:"factionId,omitempty"`
	OtherFaction string `json:"otherFactionId,omitempty"`
}

// WorldEvent is transient; recorded in the bounded world history
// (spec.md §3, §5 "bounded growth": last 200).
type WorldEvent struct {
	ID           string         `json:"id"`
	Type         WorldEventType `json:"type"`
	Timestamp    int64          `json:"timestamp"`
	Location     HexCoord       `json:"location"`
	Actors       []string       `json:"actors"`
	Victims      []string       `json:"victims,omitempty"`
	Perpetrators []string       `json:"perpetrators,omitempty"`
	Magnitude    int            `json:"magnitude"`
	Witnessed    bool           `json:"witnessed"`
	Data         WorldEventData `json:"data"`
}
