package model

// MagicItem is one tracked magic item in circulation (spec.md §4.7
// "Magic item identification").
type MagicItem struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Rarity     string `json:"rarity"`
	Identified bool   `json:"identified"`
	OwnerID    string `json:"ownerId,omitempty"`
	DiscoveredDay int `json:"discoveredDay"`
}

// GeneratedTreasure is the transient result of one generateTreasure call
// (spec.md §4.7); it is immediately decomposed into a DiscoveredHoard or
// TreasureExtraction record.
type GeneratedTreasure struct {
	Coin           map[string]int `json:"coin"`
	Gems           []int          `json:"gems"`
	Jewelry        []int          `json:"jewelry"`
	MagicItems     []MagicItem    `json:"magicItems"`
	TotalGoldValue float64        `json:"totalGoldValue"`
	IsHoard        bool           `json:"isHoard"`
	TreasureType   string         `json:"treasureType"`
}

// DiscoveredHoard persists until fully spent.
type DiscoveredHoard struct {
	ID            string   `json:"id"`
	Location      HexCoord `json:"location"`
	DiscoveredBy  string   `json:"discoveredBy"`
	TotalValue    float64  `json:"totalValue"`
	MagicItemIDs  []string `json:"magicItemIds"`
	Liquidated    bool     `json:"liquidated"`
	PercentSpent  float64  `json:"percentSpent"`
}

// TreasureExtraction persists until completed or abandoned+expired
// (spec.md §3, §4.7 "Extraction tick").
type TreasureExtraction struct {
	ID                string         `json:"id"`
	HoardID           string         `json:"hoardId"`
	RemainingCoin     map[string]int `json:"remainingCoin"`
	RemainingGems     int            `json:"remainingGems"`
	RemainingJewelry  int            `json:"remainingJewelry"`
	RemainingMagicIDs []string       `json:"remainingMagicIds"`
	TotalWeight       float64        `json:"totalWeight"`
	ExtractedWeight   float64        `json:"extractedWeight"`
	TripsCompleted    int            `json:"tripsCompleted"`
	CurrentLoad       float64        `json:"currentLoad"`
	NextTripCompletes int64          `json:"nextTripCompletes"`
	Abandoned         bool           `json:"abandoned"`
	Completed         bool           `json:"completed"`
	CompletedDay      int            `json:"completedDay,omitempty"`

	// PartyID, DungeonID, SettlementID, and TripHours are not part of the
	// generateTreasure result; the orchestrator fills them in immediately
	// after opening the extraction so later ticks know who is hauling it,
	// out of which site, and to which settlement each trip delivers.
	PartyID      string  `json:"partyId"`
	DungeonID    string  `json:"dungeonId,omitempty"`
	SettlementID string  `json:"settlementId"`
	TripHours    int64   `json:"tripHours"`
}

// RemainingWeight recomputes remaining weight from the coin/gem/jewelry
// tallies, used to check invariant 5 (extractedWeight + remaining ≈
// totalWeight).
func (e *TreasureExtraction) RemainingWeight(coinWeight, gemWeight, jewelryWeight float64) float64 {
	w := 0.0
	for _, n := range e.RemainingCoin {
		w += float64(n) * coinWeight
	}
	w += float64(e.RemainingGems) * gemWeight
	w += float64(e.RemainingJewelry) * jewelryWeight
	return w
}

// TreasureState is the naval-analogous side-table for the treasure
// subsystem: in-flight hoards/extractions plus circulating magic items.
type TreasureState struct {
	Hoards        map[string]*DiscoveredHoard     `json:"hoards"`
	Extractions   map[string]*TreasureExtraction  `json:"extractions"`
	MagicItems    map[string]*MagicItem           `json:"magicItems"`
	TreasureRumors map[string]*TreasureRumor      `json:"treasureRumors"`
}

// NewTreasureState returns a zero-value state with initialized maps.
func NewTreasureState() *TreasureState {
	return &TreasureState{
		Hoards:         make(map[string]*DiscoveredHoard),
		Extractions:    make(map[string]*TreasureExtraction),
		MagicItems:     make(map[string]*MagicItem),
		TreasureRumors: make(map[string]*TreasureRumor),
	}
}
