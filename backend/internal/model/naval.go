package model

// ArmyStatus enumerates a war-machine Army's activity.
type ArmyStatus string

const (
	ArmyIdle      ArmyStatus = "idle"
	ArmyMarching  ArmyStatus = "marching"
	ArmyBesieging ArmyStatus = "besieging"
	ArmyDestroyed ArmyStatus = "destroyed"
)

// Army is destroyed once Strength reaches 0.
type Army struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	Location        HexCoord   `json:"location"`
	Strength        int        `json:"strength"`
	Quality         int        `json:"quality"`
	Morale          int        `json:"morale"`
	Status          ArmyStatus `json:"status"`
	Target          string     `json:"target,omitempty"`
	Supplies        int        `json:"supplies"`
	SupplyLineFrom  string     `json:"supplyLineFrom,omitempty"`
	CapturedLeaders []string   `json:"capturedLeaders"`
}

// AdjustMorale clamps to [2..12] (spec.md §3).
func (a *Army) AdjustMorale(delta int) {
	a.Morale = Clamp(a.Morale+delta, 2, 12)
}

// AdjustSupplies clamps to [0..100].
func (a *Army) AdjustSupplies(delta int) {
	a.Supplies = Clamp(a.Supplies+delta, 0, 100)
}

// TakeDamage reduces Strength and marks the army destroyed at or below 0.
func (a *Army) TakeDamage(amount int) {
	a.Strength -= amount
	if a.Strength <= 0 {
		a.Strength = 0
		a.Status = ArmyDestroyed
	}
}

// ShipStatus enumerates a Ship's current activity.
type ShipStatus string

const (
	ShipDocked      ShipStatus = "docked"
	ShipAtSea       ShipStatus = "at-sea"
	ShipDamaged     ShipStatus = "damaged"
	ShipShipwrecked ShipStatus = "shipwrecked"
	ShipBecalmed    ShipStatus = "becalmed"
)

// Ship is persistent for the run.
type Ship struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Owner           string     `json:"owner"`
	Status          ShipStatus `json:"status"`
	HomePort        string     `json:"homePort"`
	CurrentLocation string     `json:"currentLocation"`
	Destination     string     `json:"destination,omitempty"`
	DepartedAt      int64      `json:"departedAt,omitempty"`
	ArrivesAt       int64      `json:"arrivesAt,omitempty"`
	Cargo           map[string]int `json:"cargo"`
	Crew            int        `json:"crew"`
	Marines         int        `json:"marines"`
	Condition       int        `json:"condition"`
}

// AdjustCondition clamps to [0..100]; a ship at 0 condition is marked
// shipwrecked by the naval subsystem, not by this method (the subsystem
// also needs to record a wreck entry).
func (s *Ship) AdjustCondition(delta int) {
	s.Condition = Clamp(s.Condition+delta, 0, 100)
}

// PirateFleet is persistent for the run.
type PirateFleet struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Captain   string   `json:"captain"`
	ShipIDs   []string `json:"shipIds"`
	Crew      int      `json:"crew"`
	Territory []string `json:"territory"` // route ids
	Notoriety int      `json:"notoriety"`
	LastRaid  int64    `json:"lastRaid"`
	Bounty    int      `json:"bounty"`
	Promoted  bool     `json:"promoted"`
}

// SeaRoute connects two ports (spec.md §4.9).
type SeaRoute struct {
	ID            string   `json:"id"`
	PortA         string   `json:"portA"`
	PortB         string   `json:"portB"`
	DistanceDays  int      `json:"distanceDays"`
	Danger        int      `json:"danger"`
	PrimaryGoods  []string `json:"primaryGoods"`
}

// PortActivity is per-settlement cached naval state (spec.md GLOSSARY).
type PortActivity struct {
	ShipsInPort          []string `json:"shipsInPort"`
	ExoticGoodsAvailable []string `json:"exoticGoodsAvailable"`
}

// NavalState is the side-table for the naval subsystem: routes, per-port
// activity caches, wrecks, and the lazily-generated distant world.
type NavalState struct {
	Routes         map[string]*SeaRoute         `json:"routes"`
	PortActivity   map[string]*PortActivity     `json:"portActivity"`
	DistantLands   map[string]*DistantLand      `json:"distantLands"`
	DistantFigures map[string]*DistantFigure    `json:"distantFigures"`
	Wrecks         []string                     `json:"wrecks"`
}

// NewNavalState returns a zero-value state with initialized maps.
func NewNavalState() *NavalState {
	return &NavalState{
		Routes:         make(map[string]*SeaRoute),
		PortActivity:   make(map[string]*PortActivity),
		DistantLands:   make(map[string]*DistantLand),
		DistantFigures: make(map[string]*DistantFigure),
		Wrecks:         make([]string, 0),
	}
}
