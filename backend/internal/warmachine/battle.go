package warmachine

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// strength combines an army's headcount, quality, and morale into a
// single comparable figure (the nearest reading of spec.md §4.4.2's
// battle significance inputs, generalized from party-vs-monster combat
// to army-vs-army combat since spec.md names no separate formula for
// the war-machine subsystem).
func strength(army *model.Army) float64 {
	moraleFactor := float64(army.Morale) / float64(constants.ArmyMoraleMax)
	return float64(army.Strength) * (1 + float64(army.Quality)/10) * (0.5 + moraleFactor)
}

// garrison builds an ephemeral, unregistered Army standing in for a
// settlement's own defense when no besieging army's opponent is an
// explicit Army entity (spec.md §3 gives settlements a DefenseLevel but
// no standing-army representation of their own garrison).
func garrison(settlement *model.Settlement, state *model.SettlementState) *model.Army {
	str := state.DefenseLevel*constants.GarrisonStrengthPerDefenseLevel +
		int(float64(settlement.Population)*constants.GarrisonStrengthPerPopulation)
	return &model.Army{
		ID:       "garrison-" + settlement.ID,
		OwnerID:  state.ControlledBy,
		Location: settlement.Coord,
		Strength: str,
		Quality:  5,
		Morale:   8,
		Status:   model.ArmyIdle,
	}
}

// ResolveBattle implements spec.md §4.4.2's three-outcome shape
// (decisive victory / costly victory / repel) for an army-vs-army
// engagement, applying damage to both sides and feeding the faction and
// settlement ripple effects through the shared causality engine's
// battle handler — attacker/defender are fed as Victor/Loser, which the
// handler's party lookups simply no-op on since these are army ids, not
// party ids, leaving only the faction/settlement effects to apply.
func (m *Manager) ResolveBattle(attacker, defender *model.Army, worldTime int64, settlementID string) []model.LogEntry {
	as := strength(attacker)
	ds := strength(defender)

	var victor, loser *model.Army
	var significance int
	switch {
	case as >= ds*1.5:
		victor, loser = attacker, defender
		significance = 8
	case ds >= as*1.5:
		victor, loser = defender, attacker
		significance = 8
	case as >= ds:
		victor, loser = attacker, defender
		significance = 4
	default:
		victor, loser = defender, attacker
		significance = 4
	}

	loser.TakeDamage(loser.Strength / 4)
	victor.Strength -= victor.Strength / 20
	if significance >= 8 {
		victor.CapturedLeaders = append(victor.CapturedLeaders, loser.ID)
	}

	evt := &model.WorldEvent{
		ID:        m.Rng.UID("event"),
		Type:      model.EventBattle,
		Timestamp: worldTime,
		Location:  attacker.Location,
		Actors:    []string{attacker.ID, defender.ID},
		Magnitude: significance,
		Witnessed: true,
		Data: model.WorldEventData{
			Victor:       victor.ID,
			Loser:        loser.ID,
			Significance: significance,
			FactionID:    victor.OwnerID,
			OtherFaction: loser.OwnerID,
			SettlementID: settlementID,
		},
	}
	return m.Causality.Process(evt)
}
