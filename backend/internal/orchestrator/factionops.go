package orchestrator

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// runFactionOperations resolves spec.md §4.2's day-rollover "faction
// operations resolution" bullet, which names no contract of its own.
// Grounded on model.FactionState's own fields: a faction holding a
// CasusBelli it has the Power to act on marches an idle army at the
// grievance's target; a faction that has suffered enough RecentLosses
// sues for peace instead, dropping its CasusBelli and Enemies.
func (o *Orchestrator) runFactionOperations(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range o.World.Factions.Ids() {
		faction, ok := o.World.Factions.Get(id)
		if !ok {
			continue
		}
		fs := o.State.FactionState(id)

		if fs.RecentLosses >= constants.FactionPeaceLossesThreshold {
			logs = append(logs, o.sueForPeace(faction, fs, worldTime)...)
			continue
		}
		if fs.Power >= constants.FactionWarPowerThreshold && len(fs.CasusBelli) > 0 {
			logs = append(logs, o.pursueCasusBelli(faction, fs, worldTime)...)
		}
	}
	return logs
}

// pursueCasusBelli marches one idle army belonging to the faction at its
// most severe grievance's target settlement, then lowers that
// grievance's magnitude by FactionCasusBelliResolveMagnitude, dropping
// it once its magnitude is at or below that value (spec.md names no
// mechanism for a CasusBelli to expire other than being acted upon).
func (o *Orchestrator) pursueCasusBelli(faction *model.Faction, fs *model.FactionState, worldTime int64) []model.LogEntry {
	worst := 0
	for i, cb := range fs.CasusBelli {
		if cb.Magnitude > fs.CasusBelli[worst].Magnitude {
			worst = i
		}
	}
	grievance := fs.CasusBelli[worst]

	army := o.idleArmyFor(faction.ID)
	if army == nil {
		return nil
	}

	target := o.settlementIDForFaction(grievance.AgainstFactionID)
	if target == "" {
		return nil
	}
	o.Warmachine.BeginMarch(army, target)
	fs.Operations = append(fs.Operations, "march:"+target)

	if grievance.Magnitude <= constants.FactionCasusBelliResolveMagnitude {
		fs.CasusBelli = append(fs.CasusBelli[:worst], fs.CasusBelli[worst+1:]...)
	} else {
		fs.CasusBelli[worst].Magnitude -= constants.FactionCasusBelliResolveMagnitude
	}

	comp := o.Composer.Compose(o.Rng, composeContext(model.LogCategoryWar, army.Location, []string{faction.ID}, faction.Name+" musters an army over "+grievance.Reason))
	return []model.LogEntry{{
		Category:  model.LogCategoryWar,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Actors:    []string{faction.ID},
		WorldTime: worldTime,
		Seed:      o.Seed,
	}}
}

// sueForPeace clears the faction's hostilities once its losses mount,
// so a beaten faction stops marching into further defeats.
func (o *Orchestrator) sueForPeace(faction *model.Faction, fs *model.FactionState, worldTime int64) []model.LogEntry {
	if len(fs.Enemies) == 0 && len(fs.CasusBelli) == 0 {
		return nil
	}
	fs.Enemies = nil
	fs.CasusBelli = nil
	fs.RecentLosses = 0
	fs.Operations = append(fs.Operations, "sue-for-peace")

	comp := o.Composer.Compose(o.Rng, composeContext(model.LogCategoryWar, model.HexCoord{}, []string{faction.ID}, faction.Name+" sues for peace"))
	return []model.LogEntry{{
		Category:  model.LogCategoryWar,
		Summary:   comp.Summary,
		Details:   comp.Details,
		Actors:    []string{faction.ID},
		WorldTime: worldTime,
		Seed:      o.Seed,
	}}
}

func (o *Orchestrator) idleArmyFor(factionID string) *model.Army {
	var found *model.Army
	o.World.Armies.Each(func(_ string, a *model.Army) bool {
		if a.OwnerID == factionID && a.Status == model.ArmyIdle {
			found = a
			return false
		}
		return true
	})
	return found
}

// settlementIDForFaction picks the enemy faction's most attitude-hostile
// settlement as the march target, falling back to any settlement the
// enemy faction holds attitude data for at all.
func (o *Orchestrator) settlementIDForFaction(factionID string) string {
	enemy, ok := o.World.Factions.Get(factionID)
	if !ok {
		return ""
	}
	target := ""
	worst := 0
	for settlementID, score := range enemy.Attitude {
		if target == "" || score < worst {
			target = settlementID
			worst = score
		}
	}
	return target
}
