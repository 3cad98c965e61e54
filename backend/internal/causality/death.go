package causality

import (
	"github.com/worldforge/sim/backend/internal/memory"
	"github.com/worldforge/sim/backend/internal/model"
)

// handleDeath implements spec.md §4.4.3.
func (e *Engine) handleDeath(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	victimID := d.VictimName

	if victim, ok := e.World.NPCs.Get(victimID); ok {
		victim.Kill()
	}
	if ant, ok := e.World.Antagonists.Get(victimID); ok && ant.Alive {
		return append(e.handleAntagonistDeath(evt, ant), e.compose(model.LogCategoryEvent, evt, nil))
	}

	for _, rel := range d.Relationships {
		related := e.State.ReactiveNPC(rel.NPCID)
		category, emotion := deathMemoryShape(rel.Type, d.KilledBy != "")
		mem := memory.CreateRichMemory(e.Rng, memory.DefaultNarrativeTemplates(), category, emotion, 5+rel.Strength, victimID, d.KilledBy, evt.Location, evt.Timestamp, false)
		memory.AddMemory(related, mem, e.State.MemoryCap)

		if d.KilledBy != "" && (rel.Type == model.RelationAlly || rel.Type == model.RelationLover || rel.Type == model.RelationKin || rel.Type == model.RelationMentor) {
			related.AddAgenda(model.AgendaRevenge, d.KilledBy, 7+e.Rng.Int(3))
		}
	}

	if reactive, ok := e.State.ReactiveNPCs[victimID]; ok && reactive.Loyalty != "" {
		fs := e.State.FactionState(reactive.Loyalty)
		fs.RecentLosses -= 2
		if fs.RecentLosses < 0 {
			fs.RecentLosses = 0
		}
		fs.Morale -= 2
		if d.FactionID != "" && d.FactionID != reactive.Loyalty {
			fs.DeclareEnmity(d.FactionID)
		}
	}

	if victim, ok := e.World.NPCs.Get(victimID); ok && victim.Fame >= 3 && d.SettlementID != "" {
		if settlement, ok := e.World.Settlements.Get(d.SettlementID); ok {
			settlement.AdjustMood(-2)
		}
		e.State.SettlementState(d.SettlementID).AdjustUnrest(1)
	}

	return []model.LogEntry{e.compose(model.LogCategoryEvent, evt, nil)}
}

// deathMemoryShape maps spec.md §4.4.3's relationship-type table:
// "enemy -> was grateful (witnessed-death), else (with killedBy known)
// angry (lost-loved-one), else grieving".
func deathMemoryShape(relType model.RelationType, killerKnown bool) (model.MemoryCategory, model.Emotion) {
	if relType == model.RelationEnemy {
		return model.MemoryWasGrateful, model.EmotionGrateful
	}
	if killerKnown {
		return model.MemoryLostLovedOne, model.EmotionAngry
	}
	return model.MemoryGrieving, model.EmotionGrieving
}

// handleAntagonistDeath implements spec.md §4.4.3's antagonist branch:
// mark dead, broadcast rumors, then either scatter followers or schedule
// a successor via a spawn-antagonist consequence.
func (e *Engine) handleAntagonistDeath(evt *model.WorldEvent, ant *model.Antagonist) []model.LogEntry {
	ant.Kill()
	var logs []model.LogEntry

	e.World.Settlements.Each(func(id string, _ *model.Settlement) bool {
		rumorID := e.Rng.UID("rumor")
		e.World.ActiveRumors.Put(rumorID, &model.Rumor{
			ID:       rumorID,
			Kind:     "antagonist-death",
			Text:     ant.Name + " the " + ant.Epithet + " is dead",
			Target:   ant.ID,
			Origin:   id,
			Freshness: 14,
		})
		return true
	})

	if e.Rng.Chance(0.5) {
		logs = append(logs, e.compose(model.LogCategoryEvent, evt, map[string]string{"note": ant.Name + "'s followers scatter"}))
	} else {
		e.Queue.Enqueue(&model.ConsequenceEntry{
			ID:           e.Rng.UID("cq"),
			Tag:          model.ConsequenceSpawnAntagonist,
			DueTurnIndex: currentTurnOf(evt) + 48 + e.Rng.Int(72),
			Priority:     2,
			Data:         model.ConsequenceData{Archetype: ant.Archetype, Territory: ant.Territory},
		})
	}
	return logs
}
