package causality

import (
	"github.com/worldforge/sim/backend/internal/memory"
	"github.com/worldforge/sim/backend/internal/model"
)

// handleBetrayal implements spec.md §4.4.8. evt.Actors[0] is the victim
// NPC; evt.Data.KilledBy is reused here as the perpetrator id (no
// separate field exists for a non-lethal perpetrator).
func (e *Engine) handleBetrayal(evt *model.WorldEvent) []model.LogEntry {
	d := evt.Data
	perpetrator := d.KilledBy

	if len(evt.Actors) > 0 {
		victimID := evt.Actors[0]
		reactive := e.State.ReactiveNPC(victimID)
		mem := memory.CreateRichMemory(e.Rng, memory.DefaultNarrativeTemplates(), model.MemoryWasBetrayed, model.EmotionAngry, 10, perpetrator, "", evt.Location, evt.Timestamp, false)
		memory.AddMemory(reactive, mem, e.State.MemoryCap)
		reactive.AddAgenda(model.AgendaRevenge, perpetrator, 10)
	}

	if len(evt.Perpetrators) > 0 {
		victimPartyID := evt.Perpetrators[0]
		ps := e.State.PartyState(victimPartyID)
		ps.SetVendetta(perpetrator)
		ps.AdjustMorale(-5)
		ps.Allies = model.RemoveString(ps.Allies, perpetrator)
		if !model.ContainsString(ps.Enemies, perpetrator) {
			ps.Enemies = append(ps.Enemies, perpetrator)
		}
	}

	if d.FactionID != "" && d.OtherFaction != "" {
		fs := e.State.FactionState(d.FactionID)
		fs.Allies = model.RemoveString(fs.Allies, d.OtherFaction)
		fs.DeclareEnmity(d.OtherFaction)
	}

	return []model.LogEntry{e.compose(model.LogCategoryEvent, evt, nil)}
}
