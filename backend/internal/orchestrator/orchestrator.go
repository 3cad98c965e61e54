// Package orchestrator implements the tick scheduler (spec.md §2 item
// 14, §4.2): the single place that advances worldTime by one hour,
// drains due consequences, and runs every subsystem tick in the fixed
// deterministic order spec.md §4.2 mandates. Grounded on spec.md §4.2's
// numbered contract; the teacher has no cross-aggregate scheduler of its
// own (its services are invoked per-request, not ticked), so Orchestrator
// follows the same "one struct owns every dependency" shape as
// internal/travel's Encounters and internal/treasure's Manager, scaled
// up to own every other engine package instead of one content table.
package orchestrator

import (
	"fmt"
	"time"

	"github.com/worldforge/sim/backend/internal/antagonist"
	"github.com/worldforge/sim/backend/internal/calendar"
	"github.com/worldforge/sim/backend/internal/causality"
	"github.com/worldforge/sim/backend/internal/consequence"
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/content"
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/naval"
	"github.com/worldforge/sim/backend/internal/prose"
	"github.com/worldforge/sim/backend/internal/treasure"
	"github.com/worldforge/sim/backend/internal/travel"
	"github.com/worldforge/sim/backend/internal/warmachine"
	"github.com/worldforge/sim/backend/internal/world"
	"github.com/worldforge/sim/backend/internal/worldrand"
	apperrors "github.com/worldforge/sim/backend/pkg/errors"
	"github.com/worldforge/sim/backend/pkg/logger"
)

// Orchestrator wires every subsystem engine together and advances the
// simulation's worldTime, one hour per Advance call. It is the one
// package allowed to know the relative order subsystems run in; nothing
// else in the engine schedules another package's tick.
type Orchestrator struct {
	World      *world.World
	State      *world.State
	Tables     *content.Tables
	Composer   *prose.Composer
	Queue      *consequence.Queue
	Dispatcher *consequence.Dispatcher
	Causality  *causality.Engine
	Encounters *travel.Encounters
	Antagonist *antagonist.Actor
	Treasure   *treasure.Manager
	Naval      *naval.Manager
	Warmachine *warmachine.Manager
	Calendar   calendar.Calendar
	WeatherGen *calendar.Generator
	Rng        *worldrand.Rng
	Seed       string
	Logger     *logger.LoggerV2

	// Debug selects what happens when a tick recovers from a panicking
	// subsystem or a dispatcher hits an unregistered consequence tag:
	// fatal (propagated as an InvariantViolation) in debug builds,
	// logged-and-continued in release builds (spec.md §7).
	Debug bool

	// Epoch is the real-world instant worldTime 0 corresponds to. It must
	// fall on a midnight UTC boundary so day-rollover detection (which
	// compares Epoch+worldTime hour by hour) lines up with every
	// subsystem's own worldTime/24 day-counter convention.
	Epoch time.Time

	// WorldTime is hours elapsed since Epoch; the simulation's single
	// clock (spec.md §4.1: "turn (smallest), hour, day").
	WorldTime int64
}

// New wires an Orchestrator and registers every consequence handler the
// engine packages expose (spec.md §4.3: "every tag maps to exactly one
// handler"). Tags spec.md names without a detailed effect
// (settlement-change, guild-heist-target, rival-party-conflict,
// faction-action) are deliberately left unregistered so Dispatcher's own
// fatal-in-debug/dropped-with-warn-in-release fallback handles them.
func New(
	w *world.World,
	st *world.State,
	tables *content.Tables,
	composer *prose.Composer,
	queue *consequence.Queue,
	eng *causality.Engine,
	rng *worldrand.Rng,
	seed string,
	epoch time.Time,
	cal calendar.Calendar,
	debug bool,
	log *logger.LoggerV2,
) *Orchestrator {
	o := &Orchestrator{
		World:      w,
		State:      st,
		Tables:     tables,
		Composer:   composer,
		Queue:      queue,
		Dispatcher: consequence.NewDispatcher(debug, log),
		Causality:  eng,
		Encounters: travel.NewEncounters(tables, composer, queue, w.Dungeons, seed),
		Antagonist: antagonist.NewActor(w, st, tables, composer, queue, eng, rng, seed),
		Treasure:   treasure.NewManager(w, st, tables, composer, queue, rng, seed),
		Naval:      naval.NewManager(w, st, tables, composer, queue, rng, seed),
		Warmachine: warmachine.NewManager(w, st, tables, composer, eng, rng, seed),
		Calendar:   cal,
		WeatherGen: calendar.NewGenerator(tables),
		Rng:        rng,
		Seed:       seed,
		Logger:     log,
		Debug:      debug,
		Epoch:      epoch,
	}

	o.Dispatcher.Register(model.ConsequenceTreasureInflux, o.Treasure.InfluxHandler())
	o.Dispatcher.Register(model.ConsequenceTreasureAttract, o.Treasure.AttractHandler())
	o.Dispatcher.Register(model.ConsequenceSpawnAntagonist, antagonist.SpawnHandler(w, tables, rng))
	o.Dispatcher.Register(model.ConsequenceDragonSeeksTreasure, o.Treasure.SeekHandler(model.ArchetypeDragon))
	o.Dispatcher.Register(model.ConsequenceBanditAmbush, o.Treasure.SeekHandler(model.ArchetypeBanditChief))
	o.Dispatcher.Register(model.ConsequenceAntagonistSeeksItem, o.Treasure.SeekHandler(""))
	o.Dispatcher.Register(model.ConsequenceFactionAcquiresItem, o.Treasure.SeekHandler(""))

	return o
}

// instant converts an hours-since-Epoch worldTime value to the real-world
// instant the calendar reasons about.
func (o *Orchestrator) instant(worldTime int64) time.Time {
	return o.Epoch.Add(time.Duration(worldTime) * time.Hour)
}

// dayOf mirrors internal/treasure's own day-counter convention so
// settlement price-trend/influx bookkeeping shares one definition of
// "day" with the subsystem that populates it.
func dayOf(worldTime int64) int {
	return int(worldTime / 24)
}

// Advance runs hours consecutive simulation hours and returns every log
// entry produced, in chronological order (spec.md §4.2 step 5: "flushes
// accumulated LogEntry records to the sink" — the sink here is simply the
// caller, since internal/sim owns actual persistence). It stops at the
// first hour whose consequence drain fails.
func (o *Orchestrator) Advance(hours int) ([]model.LogEntry, error) {
	var logs []model.LogEntry
	for i := 0; i < hours; i++ {
		produced, err := o.AdvanceHour()
		logs = append(logs, produced...)
		if err != nil {
			return logs, err
		}
	}
	return logs, nil
}

// AdvanceHour implements spec.md §4.2's per-tick contract: advance
// worldTime by 1h, drain due consequences, run the fixed hourly
// subsystem order, and (on a day boundary) run rumor decay followed by
// the day-rollover subsystems. A subsystem panic is recovered here and
// turned into an InvariantViolation: fatal in debug builds (propagated
// to the caller), logged-and-dropped in release builds, mirroring
// consequence.Dispatcher's own debug-fatal/release-warn split for an
// unregistered tag.
func (o *Orchestrator) AdvanceHour() (logs []model.LogEntry, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		iv := apperrors.NewInvariantViolation(fmt.Sprintf("tick recovered from panic: %v", r))
		if o.Debug {
			err = iv
			return
		}
		if o.Logger != nil {
			o.Logger.Error().Str("worldTime", fmt.Sprintf("%d", o.WorldTime)).Msg(iv.Message)
		}
		logs = append(logs, model.LogEntry{
			Category:  model.LogCategorySystem,
			Summary:   "a subsystem fails mid-tick and the hour continues without it",
			Details:   iv.Message,
			WorldTime: o.WorldTime,
			Seed:      o.Seed,
		})
		err = nil
	}()
	return o.advanceHour()
}

func (o *Orchestrator) advanceHour() ([]model.LogEntry, error) {
	start := time.Now()
	prevInstant := o.instant(o.WorldTime)
	o.WorldTime++

	var logs []model.LogEntry
	drained, err := o.drainConsequences(o.WorldTime)
	logs = append(logs, drained...)
	if err != nil {
		return logs, err
	}

	logs = append(logs, o.runHourly(start, o.WorldTime)...)

	if o.Calendar.IsNewDay(prevInstant, o.instant(o.WorldTime)) {
		logs = append(logs, o.runRumorDecay(o.WorldTime)...)
		logs = append(logs, o.runDaily(o.WorldTime)...)
	}

	if o.Logger != nil {
		o.Logger.LogTickSummary(o.Seed, int(o.WorldTime), 1, len(logs), time.Since(start), !withinBudget(start))
	}
	return logs, nil
}

// withinBudget reports whether the tick started at start is still under
// TickWallClockSoftCap; callers stop running further subsystems for this
// hour once it returns false (spec.md §5 "cancellation & timeouts").
func withinBudget(start time.Time) bool {
	return time.Since(start) < constants.TickWallClockSoftCap
}

func (o *Orchestrator) softCapLog(worldTime int64, subsystem string) model.LogEntry {
	if o.Logger != nil {
		o.Logger.Warn().Str("subsystem", subsystem).Int64("worldTime", worldTime).
			Msg("orchestrator: tick wall-clock soft cap exceeded, deferring remaining subsystems")
	}
	return model.LogEntry{
		Category:  model.LogCategorySystem,
		Summary:   "the tick runs long and defers remaining work",
		Details:   "subsystem " + subsystem + " exceeded the per-tick time budget",
		WorldTime: worldTime,
		Seed:      o.Seed,
	}
}
