package orchestrator

import "github.com/worldforge/sim/backend/internal/model"

// drainConsequences implements spec.md §4.2 step 2: "processes due
// consequences (queue head while dueTurnIndex <= turnIndex)". Dispatch
// only returns an error for an unregistered tag in debug mode (spec.md
// §4.3: "unknown tags are fatal in debug"); that error propagates so the
// caller can treat it as the bootstrap-time wiring bug it is.
func (o *Orchestrator) drainConsequences(worldTime int64) ([]model.LogEntry, error) {
	due := o.Queue.Drain(int(worldTime))
	if len(due) == 0 {
		return nil, nil
	}

	var logs []model.LogEntry
	for _, entry := range due {
		produced, err := o.Dispatcher.Dispatch(entry)
		if err != nil {
			return logs, err
		}
		logs = append(logs, produced...)
	}
	return logs, nil
}
