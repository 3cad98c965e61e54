package warmachine

import (
	"github.com/worldforge/sim/backend/internal/constants"
	"github.com/worldforge/sim/backend/internal/model"
)

// consumeSupply burns one hour's upkeep off army and applies a morale
// penalty the instant supplies hit 0 (a starving army fights worse).
// Returns true the hour supplies first ran out.
func consumeSupply(army *model.Army) bool {
	before := army.Supplies
	army.AdjustSupplies(-constants.ArmySupplyConsumptionPerHour)
	if before > 0 && army.Supplies == 0 {
		army.AdjustMorale(-constants.ArmyStarvationMoraleLoss)
		return true
	}
	return false
}

// ResupplyTick implements the daily supply-line delivery: every army
// with a SupplyLineFrom settlement draws food from that settlement's
// stock, capped by both the settlement's available supply and the
// army's own deficit to full.
func (m *Manager) ResupplyTick(worldTime int64) []model.LogEntry {
	var logs []model.LogEntry
	for _, id := range m.World.Armies.Ids() {
		army, _ := m.World.Armies.Get(id)
		if army.SupplyLineFrom == "" || army.Status == model.ArmyDestroyed {
			continue
		}
		settlement, ok := m.World.Settlements.Get(army.SupplyLineFrom)
		if !ok {
			continue
		}
		deficit := constants.ArmySuppliesMax - army.Supplies
		delivered := constants.ArmySupplyLineDeliveryPerDay
		if delivered > deficit {
			delivered = deficit
		}
		if available := settlement.Supply["food"]; delivered > available {
			delivered = available
		}
		if delivered <= 0 {
			continue
		}
		settlement.DecrementSupply("food", delivered)
		army.AdjustSupplies(delivered)
		logs = append(logs, m.compose(worldTime, model.LogCategoryWar, army.Location, nil,
			"a supply train reaches the army from "+settlement.Name))
	}
	return logs
}
