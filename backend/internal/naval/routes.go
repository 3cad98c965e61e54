package naval

import (
	"github.com/worldforge/sim/backend/internal/model"
	"github.com/worldforge/sim/backend/internal/worldrand"
)

// GenerateRoutes implements spec.md §4.9's "sea routes are generated
// between all port pairs": distanceDays = max(1, ceil(hexDistance/4)),
// danger 1-4. ports must already be Settlements with IsPort set. Routes
// are keyed deterministically from the sorted port-id pair so the same
// port set always yields the same route ids regardless of registry
// insertion order.
func (m *Manager) GenerateRoutes() {
	var ports []string
	m.World.Settlements.Each(func(id string, s *model.Settlement) bool {
		if s.IsPort {
			ports = append(ports, id)
		}
		return true
	})

	for i := 0; i < len(ports); i++ {
		for j := i + 1; j < len(ports); j++ {
			a, _ := m.World.Settlements.Get(ports[i])
			b, _ := m.World.Settlements.Get(ports[j])
			portA, portB := ports[i], ports[j]
			if portA > portB {
				portA, portB = portB, portA
			}
			routeID := portA + "-" + portB
			if _, exists := m.State.Naval.Routes[routeID]; exists {
				continue
			}
			hexDist := a.Coord.Distance(b.Coord)
			distanceDays := (hexDist + 3) / 4
			if distanceDays < 1 {
				distanceDays = 1
			}
			danger := 1 + m.Rng.Int(4)
			m.State.Naval.Routes[routeID] = &model.SeaRoute{
				ID:           routeID,
				PortA:        portA,
				PortB:        portB,
				DistanceDays: distanceDays,
				Danger:       danger,
				PrimaryGoods: pickPrimaryGoods(m.Rng),
			}
		}
	}
}

var exoticGoodsPool = []string{"silk", "spice", "ivory", "pearls", "rare-wood", "dyes", "incense", "saltfish"}

func pickPrimaryGoods(rng *worldrand.Rng) []string {
	idx, err := rng.PickIndex(len(exoticGoodsPool))
	if err != nil {
		return []string{exoticGoodsPool[0]}
	}
	second := (idx + 1 + len(exoticGoodsPool)/2) % len(exoticGoodsPool)
	return []string{exoticGoodsPool[idx], exoticGoodsPool[second]}
}
