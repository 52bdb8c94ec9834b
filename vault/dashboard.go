package vault

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/AlexZinkM/impact-vault/internal/model"
)

// Display ranges. Values are cosmetic and never read from a ledger.
const (
	maxBalance      = 100
	maxDonated      = 50
	maxTreesPlanted = 500
	maxMealsFunded  = 1000
	maxCO2OffsetKg  = 2000
)

// Dashboard produces the randomly animated progress values
type Dashboard struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDashboard creates a dashboard. A nil src seeds from the runtime.
func NewDashboard(src rand.Source) *Dashboard {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Dashboard{rng: rand.New(src)}
}

// Refresh overwrites every display value with a fresh random one.
// Each refresh is independent of the previous one.
func (d *Dashboard) Refresh() model.Dashboard {
	d.mu.Lock()
	defer d.mu.Unlock()

	bal := truncate2(d.rng.Float64() * maxBalance)
	donated := truncate2(d.rng.Float64() * maxDonated)

	return model.Dashboard{
		UserBalance:        fmt.Sprintf("%.2f", bal),
		TotalDonated:       fmt.Sprintf("%.2f", donated),
		BalanceBarPercent:  bal,
		DonationBarPercent: donated,
		Impact: model.ImpactMetrics{
			TreesPlanted: d.rng.IntN(maxTreesPlanted),
			MealsFunded:  d.rng.IntN(maxMealsFunded),
			CO2OffsetKg:  d.rng.IntN(maxCO2OffsetKg),
		},
	}
}

// truncate2 cuts to two decimals, so a value below max stays below max
func truncate2(v float64) float64 {
	return math.Floor(v*100) / 100
}
