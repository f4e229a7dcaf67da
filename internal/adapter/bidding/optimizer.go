// Package bidding manages monetary bids per platform. Bids are decimals in
// integer cents: CPM is the price of a thousand impressions, CPC the price
// of one click. Adjustment compares observed CTR against a per-platform
// target and moves bids in bounded steps, never below the platform floor.
package bidding

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// profile holds the bid economics of one platform.
type profile struct {
	baseCPM   decimal.Decimal
	baseCPC   decimal.Decimal
	floorCPM  decimal.Decimal
	floorCPC  decimal.Decimal
	targetCTR float64
}

var profiles = map[domain.Platform]profile{
	domain.PlatformFacebook: {
		baseCPM: decimal.NewFromInt(800), baseCPC: decimal.NewFromInt(90),
		floorCPM: decimal.NewFromInt(200), floorCPC: decimal.NewFromInt(20),
		targetCTR: 0.009,
	},
	domain.PlatformInstagram: {
		baseCPM: decimal.NewFromInt(750), baseCPC: decimal.NewFromInt(110),
		floorCPM: decimal.NewFromInt(200), floorCPC: decimal.NewFromInt(25),
		targetCTR: 0.007,
	},
	domain.PlatformTwitter: {
		baseCPM: decimal.NewFromInt(650), baseCPC: decimal.NewFromInt(50),
		floorCPM: decimal.NewFromInt(150), floorCPC: decimal.NewFromInt(10),
		targetCTR: 0.008,
	},
	domain.PlatformGoogleAds: {
		baseCPM: decimal.NewFromInt(300), baseCPC: decimal.NewFromInt(250),
		floorCPM: decimal.NewFromInt(100), floorCPC: decimal.NewFromInt(50),
		targetCTR: 0.03,
	},
}

// Audience tiers scale initial bids: bigger audiences are more contested.
var (
	tierMid   = decimal.RequireFromString("1.25")
	tierLarge = decimal.RequireFromString("1.5")

	stepUp   = decimal.RequireFromString("1.1")
	stepDown = decimal.RequireFromString("0.9")
)

const (
	midAudience   = 1_000_000
	largeAudience = 50_000_000

	// Hysteresis band around the target CTR within which bids hold.
	ctrSlack = 0.2
)

// Factory hands out one optimizer per platform so bid state is shared by
// every campaign on that platform. Implements port.BidOptimizerFactory.
type Factory struct {
	mu         sync.Mutex
	optimizers map[domain.Platform]*Optimizer
}

// NewFactory returns a bid optimizer factory.
func NewFactory() *Factory {
	return &Factory{optimizers: make(map[domain.Platform]*Optimizer)}
}

// OptimizerFor returns the optimizer for the platform, creating it on
// first use. Unknown platforms fail without allocating state.
func (f *Factory) OptimizerFor(p domain.Platform) (port.BidOptimizer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if opt, ok := f.optimizers[p]; ok {
		return opt, nil
	}
	prof, ok := profiles[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrUnsupportedPlatform, p)
	}
	opt := &Optimizer{profile: prof, cpm: prof.baseCPM, cpc: prof.baseCPC}
	f.optimizers[p] = opt
	return opt, nil
}

// Optimizer implements port.BidOptimizer for one platform.
type Optimizer struct {
	mu      sync.Mutex
	profile profile
	cpm     decimal.Decimal
	cpc     decimal.Decimal
}

// SetBids derives initial bids from the audience size tier.
func (o *Optimizer) SetBids(audienceSize int64) (domain.Bids, error) {
	if audienceSize <= 0 {
		return domain.Bids{}, fmt.Errorf("audience size must be positive, got %d", audienceSize)
	}
	mult := decimal.NewFromInt(1)
	switch {
	case audienceSize >= largeAudience:
		mult = tierLarge
	case audienceSize >= midAudience:
		mult = tierMid
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.cpm = o.profile.baseCPM.Mul(mult)
	o.cpc = o.profile.baseCPC.Mul(mult)
	return domain.Bids{CPM: o.cpm, CPC: o.cpc}, nil
}

// AdjustBids moves bids one step based on observed CTR. Campaigns with no
// impressions yet keep their bids. Bids never cross the platform floor.
func (o *Optimizer) AdjustBids(m domain.Metrics) (domain.Bids, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if m.Impressions == 0 {
		return domain.Bids{CPM: o.cpm, CPC: o.cpc}, nil
	}
	target := o.profile.targetCTR
	switch {
	case m.CTR < target*(1-ctrSlack):
		o.cpm = floorClamp(o.cpm.Mul(stepDown), o.profile.floorCPM)
		o.cpc = floorClamp(o.cpc.Mul(stepDown), o.profile.floorCPC)
	case m.CTR > target*(1+ctrSlack):
		o.cpm = o.cpm.Mul(stepUp)
		o.cpc = o.cpc.Mul(stepUp)
	}
	return domain.Bids{CPM: o.cpm, CPC: o.cpc}, nil
}

// Bids returns the current bids.
func (o *Optimizer) Bids() domain.Bids {
	o.mu.Lock()
	defer o.mu.Unlock()
	return domain.Bids{CPM: o.cpm, CPC: o.cpc}
}

func floorClamp(v, floor decimal.Decimal) decimal.Decimal {
	if v.LessThan(floor) {
		return floor
	}
	return v
}
