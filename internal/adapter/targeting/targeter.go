// Package targeting estimates the audience a targeting spec reaches.
// Estimation is deterministic: a per-geo reach baseline narrowed by the
// interest and age dimensions of the spec. Real platform audience APIs sit
// behind this boundary in a full integration.
package targeting

import (
	"fmt"
	"sort"
	"strings"

	"ad-orchestrator/internal/core/domain"
)

// Reach baselines per geo, in reachable users. Geos missing from the table
// fall back to defaultReach.
var geoReach = map[string]int64{
	"us": 180_000_000,
	"gb": 45_000_000,
	"de": 52_000_000,
	"fr": 40_000_000,
	"br": 120_000_000,
	"in": 350_000_000,
	"jp": 75_000_000,
}

const (
	defaultReach = 25_000_000
	globalReach  = 900_000_000

	// Each interest keeps roughly this share of the remaining audience.
	interestRetention = 0.35

	// Age band the baselines cover.
	fullAgeMin = 13
	fullAgeMax = 65
)

// Targeter implements port.AudienceTargeter.
type Targeter struct{}

// NewTargeter returns an audience targeter backed by the static reach table.
func NewTargeter() *Targeter { return &Targeter{} }

// TargetAudience resolves the spec into an audience estimate. A spec with
// no geos targets globally. The estimate never drops below one user so bid
// sizing always has a denominator.
func (t *Targeter) TargetAudience(spec domain.TargetingSpec) (domain.Audience, error) {
	size := int64(0)
	if len(spec.Geos) == 0 {
		size = globalReach
	}
	for _, geo := range spec.Geos {
		if reach, ok := geoReach[strings.ToLower(geo)]; ok {
			size += reach
		} else {
			size += defaultReach
		}
	}

	estimate := float64(size)
	for range spec.Interests {
		estimate *= interestRetention
	}
	if frac := ageFraction(spec.AgeMin, spec.AgeMax); frac < 1 {
		estimate *= frac
	}
	if estimate < 1 {
		estimate = 1
	}

	return domain.Audience{
		Size:     int64(estimate),
		Segments: segments(spec),
	}, nil
}

// ageFraction returns the share of the full age band the spec covers,
// assuming uniform distribution. Unbounded specs cover the whole band.
func ageFraction(min, max int) float64 {
	if min == 0 && max == 0 {
		return 1
	}
	lo, hi := min, max
	if lo < fullAgeMin {
		lo = fullAgeMin
	}
	if hi == 0 || hi > fullAgeMax {
		hi = fullAgeMax
	}
	if hi <= lo {
		return 1
	}
	return float64(hi-lo) / float64(fullAgeMax-fullAgeMin)
}

// segments names the narrowing dimensions in a stable order.
func segments(spec domain.TargetingSpec) []string {
	var segs []string
	geos := lowered(spec.Geos)
	sort.Strings(geos)
	for _, g := range geos {
		segs = append(segs, "geo:"+g)
	}
	interests := lowered(spec.Interests)
	sort.Strings(interests)
	for _, in := range interests {
		segs = append(segs, "interest:"+in)
	}
	if spec.AgeMin != 0 || spec.AgeMax != 0 {
		segs = append(segs, fmt.Sprintf("age:%d-%d", spec.AgeMin, spec.AgeMax))
	}
	return segs
}

func lowered(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
