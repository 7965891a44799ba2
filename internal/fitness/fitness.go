// Package fitness composes simulator outputs and operator targets
// into a scalar "lower is better" score plus a per-component
// breakdown.
package fitness

import (
	"math"

	"github.com/yola1107/reelforge/internal/model"
	"github.com/yola1107/reelforge/internal/simulate"
)

// relDeltaEpsilon is the denominator floor below which relDelta
// reports zero rather than dividing by (near) nothing.
const relDeltaEpsilon = 1e-12

// Breakdown is the reported fitness of one individual.
type Breakdown struct {
	Total               float64
	RTPDelta            float64
	HitFrequencyDelta   float64
	BonusFrequencyDelta float64
	SymbolRTPError      float64
	RTP                 float64
	HitFrequency        float64
	BonusFrequency      float64
	SymbolRTP           map[int]float64
}

// relDelta is the symmetric relative delta between a target and an
// observed value.
func relDelta(target, actual float64) float64 {
	denom := math.Abs(target) + math.Abs(actual)
	if denom < relDeltaEpsilon {
		return 0
	}
	return math.Abs(target-actual) / denom
}

// Score composes a simulator Result with targets into a Breakdown.
func Score(result *simulate.Result, targets model.SimulationTargets) Breakdown {
	rtp := result.RTP()
	hitFreq := result.HitFrequency()
	bonusFreq := result.BonusFrequency()
	symbolRTP := result.SymbolRTP()

	symErr := symbolRTPError(targets, symbolRTP, result.SpinCount)

	b := Breakdown{
		RTPDelta:            relDelta(targets.TargetRTP, rtp),
		HitFrequencyDelta:   relDelta(targets.TargetHitFrequency, hitFreq),
		BonusFrequencyDelta: relDelta(targets.TargetBonusFrequency, bonusFreq),
		SymbolRTPError:      symErr,
		RTP:                 rtp,
		HitFrequency:        hitFreq,
		BonusFrequency:      bonusFreq,
		SymbolRTP:           symbolRTP,
	}
	b.Total = b.RTPDelta + b.HitFrequencyDelta + b.BonusFrequencyDelta +
		targets.SymbolRTPUnevennessWeight*b.SymbolRTPError
	return b
}

func symbolRTPError(targets model.SimulationTargets, symbolRTP map[int]float64, spinCount int64) float64 {
	if len(targets.SymbolRTPTarget) == 0 || spinCount == 0 {
		return 0
	}
	sum := 0.0
	for sym, target := range targets.SymbolRTPTarget {
		sum += relDelta(target, symbolRTP[int(sym)])
	}
	return sum / float64(len(targets.SymbolRTPTarget))
}
