package ga

import (
	"fmt"
	"strings"
)

// report writes one generation's progress line to sink, following the
// teacher's benchmark-progress idiom: one strings.Builder per line, a
// compact summary line, no per-spin detail. VerboseProgress adds a
// histogram/strip dump for the generation's best individual. A
// non-nil return is a raw write error from sink, not yet wrapped.
func report(sink Sink, cfg Config, gen int, best *Individual) error {
	if sink == nil {
		return nil
	}
	var b strings.Builder
	f := best.Fitness
	fmt.Fprintf(&b, "gen=%d best.total=%.6f rtpDelta=%.6f hitDelta=%.6f bonusDelta=%.6f symbolErr=%.6f rtp=%.6f hitFreq=%.6f bonusFreq=%.6f",
		gen, f.Total, f.RTPDelta, f.HitFrequencyDelta, f.BonusFrequencyDelta, f.SymbolRTPError, f.RTP, f.HitFrequency, f.BonusFrequency)
	if err := sink.WriteLine(b.String()); err != nil {
		return err
	}

	if !cfg.VerboseProgress {
		return nil
	}
	for r, strip := range best.Strips {
		var sb strings.Builder
		fmt.Fprintf(&sb, "  reel[%d] len=%d strip=%v", r, len(strip), strip)
		if err := sink.WriteLine(sb.String()); err != nil {
			return err
		}
	}
	return nil
}
