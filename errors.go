// Package reelforge exposes the two external entry points a host
// (CLI, desktop UI, or anything else) drives: RunSimulation and
// RunGeneticSearch, plus SequenceReel for previewing a single strip.
// Everything else in this module is an internal implementation detail
// of those calls.
package reelforge

import "github.com/yola1107/reelforge/internal/apperr"

// ConfigError reports a structural violation of the invariants a
// SlotMachineConfig, ReelBox set or GAConfig must satisfy. It is
// returned immediately at construction time; there is never a
// partially-valid config.
type ConfigError = apperr.ConfigError

// SequencingError reports that the reel sequencer failed to produce a
// valid strip within its per-call attempt cap. From the GA (an
// initialization or a GA operator) it also means the caller exhausted
// its own retry cap, and it is fatal to the current run; SequenceReel
// returns it after the sequencer's own attempts alone (Retries 0).
type SequencingError = apperr.SequencingError

// SinkError wraps a failed sink write. It is fatal to the current run.
type SinkError = apperr.SinkError

// NewConfigError builds a ConfigError naming the offending field.
func NewConfigError(field, msg string) *ConfigError {
	return apperr.NewConfigError(field, msg)
}
