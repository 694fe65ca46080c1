package morph

import (
	"github.com/yiunsr/hinsaem/internal/config"
	"github.com/yiunsr/hinsaem/rule"
)

// Ending and particle POS tag sets, per §4.H and §6 of the specification.
var (
	endingFilterTerminal  = rule.PosSet{"EF": true}
	endingFilterNonFinal  = rule.PosSet{"EC": true, "ETM": true, "ETN": true}
	endingFilterAll       = rule.PosSet{"EC": true, "EF": true, "EP": true, "ETM": true, "ETN": true}
	particleFilterFull    = rule.PosSet{"JKS": true, "JKC": true, "JKG": true, "JKO": true, "JKB": true, "JKV": true, "JKQ": true, "JC": true, "JX": true}
	particleFilterReduced = rule.PosSet{"JX": true}
)

// endingPosFilter picks the POS filter endswithE applies at the outermost
// (non-EP) match, based on the sentence mark stripped from the eojeol.
func endingPosFilter(cfg config.Config, mark string) rule.PosSet {
	if !cfg.SenseMarkEnabled {
		return endingFilterAll
	}
	if isTerminalMark(cfg, mark) {
		return endingFilterTerminal
	}
	return endingFilterNonFinal
}

// particlePosFilter picks the POS filter endswithJ applies. Trailing
// punctuation of any kind (not just a terminal mark) narrows particles to
// JX, mirroring the source's "a particle before punctuation is almost
// always an auxiliary particle, not a case marker" heuristic.
func particlePosFilter(mark string) rule.PosSet {
	if mark != "" {
		return particleFilterReduced
	}
	return particleFilterFull
}

func isTerminalMark(cfg config.Config, mark string) bool {
	if mark == "" {
		return false
	}
	marks := cfg.TerminalMarks
	if len(marks) == 0 {
		marks = config.Default().TerminalMarks
	}
	for _, m := range marks {
		if m == mark {
			return true
		}
	}
	return false
}

// promotionCounterpart returns the filter endswithE retries with when the
// primary filter yields no direct hits, per the EC_EXPAND_TO_EF /
// EF_EXPAND_TO_EC toggles, and the POS that a hit under that counterpart
// filter should be relabeled to. ok is false when no promotion applies.
func promotionCounterpart(cfg config.Config, filter rule.PosSet) (counterpart rule.PosSet, relabelTo string, ok bool) {
	switch {
	case cfg.ExpandECToEF && filter.Contains("EF") && !filter.Contains("EC"):
		return rule.PosSet{"EC": true}, "EF", true
	case cfg.ExpandEFToEC && filter.Contains("EC") && !filter.Contains("EF"):
		return rule.PosSet{"EF": true}, "EC", true
	default:
		return nil, "", false
	}
}
