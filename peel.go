package morph

import (
	"github.com/yiunsr/hinsaem/morphdict"
	"github.com/yiunsr/hinsaem/rule"
)

// maxPreFinalDepth bounds pre-final (EP) peeling to two levels: at most two
// stacked pre-final endings are peeled (시 + 겠 in 달리시겠어요); a third,
// as in 으시 + 었 + 겠, is not.
const maxPreFinalDepth = 2

// peelPreFinal recursively strips leading pre-final endings (EP, e.g. 으시,
// 었, 겠) off ending before the remaining suffix is matched as a terminal
// morpheme under filter (the outer POS filter chosen by §4.H, unaffected by
// peeling depth — only the {EP} filter used to find a pre-final ending
// itself is fixed). prefix accumulates the EP morphemes already peeled off
// to the left of the current position; meta accumulates their combined
// frequency metadata.
func (e *Engine) peelPreFinal(stem, ending string, idx *morphdict.Index, prefix []Morpheme, meta Metadata, depth int, filter rule.PosSet) []Analysis {
	var out []Analysis

	direct := lookupDirect(stem, ending, idx, filter)
	appendTerminal := func(m match, relabelTo string) {
		if m.entry.Pos == "EP" {
			return // EP can never be the outermost/terminal morpheme
		}
		tail := buildMorphemes(m.entry, m.ending)
		if relabelTo != "" {
			tail = relabelLast(tail, relabelTo)
		}
		combinedMeta := combineMetadata(meta, entryMetadata(m.entry))
		full := make([]Morpheme, 0, len(prefix)+len(tail))
		full = append(full, prefix...)
		full = append(full, tail...)
		out = append(out, Analysis{Stem: m.stem, Morphemes: full, Meta: combinedMeta})
	}
	for _, m := range direct {
		appendTerminal(m, "")
	}
	// EC/EF promotion (§4.F): only when the requested tag came back empty
	// does the counterpart tag's hits get relabeled and admitted.
	if len(direct) == 0 {
		if counterpart, relabelTo, ok := promotionCounterpart(e.cfg, filter); ok {
			for _, m := range lookupDirect(stem, ending, idx, counterpart) {
				appendTerminal(m, relabelTo)
			}
		}
	}

	if depth >= maxPreFinalDepth {
		return out
	}

	runes := []rune(ending)
	for j := 1; j < len(runes); j++ {
		epSurface := string(runes[:j])
		rest := string(runes[j:])
		for _, m := range lookupDirect(stem, epSurface, idx, rule.PosSet{"EP": true}) {
			if m.entry.Pos != "EP" {
				continue
			}
			epMorphs := buildMorphemes(m.entry, m.ending)
			newPrefix := make([]Morpheme, 0, len(prefix)+len(epMorphs))
			newPrefix = append(newPrefix, prefix...)
			newPrefix = append(newPrefix, epMorphs...)
			newMeta := combineMetadata(meta, entryMetadata(m.entry))
			out = append(out, e.peelPreFinal(m.stem, rest, idx, newPrefix, newMeta, depth+1, filter)...)
		}
	}
	return out
}
