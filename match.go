package morph

import (
	"github.com/yiunsr/hinsaem/jamo"
	"github.com/yiunsr/hinsaem/morphdict"
	"github.com/yiunsr/hinsaem/rule"
)

// match is one dictionary entry found at a candidate split, together with
// the (possibly rule-rewritten) stem/ending it was found under.
type match struct {
	entry  morphdict.Entry
	stem   string
	ending string
}

// lookupDirect finds every dictionary entry whose surface form equals
// ending exactly, plus every entry reachable by first regularizing the
// (stem, ending) split through the irregularity/contraction rule table.
// Each result's phoneme restriction is checked against the anchor
// syllable that actually precedes it post-rewrite.
func lookupDirect(stem, ending string, idx *morphdict.Index, posFilter rule.PosSet) []match {
	var out []match

	anchor := anchorOf(stem)
	for _, e := range idx.Lookup(ending) {
		if !posFilter.Contains(e.Pos) {
			continue
		}
		if !jamo.CheckPhoneme(anchor, e.Phoneme) {
			continue
		}
		out = append(out, match{entry: e, stem: stem, ending: ending})
	}

	for _, rw := range rule.Apply(stem, ending, posFilter) {
		rwAnchor := anchorOf(rw.Stem)
		for _, e := range idx.Lookup(rw.Ending) {
			if !posFilter.Contains(e.Pos) {
				continue
			}
			if !jamo.CheckPhoneme(rwAnchor, e.Phoneme) {
				continue
			}
			out = append(out, match{entry: e, stem: rw.Stem, ending: rw.Ending})
		}
	}
	return out
}

// anchorOf decomposes stem's last syllable for a phoneme check, or returns
// nil for an empty stem: §4.B treats "no preceding eumjeol at all" (the
// split at the very start of the eojeol) as always satisfying the
// restriction, which a zero-value Syllable does not — Decompose('ㄱ') and
// Decompose(0) both report IsZero but only the latter means "no anchor".
func anchorOf(stem string) *jamo.Syllable {
	if stem == "" {
		return nil
	}
	s := jamo.Decompose(lastRune(stem))
	return &s
}

func buildMorphemes(e morphdict.Entry, surface string) []Morpheme {
	parts := morphdict.Compound(surface, e.Pos, e.Pos2)
	out := make([]Morpheme, len(parts))
	for i, p := range parts {
		out[i] = Morpheme{Surface: p.Surface, Pos: p.Pos}
	}
	return out
}

func entryMetadata(e morphdict.Entry) Metadata {
	return Metadata{Spoken: e.Spoken, Writing: e.Writing, HasSpoken: e.HasFreq, HasWriting: e.HasFreq}
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// relabelLast returns a copy of morphs with only the final morpheme's POS
// tag swapped to pos, used to re-emit a counterpart-filter hit (an EC
// entry found while the caller actually asked for EF, or vice versa) under
// the tag the caller requested.
func relabelLast(morphs []Morpheme, pos string) []Morpheme {
	if len(morphs) == 0 {
		return morphs
	}
	clone := make([]Morpheme, len(morphs))
	copy(clone, morphs)
	clone[len(clone)-1] = Morpheme{Surface: clone[len(clone)-1].Surface, Pos: pos}
	return clone
}
