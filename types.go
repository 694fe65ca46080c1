// Package morph is the public façade of the ending-segmentation engine: it
// decomposes an eojeol into every plausible stem+ending (or stem+particle)
// analysis the dictionaries and morphophonological rules can produce.
package morph

import "errors"

// ErrNoIndex is returned when AnalyzeEnding or AnalyzeParticle is called
// against an Engine whose corresponding dictionary index was never
// supplied to NewEngine.
var ErrNoIndex = errors.New("morph: dictionary index not loaded")

// Morpheme is one surface+tag unit of an Analysis, in left-to-right order.
type Morpheme struct {
	Surface string
	Pos     string
}

// Metadata carries the optional spoken/writing frequency figures a
// dictionary entry may report. Composing two entries' Metadata multiplies
// the figures and divides by 10000, matching the source convention for
// combining per-10000 frequency scores across a compound analysis; a
// figure only one side has is carried over unchanged.
type Metadata struct {
	Spoken     float64
	Writing    float64
	HasSpoken  bool
	HasWriting bool
}

func combineMetadata(a, b Metadata) Metadata {
	out := Metadata{}
	if a.HasSpoken && b.HasSpoken {
		out.Spoken = a.Spoken * b.Spoken / 10000
		out.HasSpoken = true
	} else if a.HasSpoken {
		out.Spoken, out.HasSpoken = a.Spoken, true
	} else if b.HasSpoken {
		out.Spoken, out.HasSpoken = b.Spoken, true
	}
	if a.HasWriting && b.HasWriting {
		out.Writing = a.Writing * b.Writing / 10000
		out.HasWriting = true
	} else if a.HasWriting {
		out.Writing, out.HasWriting = a.Writing, true
	} else if b.HasWriting {
		out.Writing, out.HasWriting = b.Writing, true
	}
	return out
}

// Analysis is one complete segmentation of an eojeol: the content stem,
// the chain of endings/particles attached to it (pre-final endings first,
// terminal ending last), and the sentence mark stripped from the eojeol
// before analysis, if any.
type Analysis struct {
	Stem      string
	Morphemes []Morpheme
	Mark      string
	Meta      Metadata
}

// PosString renders Morphemes the way the source dictionaries print a
// compound breakdown: "형/TAG+형/TAG2".
func (a Analysis) PosString() string {
	out := ""
	for i, m := range a.Morphemes {
		if i > 0 {
			out += "+"
		}
		out += m.Surface + "/" + m.Pos
	}
	return out
}
