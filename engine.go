package morph

import (
	"strconv"
	"strings"

	"github.com/yiunsr/hinsaem/internal/config"
	"github.com/yiunsr/hinsaem/internal/sentence"
	"github.com/yiunsr/hinsaem/jamo"
	"github.com/yiunsr/hinsaem/morphdict"
	"github.com/yiunsr/hinsaem/rule"
)

// Engine holds the two read-only dictionary indices and the configuration
// an analysis run needs. A constructed Engine is immutable and safe for
// concurrent use by multiple goroutines: AnalyzeEnding and AnalyzeParticle
// neither read nor write any shared mutable state.
type Engine struct {
	cfg  config.Config
	eomi *morphdict.Index
	josa *morphdict.Index
}

// NewEngine builds an Engine from a configuration and the pre-built eomi
// (ending) and josa (particle) indices. Either index may be nil if the
// corresponding Analyze method will never be called; calling it anyway
// returns ErrNoIndex.
func NewEngine(cfg config.Config, eomi, josa *morphdict.Index) *Engine {
	return &Engine{cfg: cfg, eomi: eomi, josa: josa}
}

// AnalyzeEnding decomposes eojeol against the ending (EOMI) dictionary:
// every split of eojeol into a stem and a verbal/adjectival ending,
// including pre-final peeling and the irregularity and contraction rules.
func (e *Engine) AnalyzeEnding(eojeol string) ([]Analysis, error) {
	if e.eomi == nil {
		return nil, ErrNoIndex
	}
	return e.analyze(eojeol, e.eomi, true)
}

// AnalyzeParticle decomposes eojeol against the particle (JOSA) dictionary:
// every split of eojeol into a content stem and a trailing particle,
// including jongseong-initial fusion.
func (e *Engine) AnalyzeParticle(eojeol string) ([]Analysis, error) {
	if e.josa == nil {
		return nil, ErrNoIndex
	}
	return e.analyze(eojeol, e.josa, false)
}

func (e *Engine) analyze(eojeol string, idx *morphdict.Index, isEnding bool) ([]Analysis, error) {
	if eojeol == "" {
		return nil, nil
	}
	marks := e.cfg.SentenceMarks
	if len(marks) == 0 {
		marks = config.Default().SentenceMarks
	}
	stripped, mark := sentence.StripMark(eojeol, marks)
	if stripped == "" {
		return nil, nil
	}

	runes := []rune(stripped)

	var filter rule.PosSet
	if isEnding {
		filter = endingPosFilter(e.cfg, mark)
	} else {
		filter = particlePosFilter(mark)
	}

	seen := make(map[string]bool)
	var out []Analysis
	emit := func(candidates []Analysis) {
		for _, an := range candidates {
			an.Mark = mark
			key := dedupKey(an)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, an)
		}
	}

	// Every split index i in [0, N] is attempted (§4.E), including the
	// empty stem (i=0, e.g. 해 rewritten whole by ABB_HAE) and the empty
	// ending (i=N, e.g. 퍼/펐 rewritten whole by IRR_U). Last-character
	// rejection against the dictionary is a pruning hint, not a
	// correctness gate, so it is left to the lookup itself rather than
	// applied as an up-front filter here.
	for i := 0; i <= len(runes); i++ {
		if i > 0 {
			anchor := jamo.Decompose(runes[i-1])
			if anchor.IsZero() {
				continue // non-Hangul prefix: no candidate anchored here
			}
		}
		stem := string(runes[:i])
		ending := string(runes[i:])
		// FINAL_SOUND (rule.TryFinalSound) fuses a jongseong-final stem's
		// last consonant onto ending at this same split, covering both
		// interior fusion (절더러 → 저 + ㄹ더러) and the whole-eojeol case
		// (우린 → 우리 + ㄴ) once i reaches len(runes).
		emit(e.peelPreFinal(stem, ending, idx, nil, Metadata{}, 0, filter))
	}

	return out, nil
}

// dedupKey mirrors the uniqueness check the source dictionary applies
// when collecting candidates: two analyses with the same leftover stem,
// the same surface/POS sequence, the same mark and the same frequency
// metadata are the same analysis even if they were reached through
// different rule paths.
func dedupKey(a Analysis) string {
	var b strings.Builder
	b.WriteString(a.Stem)
	b.WriteByte('\x00')
	for _, m := range a.Morphemes {
		b.WriteString(m.Surface)
		b.WriteByte('/')
		b.WriteString(m.Pos)
		b.WriteByte('+')
	}
	b.WriteByte('\x00')
	b.WriteString(a.Mark)
	b.WriteByte('\x00')
	b.WriteString(strconv.FormatFloat(a.Meta.Spoken, 'f', -1, 64))
	b.WriteByte('/')
	b.WriteString(strconv.FormatFloat(a.Meta.Writing, 'f', -1, 64))
	return b.String()
}
