package rule

import "github.com/yiunsr/hinsaem/jamo"

// PosSet is the set of POS prefixes a candidate ending is allowed to carry
// at this split (e.g. {"EP"} while peeling pre-final endings, or the full
// ending tag set on the outermost pass). A nil PosSet places no
// restriction.
type PosSet map[string]bool

// Contains reports whether pos is permitted by s. A nil or empty set
// permits everything.
func (s PosSet) Contains(pos string) bool {
	if len(s) == 0 {
		return true
	}
	return s[pos]
}

// allowsAbbreviation reports whether the ABB_*, DROPOUT_* and FINAL_SOUND
// rules may run under posFilter. They are skipped only when posFilter is
// exactly {EP}, the filter the engine uses while peeling pre-final endings;
// a wider filter that also contains EP still allows them.
func allowsAbbreviation(posFilter PosSet) bool {
	if len(posFilter) == 0 {
		return true
	}
	return !posFilter.Contains("EP") || len(posFilter) > 1
}

// Apply runs every rule against a (stem, ending) split taken directly from
// the surface eojeol and returns every regularization that fires. Each
// Rewrite proposes the canonical dictionary-form (stem, ending) pair that
// the surface split could have come from; multiple rules firing on the
// same split is expected and each produces an independent candidate for
// the matcher to try against the dictionary.
func Apply(stem, ending string, posFilter PosSet) []Rewrite {
	var out []Rewrite
	tryers := []func(string, string) (Rewrite, bool){
		TryIrrU, TryIrrD, TryIrrL, TryIrrS, TryIrrH1, TryIrrH2,
		TryIrrB, TryIrrEu, TryIrrLeo, TryIrrLeu, TryIrrO,
	}
	for _, try := range tryers {
		if rw, ok := try(stem, ending); ok {
			out = append(out, rw)
		}
	}
	if allowsAbbreviation(posFilter) {
		abbTryers := []func(string, string) (Rewrite, bool){
			TryAbbYeo, TryAbbWa, TryAbbWo, TryAbbWae, TryAbbHae,
			TryAbbAspirate, TryAbbChanh, TryAbbJanh,
			TryDropoutA, TryDropoutEo, TryDropoutHa, TryFinalSound,
		}
		for _, try := range abbTryers {
			if rw, ok := try(stem, ending); ok {
				out = append(out, rw)
			}
		}
	}
	return out
}

// compose is a small wrapper around jamo.Compose for the literal jamo
// triples each rule below builds.
func compose(cho, jung, jong rune) (rune, bool) { return jamo.Compose(jamo.Syllable{Cho: cho, Jung: jung, Jong: jong}) }

// TryIrrU regularizes the 우-irregular: the historically unique stem 푸다
// drops its 우 outright before 어 (퍼 ← 푸 + 어) rather than diphthonging
// like the rest of the 우-final stems, collapsing the whole verb onto a
// single surface syllable (or two, with the past-tense jongseong fused
// on: 펐 ← 푸 + 었). The trigger is the literal surface 퍼/펐 rather than a
// jamo pattern, optionally followed by the 서 connective.
func TryIrrU(stem, ending string) (Rewrite, bool) {
	if stem != "퍼" && stem != "펐" {
		return Rewrite{}, false
	}
	if ending != "" && ending != "서" {
		return Rewrite{}, false
	}
	first, ok := compose('ㅇ', 'ㅓ', lastJong(stem))
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrU, Stem: "푸", Ending: string(first) + ending}, true
}

// TryIrrD regularizes the ㄷ-irregular: a surface jongseong ㄹ (mutated
// from canonical ㄷ before a vowel-initial ending) is rewritten back to ㄷ
// (걸 + 어요 → canonical 걷 + 어요, surface 걸어요).
func TryIrrD(stem, ending string) (Rewrite, bool) {
	if lastJong(stem) != 'ㄹ' || !endingStartsWithVowel(ending) {
		return Rewrite{}, false
	}
	rewritten, ok := withJong(stem, 'ㄷ')
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrD, Stem: rewritten, Ending: ending}, true
}

// TryIrrL regularizes the ㄹ-irregular: a canonical stem-final ㄹ
// jongseong drops entirely in the surface form before an ending beginning
// with ㄴ, ㅂ, ㅅ, or 오 (노 + 는 ← 놀 + 는).
func TryIrrL(stem, ending string) (Rewrite, bool) {
	if hasJongseong(stem) {
		return Rewrite{}, false
	}
	if ending != "오" {
		c := initialConsonant(ending)
		if c != 'ㄴ' && c != 'ㅂ' && c != 'ㅅ' {
			return Rewrite{}, false
		}
	}
	rewritten, ok := withJong(stem, 'ㄹ')
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrL, Stem: rewritten, Ending: ending}, true
}

// TryIrrS regularizes the ㅅ-irregular: a canonical stem-final ㅅ
// jongseong drops entirely in the surface form before a vowel-initial
// ending (지 + 어 ← 짓 + 어).
func TryIrrS(stem, ending string) (Rewrite, bool) {
	if hasJongseong(stem) || !endingStartsWithVowel(ending) {
		return Rewrite{}, false
	}
	rewritten, ok := withJong(stem, 'ㅅ')
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrS, Stem: rewritten, Ending: ending}, true
}

// TryIrrH1 regularizes the adnominal ㅎ-irregular: a canonical stem-final
// ㅎ jongseong drops before a bare-jongseong ending beginning with ㄴ or
// ㅁ (까마 + ㄴ ← 까맣 + ㄴ, surface 까만).
func TryIrrH1(stem, ending string) (Rewrite, bool) {
	if hasJongseong(stem) {
		return Rewrite{}, false
	}
	c := initialConsonant(ending)
	if c != 'ㄴ' && c != 'ㅁ' {
		return Rewrite{}, false
	}
	rewritten, ok := withJong(stem, 'ㅎ')
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrH1, Stem: rewritten, Ending: ending}, true
}

// TryIrrH2 regularizes the vowel-fusing ㅎ-irregular: the surface's final
// syllable already carries both the stem's own onset and a vowel fused
// from ㅎ + 어/아 (어때 ← 어떻 + 어). ending is expected to be exactly the
// fused syllable, which the per-split candidate loop naturally produces
// when it is the eojeol's last syllable.
func TryIrrH2(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' {
		return Rewrite{}, false
	}
	origJung := rune(0)
	switch d.Jung {
	case 'ㅐ':
		origJung = 'ㅓ'
	case 'ㅒ':
		origJung = 'ㅏ'
	default:
		return Rewrite{}, false
	}
	stemFinal, ok := compose(d.Cho, origJung, 'ㅎ')
	if !ok {
		return Rewrite{}, false
	}
	endingFirst, ok2 := compose('ㅇ', origJung, d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: IrrH2, Stem: stem + string(stemFinal), Ending: string(endingFirst) + rest}, true
}

// TryIrrB regularizes the ㅂ-irregular: a canonical stem-final ㅂ
// jongseong turns into the vowel 우 (or 오 for the 돕/곱-class exception)
// which then diphthongs with the ending's own vowel — the stem keeps its
// own syllable count, and the ending's null-onset first syllable carries
// the diphthong (주워 ← 줍 + 어, 도와 ← 돕 + 아).
func TryIrrB(stem, ending string) (Rewrite, bool) {
	if hasJongseong(stem) {
		return Rewrite{}, false
	}
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho != 'ㅇ' {
		return Rewrite{}, false
	}
	var origJung rune
	switch d.Jung {
	case 'ㅝ':
		origJung = 'ㅓ'
	case 'ㅘ':
		origJung = 'ㅏ'
	default:
		return Rewrite{}, false
	}
	rewrittenStem, ok := withJong(stem, 'ㅂ')
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', origJung, d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: IrrB, Stem: rewrittenStem, Ending: string(plainEnding) + rest}, true
}

// TryIrrEu regularizes the 으-irregular: the ending's fused first syllable
// carries the stem's last consonant plus 아/어 where 으 used to be (담가
// ← 담그 + 아).
func TryIrrEu(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' {
		return Rewrite{}, false
	}
	if d.Jung != 'ㅏ' && d.Jung != 'ㅓ' {
		return Rewrite{}, false
	}
	restoredSyll, ok := compose(d.Cho, 'ㅡ', 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', d.Jung, d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: IrrEu, Stem: stem + string(restoredSyll), Ending: string(plainEnding) + rest}, true
}

// TryIrrLeo regularizes the 러-class 르-irregular: the ending surfaces as
// 러 rather than its dictionary form 어, with the stem's 르 unchanged
// (이르러 ← 이르 + 어).
func TryIrrLeo(stem, ending string) (Rewrite, bool) {
	if lastRune(stem) != '르' || !hasPrefix(ending, "러") {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: IrrLeo, Stem: stem, Ending: "어" + rest}, true
}

// TryIrrLeu regularizes the main 르-irregular class: the stem's surface
// form has an extra ㄹ jongseong and the ending's fused first syllable
// carries a doubled ㄹ onset (몰라 ← 모르 + 아).
func TryIrrLeu(stem, ending string) (Rewrite, bool) {
	if lastJong(stem) != 'ㄹ' {
		return Rewrite{}, false
	}
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho != 'ㄹ' {
		return Rewrite{}, false
	}
	if d.Jung != 'ㅏ' && d.Jung != 'ㅓ' {
		return Rewrite{}, false
	}
	base, ok := withJong(stem, 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', d.Jung, d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: IrrLeu, Stem: base + "르", Ending: string(plainEnding) + rest}, true
}

// TryIrrO regularizes the imperative 오-irregular: 달다's imperative
// surfaces as 다오 instead of 달아라 (다 + 오 ← 달 + 아라).
func TryIrrO(stem, ending string) (Rewrite, bool) {
	if lastRune(stem) != '다' || ending != "오" {
		return Rewrite{}, false
	}
	rewritten, ok := withJong(stem, 'ㄹ')
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: IrrO, Stem: rewritten, Ending: "아라"}, true
}

// TryAbbYeo contracts 이 + 어 → 여: the ending's fused first syllable
// carries the stem's last consonant plus 여 (아녀 ← 아니 + 어).
func TryAbbYeo(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' || d.Jung != 'ㅕ' {
		return Rewrite{}, false
	}
	restoredSyll, ok := compose(d.Cho, 'ㅣ', 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', 'ㅓ', d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbYeo, Stem: stem + string(restoredSyll), Ending: string(plainEnding) + rest}, true
}

// TryAbbWa contracts 오 + 아 → 와 (돌봐 ← 돌보 + 아).
func TryAbbWa(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' || d.Jung != 'ㅘ' {
		return Rewrite{}, false
	}
	restoredSyll, ok := compose(d.Cho, 'ㅗ', 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', 'ㅏ', d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbWa, Stem: stem + string(restoredSyll), Ending: string(plainEnding) + rest}, true
}

// TryAbbWo contracts 우 + 어 → 워 (배워 ← 배우 + 어).
func TryAbbWo(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' || d.Jung != 'ㅝ' {
		return Rewrite{}, false
	}
	restoredSyll, ok := compose(d.Cho, 'ㅜ', 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', 'ㅓ', d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbWo, Stem: stem + string(restoredSyll), Ending: string(plainEnding) + rest}, true
}

// TryAbbWae contracts 되 + 어 → 돼 (안돼 ← 안되 + 어).
func TryAbbWae(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() || d.Cho == 'ㅇ' || d.Jung != 'ㅙ' {
		return Rewrite{}, false
	}
	restoredSyll, ok := compose(d.Cho, 'ㅚ', 0)
	if !ok {
		return Rewrite{}, false
	}
	plainEnding, ok2 := compose('ㅇ', 'ㅓ', d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbWae, Stem: stem + string(restoredSyll), Ending: string(plainEnding) + rest}, true
}

// TryAbbHae contracts 하 + 여 → 해. Unlike the other vowel contractions
// this one is lexically fixed to 하다 itself (간편해 ← 간편하 + 여), so it
// matches the literal syllable 해 rather than a jung/cho pattern.
func TryAbbHae(stem, ending string) (Rewrite, bool) {
	if firstRune(ending) != '해' {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbHae, Stem: stem + "하", Ending: "여" + rest}, true
}

// TryAbbAspirate regularizes the 하-drop aspiration contraction: 하 drops
// and the following ending's initial consonant aspirates (간편케 ←
// 간편하 + 게).
func TryAbbAspirate(stem, ending string) (Rewrite, bool) {
	first := firstRune(ending)
	d := jamo.Decompose(first)
	if d.IsZero() {
		return Rewrite{}, false
	}
	plain, ok := deaspirate(d.Cho)
	if !ok {
		return Rewrite{}, false
	}
	canonicalFirst, ok2 := compose(plain, d.Jung, d.Jong)
	if !ok2 {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbAspirate, Stem: stem + "하", Ending: string(canonicalFirst) + rest}, true
}

func deaspirate(r rune) (rune, bool) {
	switch r {
	case 'ㅋ':
		return 'ㄱ', true
	case 'ㅌ':
		return 'ㄷ', true
	case 'ㅊ':
		return 'ㅈ', true
	case 'ㅍ':
		return 'ㅂ', true
	}
	return 0, false
}

// TryAbbChanh contracts 지 않 → 잖, stem unchanged (가잖 ← 가 + 지않).
func TryAbbChanh(stem, ending string) (Rewrite, bool) {
	if !hasPrefix(ending, "잖") {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbChanh, Stem: stem, Ending: "지않" + rest}, true
}

// TryAbbJanh contracts 하지 않 → 찮, stem unchanged (거북찮 ← 거북 +
// 하지않).
func TryAbbJanh(stem, ending string) (Rewrite, bool) {
	if !hasPrefix(ending, "찮") {
		return Rewrite{}, false
	}
	rest := string([]rune(ending)[1:])
	return Rewrite{Tag: AbbJanh, Stem: stem, Ending: "하지않" + rest}, true
}

// TryDropoutA restores an 아 the surface form elided because the stem's
// own final vowel was already 아 (가라 ← 가 + 아라).
func TryDropoutA(stem, ending string) (Rewrite, bool) {
	if lastJung(stem) != 'ㅏ' || hasJongseong(stem) || hasPrefix(ending, "아") {
		return Rewrite{}, false
	}
	return Rewrite{Tag: DropoutA, Stem: stem, Ending: "아" + ending}, true
}

// TryDropoutEo restores an 어 the surface form elided because the stem's
// own final vowel was already 어 (서서 ← 서 + 어서).
func TryDropoutEo(stem, ending string) (Rewrite, bool) {
	if lastJung(stem) != 'ㅓ' || hasJongseong(stem) || hasPrefix(ending, "어") {
		return Rewrite{}, false
	}
	return Rewrite{Tag: DropoutEo, Stem: stem, Ending: "어" + ending}, true
}

// TryDropoutHa restores a stem-final 하 that surface spelling drops before
// a consonant-initial ending with no aspiration or vowel fusion (거북지 ←
// 거북하 + 지).
func TryDropoutHa(stem, ending string) (Rewrite, bool) {
	d := jamo.Decompose(firstRune(ending))
	if d.IsZero() || d.Cho == 'ㅇ' {
		return Rewrite{}, false
	}
	if _, ok := deaspirate(d.Cho); ok {
		return Rewrite{}, false // handled by TryAbbAspirate instead
	}
	return Rewrite{Tag: DropoutHa, Stem: stem + "하", Ending: ending}, true
}

// TryFinalSound fuses a jongseong-final stem's last consonant onto the
// front of ending: the stem_tail loses its jongseong and ending gains it
// as a new leading bare-jamo character (절 + 더러 → 저 + ㄹ더러, 간 + 걸 →
// 가 + ㄴ걸). Whether the fused ending actually exists is left to the
// dictionary lookup that follows; this rule only proposes the split.
func TryFinalSound(stem, ending string) (Rewrite, bool) {
	jong := lastJong(stem)
	if jong == 0 {
		return Rewrite{}, false
	}
	rewritten, ok := withJong(stem, 0)
	if !ok {
		return Rewrite{}, false
	}
	return Rewrite{Tag: FinalSound, Stem: rewritten, Ending: string(jong) + ending}, true
}
