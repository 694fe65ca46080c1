// Package jamo decomposes and recomposes precomposed Hangul syllables and
// checks the phoneme-restriction tokens used by the ending and particle
// dictionaries to gate which surface forms may follow a given stem.
package jamo

import (
	hangul "github.com/suapapa/go_hangul"
)

const (
	syllableBase  = 0xAC00
	syllableLast  = 0xD7A3
	chosungCount  = 19
	jungsungCount = 21
	jongsungCount = 28
)

var chosungList = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

var jungsungList = []rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
	'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
}

// jongsungList[0] is the "no trailing consonant" slot and never matches a
// jamo rune on its own.
var jongsungList = []rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
	'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// yang1Vowels and yang2Vowels are the two (slightly different) "bright"
// vowel sets the YANG1/YANG2 phoneme tokens test against — YANG1 is the
// narrow {ㅏ,ㅗ} class used by 아/어 ending selection, YANG2 widens it to
// include ㅑ. Neither includes ㅛ: the phoneme grammar (§4.B) is not a
// general vowel-harmony predicate, only the specific two token classes the
// dictionaries actually encode.
var yang1Vowels = map[rune]bool{'ㅏ': true, 'ㅗ': true}
var yang2Vowels = map[rune]bool{'ㅏ': true, 'ㅑ': true, 'ㅗ': true}

func indexOf(list []rune, r rune) int {
	for i, c := range list {
		if c == r {
			return i
		}
	}
	return -1
}

// Syllable is a decomposed Hangul syllable block. A zero value with Cho and
// Jung both 0 represents "not a syllable" (empty eojeol, sentence boundary,
// or a non-Hangul rune).
type Syllable struct {
	Cho, Jung, Jong rune
}

// IsZero reports whether s carries no decomposed syllable at all.
func (s Syllable) IsZero() bool { return s.Cho == 0 && s.Jung == 0 }

// HasJongseong reports whether s has a trailing consonant.
func (s Syllable) HasJongseong() bool { return s.Jong != 0 }

// IsYang1Vowel reports whether s's medial vowel lies in the narrow YANG1
// phoneme class ({ㅏ,ㅗ}).
func (s Syllable) IsYang1Vowel() bool { return yang1Vowels[s.Jung] }

// IsYang2Vowel reports whether s's medial vowel lies in the wider YANG2
// phoneme class ({ㅏ,ㅑ,ㅗ}).
func (s Syllable) IsYang2Vowel() bool { return yang2Vowels[s.Jung] }

// Decompose splits a precomposed Hangul syllable into its cho/jung/jong
// jamo. Runes outside the Hangul syllable block return the zero Syllable;
// callers use IsZero to detect "no candidate here" rather than treating it
// as an error (non-Hangul prefixes pass through untouched).
func Decompose(r rune) Syllable {
	if r < syllableBase || r > syllableLast {
		return Syllable{}
	}
	offset := int(r) - syllableBase
	jongIdx := offset % jongsungCount
	jungIdx := (offset / jongsungCount) % jungsungCount
	choIdx := offset / (jungsungCount * jongsungCount)
	return Syllable{
		Cho:  chosungList[choIdx],
		Jung: jungsungList[jungIdx],
		Jong: jongsungList[jongIdx],
	}
}

// Compose rebuilds a precomposed syllable rune from its jamo. It reports
// false if any component is not a recognized jamo (Jong == 0 is valid and
// means "no trailing consonant").
func Compose(s Syllable) (rune, bool) {
	choIdx := indexOf(chosungList, s.Cho)
	jungIdx := indexOf(jungsungList, s.Jung)
	if choIdx < 0 || jungIdx < 0 {
		return 0, false
	}
	jongIdx := 0
	if s.Jong != 0 {
		jongIdx = indexOf(jongsungList, s.Jong)
		if jongIdx < 0 {
			return 0, false
		}
	}
	code := (choIdx*jungsungCount+jungIdx)*jongsungCount + jongIdx + syllableBase
	return rune(code), true
}

// Mutate rebuilds r with the given cho/jung/jong replaced, leaving any nil
// component unchanged. It is the Go analogue of changing one or two jaso in
// place while rewriting an irregular stem's final syllable.
func Mutate(r rune, cho, jung, jong *rune) (rune, bool) {
	s := Decompose(r)
	if s.IsZero() {
		return 0, false
	}
	if cho != nil {
		s.Cho = *cho
	}
	if jung != nil {
		s.Jung = *jung
	}
	if jong != nil {
		s.Jong = *jong
	}
	return Compose(s)
}

// IsHangul reports whether r is any Hangul syllable or jamo rune, delegating
// to go_hangul rather than re-deriving the Unicode block ranges by hand.
func IsHangul(r rune) bool {
	return hangul.IsHangul(r)
}

// phoneme restriction tokens, as carried by the optional fourth TSV column.
const (
	tokNone  = "NUL"   // no restriction
	tokVowel = "VO"    // preceding eumjeol must end in a vowel (no jongseong)
	tokLiq   = "LQ"    // preceding jongseong must be ㄹ
	tokFric  = "FS"     // preceding eumjeol must have a jongseong, and it must NOT be ㄹ
	tokYang1 = "YANG1" // preceding vowel must be the narrow yang (bright) class {ㅏ,ㅗ}
	tokYang2 = "YANG2" // preceding vowel must be the wider yang (bright) class {ㅏ,ㅑ,ㅗ}
	tokEum1  = "EUM1"  // preceding vowel must NOT be in the narrow yang class (YANG1's complement)
)

// CheckPhoneme reports whether anchor — the last syllable of the candidate
// stem immediately preceding the ending — satisfies phoneme, a '|'-joined
// set of restriction tokens from the dictionary's phoneme column. The
// constraint passes if *any* one token is satisfied (§4.B), not all of
// them: "VO|LQ" means "either no jongseong, or a ㄹ jongseong," never both
// at once. A nil anchor (no preceding syllable at all, e.g. an ending at
// the very start of the eojeol) always satisfies the restriction, matching
// the source convention that "no eumjeol" never fails a phoneme check.
func CheckPhoneme(anchor *Syllable, phoneme string) bool {
	if anchor == nil || phoneme == "" {
		return true
	}
	for _, tok := range splitPipe(phoneme) {
		if checkOne(*anchor, tok) {
			return true
		}
	}
	return false
}

func checkOne(anchor Syllable, tok string) bool {
	switch tok {
	case "", tokNone:
		return true
	case tokVowel:
		return !anchor.HasJongseong()
	case tokLiq:
		return anchor.Jong == 'ㄹ'
	case tokFric:
		return anchor.HasJongseong() && anchor.Jong != 'ㄹ'
	case tokYang1:
		return anchor.IsYang1Vowel()
	case tokYang2:
		return anchor.IsYang2Vowel()
	case tokEum1:
		return !anchor.IsYang1Vowel()
	default:
		return true
	}
}

func splitPipe(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '|' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}
