// Package rule implements the morphophonological irregularity and
// contraction rules that let a dictionary ending/particle match a surface
// form its own entry never literally spells out. Each rule is grounded on
// one row of the trigger/rewrite table: given a candidate (stem, ending)
// split, it either reports no match or returns a Rewrite describing the
// regularized stem the dictionary lookup should actually be keyed on.
package rule

// Tag identifies which irregularity or contraction produced a Rewrite.
// Values are grouped the way the source dictionary groups them: true
// irregular conjugations first, then vowel/consonant contractions, then
// the dropout and final-sound rules that don't fit either family.
type Tag int

const (
	_ Tag = iota

	// Irregular conjugations: the stem's final jamo changes shape
	// depending on the ending that follows it.
	IrrU   // 우-irregular: 푸 + 어 → 퍼
	IrrD   // ㄷ-irregular: 걷 + 어 → 걸어
	IrrL   // ㄹ-irregular: ㄹ drops before ㄴ/ㅂ/ㅅ/오
	IrrS   // ㅅ-irregular: ㅅ drops before a vowel-initial ending
	IrrH1  // ㅎ-irregular (nominal/adnominal): ㅎ drops before ㄴ/ㅁ
	IrrH2  // ㅎ-irregular (vowel fusion): 어떻 + 어 → 어때
	IrrB   // ㅂ-irregular: ㅂ → 우 (or 오 for 돕/곱-class stems)
	IrrEu  // 으-irregular: 으 drops before 아/어
	IrrLeo // 르-irregular (러 class): 이르 + 어 → 이르러
	IrrLeu // 르-irregular (르 class): 모르 + 아 → 몰라
	IrrO   // 오-irregular (imperative 오 class): 달 + 아라 → 다오

	// Contractions: two adjacent morphemes fuse into a shorter surface
	// form.
	AbbYeo      // 이 + 어 → 여
	AbbWa       // 오 + 아 → 와
	AbbWo       // 우 + 어 → 워
	AbbWae      // 되 + 어 → 돼
	AbbHae      // 하 + 여 → 해
	AbbAspirate // 하 drops, next consonant aspirates: 하게 → 케
	AbbChanh    // 지 않 → 잖
	AbbJanh     // 하지 않 → 찮

	// Dropout and final-sound rules.
	DropoutA    // 아 drops after a stem already ending in 아/ㅏ
	DropoutEo   // 어 drops after a stem already ending in 어/ㅓ
	DropoutHa   // 하 drops entirely before a consonant-initial ending
	FinalSound  // stem-final jongseong fuses onto the ending's front: 절+더러 → 저+ㄹ더러
)

var tagNames = map[Tag]string{
	IrrU: "IRR_U", IrrD: "IRR_D", IrrL: "IRR_L", IrrS: "IRR_S",
	IrrH1: "IRR_H1", IrrH2: "IRR_H2", IrrB: "IRR_B", IrrEu: "IRR_EU",
	IrrLeo: "IRR_LEO", IrrLeu: "IRR_LEU", IrrO: "IRR_O",
	AbbYeo: "ABB_YEO", AbbWa: "ABB_WA", AbbWo: "ABB_WO", AbbWae: "ABB_WAE",
	AbbHae: "ABB_HAE", AbbAspirate: "ABB_ASPIRATE", AbbChanh: "ABB_CHANH",
	AbbJanh: "ABB_JANH",
	DropoutA: "DROPOUT_A", DropoutEo: "DROPOUT_EO", DropoutHa: "DROPOUT_HA",
	FinalSound: "FINAL_SOUND",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Rewrite is the result of a rule firing: the regularized stem and ending
// that a dictionary lookup should actually use, tagged with which rule
// produced it.
type Rewrite struct {
	Tag    Tag
	Stem   string
	Ending string
}
