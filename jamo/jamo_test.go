package jamo

import "testing"

func TestDecomposeCompose(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Syllable
	}{
		{"no jongseong", '가', Syllable{'ㄱ', 'ㅏ', 0}},
		{"with jongseong", '간', Syllable{'ㄱ', 'ㅏ', 'ㄴ'}},
		{"complex jongseong", '값', Syllable{'ㄱ', 'ㅏ', 'ㅄ'}},
		{"last block", '힣', Syllable{'ㅎ', 'ㅣ', 'ㅎ'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.r)
			if got != tt.want {
				t.Fatalf("Decompose(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
			back, ok := Compose(got)
			if !ok {
				t.Fatalf("Compose(%+v) failed", got)
			}
			if back != tt.r {
				t.Fatalf("round trip: Compose(Decompose(%q)) = %q", tt.r, back)
			}
		})
	}
}

func TestDecomposeNonHangul(t *testing.T) {
	for _, r := range []rune{'a', '1', ' ', '.', 'ㄱ'} {
		if got := Decompose(r); !got.IsZero() {
			t.Errorf("Decompose(%q) = %+v, want zero value", r, got)
		}
	}
}

func TestMutate(t *testing.T) {
	jong := rune('ㅆ')
	got, ok := Mutate('가', nil, nil, &jong)
	if !ok {
		t.Fatal("Mutate failed")
	}
	if got != '갔' {
		t.Fatalf("Mutate('가', jong=ㅆ) = %q, want 갔", got)
	}
}

func TestCheckPhoneme(t *testing.T) {
	withJong := Decompose('갔') // jong ㅆ, vowel ㅏ (yang1)
	noJong := Decompose('가')   // no jong, vowel ㅏ (yang1)
	rieul := Decompose('갈')    // jong ㄹ, vowel ㅏ
	darkV := Decompose('그')    // no jong, vowel ㅡ (not yang1/yang2)

	tests := []struct {
		name    string
		anchor  *Syllable
		phoneme string
		want    bool
	}{
		{"nil anchor always passes", nil, tokVowel, true},
		{"empty phoneme always passes", &withJong, "", true},
		{"VO requires no jongseong: pass", &noJong, tokVowel, true},
		{"VO requires no jongseong: fail", &withJong, tokVowel, false},
		{"LQ requires rieul jongseong: pass", &rieul, tokLiq, true},
		{"LQ requires rieul jongseong: fail", &withJong, tokLiq, false},
		{"FS requires a non-rieul jongseong: fail on rieul", &rieul, tokFric, false},
		{"FS requires a non-rieul jongseong: fail on no jongseong", &noJong, tokFric, false},
		{"FS requires a non-rieul jongseong: pass", &withJong, tokFric, true},
		{"YANG1 requires the narrow bright class: pass", &noJong, tokYang1, true},
		{"YANG1 excludes a dark vowel", &darkV, tokYang1, false},
		{"YANG2 requires the wider bright class: pass", &noJong, tokYang2, true},
		{"EUM1 is YANG1's complement: pass on dark vowel", &darkV, tokEum1, true},
		{"EUM1 is YANG1's complement: fail on bright vowel", &noJong, tokEum1, false},
		// A constraint passes if ANY pipe-joined token is satisfied (§4.B), not all.
		{"combined tokens: VO fails, but YANG1 passes", &withJong, tokVowel + "|" + tokYang1, true},
		{"combined tokens: neither passes", &withJong, tokVowel + "|" + tokEum1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPhoneme(tt.anchor, tt.phoneme); got != tt.want {
				t.Errorf("CheckPhoneme(%v, %q) = %v, want %v", tt.anchor, tt.phoneme, got, tt.want)
			}
		})
	}
}
