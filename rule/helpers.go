package rule

import (
	"strings"

	"github.com/yiunsr/hinsaem/jamo"
)

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// withJong rewrites the trailing jongseong of s's last syllable, or
// removes it entirely when newJong == 0.
func withJong(s string, newJong rune) (string, bool) {
	last := lastRune(s)
	if last == 0 {
		return "", false
	}
	composed, ok := jamo.Mutate(last, nil, nil, &newJong)
	if !ok {
		return "", false
	}
	return dropLastRune(s) + string(composed), true
}

func hasJongseong(s string) bool {
	return jamo.Decompose(lastRune(s)).HasJongseong()
}

func lastJong(s string) rune {
	return jamo.Decompose(lastRune(s)).Jong
}

func lastJung(s string) rune {
	return jamo.Decompose(lastRune(s)).Jung
}

func hasPrefix(s, prefix string) bool { return strings.HasPrefix(s, prefix) }

func endingStartsWithVowel(ending string) bool {
	r := firstRune(ending)
	d := jamo.Decompose(r)
	return !d.IsZero() && d.Cho == 'ㅇ'
}

// initialConsonant returns the leading consonant an ending begins with,
// whether that ending surfaces as a full syllable (니까 → ㄴ) or as a bare
// fused jongseong jamo (ㄴ → ㄴ itself).
func initialConsonant(ending string) rune {
	r := firstRune(ending)
	if r == 0 {
		return 0
	}
	d := jamo.Decompose(r)
	if d.IsZero() {
		return r
	}
	return d.Cho
}
