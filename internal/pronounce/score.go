// Package pronounce scores how close a child's attempt at a word is to the
// target word.
//
// The score is a Dice-style ratio over the longest common subsequence of the
// two normalized strings: 2*L / (|a| + |b|). It is a pure function with no
// shared state and is safe for concurrent use.
//
// Normalization trims Unicode whitespace and folds only ASCII letters, so the
// result does not depend on locale: "É" and "é" are different characters.
// Bytes that are not valid UTF-8 count as one character each and only match
// the same byte.
package pronounce

import (
	"strings"
	"unicode/utf8"
)

// MaxInputRunes bounds the length of each normalized input that takes part in
// the subsequence computation. Longer inputs are truncated after the exact-match
// check, which keeps the worst case at MaxInputRunes^2 comparisons.
const MaxInputRunes = 256

// Score returns a similarity score in [0, 1] between recognized and target.
//
// Both inputs are trimmed and ASCII-lowercased first. An empty recognized string
// scores 0, an exact match scores 1, everything else scores 2*L/(|a|+|b|)
// where L is the LCS length in characters. An empty target never matches a
// non-empty attempt.
func Score(recognized, target string) float64 {
	a := normalize(recognized)
	if a == "" {
		return 0
	}
	b := normalize(target)
	if a == b {
		return 1
	}

	ra := truncate(symbols(a))
	rb := truncate(symbols(b))
	if len(rb) == 0 {
		return 0
	}

	l := lcsRunes(ra, rb)
	return clamp(2 * float64(l) / float64(len(ra)+len(rb)))
}

// LCSLength returns the length, in characters, of the longest common
// subsequence of a and b. No normalization is applied.
func LCSLength(a, b string) int {
	return lcsRunes(symbols(a), symbols(b))
}

// lcsRunes keeps two rows of the (m+1)x(n+1) table; only the length is needed.
func lcsRunes(a, b []rune) int {
	m, n := len(a), len(b)
	if m == 0 || n == 0 {
		return 0
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return foldFrom(s, i)
		}
	}
	return s
}

func foldFrom(s string, i int) string {
	b := []byte(s)
	for ; i < len(b); i++ {
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// invalidBase places undecodable bytes above the Unicode range so each one
// stays distinct instead of collapsing into utf8.RuneError.
const invalidBase = utf8.MaxRune + 1

func symbols(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = invalidBase + rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

func truncate(r []rune) []rune {
	if len(r) > MaxInputRunes {
		return r[:MaxInputRunes]
	}
	return r
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
