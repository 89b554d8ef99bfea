package pronounce

import (
	"math"
	"strings"

	"github.com/antzucaro/matchr"
)

const defaultPassThreshold = 0.8

// Assessment is the feedback produced for a single attempt.
type Assessment struct {
	Score float64
	// Passed reports whether Score reached the assessor's pass threshold.
	Passed bool
	// SoundsAlike is true when the attempt and the target share a Double
	// Metaphone code, i.e. they are likely to sound the same even if spelled
	// differently ("kat" vs "cat").
	SoundsAlike bool
	// Stars is the score on a 0..5 scale, rounded up.
	Stars int
}

// Option configures an [Assessor].
type Option func(*Assessor)

// WithPassThreshold sets the minimum score counted as a pass. Values outside
// [0, 1] are clamped. Default: 0.8.
func WithPassThreshold(threshold float64) Option {
	return func(a *Assessor) {
		a.passThreshold = clamp(threshold)
	}
}

// WithPhoneticCheck enables or disables the SoundsAlike check. Default: enabled.
func WithPhoneticCheck(enabled bool) Option {
	return func(a *Assessor) {
		a.phonetic = enabled
	}
}

// Assessor turns a raw [Score] into child-facing feedback. It is read-only
// after construction and safe for concurrent use.
type Assessor struct {
	passThreshold float64
	phonetic      bool
}

// NewAssessor returns an Assessor configured with opts.
func NewAssessor(opts ...Option) *Assessor {
	a := &Assessor{
		passThreshold: defaultPassThreshold,
		phonetic:      true,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// PassThreshold returns the configured pass threshold.
func (a *Assessor) PassThreshold() float64 {
	return a.passThreshold
}

// Assess scores recognized against target and derives the feedback fields.
func (a *Assessor) Assess(recognized, target string) Assessment {
	score := Score(recognized, target)

	res := Assessment{
		Score:  score,
		Passed: score > 0 && score >= a.passThreshold,
		Stars:  stars(score),
	}
	if a.phonetic && score > 0 {
		res.SoundsAlike = SoundsAlike(recognized, target)
	}
	return res
}

// SoundsAlike reports whether any word of a shares a Double Metaphone code
// with any word of b. Inputs are normalized the same way as in [Score].
func SoundsAlike(a, b string) bool {
	ca := metaphoneCodes(normalize(a))
	cb := metaphoneCodes(normalize(b))
	if len(ca) == 0 || len(cb) == 0 {
		return false
	}

	if len(ca) > len(cb) {
		ca, cb = cb, ca
	}
	for code := range ca {
		if _, ok := cb[code]; ok {
			return true
		}
	}
	return false
}

func metaphoneCodes(s string) map[string]struct{} {
	tokens := strings.Fields(s)
	codes := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		primary, secondary := matchr.DoubleMetaphone(t)
		if primary != "" {
			codes[primary] = struct{}{}
		}
		if secondary != "" {
			codes[secondary] = struct{}{}
		}
	}
	return codes
}

// stars maps [0,1] onto 0..5. The epsilon keeps exact multiples of 0.2 from
// rounding up a full star.
func stars(score float64) int {
	if score <= 0 {
		return 0
	}
	n := int(math.Ceil(score*5 - 1e-9))
	return min(max(n, 0), 5)
}
