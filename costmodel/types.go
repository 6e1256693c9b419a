package costmodel

import "errors"

// Sentinel errors for costmodel package operations.
var (
	// ErrNegativeDelay indicates a transition produced T_linear < 0, which
	// would mean a negative intrinsic switch delay or capacitance — a
	// caller/data bug, never a legitimate sample.
	ErrNegativeDelay = errors.New("costmodel: negative linear delay")

	// ErrNegativeCongestion indicates a transition produced a negative
	// congestion contribution.
	ErrNegativeCongestion = errors.New("costmodel: negative congestion contribution")

	// ErrNonPositiveSample indicates Expansion.Representative(RuleGeometricMean)
	// was asked to reduce a non-positive sample; geometric mean is undefined
	// there, and the caller is expected to have skipped such samples.
	ErrNonPositiveSample = errors.New("costmodel: geometric mean requires strictly positive samples")
)

// Entry is one (delay, congestion) cost pair, with a validity flag
// distinguishing "no sample observed, no extrapolation yet" from a real or
// extrapolated value.
type Entry struct {
	Delay      float64
	Congestion float64
	Valid      bool
}

// InvalidEntry is the zero-value-equivalent invalid cost entry.
var InvalidEntry = Entry{}

// Rule selects how an Expansion reduces its samples to one representative
// Entry.
type Rule int

const (
	// RuleSmallestDelay picks the sample with the smallest delay; ties keep
	// the first-inserted sample. This is the build pipeline's default.
	RuleSmallestDelay Rule = iota
	// RuleArithmeticMean takes the componentwise mean over all samples.
	RuleArithmeticMean
	// RuleGeometricMean takes the componentwise exp(mean(log(x))); every
	// sample must be strictly positive.
	RuleGeometricMean
	// RuleBinnedMode partitions delays into 10 equal-width bins and returns
	// the first sample deposited in the most populated bin (ties: lowest
	// bin index).
	RuleBinnedMode
)

// String renders a Rule for logs and test failure messages.
func (r Rule) String() string {
	switch r {
	case RuleSmallestDelay:
		return "smallest-delay"
	case RuleArithmeticMean:
		return "arithmetic-mean"
	case RuleGeometricMean:
		return "geometric-mean"
	case RuleBinnedMode:
		return "binned-mode"
	default:
		return "unknown"
	}
}
