package costmodel

import "math"

// Expansion is the mutable sample accumulator for one (segment, Δx, Δy)
// bucket (C1). Samples are pushed with Add and reduced with Representative,
// which leaves the accumulator unchanged so it may be queried more than
// once under different rules (the build pipeline only ever asks once, but
// nothing prevents it). An Expansion is owned by the costmap builder stack
// frame for the duration of one SetCostMap call and never escapes it.
type Expansion struct {
	delay      []float64
	congestion []float64
}

// Add pushes one observed (delay, congestion) sample. It takes no rule:
// storage is the same for every rule, and every rule reduces over the same
// underlying multiset.
func (e *Expansion) Add(delay, congestion float64) {
	e.delay = append(e.delay, delay)
	e.congestion = append(e.congestion, congestion)
}

// Len reports the number of samples deposited so far.
func (e *Expansion) Len() int {
	return len(e.delay)
}

// Representative reduces the accumulated samples to one Entry under rule.
// An empty Expansion always returns InvalidEntry regardless of rule.
func (e *Expansion) Representative(rule Rule) Entry {
	if len(e.delay) == 0 {
		return InvalidEntry
	}

	switch rule {
	case RuleArithmeticMean:
		return e.arithmeticMean()
	case RuleGeometricMean:
		return e.geometricMean()
	case RuleBinnedMode:
		return e.binnedMode()
	default:
		return e.smallestDelay()
	}
}

func (e *Expansion) smallestDelay() Entry {
	best := 0
	for i := 1; i < len(e.delay); i++ {
		if e.delay[i] < e.delay[best] {
			best = i
		}
	}

	return Entry{Delay: e.delay[best], Congestion: e.congestion[best], Valid: true}
}

func (e *Expansion) arithmeticMean() Entry {
	var sumDelay, sumCongestion float64
	for i := range e.delay {
		sumDelay += e.delay[i]
		sumCongestion += e.congestion[i]
	}
	n := float64(len(e.delay))

	return Entry{Delay: sumDelay / n, Congestion: sumCongestion / n, Valid: true}
}

// geometricMean requires every sample to be strictly positive. The build
// pipeline's responsibility is to skip zero/negative samples before calling
// this rule (§9's numeric-robustness note); samples that slip through are
// silently excluded from the product rather than poisoning it with -Inf,
// since a bucket that happens to contain one zero sample should not become
// entirely invalid.
func (e *Expansion) geometricMean() Entry {
	var sumLogDelay, sumLogCongestion float64
	var nDelay, nCongestion int

	for i := range e.delay {
		if e.delay[i] > 0 {
			sumLogDelay += math.Log(e.delay[i])
			nDelay++
		}
		if e.congestion[i] > 0 {
			sumLogCongestion += math.Log(e.congestion[i])
			nCongestion++
		}
	}

	if nDelay == 0 {
		return InvalidEntry
	}

	delay := math.Exp(sumLogDelay / float64(nDelay))

	var congestion float64
	if nCongestion > 0 {
		congestion = math.Exp(sumLogCongestion / float64(nCongestion))
	}

	return Entry{Delay: delay, Congestion: congestion, Valid: true}
}

// binnedMode partitions the observed delays into 10 equal-width bins
// between min and max delay and returns the first sample deposited in the
// most populated bin, ties going to the lowest bin index. A delay exactly
// equal to the maximum lands in the top bin rather than a phantom 11th.
func (e *Expansion) binnedMode() Entry {
	const numBins = 10

	minDelay, maxDelay := e.delay[0], e.delay[0]
	for _, d := range e.delay[1:] {
		if d < minDelay {
			minDelay = d
		}
		if d > maxDelay {
			maxDelay = d
		}
	}

	width := maxDelay - minDelay
	counts := make([]int, numBins)
	firstIndex := make([]int, numBins)
	for i := range firstIndex {
		firstIndex[i] = -1
	}

	for i, d := range e.delay {
		var bin int
		if width == 0 {
			bin = 0
		} else {
			bin = int((d - minDelay) / width * numBins)
			if bin >= numBins {
				bin = numBins - 1
			}
		}
		counts[bin]++
		if firstIndex[bin] < 0 {
			firstIndex[bin] = i
		}
	}

	best := 0
	for b := 1; b < numBins; b++ {
		if counts[b] > counts[best] {
			best = b
		}
	}

	idx := firstIndex[best]

	return Entry{Delay: e.delay[idx], Congestion: e.congestion[idx], Valid: true}
}
