package splitengine

import "math"

// SplitResult is the outcome of a split search: the feature and threshold
// that minimize the criterion, the error at that split, and the node's
// own impurity before any split was tried. FeatureIndex is -1 when no
// split beats the node's own impurity, either because the node is pure
// (BestError == 0 == InitialError) or because every candidate violated
// minLeaf (BestError == InitialError, Threshold left at its +Inf
// sentinel).
type SplitResult struct {
	FeatureIndex int
	Threshold    float64
	BestError    float64
	InitialError float64
}

func pureResult() SplitResult {
	return SplitResult{FeatureIndex: -1, Threshold: math.Inf(1), BestError: 0, InitialError: 0}
}

func noSplitResult(initialError float64) SplitResult {
	return SplitResult{FeatureIndex: -1, Threshold: math.Inf(1), BestError: initialError, InitialError: initialError}
}

// candidateFeatures returns the feature indices to sweep: every feature
// in natural order when maxFeatures is negative or covers every column,
// otherwise the first maxFeatures entries of a uniform random permutation
// of [0,d). The permutation is a single Fisher-Yates shuffle, which calls
// rng.Intn d-1 times.
func candidateFeatures(d, maxFeatures int, rng Rand) []int {
	if maxFeatures < 0 || maxFeatures >= d {
		all := make([]int, d)
		for i := range all {
			all[i] = i
		}
		return all
	}

	perm := make([]int, d)
	for i := range perm {
		perm[i] = i
	}
	for i := d - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:maxFeatures]
}

// FindBestSplit exhaustively sweeps every candidate feature's presorted
// column, advancing the criterion incrementally over runs of distinct
// values, and returns the split that minimizes the criterion. Ties in
// error are broken by iteration order over the candidate feature list and
// by the earliest admissible threshold within a feature; both orderings
// are fixed and must not be reordered for parallelism (Non-goal: this
// search is single-threaded over features).
//
// rng is only consulted when maxFeatures restricts the candidate set
// below D; callers that always pass maxFeatures < 0 may pass a nil rng.
func FindBestSplit(X *FeatureMatrix, y *YTensor, argsorted *ArgsortMatrix, mask SampleMask, nSamples, minLeaf, maxFeatures int, criterion Criterion, rng Rand) (SplitResult, error) {
	if nSamples <= 0 {
		return SplitResult{}, ErrInvalidShape
	}
	if err := validateLayout(X, argsorted, mask); err != nil {
		return SplitResult{}, err
	}

	if err := criterion.Init(y, mask, nSamples, X.n); err != nil {
		return SplitResult{}, err
	}
	initialError := criterion.Eval()
	if initialError == 0 {
		return pureResult(), nil
	}

	candidates := candidateFeatures(X.d, maxFeatures, rng)

	result := noSplitResult(initialError)
	bestFound := false

	for _, i := range candidates {
		criterion.Reset()
		col := X.Column(i)
		argCol := argsorted.Column(i)

		a := smallestSampleLargerThan(-1, col, argCol, mask)
		for a != -1 {
			b := smallestSampleLargerThan(a, col, argCol, mask)
			if b == -1 {
				break
			}
			nLeft := criterion.Update(a, b, y, argCol, mask)
			if nLeft < minLeaf || nSamples-nLeft < minLeaf {
				a = b
				continue
			}
			errVal := criterion.Eval()
			if errVal < result.BestError {
				bestFound = true
				threshold := col[argCol[a]] + (col[argCol[b]]-col[argCol[a]])/2
				if threshold == col[argCol[b]] {
					threshold = col[argCol[a]]
				}
				result.FeatureIndex = i
				result.Threshold = threshold
				result.BestError = errVal
			}
			a = b
		}
	}

	result.InitialError = initialError
	if !bestFound {
		return noSplitResult(initialError), nil
	}
	return result, nil
}
