package splitengine

// FindBestRandomSplit draws one random threshold per candidate feature,
// instead of exhaustively sweeping every admissible threshold, and
// returns the best of those draws. Same pre/postconditions as
// FindBestSplit. rng's uniform draw is consulted exactly once per
// candidate feature that is not skipped; a feature with fewer than two
// masked rows, or whose first and last masked values are equal, is skipped
// without a draw.
func FindBestRandomSplit(X *FeatureMatrix, y *YTensor, argsorted *ArgsortMatrix, mask SampleMask, nSamples, minLeaf, maxFeatures int, criterion Criterion, rng Rand) (SplitResult, error) {
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
		if a == -1 {
			continue
		}
		b := lastMaskedPosition(argCol, mask)
		if b <= a || col[argCol[a]] == col[argCol[b]] {
			continue
		}

		lo, hi := col[argCol[a]], col[argCol[b]]
		u := rng.Float64()
		threshold := lo + u*(hi-lo)
		if threshold >= hi {
			threshold = lo
		}

		c := b
		for cursor := a + 1; cursor < len(argCol); cursor++ {
			s := argCol[cursor]
			if !mask.Active(int(s)) {
				continue
			}
			if col[s] > threshold {
				c = cursor
				break
			}
		}

		nLeft := criterion.Update(0, c, y, argCol, mask)
		if nLeft < minLeaf || nSamples-nLeft < minLeaf {
			continue
		}
		errVal := criterion.Eval()
		if errVal < result.BestError {
			bestFound = true
			result.FeatureIndex = i
			result.Threshold = threshold
			result.BestError = errVal
		}
	}

	result.InitialError = initialError
	if !bestFound {
		return noSplitResult(initialError), nil
	}
	return result, nil
}
