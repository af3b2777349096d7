package splitengine

import (
	"math"
	"testing"
)

func TestMSEResetMatchesPostInit(t *testing.T) {
	X, y, argsorted, mask := buildRegressionInputs(t, []float64{0, 1, 2, 3}, []float64{1, 2, 3, 4})
	criterion := NewMSECriterion(1)
	if err := criterion.Init(y, mask, 4, 4); err != nil {
		t.Fatal(err)
	}
	wantMeanRight := criterion.meanRight.At(0, 0)
	wantSqSumRight := criterion.sqSumRight.At(0, 0)
	wantNLeft, wantNRight := criterion.nLeft, criterion.nRight

	col := X.Column(0)
	argCol := argsorted.Column(0)
	a := smallestSampleLargerThan(-1, col, argCol, mask)
	criterion.Update(a, smallestSampleLargerThan(a, col, argCol, mask), y, argCol, mask)

	criterion.Reset()
	if got := criterion.meanRight.At(0, 0); got != wantMeanRight {
		t.Fatalf("mean_right after reset = %v, want %v", got, wantMeanRight)
	}
	if got := criterion.sqSumRight.At(0, 0); got != wantSqSumRight {
		t.Fatalf("sq_sum_right after reset = %v, want %v", got, wantSqSumRight)
	}
	if criterion.nLeft != wantNLeft || criterion.nRight != wantNRight {
		t.Fatalf("(nLeft,nRight) after reset = (%d,%d), want (%d,%d)", criterion.nLeft, criterion.nRight, wantNLeft, wantNRight)
	}
}

// Invariant 4: re-running Init and manually partitioning on the reported
// (best_i, best_t) must reproduce best_error bit-for-bit, for both a
// classification and a regression criterion.
func TestFindBestSplitManualPartitionReproducesError(t *testing.T) {
	cases := []struct {
		name      string
		criterion func() Criterion
		x         []float64
		targets   func(i int) float64
	}{
		{
			name:      "gini",
			criterion: func() Criterion { return NewGiniCriterion(2) },
			x:         []float64{0, 1, 2, 3, 4, 5},
			targets:   func(i int) float64 { return float64([]int{0, 0, 0, 1, 1, 1}[i]) },
		},
		{
			name:      "mse",
			criterion: func() Criterion { return NewMSECriterion(1) },
			x:         []float64{0, 1, 2, 3, 4, 5},
			targets:   func(i int) float64 { return []float64{0, 1, 2, 10, 11, 12}[i] },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.x)
			X := NewFeatureMatrixFromColumns(n, [][]float64{tc.x})
			y := NewYTensor(n, 1, 1, 1)
			for i := 0; i < n; i++ {
				y.Sample(i)[0] = tc.targets(i)
			}
			argsorted := BuildArgsort(X)
			mask := allMasked(n)

			result, err := FindBestSplit(X, y, argsorted, mask, n, 1, -1, tc.criterion(), nil)
			if err != nil {
				t.Fatal(err)
			}
			if result.FeatureIndex < 0 {
				t.Fatalf("expected an admissible split, got %+v", result)
			}

			manualMask := NewSampleMask(n)
			for i := 0; i < n; i++ {
				manualMask.Set(i, true)
			}
			// Take the chosen feature's column and presorted index so
			// Update can be driven directly.
			col := X.Column(result.FeatureIndex)
			argCol := argsorted.Column(result.FeatureIndex)

			manual := tc.criterion()
			if err := manual.Init(y, manualMask, n, n); err != nil {
				t.Fatal(err)
			}
			manual.Reset()
			splitPos := 0
			for k := 0; k < n; k++ {
				if col[argCol[k]] <= result.Threshold {
					splitPos = k + 1
				}
			}
			manual.Update(0, splitPos, y, argCol, manualMask)
			got := manual.Eval()

			if got != result.BestError {
				t.Fatalf("manual partition error = %v, want bit-for-bit %v", got, result.BestError)
			}
		})
	}
}

func TestGiniAndEntropyAgreeOnBinaryPureSplit(t *testing.T) {
	_, y, _, mask := buildClassificationInputs(t, []float64{0, 1}, []int{3, 3})
	for _, criterion := range []Criterion{NewGiniCriterion(5), NewEntropyCriterion(5)} {
		if err := criterion.Init(y, mask, 2, 2); err != nil {
			t.Fatal(err)
		}
		if got := criterion.Eval(); got != 0 {
			t.Fatalf("%T: eval of a pure two-row node = %v, want 0", criterion, got)
		}
	}
}

func TestEntropySkipsZeroCounts(t *testing.T) {
	counts := []int32{0, 4, 0, 6}
	h := entropySide(counts, 10)
	if h < 0 || math.IsNaN(h) {
		t.Fatalf("entropy with zero counts present = %v, want a finite non-negative value", h)
	}
}
