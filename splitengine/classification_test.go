package splitengine

import "testing"

// After Reset, a classification criterion's state must equal what Init
// produced immediately before: every sample back on the right, none on
// the left.
func TestClassificationResetMatchesPostInit(t *testing.T) {
	X, y, argsorted, mask := buildClassificationInputs(t, []float64{0, 1, 2, 3}, []int{0, 1, 0, 1})
	criterion := NewGiniCriterion(2)
	if err := criterion.Init(y, mask, 4, 4); err != nil {
		t.Fatal(err)
	}

	afterInit := append([]int32(nil), criterion.labelCountRight...)
	nLeftAfterInit, nRightAfterInit := criterion.nLeft, criterion.nRight

	col := X.Column(0)
	argCol := argsorted.Column(0)
	a := smallestSampleLargerThan(-1, col, argCol, mask)
	criterion.Update(a, smallestSampleLargerThan(a, col, argCol, mask), y, argCol, mask)

	criterion.Reset()
	for k, v := range criterion.labelCountRight {
		if v != afterInit[k] {
			t.Fatalf("label_count_right[%d] after reset = %d, want %d", k, v, afterInit[k])
		}
	}
	if criterion.nLeft != nLeftAfterInit || criterion.nRight != nRightAfterInit {
		t.Fatalf("(nLeft,nRight) after reset = (%d,%d), want (%d,%d)", criterion.nLeft, criterion.nRight, nLeftAfterInit, nRightAfterInit)
	}
}

// Invariant 1: label_count_left[k] + label_count_right[k] ==
// label_count_init[k] must hold at every sweep position.
func TestClassificationCountsPartitionInit(t *testing.T) {
	_, y, argsorted, mask := buildClassificationInputs(t, []float64{0, 1, 2, 3, 4, 5}, []int{0, 1, 2, 0, 1, 2})
	criterion := NewGiniCriterion(3)
	if err := criterion.Init(y, mask, 6, 6); err != nil {
		t.Fatal(err)
	}

	argCol := argsorted.Column(0)
	col := []float64{0, 1, 2, 3, 4, 5}

	a := smallestSampleLargerThan(-1, col, argCol, mask)
	for a != -1 {
		b := smallestSampleLargerThan(a, col, argCol, mask)
		if b == -1 {
			break
		}
		criterion.Update(a, b, y, argCol, mask)
		for k := range criterion.labelCountInit {
			if criterion.labelCountLeft[k]+criterion.labelCountRight[k] != criterion.labelCountInit[k] {
				t.Fatalf("class %d: left(%d)+right(%d) != init(%d)", k, criterion.labelCountLeft[k], criterion.labelCountRight[k], criterion.labelCountInit[k])
			}
		}
		if criterion.nLeft+criterion.nRight != criterion.nSamples {
			t.Fatalf("nLeft(%d)+nRight(%d) != nSamples(%d)", criterion.nLeft, criterion.nRight, criterion.nSamples)
		}
		a = b
	}
}

func TestEntropyPureNodeIsZero(t *testing.T) {
	_, y, _, mask := buildClassificationInputs(t, []float64{0, 1, 2}, []int{4, 4, 4})
	criterion := NewEntropyCriterion(5)
	if err := criterion.Init(y, mask, 3, 3); err != nil {
		t.Fatal(err)
	}
	if got := criterion.Eval(); got != 0 {
		t.Fatalf("entropy of a pure node = %v, want 0", got)
	}
}
