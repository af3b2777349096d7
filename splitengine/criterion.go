package splitengine

import "gonum.org/v1/gonum/mat"

// LeafValue is the statistic a criterion uses to label a leaf over its
// current masked set. Exactly one field is populated, depending on
// whether the criterion is a classification or a regression variant.
type LeafValue struct {
	// ClassCounts holds per-class counts for classification criteria.
	ClassCounts []int32
	// Means holds a (K,1) column of per-output means for regression
	// criteria.
	Means *mat.Dense
}

// Criterion is a stateful impurity accumulator. A criterion is created
// once per tree (or per split call), then driven through Init once per
// node, Reset once per candidate feature, and Update repeatedly as the
// sweep walks a feature's presorted index. A criterion must not carry
// state between unrelated nodes except through Init, and a criterion is
// owned by exactly one caller's goroutine: it is not safe to share across
// concurrent split searches.
type Criterion interface {
	// Init recomputes aggregate statistics over the masked subset of
	// [0,nTotal), leaves every sample on the right side, and calls
	// Reset. nSamples is the trusted popcount of mask.
	Init(y *YTensor, mask SampleMask, nSamples, nTotal int) error

	// Reset moves every sample back to the right side without
	// rereading y. It is called once per candidate feature, between
	// Init and the first Update of that feature's sweep.
	Reset()

	// Update moves every masked sample s = argsortedColumn[k], for k
	// in [a,b), from the right accumulator to the left one, and
	// returns the resulting n_left. It is the hot path: O(b-a) work,
	// no allocation.
	Update(a, b int, y *YTensor, argsortedColumn []int32, mask SampleMask) (nLeft int)

	// Eval returns the impurity of the current left/right partition.
	// Lower is better. Called right after Init or Reset, with every
	// sample on the right, it returns the impurity of the whole node.
	Eval() float64

	// InitValue returns the statistic that labels a leaf spanning the
	// masked set Init was last called with.
	InitValue() LeafValue
}
