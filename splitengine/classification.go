package splitengine

import (
	"fmt"
	"math"
)

// classificationBase holds the per-class counts shared by every
// classification criterion variant. It implements the Init/Reset/Update
// machinery once; Gini and Entropy differ only in Eval, the same shape a
// boosting loop's loss variants (MSE loss / log loss) take when they
// share accumulator plumbing.
type classificationBase struct {
	nClasses                                         int
	labelCountInit, labelCountLeft, labelCountRight []int32
	nSamples, nLeft, nRight                          int
}

func newClassificationBase(nClasses int) classificationBase {
	return classificationBase{
		nClasses:        nClasses,
		labelCountInit:  make([]int32, nClasses),
		labelCountLeft:  make([]int32, nClasses),
		labelCountRight: make([]int32, nClasses),
	}
}

func (c *classificationBase) init(y *YTensor, mask SampleMask, nSamples, nTotal int) error {
	if len(mask) != nTotal {
		return fmt.Errorf("%w: mask has length %d, want %d", ErrInvalidShape, len(mask), nTotal)
	}
	for k := range c.labelCountInit {
		c.labelCountInit[k] = 0
	}
	for i := 0; i < nTotal; i++ {
		if !mask.Active(i) {
			continue
		}
		class := y.ClassOf(i)
		if class < 0 || class >= c.nClasses {
			return fmt.Errorf("%w: class id %d out of range [0,%d)", ErrInvalidShape, class, c.nClasses)
		}
		c.labelCountInit[class]++
	}
	c.nSamples = nSamples
	c.reset()
	return nil
}

func (c *classificationBase) reset() {
	c.nLeft = 0
	c.nRight = c.nSamples
	for k := range c.labelCountInit {
		c.labelCountLeft[k] = 0
		c.labelCountRight[k] = c.labelCountInit[k]
	}
}

func (c *classificationBase) update(a, b int, y *YTensor, argsortedColumn []int32, mask SampleMask) int {
	for k := a; k < b; k++ {
		s := argsortedColumn[k]
		if !mask.Active(int(s)) {
			continue
		}
		class := y.ClassOf(int(s))
		c.labelCountRight[class]--
		c.labelCountLeft[class]++
		c.nLeft++
		c.nRight--
	}
	return c.nLeft
}

func (c *classificationBase) initValue() []int32 {
	return append([]int32(nil), c.labelCountInit...)
}

func giniSide(counts []int32, nSide int) float64 {
	if nSide == 0 {
		return 0
	}
	sumSq := 0.0
	for _, count := range counts {
		c := float64(count)
		sumSq += c * c
	}
	return float64(nSide) - sumSq/float64(nSide)
}

func entropySide(counts []int32, nSide int) float64 {
	if nSide == 0 {
		return 0
	}
	h := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(nSide)
		h -= p * math.Log(p)
	}
	return h
}

// GiniCriterion measures impurity with the Gini index: on a side of size
// n_s with per-class counts c_k, G_side = n_s - (sum c_k^2)/n_s, and the
// reported score is (G_left + G_right) / n.
type GiniCriterion struct {
	classificationBase
}

// NewGiniCriterion constructs a Gini criterion over the given number of
// classes.
func NewGiniCriterion(nClasses int) *GiniCriterion {
	return &GiniCriterion{classificationBase: newClassificationBase(nClasses)}
}

func (c *GiniCriterion) Init(y *YTensor, mask SampleMask, nSamples, nTotal int) error {
	return c.init(y, mask, nSamples, nTotal)
}
func (c *GiniCriterion) Reset() { c.reset() }
func (c *GiniCriterion) Update(a, b int, y *YTensor, argsortedColumn []int32, mask SampleMask) int {
	return c.update(a, b, y, argsortedColumn, mask)
}
func (c *GiniCriterion) Eval() float64 {
	if c.nSamples == 0 {
		return 0
	}
	gLeft := giniSide(c.labelCountLeft, c.nLeft)
	gRight := giniSide(c.labelCountRight, c.nRight)
	return (gLeft + gRight) / float64(c.nSamples)
}
func (c *GiniCriterion) InitValue() LeafValue { return LeafValue{ClassCounts: c.initValue()} }

// EntropyCriterion measures impurity with Shannon entropy: H_side =
// -sum (c_k/n_s) ln(c_k/n_s), skipping empty classes, and the reported
// score is the size-weighted average of the two sides.
type EntropyCriterion struct {
	classificationBase
}

// NewEntropyCriterion constructs an entropy criterion over the given
// number of classes.
func NewEntropyCriterion(nClasses int) *EntropyCriterion {
	return &EntropyCriterion{classificationBase: newClassificationBase(nClasses)}
}

func (c *EntropyCriterion) Init(y *YTensor, mask SampleMask, nSamples, nTotal int) error {
	return c.init(y, mask, nSamples, nTotal)
}
func (c *EntropyCriterion) Reset() { c.reset() }
func (c *EntropyCriterion) Update(a, b int, y *YTensor, argsortedColumn []int32, mask SampleMask) int {
	return c.update(a, b, y, argsortedColumn, mask)
}
func (c *EntropyCriterion) Eval() float64 {
	if c.nSamples == 0 {
		return 0
	}
	hLeft := entropySide(c.labelCountLeft, c.nLeft)
	hRight := entropySide(c.labelCountRight, c.nRight)
	return (float64(c.nLeft)*hLeft + float64(c.nRight)*hRight) / float64(c.nSamples)
}
func (c *EntropyCriterion) InitValue() LeafValue { return LeafValue{ClassCounts: c.initValue()} }
