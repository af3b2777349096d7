package splitengine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MSECriterion is the regression impurity criterion. It maintains, for
// every flattened output o in [0,K), a running mean and sum-of-squares on
// each side, updated incrementally per sweep step the way a boosting
// loop maintains accumGrad/accumHess: a (K,1) *mat.Dense column rather
// than a bare slice, so the same gonum machinery used everywhere else in
// the engine also carries the per-output statistics.
type MSECriterion struct {
	k int

	meanInit, meanLeft, meanRight    *mat.Dense
	sqSumInit, sqSumLeft, sqSumRight *mat.Dense
	varLeft, varRight                *mat.Dense

	nSamples, nLeft, nRight int
}

// NewMSECriterion constructs an MSE criterion over k flattened outputs
// (k = K1*K2*K3).
func NewMSECriterion(k int) *MSECriterion {
	return &MSECriterion{
		k:          k,
		meanInit:   mat.NewDense(k, 1, nil),
		meanLeft:   mat.NewDense(k, 1, nil),
		meanRight:  mat.NewDense(k, 1, nil),
		sqSumInit:  mat.NewDense(k, 1, nil),
		sqSumLeft:  mat.NewDense(k, 1, nil),
		sqSumRight: mat.NewDense(k, 1, nil),
		varLeft:    mat.NewDense(k, 1, nil),
		varRight:   mat.NewDense(k, 1, nil),
	}
}

func (c *MSECriterion) Init(y *YTensor, mask SampleMask, nSamples, nTotal int) error {
	if len(mask) != nTotal {
		return fmt.Errorf("%w: mask has length %d, want %d", ErrInvalidShape, len(mask), nTotal)
	}
	if y.OutputWidth() != c.k {
		return fmt.Errorf("%w: target has %d outputs, criterion expects %d", ErrInvalidShape, y.OutputWidth(), c.k)
	}

	for o := 0; o < c.k; o++ {
		c.meanInit.Set(o, 0, 0)
		c.sqSumInit.Set(o, 0, 0)
	}
	for i := 0; i < nTotal; i++ {
		if !mask.Active(i) {
			continue
		}
		sample := y.Sample(i)
		for o := 0; o < c.k; o++ {
			v := sample[o]
			c.meanInit.Set(o, 0, c.meanInit.At(o, 0)+v)
			c.sqSumInit.Set(o, 0, c.sqSumInit.At(o, 0)+v*v)
		}
	}
	if nSamples > 0 {
		for o := 0; o < c.k; o++ {
			c.meanInit.Set(o, 0, c.meanInit.At(o, 0)/float64(nSamples))
		}
	}
	c.nSamples = nSamples
	c.reset()
	return nil
}

func (c *MSECriterion) reset() {
	c.nLeft = 0
	c.nRight = c.nSamples
	for o := 0; o < c.k; o++ {
		c.meanLeft.Set(o, 0, 0)
		c.sqSumLeft.Set(o, 0, 0)
		c.meanRight.Set(o, 0, c.meanInit.At(o, 0))
		c.sqSumRight.Set(o, 0, c.sqSumInit.At(o, 0))
		mi := c.meanInit.At(o, 0)
		c.varLeft.Set(o, 0, 0)
		c.varRight.Set(o, 0, c.sqSumInit.At(o, 0)-float64(c.nSamples)*mi*mi)
	}
}

func (c *MSECriterion) Reset() { c.reset() }

func (c *MSECriterion) Update(a, b int, y *YTensor, argsortedColumn []int32, mask SampleMask) int {
	for k := a; k < b; k++ {
		s := argsortedColumn[k]
		if !mask.Active(int(s)) {
			continue
		}
		sample := y.Sample(int(s))
		nLeftOld := c.nLeft
		nRightOld := c.nRight
		for o := 0; o < c.k; o++ {
			v := sample[o]

			c.sqSumLeft.Set(o, 0, c.sqSumLeft.At(o, 0)+v*v)
			c.sqSumRight.Set(o, 0, c.sqSumRight.At(o, 0)-v*v)

			c.meanLeft.Set(o, 0, (float64(nLeftOld)*c.meanLeft.At(o, 0)+v)/float64(nLeftOld+1))
			if nRightOld-1 > 0 {
				c.meanRight.Set(o, 0, (float64(nRightOld)*c.meanRight.At(o, 0)-v)/float64(nRightOld-1))
			} else {
				// The right side becomes empty; mean_right is
				// no longer meaningful and the driver must not
				// call Eval again before the next Reset.
				c.meanRight.Set(o, 0, 0)
			}
		}
		c.nLeft++
		c.nRight--
	}

	for o := 0; o < c.k; o++ {
		ml := c.meanLeft.At(o, 0)
		mr := c.meanRight.At(o, 0)
		c.varLeft.Set(o, 0, c.sqSumLeft.At(o, 0)-float64(c.nLeft)*ml*ml)
		c.varRight.Set(o, 0, c.sqSumRight.At(o, 0)-float64(c.nRight)*mr*mr)
	}

	return c.nLeft
}

func (c *MSECriterion) Eval() float64 {
	total := 0.0
	for o := 0; o < c.k; o++ {
		total += c.varLeft.At(o, 0) + c.varRight.At(o, 0)
	}
	return total
}

func (c *MSECriterion) InitValue() LeafValue {
	return LeafValue{Means: mat.DenseCopyOf(c.meanInit)}
}
