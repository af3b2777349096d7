package splitengine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tree is the parallel-array tree representation ApplyTree and
// PredictTree descend. Children[node] is {-1,-1} for a leaf, otherwise
// the ids of the left and right child nodes. Values holds one row per
// node id that is a leaf; rows for internal nodes are unused.
type Tree struct {
	Children  [][2]int32
	Feature   []int32
	Threshold []float64
	Values    *mat.Dense
}

func (t *Tree) isLeaf(node int32) bool {
	c := t.Children[node]
	return c[0] == -1 && c[1] == -1
}

// descend routes row r from the root to the leaf it belongs in, using
// X[r, feature[node]] <= threshold[node] to pick the left child and the
// complement to pick the right.
func (t *Tree) descend(X *FeatureMatrix, r int) int32 {
	node := int32(0)
	for !t.isLeaf(node) {
		if X.At(r, int(t.Feature[node])) <= t.Threshold[node] {
			node = t.Children[node][0]
		} else {
			node = t.Children[node][1]
		}
	}
	return node
}

// ApplyTree routes every row of X to the leaf it reaches and writes the
// leaf's node id into out, which must have length X's row count.
func ApplyTree(X *FeatureMatrix, tree *Tree, out []int32) error {
	n, _ := X.Dims()
	if len(out) != n {
		return fmt.Errorf("%w: out has length %d, want %d", ErrInvalidShape, len(out), n)
	}
	for r := 0; r < n; r++ {
		out[r] = tree.descend(X, r)
	}
	return nil
}

// PredictTree routes every row of X to its leaf and copies that leaf's
// value row into pred.
func PredictTree(X *FeatureMatrix, tree *Tree, pred *mat.Dense) error {
	n, _ := X.Dims()
	predRows, predCols := pred.Dims()
	if predRows != n {
		return fmt.Errorf("%w: pred has %d rows, want %d", ErrInvalidShape, predRows, n)
	}
	_, valueCols := tree.Values.Dims()
	if predCols != valueCols {
		return fmt.Errorf("%w: pred has %d columns, want %d", ErrInvalidShape, predCols, valueCols)
	}

	for r := 0; r < n; r++ {
		leaf := tree.descend(X, r)
		for o := 0; o < valueCols; o++ {
			pred.Set(r, o, tree.Values.At(int(leaf), o))
		}
	}
	return nil
}

// ErrorAtLeaf evaluates criterion's impurity over the masked set as if it
// were a single leaf: it is Init followed by Eval, with no sweep.
func ErrorAtLeaf(y *YTensor, mask SampleMask, criterion Criterion, nSamples, nTotal int) (float64, error) {
	if err := criterion.Init(y, mask, nSamples, nTotal); err != nil {
		return 0, err
	}
	return criterion.Eval(), nil
}
