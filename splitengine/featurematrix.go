package splitengine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FeatureMatrix is a dense, column-major view of the N_total x D feature
// array. Column-major storage is part of the contract: the split search
// walks one column at a time and needs unit-stride access along the
// sample axis.
type FeatureMatrix struct {
	data []float64
	n, d int
}

// NewFeatureMatrix allocates a zeroed column-major matrix with n rows and
// d columns.
func NewFeatureMatrix(n, d int) *FeatureMatrix {
	return &FeatureMatrix{data: make([]float64, n*d), n: n, d: d}
}

// NewFeatureMatrixFromColumns builds a FeatureMatrix from pre-computed
// columns, each of length n. The caller's slices are copied.
func NewFeatureMatrixFromColumns(n int, columns [][]float64) *FeatureMatrix {
	m := NewFeatureMatrix(n, len(columns))
	for j, col := range columns {
		copy(m.Column(j), col)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *FeatureMatrix) Dims() (n, d int) { return m.n, m.d }

// At returns X[i,j].
func (m *FeatureMatrix) At(i, j int) float64 { return m.data[j*m.n+i] }

// Set assigns X[i,j] = v.
func (m *FeatureMatrix) Set(i, j int, v float64) { m.data[j*m.n+i] = v }

// Column returns the backing slice for column j. The slice aliases m's
// storage and has unit stride, the property the sweep relies on.
func (m *FeatureMatrix) Column(j int) []float64 {
	return m.data[j*m.n : (j+1)*m.n]
}

// FromDense copies a row-major gonum matrix into column-major storage.
// This is the conversion-at-the-boundary the design allows: callers that
// load data with gonum/npyio pay one allocation here, not per split.
func FromDense(src mat.Matrix) *FeatureMatrix {
	n, d := src.Dims()
	m := NewFeatureMatrix(n, d)
	for j := 0; j < d; j++ {
		col := m.Column(j)
		for i := 0; i < n; i++ {
			col[i] = src.At(i, j)
		}
	}
	return m
}

// ArgsortMatrix is the column-major, per-column permutation of row indices
// that sorts a FeatureMatrix's columns ascending. Column j satisfies
// X[argsorted[k,j], j] non-decreasing in k.
type ArgsortMatrix struct {
	data []int32
	n, d int
}

// Column returns the backing slice of row indices for column j.
func (m *ArgsortMatrix) Column(j int) []int32 {
	return m.data[j*m.n : (j+1)*m.n]
}

// Dims returns the number of rows and columns.
func (m *ArgsortMatrix) Dims() (n, d int) { return m.n, m.d }

// BuildArgsort computes the per-column argsort of X. It runs once per
// column at dataset setup time, off the split-search hot path, so the
// allocation gonum/floats.Argsort needs for its scratch permutation is
// immaterial.
func BuildArgsort(X *FeatureMatrix) *ArgsortMatrix {
	out := &ArgsortMatrix{data: make([]int32, X.n*X.d), n: X.n, d: X.d}
	for j := 0; j < X.d; j++ {
		values := append([]float64(nil), X.Column(j)...)
		indices := make([]int, X.n)
		for i := range indices {
			indices[i] = i
		}
		floats.Argsort(values, indices)
		dst := out.Column(j)
		for k, rowIdx := range indices {
			dst[k] = int32(rowIdx)
		}
	}
	return out
}

// validateLayout checks that X, argsorted and the sample mask agree on
// row count; any mismatch is a caller bug, reported once at the API
// boundary rather than discovered through an out-of-bounds read deep in
// the sweep.
func validateLayout(X *FeatureMatrix, argsorted *ArgsortMatrix, mask SampleMask) error {
	if argsorted.n != X.n || argsorted.d != X.d {
		return fmt.Errorf("%w: X is %dx%d but argsorted is %dx%d", ErrInvalidShape, X.n, X.d, argsorted.n, argsorted.d)
	}
	if len(mask) != X.n {
		return fmt.Errorf("%w: X has %d rows but sample_mask has length %d", ErrInvalidShape, X.n, len(mask))
	}
	return nil
}
