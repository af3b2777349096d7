package splitengine

import (
	"io"
	"os"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// ReadFeatureMatrixNpy loads a row-major .npy array of float64 into a
// FeatureMatrix, converting to this package's column-major layout at the
// boundary. The conversion is the single allocation column-major
// ingestion costs; the sweep itself never pays it.
func ReadFeatureMatrixNpy(fileName string) (*FeatureMatrix, error) {
	dense, err := readNpyDense(fileName)
	if err != nil {
		return nil, err
	}
	return FromDense(dense), nil
}

// ReadTargetNpy loads a row-major .npy array of float64, shaped
// (n, k1*k2*k3) on disk, into a YTensor shaped (n, k1, k2, k3).
func ReadTargetNpy(fileName string, k1, k2, k3 int) (*YTensor, error) {
	dense, err := readNpyDense(fileName)
	if err != nil {
		return nil, err
	}
	n, width := dense.Dims()
	flat := make([]float64, n*width)
	for i := 0; i < n; i++ {
		for j := 0; j < width; j++ {
			flat[i*width+j] = dense.At(i, j)
		}
	}
	return NewYTensorFromFlat(flat, n, k1, k2, k3)
}

func readNpyDense(fileName string) (denseMat *mat.Dense, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func() { HandleError(f.Close()) }()

	r, err := npyio.NewReader(f)
	if err != nil {
		return nil, err
	}

	denseMat = &mat.Dense{}
	if err := r.Read(denseMat); err != nil {
		return nil, err
	}
	return denseMat, nil
}

// WriteDenseNpy writes m to fileName in .npy format, for dumping
// predictions or argsort fixtures the way the boosting driver's predict
// mode writes its output tensor.
func WriteDenseNpy(fileName string, m *mat.Dense) error {
	dst, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() { HandleError(dst.Close()) }()
	return npyio.Write(dst, m)
}

// writeDenseNpyTo is the same write path used against an io.Writer, kept
// separate so tests can round-trip through an in-memory buffer instead of
// a real file.
func writeDenseNpyTo(w io.Writer, m *mat.Dense) error {
	return npyio.Write(w, m)
}
