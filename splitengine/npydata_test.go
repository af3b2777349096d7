package splitengine

import (
	"bytes"
	"testing"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// Round-trips a dense matrix through the same npyio encode/decode path
// ReadFeatureMatrixNpy and WriteDenseNpy use, without touching disk.
func TestNpyRoundTripThroughBuffer(t *testing.T) {
	original := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	var buf bytes.Buffer
	if err := writeDenseNpyTo(&buf, original); err != nil {
		t.Fatal(err)
	}

	r, err := npyio.NewReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var decoded mat.Dense
	if err := r.Read(&decoded); err != nil {
		t.Fatal(err)
	}

	rows, cols := decoded.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("decoded dims = (%d,%d), want (3,2)", rows, cols)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if decoded.At(i, j) != original.At(i, j) {
				t.Fatalf("decoded[%d,%d] = %v, want %v", i, j, decoded.At(i, j), original.At(i, j))
			}
		}
	}

	asFeatureMatrix := FromDense(&decoded)
	if asFeatureMatrix.At(1, 1) != original.At(1, 1) {
		t.Fatalf("FromDense(%v).At(1,1) = %v, want %v", &decoded, asFeatureMatrix.At(1, 1), original.At(1, 1))
	}
}
