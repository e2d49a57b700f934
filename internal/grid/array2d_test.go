package grid

import (
	"errors"
	"testing"
)

func TestArray2DRoundTrip(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 5

	buf := make([]float64, rows*cols)

	a, err := NewArray2D(buf, rows, cols)
	if err != nil {
		t.Fatalf("NewArray2D: %v", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := float64(r*100 + c)
			a.Set(r, c, v)

			if got := a.At(r, c); got != v {
				t.Fatalf("At(%d,%d): got %g want %g", r, c, got, v)
			}

			if got, want := a.Index(r, c), r*cols+c; got != want {
				t.Fatalf("Index(%d,%d): got %d want %d", r, c, got, want)
			}
		}
	}

	// The view borrows: writes must land in the backing buffer.
	if buf[2*cols+4] != 204 {
		t.Fatalf("backing buffer not shared: buf[14]=%g", buf[2*cols+4])
	}
}

func TestArray2DRow(t *testing.T) {
	t.Parallel()

	buf := []int{0, 1, 2, 3, 4, 5}

	a, err := NewArray2D(buf, 2, 3)
	if err != nil {
		t.Fatalf("NewArray2D: %v", err)
	}

	row := a.Row(1)
	if len(row) != 3 || row[0] != 3 || row[2] != 5 {
		t.Fatalf("Row(1) = %v", row)
	}
}

func TestArray2DShapeMismatch(t *testing.T) {
	t.Parallel()

	if _, err := NewArray2D(make([]float64, 10), 3, 5); !errors.Is(err, ErrShape) {
		t.Fatalf("want ErrShape, got %v", err)
	}

	if _, err := NewArray2D(make([]float64, 6), -2, -3); !errors.Is(err, ErrShape) {
		t.Fatalf("want ErrShape for negative dims, got %v", err)
	}
}

func TestArray2DOutOfRangePanics(t *testing.T) {
	t.Parallel()

	a, err := NewArray2D(make([]float64, 6), 2, 3)
	if err != nil {
		t.Fatalf("NewArray2D: %v", err)
	}

	for _, rc := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("At(%d,%d) did not panic", rc[0], rc[1])
				}
			}()

			a.At(rc[0], rc[1])
		}()
	}
}

func TestArray2DEmpty(t *testing.T) {
	t.Parallel()

	a, err := NewArray2D([]float64(nil), 0, 4)
	if err != nil {
		t.Fatalf("NewArray2D: %v", err)
	}

	if a.Rows() != 0 || a.Cols() != 4 {
		t.Fatalf("dims: %dx%d", a.Rows(), a.Cols())
	}
}
