package circuit

import (
	"reflect"
	"testing"
)

// bell builds h(0), cx(0,1), barrier, measure_all.
func bell(t *testing.T) *Circuit {
	t.Helper()
	c, err := New("bell", 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	steps := []error{
		c.Apply("h", 0),
		c.Apply("cx", 0, 1),
		c.Barrier(),
		c.MeasureAll(),
	}
	for _, err := range steps {
		if err != nil {
			t.Fatalf("building bell circuit: %v", err)
		}
	}
	return c
}

func TestDepth(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		c, _ := New("empty", 1)
		if got := c.Depth(); got != 0 {
			t.Errorf("Depth() = %d, want 0", got)
		}
	})

	t.Run("bell", func(t *testing.T) {
		// h at level 1, cx at 2, measures at 3. The barrier adds nothing.
		if got := bell(t).Depth(); got != 3 {
			t.Errorf("Depth() = %d, want 3", got)
		}
	})

	t.Run("parallel single-qubit gates", func(t *testing.T) {
		c, _ := New("parallel", 3)
		_ = c.Apply("h", 0)
		_ = c.Apply("h", 1)
		_ = c.Apply("h", 2)
		if got := c.Depth(); got != 1 {
			t.Errorf("Depth() = %d, want 1", got)
		}
	})

	t.Run("teleport", func(t *testing.T) {
		c, _ := New("teleport", 3)
		_ = c.Apply("h", 1)
		_ = c.Apply("cx", 1, 2)
		_ = c.Apply("cx", 0, 1)
		_ = c.Apply("h", 0)
		_ = c.Measure(0, 0)
		_ = c.Measure(1, 1)
		_ = c.Barrier()
		_ = c.Apply("cz", 1, 2)
		_ = c.Apply("cx", 0, 2)
		_ = c.Measure(2, 2)
		if got := c.Depth(); got != 7 {
			t.Errorf("Depth() = %d, want 7", got)
		}
	})
}

func TestSize(t *testing.T) {
	// h + cx + 2 measures; the barrier is a directive and does not count.
	if got := bell(t).Size(); got != 4 {
		t.Errorf("Size() = %d, want 4", got)
	}
}

func TestOpsByType(t *testing.T) {
	got := bell(t).OpsByType()
	want := map[string]int{"h": 1, "cx": 1, "barrier": 1, "measure": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OpsByType() = %v, want %v", got, want)
	}
}

func TestMeasurements(t *testing.T) {
	if got := bell(t).Measurements(); got != 2 {
		t.Errorf("Measurements() = %d, want 2", got)
	}
	c, _ := New("bare", 2)
	_ = c.Apply("h", 0)
	if got := c.Measurements(); got != 0 {
		t.Errorf("Measurements() = %d, want 0", got)
	}
}

func TestMoments(t *testing.T) {
	// Unlike Depth, the barrier occupies a moment of its own, pushing the
	// measurements one column right.
	got := bell(t).Moments()
	want := [][]int{{0}, {1}, {2}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Moments() = %v, want %v", got, want)
	}
}

func TestMomentsIndependentWires(t *testing.T) {
	c, _ := New("wires", 2)
	_ = c.Apply("h", 0)
	_ = c.Apply("x", 1)
	_ = c.Apply("z", 0)

	got := c.Moments()
	want := [][]int{{0, 1}, {2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Moments() = %v, want %v", got, want)
	}
}
