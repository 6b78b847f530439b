package shapes

import "testing"

func TestBaselineSeeded(t *testing.T) {
	r := NewRegistry()
	for _, d := range []int{1, 2, 4, 8, 16, 20, 32, 64, 128, 256, 512} {
		if !r.Contains(d) {
			t.Errorf("baseline dimension %d missing", d)
		}
	}
}

func TestRegisterIdempotent(t *testing.T) {
	r := NewRegistry()
	before := len(r.All())
	r.Register(20) // already in the baseline
	r.Register(20)
	if got := len(r.All()); got != before {
		t.Errorf("registry size = %d after duplicate Register, want %d", got, before)
	}
}

func TestRegisterNewDimension(t *testing.T) {
	r := NewRegistry()
	r.Register(37)
	if !r.Contains(37) {
		t.Error("Register(37) not visible in registry")
	}
	all := r.All()
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("All() not sorted ascending: %v", all)
		}
	}
}

func TestRegisterAfterSealPanics(t *testing.T) {
	r := NewRegistry()
	r.Seal()
	defer func() {
		if recover() == nil {
			t.Error("Register after Seal did not panic")
		}
	}()
	r.Register(99)
}

func TestSealIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Seal()
	r.Seal()
	if !r.Contains(1) {
		t.Error("sealed registry lost its contents")
	}
}
