package rough

import "testing"

func TestRandomDeterministic(t *testing.T) {
	a := NewOptions()
	b := NewOptions()
	for i := 0; i < 100; i++ {
		va, vb := a.random(), b.random()
		if va != vb {
			t.Fatalf("draw %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
	}
}

func TestRandomSeedZero(t *testing.T) {
	a := &Options{}
	b := &Options{}
	same := true
	for i := 0; i < 10; i++ {
		if a.random() != b.random() {
			same = false
		}
	}
	if same {
		t.Error("seed 0 should pick an unpredictable stream")
	}
}

func TestCloneContinuesStream(t *testing.T) {
	o := NewOptions()
	o.random()
	o.random()

	c := o.clone()
	if c.random() != o.random() {
		t.Error("clone did not copy the stream position")
	}
}

func TestCloneAlterSeedBeforeMaterialization(t *testing.T) {
	o := NewOptions()
	c := o.cloneAlterSeed()
	if c.Seed != o.Seed+1 {
		t.Errorf("seed = %d, want %d", c.Seed, o.Seed+1)
	}
	if c.random() == o.random() {
		t.Error("shifted seed produced the same first draw")
	}
}

func TestCloneCopiesDashes(t *testing.T) {
	o := NewOptions()
	o.StrokeLineDash = []float64{4, 2}
	c := o.clone()
	c.StrokeLineDash[0] = 8
	if o.StrokeLineDash[0] != 4 {
		t.Error("clone shares the dash slice")
	}
}
