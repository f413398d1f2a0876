package block

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float32{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	if s[0] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestGrowPreservesData(t *testing.T) {
	b := New(4)
	b.Samples()[0] = 42
	b.Grow(16)
	if b.Cap() < 16 {
		t.Fatalf("Cap() = %d, want >= 16", b.Cap())
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 after Grow", b.Len())
	}
	if b.Samples()[0] != 42 {
		t.Fatal("Grow did not preserve data")
	}
}

func TestResizeZeroesNewElements(t *testing.T) {
	b := New(8)
	for i := range b.Samples() {
		b.Samples()[i] = 7
	}

	b.Resize(2)
	b.Resize(8)

	for i := 2; i < 8; i++ {
		if b.Samples()[i] != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0 after shrink/grow", i, b.Samples()[i])
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := New(3)
	b.Samples()[1] = 5

	c := b.Copy()
	c.Samples()[1] = 9

	if b.Samples()[1] != 5 {
		t.Fatalf("Copy() shares memory: original = %v", b.Samples()[1])
	}
}
