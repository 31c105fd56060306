package stackvec

import "testing"

func TestStackVecPushAndOverflow(t *testing.T) {
	v := New[int](3)
	for i := 0; i < 5; i++ {
		v.Push(i)
	}
	if v.Len() != 3 {
		t.Fatalf("expected len 3 after overflowing pushes, got %d", v.Len())
	}
	want := []int{0, 1, 2}
	got := v.Slice()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %d want %d", i, got[i], want[i])
		}
	}
}

func TestStackVecReset(t *testing.T) {
	v := New[int](2)
	v.Push(1)
	v.Push(2)
	v.Reset()
	if !v.IsEmpty() {
		t.Fatal("expected vector to be empty after reset")
	}
	v.Push(9)
	if v.Len() != 1 || v.At(0) != 9 {
		t.Fatalf("expected reused vector to accept pushes after reset")
	}
}
