package seq

import "testing"

func drain[T any, L Length](t *testing.T, s Seq[T, L], max int) []T {
	t.Helper()
	var out []T
	for i := 0; i < max; i++ {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
	return out
}

func TestZeroValueIsExhausted(t *testing.T) {
	var s Seq[int, Finite]
	if _, ok := s.Next(); ok {
		t.Fatal("zero-value sequence yielded an element")
	}
}

func TestFromSliceYieldsAllElements(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	got := drain(t, s, 10)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if _, ok := s.Next(); ok {
		t.Fatal("sequence resumed after exhaustion")
	}
}

func TestExhaustionIsPermanent(t *testing.T) {
	calls := 0
	s := Generate(func() (int, bool) {
		calls++
		// Pretend to resume after reporting exhaustion once.
		if calls == 1 {
			return 0, false
		}
		return calls, true
	})
	if _, ok := s.Next(); ok {
		t.Fatal("expected immediate exhaustion")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("sequence resumed after exhaustion")
	}
	if calls != 1 {
		t.Fatalf("generator consulted %d times after exhaustion, want 1", calls)
	}
}

func TestTakeBoundsInfiniteSequence(t *testing.T) {
	s := Repeat(7).Take(3)
	got := drain(t, s, 10)
	if len(got) != 3 {
		t.Fatalf("got %d elements, want 3", len(got))
	}
	for _, v := range got {
		if v != 7 {
			t.Fatalf("got %v, want all 7s", got)
		}
	}
}

func TestTakeZeroYieldsNothing(t *testing.T) {
	s := Repeat(1).Take(0)
	if _, ok := s.Next(); ok {
		t.Fatal("Take(0) yielded an element")
	}
}

func TestTakeNegativeYieldsNothing(t *testing.T) {
	s := Repeat(1).Take(-4)
	if _, ok := s.Next(); ok {
		t.Fatal("Take(-4) yielded an element")
	}
}

func TestTakeMoreThanAvailable(t *testing.T) {
	s := FromSlice([]int{1, 2}).Take(5)
	got := drain(t, s, 10)
	if len(got) != 2 {
		t.Fatalf("got %d elements, want 2", len(got))
	}
}

func TestForeverProducesEndlessly(t *testing.T) {
	n := 0
	s := Forever(func() int { n++; return n })
	got := drain(t, s.Take(4), 10)
	if len(got) != 4 || got[3] != 4 {
		t.Fatalf("got %v, want [1 2 3 4]", got)
	}
}

func TestMapPreservesElementsInOrder(t *testing.T) {
	s := Map(FromSlice([]int{1, 2, 3}), func(v int) int { return v * 10 })
	got := drain(t, s, 10)
	if len(got) != 3 || got[0] != 10 || got[2] != 30 {
		t.Fatalf("got %v, want [10 20 30]", got)
	}
}

func TestMapChangesElementType(t *testing.T) {
	s := Map(FromSlice([]int{1, 2}), func(v int) string {
		if v == 1 {
			return "one"
		}
		return "two"
	})
	got := drain(t, s, 10)
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("got %v", got)
	}
}

func TestFilterDropsElements(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5}).Filter(func(v int) bool { return v%2 == 0 })
	got := drain(t, s, 10)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("got %v, want [2 4]", got)
	}
}

func TestAdaptorsCompose(t *testing.T) {
	n := 0
	s := Map(Forever(func() int { n++; return n }).Filter(func(v int) bool { return v%2 == 1 }), func(v int) int { return v * 2 }).Take(3)
	got := drain(t, s, 10)
	if len(got) != 3 || got[0] != 2 || got[1] != 6 || got[2] != 10 {
		t.Fatalf("got %v, want [2 6 10]", got)
	}
}
