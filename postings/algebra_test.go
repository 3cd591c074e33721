package postings

import "testing"

func list(ids ...int) List {
	l := make(List, len(ids))
	for i, d := range ids {
		l[i] = Posting{DocID: d, Positions: []int{1}}
	}
	return l
}

func TestIntersectSelf(t *testing.T) {
	x := list(1, 2, 3)
	got := Intersect(x, x)
	if len(got) != 3 {
		t.Fatalf("intersect(X,X) should equal X, got %+v", got)
	}
}

func TestUnionCommutative(t *testing.T) {
	a := list(1, 3, 5)
	b := list(2, 3, 4)
	ab := Union(a, b)
	ba := Union(b, a)
	if len(ab) != len(ba) {
		t.Fatalf("union not commutative in length: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].DocID != ba[i].DocID {
			t.Fatalf("union not commutative at %d: %d vs %d", i, ab[i].DocID, ba[i].DocID)
		}
	}
}

func TestSubtractSelfEmpty(t *testing.T) {
	x := list(1, 2, 3)
	got := Subtract(x, x)
	if len(got) != 0 {
		t.Fatalf("subtract(X,X) should be empty, got %+v", got)
	}
}

func TestNegateRoundTrip(t *testing.T) {
	universe := []int{1, 2, 3, 4}
	x := list(2, 4)
	notX := Negate(universe, x)
	notNotX := Negate(universe, notX)
	if len(notNotX) != len(x) {
		t.Fatalf("subtract(U, subtract(U,X)) should equal X ∩ U, got %+v", notNotX)
	}
	for i, p := range notNotX {
		if p.DocID != x[i].DocID {
			t.Errorf("mismatch at %d: got %d want %d", i, p.DocID, x[i].DocID)
		}
	}
}

func TestIntersectMergesPositions(t *testing.T) {
	a := List{{DocID: 1, Positions: []int{1, 5}}}
	b := List{{DocID: 1, Positions: []int{2, 5, 9}}}
	got := Intersect(a, b)
	want := []int{1, 2, 5, 9}
	if len(got) != 1 {
		t.Fatalf("expected one posting, got %d", len(got))
	}
	if len(got[0].Positions) != len(want) {
		t.Fatalf("got positions %+v want %+v", got[0].Positions, want)
	}
	for i, p := range want {
		if got[0].Positions[i] != p {
			t.Errorf("position %d: got %d want %d", i, got[0].Positions[i], p)
		}
	}
}
