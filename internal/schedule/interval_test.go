package schedule

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"back to back", Interval{600, 645}, Interval{645, 690}, false},
		{"partial tail", Interval{630, 675}, Interval{600, 645}, true},
		{"partial head", Interval{570, 615}, Interval{600, 645}, true},
		{"contains", Interval{540, 660}, Interval{600, 645}, true},
		{"contained", Interval{615, 645}, Interval{600, 660}, true},
		{"disjoint before", Interval{540, 600}, Interval{600, 645}, false},
		{"disjoint after", Interval{645, 690}, Interval{600, 645}, false},
		{"identical", Interval{600, 645}, Interval{600, 645}, true},
	}

	for _, c := range cases {
		if got := Overlaps(c.a, c.b); got != c.want {
			t.Fatalf("%s: Overlaps(%v, %v) = %v, want %v", c.name, c.a, c.b, got, c.want)
		}
		// The predicate is not symmetric by construction; prove both
		// orderings agree on every fixture.
		if got := Overlaps(c.b, c.a); got != c.want {
			t.Fatalf("%s: Overlaps(%v, %v) = %v, want %v (swapped)", c.name, c.b, c.a, got, c.want)
		}
	}
}

func TestAvailable(t *testing.T) {
	busy := []Interval{{540, 585}, {600, 645}, {720, 765}}

	if Available(Interval{570, 615}, busy) {
		t.Fatal("09:30-10:15 crosses two bookings, expected unavailable")
	}
	if !Available(Interval{645, 690}, busy) {
		t.Fatal("10:45-11:30 touches a booking end only, expected available")
	}
	if Available(Interval{750, 795}, busy) {
		t.Fatal("12:30-13:15 starts inside a booking, expected unavailable")
	}
}

func TestAvailable_EmptyBusyList(t *testing.T) {
	if !Available(Interval{540, 585}, nil) {
		t.Fatal("expected any interval to be available against no bookings")
	}
}
