package clock

import (
	"errors"
	"fmt"
	"testing"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := TimeToMinutes(c.in)
		if err != nil {
			t.Fatalf("TimeToMinutes(%q) failed: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("TimeToMinutes(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTimeToMinutes_Rejects(t *testing.T) {
	for _, in := range []string{"", "9", "24:00", "12:60", "12:5", "ab:cd", "12.30", "-1:30", "123:00"} {
		if _, err := TimeToMinutes(in); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("TimeToMinutes(%q): expected ErrInvalidFormat, got %v", in, err)
		}
	}
}

func TestMinutesToTime_Range(t *testing.T) {
	for _, m := range []int{-1, 1440, 2000} {
		if _, err := MinutesToTime(m); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("MinutesToTime(%d): expected ErrInvalidFormat, got %v", m, err)
		}
	}
	got, err := MinutesToTime(545)
	if err != nil {
		t.Fatalf("MinutesToTime(545) failed: %v", err)
	}
	if got != "09:05" {
		t.Fatalf("MinutesToTime(545) = %q, want %q", got, "09:05")
	}
}

func TestRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 15, 30, 59} {
			in := fmt.Sprintf("%02d:%02d", h, m)
			mins, err := TimeToMinutes(in)
			if err != nil {
				t.Fatalf("TimeToMinutes(%q) failed: %v", in, err)
			}
			out, err := MinutesToTime(mins)
			if err != nil {
				t.Fatalf("MinutesToTime(%d) failed: %v", mins, err)
			}
			if out != in {
				t.Fatalf("round trip %q -> %d -> %q", in, mins, out)
			}
		}
	}
}
