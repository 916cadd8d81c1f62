package schedule

import (
	"errors"
	"reflect"
	"testing"
)

func TestSlots_SplitsAroundLunch(t *testing.T) {
	// 09:00-18:45 with lunch 13:30-14:30, 45-minute service.
	w := WorkingWindow{Start: 540, End: 1125, Lunch: &Interval{Start: 810, End: 870}}

	starts, err := Slots(w, 45, nil)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(starts) == 0 {
		t.Fatal("expected slots, got none")
	}

	lunch := Interval{Start: 810, End: 870}
	var lastMorning, firstAfternoon int
	firstAfternoon = -1
	for _, s := range starts {
		if Overlaps(Interval{Start: s, End: s + 45}, lunch) {
			t.Fatalf("slot starting at %d crosses the lunch break", s)
		}
		if s+45 <= lunch.Start {
			lastMorning = s
		}
		if s >= lunch.End && firstAfternoon == -1 {
			firstAfternoon = s
		}
	}
	if lastMorning+45 > 810 {
		t.Fatalf("last morning slot ends at %d, want <= 810", lastMorning+45)
	}
	if firstAfternoon < 870 {
		t.Fatalf("first afternoon slot starts at %d, want >= 870", firstAfternoon)
	}
}

func TestSlots_FiltersBusyIntervals(t *testing.T) {
	w := WorkingWindow{Start: 540, End: 720}
	busy := []Interval{{600, 660}}

	starts, err := Slots(w, 60, busy)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	want := []int{540, 660}
	if !reflect.DeepEqual(starts, want) {
		t.Fatalf("Slots = %v, want %v", starts, want)
	}
}

func TestSlots_Ascending(t *testing.T) {
	w := WorkingWindow{Start: 540, End: 1125, Lunch: &Interval{Start: 810, End: 870}}
	starts, err := Slots(w, 30, []Interval{{600, 645}})
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Fatalf("starts not strictly ascending: %v", starts)
		}
	}
}

func TestSlots_Idempotent(t *testing.T) {
	w := WorkingWindow{Start: 540, End: 1125, Lunch: &Interval{Start: 810, End: 870}}
	busy := []Interval{{540, 585}, {900, 945}}

	first, err := Slots(w, 45, busy)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	second, err := Slots(w, 45, busy)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
}

func TestSlots_InvalidDuration(t *testing.T) {
	w := WorkingWindow{Start: 540, End: 1020}
	for _, d := range []int{0, -15} {
		if _, err := Slots(w, d, nil); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %d: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestSlots_EmptyWindow(t *testing.T) {
	starts, err := Slots(WorkingWindow{Start: 600, End: 600}, 30, nil)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(starts) != 0 {
		t.Fatalf("expected no slots for an empty window, got %v", starts)
	}
}

func TestSlots_LunchConsumesWindow(t *testing.T) {
	w := WorkingWindow{Start: 540, End: 600, Lunch: &Interval{Start: 540, End: 600}}
	starts, err := Slots(w, 30, nil)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	if len(starts) != 0 {
		t.Fatalf("expected no slots when lunch consumes the window, got %v", starts)
	}
}

func TestSlots_ShortServiceNeverOfferedInsideLunchGap(t *testing.T) {
	// A 20-minute service would fit inside a 25-minute lunch, but slots
	// are never shifted into the break.
	w := WorkingWindow{Start: 540, End: 720, Lunch: &Interval{Start: 625, End: 650}}
	starts, err := Slots(w, 20, nil)
	if err != nil {
		t.Fatalf("Slots failed: %v", err)
	}
	for _, s := range starts {
		if s >= 625 && s < 650 {
			t.Fatalf("slot %d offered inside the lunch break", s)
		}
	}
}
