package handlers

import "testing"

func TestWindowFromStrings(t *testing.T) {
	w, err := windowFromStrings("09:00", "18:45", "13:30", "14:30")
	if err != nil {
		t.Fatalf("windowFromStrings failed: %v", err)
	}
	if w.Start != 540 || w.End != 1125 {
		t.Fatalf("unexpected window bounds: %+v", w)
	}
	if w.Lunch == nil || w.Lunch.Start != 810 || w.Lunch.End != 870 {
		t.Fatalf("unexpected lunch: %+v", w.Lunch)
	}
}

func TestWindowFromStrings_NoLunch(t *testing.T) {
	w, err := windowFromStrings("9:00", "17:00", "", "")
	if err != nil {
		t.Fatalf("windowFromStrings failed: %v", err)
	}
	if w.Lunch != nil {
		t.Fatalf("expected no lunch, got %+v", w.Lunch)
	}
}

func TestWindowFromStrings_Rejects(t *testing.T) {
	cases := []struct {
		name                     string
		start, end, lstart, lend string
	}{
		{"end before start", "17:00", "09:00", "", ""},
		{"bad clock string", "9am", "17:00", "", ""},
		{"lunch start only", "09:00", "17:00", "13:00", ""},
		{"lunch end only", "09:00", "17:00", "", "14:00"},
		{"lunch outside window", "09:00", "12:00", "13:00", "14:00"},
		{"inverted lunch", "09:00", "17:00", "14:00", "13:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := windowFromStrings(tc.start, tc.end, tc.lstart, tc.lend); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
