package timeutil

import "testing"

func TestCombineHMS(t *testing.T) {
	tests := []struct {
		h, m, s int
		want    int
	}{
		{0, 0, 0, 0},
		{1, 2, 3, 3723},
		{0, 1, 30, 90},
		{23, 59, 59, 86399},
	}
	for _, tt := range tests {
		if got := CombineHMS(tt.h, tt.m, tt.s); got != tt.want {
			t.Errorf("CombineHMS(%d, %d, %d) = %d, want %d", tt.h, tt.m, tt.s, got, tt.want)
		}
	}
}

func TestSplitHMS(t *testing.T) {
	h, m, s := SplitHMS(3723)
	if h != 1 || m != 2 || s != 3 {
		t.Errorf("SplitHMS(3723) = %d:%d:%d, want 1:2:3", h, m, s)
	}
	h, m, s = SplitHMS(-5)
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("SplitHMS(-5) = %d:%d:%d, want 0:0:0", h, m, s)
	}
}

func TestCoerceField(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want int
	}{
		{"valid value", "42", 59, 42},
		{"leading whitespace", " 7 ", 59, 7},
		{"non-numeric resolves to zero", "abc", 59, 0},
		{"empty resolves to zero", "", 59, 0},
		{"negative resolves to zero", "-5", 59, 0},
		{"above max resolves to zero", "75", 59, 0},
		{"above hour max resolves to zero", "24", 23, 0},
		{"at max accepted", "59", 59, 59},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceField(tt.text, tt.max); got != tt.want {
				t.Errorf("CoerceField(%q, %d) = %d, want %d", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{90, "00:01:30"},
		{3723, "01:02:03"},
		{-1, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseTimeToSeconds(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1:02:03", 3723, false},
		{"02:30", 150, false},
		{"45", 45, false},
		{"0", 0, false},
		{"abc", 0, true},
		{"1:2:3:4", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeToSeconds(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToSeconds(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToSeconds(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToSeconds(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
