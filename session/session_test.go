package session

import "testing"

func TestAddIsIdempotent(t *testing.T) {
	s := New()

	if !s.Add("/videos/a.mp4") {
		t.Fatal("first add should report true")
	}
	if s.Add("/videos/a.mp4") {
		t.Error("second add of the same path should report false")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 tracked entry, got %d", s.Len())
	}
}

func TestAddDefaultsToZeroTimes(t *testing.T) {
	s := New()
	s.Add("/videos/a.mp4")

	e, ok := s.Entry("/videos/a.mp4")
	if !ok {
		t.Fatal("entry not found")
	}
	if e.In != 0 || e.Out != 0 {
		t.Errorf("expected zero in/out, got %d/%d", e.In, e.Out)
	}
}

func TestSetTimesOverwrite(t *testing.T) {
	s := New()
	s.Add("/videos/a.mp4")

	s.SetIn("/videos/a.mp4", 30)
	s.SetOut("/videos/a.mp4", 90)
	s.SetIn("/videos/a.mp4", 45)

	e, _ := s.Entry("/videos/a.mp4")
	if e.In != 45 || e.Out != 90 {
		t.Errorf("expected 45/90, got %d/%d", e.In, e.Out)
	}
}

func TestSetTimesClampNegative(t *testing.T) {
	s := New()
	s.Add("/videos/a.mp4")
	s.SetIn("/videos/a.mp4", -10)

	e, _ := s.Entry("/videos/a.mp4")
	if e.In != 0 {
		t.Errorf("expected negative value clamped to 0, got %d", e.In)
	}
}

func TestSetTimesIgnoreUnknownPath(t *testing.T) {
	s := New()
	s.SetIn("/videos/missing.mp4", 10)
	s.SetOut("/videos/missing.mp4", 20)

	if s.Len() != 0 {
		t.Errorf("setting times must not create entries, got %d", s.Len())
	}
}

func TestEntriesKeepInsertionOrder(t *testing.T) {
	s := New()
	s.Add("/videos/b.mp4")
	s.Add("/videos/a.mp4")
	s.Add("/videos/c.mkv")

	entries := s.Entries()
	want := []string{"/videos/b.mp4", "/videos/a.mp4", "/videos/c.mkv"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, path := range want {
		if entries[i].Path != path {
			t.Errorf("entry %d: expected %s, got %s", i, path, entries[i].Path)
		}
	}
}

func TestEntriesReturnsCopies(t *testing.T) {
	s := New()
	s.Add("/videos/a.mp4")

	entries := s.Entries()
	entries[0].In = 999

	e, _ := s.Entry("/videos/a.mp4")
	if e.In != 0 {
		t.Error("mutating a returned entry must not affect session state")
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/videos/a.mp4", true},
		{"/videos/a.MP4", true},
		{"/videos/a.avi", true},
		{"/videos/a.mkv", true},
		{"/videos/a.mov", false},
		{"/videos/a.txt", false},
		{"/videos/noext", false},
	}
	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
