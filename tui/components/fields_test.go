package components

import "testing"

func TestFieldNextWraps(t *testing.T) {
	order := []Field{
		FieldInHour, FieldInMinute, FieldInSecond,
		FieldOutHour, FieldOutMinute, FieldOutSecond,
	}
	f := FieldInHour
	for i := 1; i <= len(order); i++ {
		f = f.Next()
		want := order[i%len(order)]
		if f != want {
			t.Fatalf("step %d: got %d, want %d", i, f, want)
		}
	}
}

func TestFieldPrevWraps(t *testing.T) {
	if got := FieldInHour.Prev(); got != FieldOutSecond {
		t.Errorf("Prev from first field = %d, want FieldOutSecond", got)
	}
	if got := FieldOutSecond.Prev(); got != FieldOutMinute {
		t.Errorf("Prev = %d, want FieldOutMinute", got)
	}
}

func TestFieldIsIn(t *testing.T) {
	for _, f := range []Field{FieldInHour, FieldInMinute, FieldInSecond} {
		if !f.IsIn() {
			t.Errorf("field %d should be an IN field", f)
		}
	}
	for _, f := range []Field{FieldOutHour, FieldOutMinute, FieldOutSecond} {
		if f.IsIn() {
			t.Errorf("field %d should be an OUT field", f)
		}
	}
}

func TestFieldMax(t *testing.T) {
	if got := FieldInHour.Max(); got != 23 {
		t.Errorf("hour max = %d, want 23", got)
	}
	if got := FieldOutSecond.Max(); got != 59 {
		t.Errorf("second max = %d, want 59", got)
	}
}
