package components

import "testing"

func TestQuickInsertMovesClampAtEdges(t *testing.T) {
	s := QuickInsertState{Selected: 0}

	s.MoveLeft()
	if s.Selected != 0 {
		t.Errorf("MoveLeft at 0 = %d, want 0", s.Selected)
	}
	s.MoveUp()
	if s.Selected != 0 {
		t.Errorf("MoveUp on top row = %d, want 0", s.Selected)
	}

	s.Selected = quickInsertValues - 1
	s.MoveRight()
	if s.Selected != quickInsertValues-1 {
		t.Errorf("MoveRight at last cell = %d, want %d", s.Selected, quickInsertValues-1)
	}
	s.MoveDown()
	if s.Selected != quickInsertValues-1 {
		t.Errorf("MoveDown on bottom row = %d, want %d", s.Selected, quickInsertValues-1)
	}
}

func TestQuickInsertRowNavigation(t *testing.T) {
	s := QuickInsertState{Selected: 5}

	s.MoveDown()
	if s.Selected != 5+quickInsertCols {
		t.Errorf("MoveDown = %d, want %d", s.Selected, 5+quickInsertCols)
	}
	s.MoveUp()
	if s.Selected != 5 {
		t.Errorf("MoveUp = %d, want 5", s.Selected)
	}
	s.MoveRight()
	if s.Selected != 6 {
		t.Errorf("MoveRight = %d, want 6", s.Selected)
	}
	s.MoveLeft()
	if s.Selected != 5 {
		t.Errorf("MoveLeft = %d, want 5", s.Selected)
	}
}
