// Package components provides reusable TUI components.
package components

import "github.com/user/inout-extractor-cli/pkg/timeutil"

// Field identifies one of the six time selector fields on a video row.
// The active field is passed explicitly to insert and edit handlers; there
// is no implicit "currently focused widget" global.
type Field int

const (
	// FieldInHour is the IN hour selector.
	FieldInHour Field = iota
	// FieldInMinute is the IN minute selector.
	FieldInMinute
	// FieldInSecond is the IN second selector.
	FieldInSecond
	// FieldOutHour is the OUT hour selector.
	FieldOutHour
	// FieldOutMinute is the OUT minute selector.
	FieldOutMinute
	// FieldOutSecond is the OUT second selector.
	FieldOutSecond
)

// Next returns the field to the right, wrapping around the row.
func (f Field) Next() Field {
	if f == FieldOutSecond {
		return FieldInHour
	}
	return f + 1
}

// Prev returns the field to the left, wrapping around the row.
func (f Field) Prev() Field {
	if f == FieldInHour {
		return FieldOutSecond
	}
	return f - 1
}

// IsIn reports whether the field belongs to the IN selector.
func (f Field) IsIn() bool {
	return f <= FieldInSecond
}

// Max returns the largest value the field accepts (23 for hours, 59 otherwise).
func (f Field) Max() int {
	if f == FieldInHour || f == FieldOutHour {
		return timeutil.HourMax
	}
	return timeutil.MinuteMax
}
