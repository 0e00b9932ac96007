package properties

import (
	"strconv"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// EditState is the transient edit buffer of one property control.
//
// It is seeded from the committed value, accepts or rejects every change,
// and decides at blur whether the edit has to be committed to the owner.
// Committed values are never mutated in place; the owner receives a new
// value and pushes it back through SetCommitted.
type EditState struct {
	propertyType models.PropertyType
	inputType    models.InputType

	committed any
	value     string
	status    models.Status
	editing   bool
}

// NewEditState seeds an edit state from the committed value
func NewEditState(pt models.PropertyType, committed any) *EditState {
	s := &EditState{
		propertyType: pt,
		inputType:    InputTypeFor(pt),
	}
	s.committed = committed
	s.reseed()
	return s
}

func (s *EditState) reseed() {
	if s.inputType == models.InputTypeBoolean {
		b, _ := strconv.ParseBool(FormatValue(s.committed))
		s.value = strconv.FormatBool(b)
		return
	}
	s.value = FormatValue(s.committed)
}

func (s *EditState) PropertyType() models.PropertyType { return s.propertyType }
func (s *EditState) InputType() models.InputType       { return s.inputType }
func (s *EditState) Value() string                     { return s.value }
func (s *EditState) Status() models.Status             { return s.status }
func (s *EditState) Committed() any                    { return s.committed }
func (s *EditState) Editing() bool                     { return s.editing }

// Checked is the toggle position of a boolean control
func (s *EditState) Checked() bool {
	b, _ := strconv.ParseBool(s.value)
	return b
}

// Focus marks the start of an edit session
func (s *EditState) Focus() {
	s.editing = true
}

// Change validates raw and applies it to the working value.
//
// On rejection the working value is kept, status becomes error and the
// *ValidationError is returned. Boolean controls have no blur step, so an
// accepted boolean change is reported as a commit straight away.
func (s *EditState) Change(raw string) (value any, commit bool, err error) {
	if err := CheckValue(raw, s.propertyType, s.inputType); err != nil {
		s.status = models.StatusError
		return nil, false, err
	}

	s.value = raw
	s.status = models.StatusNone

	if s.inputType != models.InputTypeBoolean {
		return nil, false, nil
	}

	parsed, err := ParseValue(raw, models.PropertyTypeBool)
	if err != nil {
		s.reseed()
		return nil, false, err
	}
	s.committed = parsed
	return parsed, true, nil
}

// Toggle flips a boolean control
func (s *EditState) Toggle() (any, bool, error) {
	return s.Change(strconv.FormatBool(!s.Checked()))
}

// Blur ends the edit session. It reports a commit only when the working
// value differs from the committed one. Text that cannot be converted to the
// property's kind is discarded and the committed value restored.
//
// Status is left untouched; callers clear it on the following tick.
func (s *EditState) Blur() (value any, commit bool, err error) {
	s.editing = false
	if s.inputType == models.InputTypeBoolean {
		return nil, false, nil
	}

	parsed, err := ParseValue(s.value, s.propertyType)
	if err != nil {
		s.reseed()
		return nil, false, err
	}

	if Equal(parsed, s.committed, s.propertyType) {
		return nil, false, nil
	}

	s.committed = parsed
	s.value = FormatValue(parsed)
	return parsed, true, nil
}

// ResetStatus clears the validity flag
func (s *EditState) ResetStatus() {
	s.status = models.StatusNone
}

// SetCommitted records a committed value pushed by the owner. Outside an
// edit session the working value follows it; during one only the baseline
// moves, and the edit is compared against it at blur.
func (s *EditState) SetCommitted(v any) {
	s.committed = v
	if !s.editing {
		s.reseed()
	}
}
