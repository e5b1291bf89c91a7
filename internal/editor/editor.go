// Package editor implements admin editing of a single listing. Changes
// are only shown once the server has confirmed them.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

var (
	ErrPermissionDenied = errors.New("permission denied: admin access required")
	ErrBusy             = errors.New("another change is being saved")
	ErrNotEditing       = errors.New("field is not being edited")
	ErrUnknownField     = errors.New("unknown field")
)

type Field string

const (
	FieldTitle       Field = "title"
	FieldPrice       Field = "price"
	FieldCurrency    Field = "currency"
	FieldDescription Field = "description"
	FieldMileage     Field = "mileage"
	FieldVolume      Field = "volume"
	FieldFrameNumber Field = "frame_number"
	FieldArrivalDate Field = "arrival_date"
)

var Fields = []Field{
	FieldTitle, FieldPrice, FieldCurrency, FieldDescription,
	FieldMileage, FieldVolume, FieldFrameNumber, FieldArrivalDate,
}

func ParseField(v string) (Field, error) {
	for _, f := range Fields {
		if string(f) == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, v)
}

// Patcher is satisfied by *motorcycle.Client.
type Patcher interface {
	Patch(ctx context.Context, id string, p motorcycle.Patch) (*motorcycle.Motorcycle, error)
	UpdateStatus(ctx context.Context, id string, s motorcycle.Status) (*motorcycle.Motorcycle, error)
}

type Editor struct {
	api Patcher

	mu      sync.Mutex
	caller  *user.User
	server  *motorcycle.Motorcycle
	draft   *motorcycle.Motorcycle
	editing Field
	saving  bool
	err     error
}

func New(api Patcher, m *motorcycle.Motorcycle, caller *user.User) *Editor {
	return &Editor{api: api, caller: caller, server: m.Clone(), draft: m.Clone()}
}

// SetCaller updates who is editing, e.g. once the user has been resolved.
func (e *Editor) SetCaller(u *user.User) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.caller = u
}

// Current is the last copy confirmed by the server.
func (e *Editor) Current() *motorcycle.Motorcycle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.server.Clone()
}

func (e *Editor) Draft() *motorcycle.Motorcycle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Editing returns the field in edit, or "" when none is.
func (e *Editor) Editing() Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing
}

// Err is the last save error, cleared by the next save attempt.
func (e *Editor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func (e *Editor) isAdmin() bool { return e.caller != nil && e.caller.IsAdmin }

// StartEdit puts f in edit. Any other field in edit is abandoned and the
// draft reverts to the server copy.
func (e *Editor) StartEdit(f Field) error {
	if _, err := ParseField(string(f)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.isAdmin() {
		return ErrPermissionDenied
	}
	if e.editing != f {
		e.draft = e.server.Clone()
	}
	e.editing = f
	return nil
}

// CancelEdit discards the draft.
func (e *Editor) CancelEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.editing = ""
	e.draft = e.server.Clone()
}

// Set writes raw input into the draft of the field in edit.
func (e *Editor) Set(f Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing != f {
		return ErrNotEditing
	}
	return assign(e.draft, f, value)
}

// SaveEdit submits the field in edit. On success both copies become the
// server's answer; on failure the draft reverts and the error is returned.
func (e *Editor) SaveEdit(ctx context.Context, f Field) (*motorcycle.Motorcycle, error) {
	e.mu.Lock()
	if !e.isAdmin() {
		e.mu.Unlock()
		return nil, ErrPermissionDenied
	}
	if e.editing != f {
		e.mu.Unlock()
		return nil, ErrNotEditing
	}
	if e.saving {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	patch, changed := diff(e.server, e.draft, f)
	if !changed {
		e.editing = ""
		cur := e.server.Clone()
		e.mu.Unlock()
		return cur, nil
	}
	id := e.server.ID
	e.saving = true
	e.err = nil
	e.mu.Unlock()

	updated, err := e.api.Patch(ctx, id, patch)
	return e.finish(updated, err, "save "+string(f))
}

// SetStatus changes the status regardless of the field in edit.
func (e *Editor) SetStatus(ctx context.Context, s motorcycle.Status) (*motorcycle.Motorcycle, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid status %q", s)
	}
	e.mu.Lock()
	if !e.isAdmin() {
		e.mu.Unlock()
		return nil, ErrPermissionDenied
	}
	if e.saving {
		e.mu.Unlock()
		return nil, ErrBusy
	}
	id := e.server.ID
	e.saving = true
	e.err = nil
	e.mu.Unlock()

	updated, err := e.api.UpdateStatus(ctx, id, s)
	return e.finish(updated, err, "update status")
}

func (e *Editor) finish(updated *motorcycle.Motorcycle, err error, op string) (*motorcycle.Motorcycle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		log.Printf("[editor] %s of %s failed: %v", op, e.server.ID, err)
		e.err = err
		e.draft = e.server.Clone()
		return nil, err
	}
	e.server = updated.Clone()
	e.draft = updated.Clone()
	e.editing = ""
	return updated.Clone(), nil
}

func assign(m *motorcycle.Motorcycle, f Field, value string) error {
	switch f {
	case FieldTitle:
		m.Title = value
	case FieldCurrency:
		m.Currency = strings.ToUpper(strings.TrimSpace(value))
	case FieldDescription:
		m.Description = &value
	case FieldPrice:
		p, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || p.IsNegative() {
			return fmt.Errorf("invalid price %q", value)
		}
		m.Price = p
	case FieldMileage, FieldVolume:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s %q", f, value)
		}
		d := data(m)
		if f == FieldMileage {
			d.Mileage = &n
		} else {
			d.Volume = &n
		}
	case FieldFrameNumber:
		data(m).FrameNumber = value
	case FieldArrivalDate:
		data(m).ArrivalDate = value
	default:
		return ErrUnknownField
	}
	return nil
}

func data(m *motorcycle.Motorcycle) *motorcycle.Data {
	if m.Data == nil {
		m.Data = &motorcycle.Data{}
	}
	return m.Data
}

// diff builds the patch for f, reporting whether the draft differs from
// the server copy. Data fields send the whole data bag.
func diff(server, draft *motorcycle.Motorcycle, f Field) (motorcycle.Patch, bool) {
	var p motorcycle.Patch
	draft = draft.Clone()
	switch f {
	case FieldTitle:
		if draft.Title == server.Title {
			return p, false
		}
		p.Title = &draft.Title
	case FieldPrice:
		if draft.Price.Equal(server.Price) {
			return p, false
		}
		p.Price = &draft.Price
	case FieldCurrency:
		if draft.Currency == server.Currency {
			return p, false
		}
		p.Currency = &draft.Currency
	case FieldDescription:
		if deref(draft.Description) == deref(server.Description) {
			return p, false
		}
		p.Description = draft.Description
	default:
		if draft.Data == nil || (server.Data != nil && sameData(*draft.Data, *server.Data)) {
			return p, false
		}
		p.Data = draft.Data
	}
	return p, true
}

func sameData(a, b motorcycle.Data) bool {
	return intEq(a.Mileage, b.Mileage) && intEq(a.Volume, b.Volume) &&
		a.MileageUnit == b.MileageUnit && a.VolumeUnit == b.VolumeUnit &&
		a.FrameNumber == b.FrameNumber && a.ArrivalDate == b.ArrivalDate
}

func intEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
