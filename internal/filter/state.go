// Package filter holds the listing filter chosen by the user. Blank and
// zero inputs are stored as "unset" so they never reach the query string.
package filter

import (
	"strconv"
	"strings"

	"github.com/MikeMC777/motoshop/internal/motorcycle"
)

type State struct {
	criteria motorcycle.Filter
	onChange func(motorcycle.Filter)
}

// New returns an empty filter. onChange receives the normalized criteria
// after every change.
func New(onChange func(motorcycle.Filter)) *State {
	return &State{onChange: onChange}
}

// ToggleStatus selects s, or clears the status when s is already selected.
func (st *State) ToggleStatus(s motorcycle.Status) {
	if st.criteria.Status != nil && *st.criteria.Status == s {
		st.criteria.Status = nil
	} else {
		st.criteria.Status = &s
	}
	st.changed()
}

func (st *State) SetTitle(title string) {
	if strings.TrimSpace(title) == "" {
		st.criteria.Title = nil
	} else {
		st.criteria.Title = &title
	}
	st.changed()
}

// SetMinPrice takes the raw input; blank, unparseable or non-positive
// values unset the bound.
func (st *State) SetMinPrice(v string) {
	st.criteria.MinPrice = parsePrice(v)
	st.changed()
}

func (st *State) SetMaxPrice(v string) {
	st.criteria.MaxPrice = parsePrice(v)
	st.changed()
}

func (st *State) Reset() {
	st.criteria = motorcycle.Filter{}
	st.changed()
}

// Criteria returns a copy of the current criteria.
func (st *State) Criteria() motorcycle.Filter {
	return clone(st.criteria)
}

func (st *State) HasActive() bool {
	c := st.criteria
	return c.Status != nil || c.Title != nil || c.MinPrice != nil || c.MaxPrice != nil
}

func (st *State) changed() {
	if st.onChange != nil {
		st.onChange(clone(st.criteria))
	}
}

func parsePrice(v string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func clone(f motorcycle.Filter) motorcycle.Filter {
	var out motorcycle.Filter
	if f.Status != nil {
		s := *f.Status
		out.Status = &s
	}
	if f.Title != nil {
		t := *f.Title
		out.Title = &t
	}
	if f.MinPrice != nil {
		n := *f.MinPrice
		out.MinPrice = &n
	}
	if f.MaxPrice != nil {
		n := *f.MaxPrice
		out.MaxPrice = &n
	}
	return out
}
