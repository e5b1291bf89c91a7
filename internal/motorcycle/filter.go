package motorcycle

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter narrows the listing. Nil fields mean "no constraint".
type Filter struct {
	Status   *Status
	Title    *string
	MinPrice *float64
	MaxPrice *float64
}

// Query builds the query string, leaving out unset, blank and
// non-positive values.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Status != nil && *f.Status != "" {
		q.Set("status", string(*f.Status))
	}
	if f.Title != nil {
		if t := strings.TrimSpace(*f.Title); t != "" {
			q.Set("title", t)
		}
	}
	if f.MinPrice != nil && *f.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil && *f.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	return q
}

// FilterFromQuery is the inverse of Query, used on the serving side.
func FilterFromQuery(q url.Values) (Filter, error) {
	var f Filter
	if v := q.Get("status"); v != "" {
		s, err := ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = &s
	}
	if v := strings.TrimSpace(q.Get("title")); v != "" {
		f.Title = &v
	}
	for key, dst := range map[string]**float64{"minPrice": &f.MinPrice, "maxPrice": &f.MaxPrice} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		if n > 0 {
			*dst = &n
		}
	}
	return f, nil
}

// Match reports whether m satisfies the filter. Title is a
// case-insensitive substring match.
func (f Filter) Match(m *Motorcycle) bool {
	if f.Status != nil && m.Status != *f.Status {
		return false
	}
	if f.Title != nil && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(strings.TrimSpace(*f.Title))) {
		return false
	}
	price := m.Price.InexactFloat64()
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}
