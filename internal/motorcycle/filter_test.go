package motorcycle

import (
	"testing"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

func TestFilterQuery_AllUnsetIsEmpty(t *testing.T) {
	if got := (Filter{}).Query().Encode(); got != "" {
		t.Fatalf("query=%q, esperado vacío", got)
	}
	zero := Filter{Title: ptr(""), MinPrice: ptr(0.0), MaxPrice: ptr(0.0)}
	if got := zero.Query().Encode(); got != "" {
		t.Fatalf("valores cero deben omitirse, query=%q", got)
	}
}

func TestFilterQuery_WhitespaceTitleOmitted(t *testing.T) {
	f := Filter{Title: ptr("  ")}
	if f.Query().Has("title") {
		t.Fatalf("title en blanco no debe enviarse: %q", f.Query().Encode())
	}
}

func TestFilterQuery_SetFields(t *testing.T) {
	f := Filter{
		Status:   ptr(StatusReserved),
		Title:    ptr("  Honda "),
		MinPrice: ptr(1000.0),
		MaxPrice: ptr(2500.5),
	}
	q := f.Query()
	if q.Get("status") != "reserved" || q.Get("title") != "Honda" ||
		q.Get("minPrice") != "1000" || q.Get("maxPrice") != "2500.5" {
		t.Fatalf("query inesperada: %q", q.Encode())
	}

	back, err := FilterFromQuery(q)
	if err != nil {
		t.Fatalf("FilterFromQuery: %v", err)
	}
	if *back.Status != StatusReserved || *back.Title != "Honda" || *back.MinPrice != 1000 || *back.MaxPrice != 2500.5 {
		t.Fatalf("filtro inesperado: %+v", back)
	}
}

func TestFilterFromQuery_RejectsUnknownStatus(t *testing.T) {
	f := Filter{Status: ptr(Status("lost"))}
	if _, err := FilterFromQuery(f.Query()); err == nil {
		t.Fatal("esperaba error por status inválido")
	}
}

func TestFilterMatch(t *testing.T) {
	m := &Motorcycle{Title: "Honda CBR 600", Status: StatusAvailable, Price: decimal.NewFromInt(12000)}
	cases := []struct {
		name string
		f    Filter
		want bool
	}{
		{"vacío", Filter{}, true},
		{"status", Filter{Status: ptr(StatusSold)}, false},
		{"title", Filter{Title: ptr("cbr")}, true},
		{"min", Filter{MinPrice: ptr(13000.0)}, false},
		{"max", Filter{MaxPrice: ptr(12000.0)}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Match(m); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
