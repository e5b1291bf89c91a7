package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/motoshop/internal/hostenv"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

const botToken = "test-bot"

var (
	adminProfile = hostenv.Profile{TelegramID: 1, FirstName: "Admin"}
	riderProfile = hostenv.Profile{TelegramID: 2, FirstName: "Rider", Username: "rider"}
)

func newRouter(t *testing.T, opts Options) (*gin.Engine, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewStore()
	opts.BotToken = botToken
	opts.Admins = []int64{adminProfile.TelegramID}
	return New(store, opts).Router(), store
}

func token(p hostenv.Profile) string {
	return hostenv.Sign(p, "", botToken, time.Now())
}

func do(r http.Handler, method, path, tok, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if tok != "" {
		req.Header.Set("X-API-Token", tok)
	}
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r http.Handler, p hostenv.Profile) user.User {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/users/me", token(p), `{"firstName":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("registro: status=%d body=%s", w.Code, w.Body.String())
	}
	var got struct {
		Body user.User `json:"body"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	return got.Body
}

func TestAuth_MissingOrForgedToken(t *testing.T) {
	r, _ := newRouter(t, Options{})

	if w := do(r, http.MethodGet, "/api/v1/motorcycles", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("sin token: esperaba 401, got %d", w.Code)
	}
	forged := hostenv.Sign(riderProfile, "", "other-bot", time.Now())
	if w := do(r, http.MethodPost, "/api/v1/users/me", forged, `{}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("firma falsa: esperaba 401, got %d", w.Code)
	}
}

func TestUsersMe_UnregisteredThenCreate(t *testing.T) {
	r, _ := newRouter(t, Options{})
	tok := token(riderProfile)

	if w := do(r, http.MethodGet, "/api/v1/users/me", tok, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no registrado: esperaba 401, got %d", w.Code)
	}
	u := register(t, r, riderProfile)
	if u.TelegramID != 2 || u.IsAdmin {
		t.Fatalf("usuario inesperado: %+v", u)
	}
	if w := do(r, http.MethodGet, "/api/v1/users/me", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("registrado: esperaba 200, got %d", w.Code)
	}
	if a := register(t, r, adminProfile); !a.IsAdmin {
		t.Fatalf("admin no marcado: %+v", a)
	}
}

func TestListMotorcycles_EnvelopeAndBare(t *testing.T) {
	for _, bare := range []bool{false, true} {
		r, store := newRouter(t, Options{Bare: bare})
		Seed(store)
		register(t, r, riderProfile)

		w := do(r, http.MethodGet, "/api/v1/motorcycles?status=available", token(riderProfile), "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		var items []motorcycle.Motorcycle
		if bare {
			_ = json.Unmarshal(w.Body.Bytes(), &items)
		} else {
			var env struct {
				Body []motorcycle.Motorcycle `json:"body"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &env)
			items = env.Body
		}
		if len(items) != 1 || items[0].Status != motorcycle.StatusAvailable {
			t.Fatalf("bare=%v items=%+v", bare, items)
		}
	}
}

func TestPatch_AdminOnly(t *testing.T) {
	r, store := newRouter(t, Options{})
	m := store.Add(motorcycle.Motorcycle{Title: "Suzuki SV650", Price: decimal.NewFromInt(12000), Currency: "USD", Status: motorcycle.StatusAvailable})
	register(t, r, riderProfile)
	register(t, r, adminProfile)

	path := "/api/v1/admin/motorcycle/" + m.ID
	if w := do(r, http.MethodPatch, path, token(riderProfile), `{"price":1}`); w.Code != http.StatusForbidden {
		t.Fatalf("no admin: esperaba 403, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, path, "", `{"price":1}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("sin token: esperaba 401, got %d", w.Code)
	}

	w := do(r, http.MethodPatch, path, token(adminProfile), `{"price":15000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got, _ := store.Get(m.ID)
	if !got.Price.Equal(decimal.NewFromInt(15000)) || got.Title != "Suzuki SV650" {
		t.Fatalf("patch no aplicado: %+v", got)
	}

	if w := do(r, http.MethodPatch, path, token(adminProfile), `{"price":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("precio negativo: esperaba 400, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, "/api/v1/admin/motorcycle/nope", token(adminProfile), `{"title":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("esperaba 404, got %d", w.Code)
	}
}

func TestUpdateStatus(t *testing.T) {
	r, store := newRouter(t, Options{})
	m := store.Add(motorcycle.Motorcycle{Title: "BMW R nineT", Status: motorcycle.StatusAvailable})
	register(t, r, adminProfile)
	path := "/api/v1/admin/motorcycle/" + m.ID + "/status"

	if w := do(r, http.MethodPatch, path, token(adminProfile), `{"status":"lost"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status inválido: esperaba 400, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, path, token(adminProfile), `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("status vacío: esperaba 400, got %d", w.Code)
	}
	if w := do(r, http.MethodPatch, path, token(adminProfile), `{"status":"sold"}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got, _ := store.Get(m.ID)
	if got.Status != motorcycle.StatusSold {
		t.Fatalf("status=%s", got.Status)
	}
}

func TestVisitsAndStats(t *testing.T) {
	r, store := newRouter(t, Options{})
	u := register(t, r, riderProfile)
	tok := token(riderProfile)

	for i := 0; i < 2; i++ {
		if w := do(r, http.MethodPost, "/api/v1/analytics/visit", tok, `{"source":"direct"}`); w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
	}
	if store.VisitCount(u.ID) != 2 {
		t.Fatalf("visitas=%d", store.VisitCount(u.ID))
	}
	w := do(r, http.MethodGet, "/api/v1/analytics/my-stats", tok, "")
	var got struct {
		Body struct {
			TotalVisits int `json:"total_visits"`
			UniqueDays  int `json:"unique_days"`
		} `json:"body"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Body.TotalVisits != 2 || got.Body.UniqueDays != 1 {
		t.Fatalf("stats=%s", w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	r, _ := newRouter(t, Options{})
	if w := do(r, http.MethodGet, "/healthz", "", ""); w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
