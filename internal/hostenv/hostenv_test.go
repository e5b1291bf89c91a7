package hostenv

import (
	"net/url"
	"testing"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

func TestParse_SignedInitData(t *testing.T) {
	p := Profile{TelegramID: 42, Username: "rider", FirstName: "Ivan", LastName: "Petrov", PhotoURL: "https://t.me/i/42.jpg"}
	raw := Sign(p, "promo", "bot-token", time.Now())

	if err := initdata.Validate(raw, "bot-token", time.Hour); err != nil {
		t.Fatalf("firma inválida: %v", err)
	}

	h := Parse(raw)
	if h.Token() != raw {
		t.Fatal("el token debe ser el init data sin modificar")
	}
	got, ok := h.Profile()
	if !ok || got != p {
		t.Fatalf("perfil=%+v ok=%v", got, ok)
	}
	if h.StartParam() != "promo" {
		t.Fatalf("start param=%q", h.StartParam())
	}
}

func TestParse_Empty(t *testing.T) {
	h := Parse("   ")
	if h.Token() != "" {
		t.Fatal("token vacío esperado")
	}
	if _, ok := h.Profile(); ok {
		t.Fatal("sin perfil esperado")
	}
}

func TestHost_NilSafe(t *testing.T) {
	var h *Host
	if h.Token() != "" || h.StartParam() != "" {
		t.Fatal("host nil debe ser vacío")
	}
	if _, ok := h.Profile(); ok {
		t.Fatal("host nil sin perfil")
	}
}

func TestSign_MatchesLibrary(t *testing.T) {
	at := time.Unix(1700000000, 0)
	raw := Sign(Profile{TelegramID: 7, FirstName: "Admin"}, "", "bot-token", at)

	want, err := initdata.SignQueryString(raw, "bot-token", at)
	if err != nil {
		t.Fatal(err)
	}
	q, _ := url.ParseQuery(raw)
	if q.Get("hash") != want {
		t.Fatalf("hash=%s want=%s", q.Get("hash"), want)
	}
	if q.Get("auth_date") != "1700000000" {
		t.Fatalf("auth_date=%s", q.Get("auth_date"))
	}
	if err := initdata.Validate(raw, "otro-token", 0); err == nil {
		t.Fatal("la firma no debe validar con otro bot token")
	}
}
