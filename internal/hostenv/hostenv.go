// Package hostenv reads what the Telegram Mini App host hands over: the
// opaque init data token and the user profile embedded in it.
package hostenv

import (
	"encoding/json"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// Profile is the host user the app is launched for.
type Profile struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	PhotoURL   string
}

// Host is the identity context for outbound requests.
type Host struct {
	token      string
	profile    *Profile
	startParam string
}

// Parse extracts the profile from raw init data. The raw string is kept
// as the token even when it cannot be parsed; the server decides whether
// it is acceptable.
func Parse(raw string) *Host {
	h := &Host{token: strings.TrimSpace(raw)}
	if h.token == "" {
		return h
	}
	data, err := initdata.Parse(h.token)
	if err != nil {
		log.Printf("[hostenv] init data not parseable, sending it as is: %v", err)
		return h
	}
	h.startParam = data.StartParam
	if data.User.ID != 0 {
		h.profile = &Profile{
			TelegramID: data.User.ID,
			Username:   data.User.Username,
			FirstName:  data.User.FirstName,
			LastName:   data.User.LastName,
			PhotoURL:   data.User.PhotoURL,
		}
	}
	return h
}

// Token implements api.TokenSource.
func (h *Host) Token() string {
	if h == nil {
		return ""
	}
	return h.token
}

// Profile returns the host user, if the host provided one.
func (h *Host) Profile() (Profile, bool) {
	if h == nil || h.profile == nil {
		return Profile{}, false
	}
	return *h.profile, true
}

func (h *Host) StartParam() string {
	if h == nil {
		return ""
	}
	return h.startParam
}

// Sign builds init data for p signed with botToken, the way Telegram does.
// Only meant for local runs against the mock API.
func Sign(p Profile, startParam, botToken string, authDate time.Time) string {
	user := map[string]any{"id": p.TelegramID, "first_name": p.FirstName}
	if p.LastName != "" {
		user["last_name"] = p.LastName
	}
	if p.Username != "" {
		user["username"] = p.Username
	}
	if p.PhotoURL != "" {
		user["photo_url"] = p.PhotoURL
	}
	userJSON, _ := json.Marshal(user)

	fields := map[string]string{
		"query_id": "dev",
		"user":     string(userJSON),
	}
	if startParam != "" {
		fields["start_param"] = startParam
	}

	q := url.Values{}
	for k, v := range fields {
		q.Set(k, v)
	}
	q.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	q.Set("hash", initdata.Sign(fields, botToken, authDate))
	return q.Encode()
}
