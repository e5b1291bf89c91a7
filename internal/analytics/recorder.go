// Package analytics records app launches. Failures are logged and never
// reach the user.
package analytics

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MikeMC777/motoshop/internal/api"
)

// VisitStats is what /analytics/my-stats returns.
type VisitStats struct {
	UserID          string    `json:"user_id"`
	TotalVisits     int       `json:"total_visits"`
	UniqueDays      int       `json:"unique_days"`
	FirstVisit      time.Time `json:"first_visit"`
	LastVisit       time.Time `json:"last_visit"`
	DaysSpan        int       `json:"days_span"`
	AvgVisitsPerDay float64   `json:"avg_visits_per_day"`
}

// Visit payload.
// swagger:model Visit
type Visit struct {
	Source string `json:"source" example:"telegram_webapp"`
}

// Host is the part of the host environment the recorder reads.
type Host interface {
	Token() string
	StartParam() string
}

type Recorder struct {
	api       *api.Client
	host      Host
	launchURL string

	mu       sync.Mutex
	recorded bool
}

func NewRecorder(c *api.Client, host Host, launchURL string) *Recorder {
	return &Recorder{api: c, host: host, launchURL: launchURL}
}

// RecordVisit posts the visit once per session. An empty source is
// derived from the launch context.
func (r *Recorder) RecordVisit(ctx context.Context, source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recorded {
		return
	}
	if r.host.Token() == "" {
		log.Printf("[analytics] no init data available, visit not recorded")
		return
	}
	if source == "" {
		source = r.Source()
	}
	if err := r.api.Do(ctx, http.MethodPost, "/analytics/visit", nil, Visit{Source: source}, nil); err != nil {
		log.Printf("[analytics] failed to record visit: %v", err)
		return
	}
	r.recorded = true
	log.Printf("[analytics] visit recorded source=%s", source)
}

// Source derives where the app was opened from.
func (r *Recorder) Source() string {
	if sp := r.host.StartParam(); sp != "" {
		return sp
	}
	if u, err := url.Parse(r.launchURL); err == nil {
		if sp := u.Query().Get("startapp"); sp != "" {
			return sp
		}
	}
	if strings.Contains(r.launchURL, "t.me") {
		return "telegram_webapp"
	}
	return "direct"
}

// Stats returns the visit statistics of the current user, or nil when
// they cannot be loaded.
func (r *Recorder) Stats(ctx context.Context) *VisitStats {
	if r.host.Token() == "" {
		return nil
	}
	var s VisitStats
	if err := r.api.Do(ctx, http.MethodGet, "/analytics/my-stats", nil, nil, &s); err != nil {
		log.Printf("[analytics] failed to get user stats: %v", err)
		return nil
	}
	return &s
}
