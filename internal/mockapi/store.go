package mockapi

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/motoshop/internal/analytics"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidPrice = errors.New("price must be non-negative")
)

type visit struct {
	userID string
	source string
	at     time.Time
}

// Store keeps the mock API data in memory.
type Store struct {
	mu          sync.RWMutex
	motorcycles map[string]*motorcycle.Motorcycle
	order       []string
	users       map[int64]*user.User
	visits      []visit
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		motorcycles: make(map[string]*motorcycle.Motorcycle),
		users:       make(map[int64]*user.User),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Add inserts m, assigning ids and timestamps where missing.
func (s *Store) Add(m motorcycle.Motorcycle) *motorcycle.Motorcycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = motorcycle.StatusDraft
	}
	now := s.now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	for i := range m.Photos {
		if m.Photos[i].ID == "" {
			m.Photos[i].ID = uuid.NewString()
		}
		m.Photos[i].MotorcycleID = m.ID
		if m.Photos[i].CreatedAt.IsZero() {
			m.Photos[i].CreatedAt = now
		}
	}
	cp := m.Clone()
	if _, exists := s.motorcycles[m.ID]; !exists {
		s.order = append(s.order, m.ID)
	}
	s.motorcycles[m.ID] = cp
	return cp.Clone()
}

// List returns matches newest first.
func (s *Store) List(f motorcycle.Filter) []motorcycle.Motorcycle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []motorcycle.Motorcycle{}
	for _, id := range s.order {
		m := s.motorcycles[id]
		if f.Match(m) {
			out = append(out, *m.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) Get(id string) (*motorcycle.Motorcycle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.motorcycles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.Clone(), nil
}

func (s *Store) Patch(id string, p motorcycle.Patch) (*motorcycle.Motorcycle, error) {
	if p.Price != nil && p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.motorcycles[id]
	if !ok {
		return nil, ErrNotFound
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Currency != nil {
		m.Currency = *p.Currency
	}
	if p.Description != nil {
		d := *p.Description
		m.Description = &d
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Data != nil {
		m.Data = (&motorcycle.Motorcycle{Data: p.Data}).Clone().Data
	}
	m.UpdatedAt = s.now()
	return m.Clone(), nil
}

func (s *Store) SetStatus(id string, st motorcycle.Status) (*motorcycle.Motorcycle, error) {
	return s.Patch(id, motorcycle.Patch{Status: &st})
}

func (s *Store) UserByTelegramID(id int64) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// CreateUser registers in, or returns the existing user for its Telegram id.
func (s *Store) CreateUser(in user.CreateUser, isAdmin bool) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[in.TelegramID]; ok {
		cp := *u
		return &cp
	}
	u := &user.User{
		ID:               uuid.NewString(),
		IsAdmin:          isAdmin,
		TelegramID:       in.TelegramID,
		TelegramUsername: in.TelegramUsername,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Avatar:           in.Avatar,
	}
	s.users[in.TelegramID] = u
	cp := *u
	return &cp
}

func (s *Store) RecordVisit(userID, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits = append(s.visits, visit{userID: userID, source: source, at: s.now()})
}

// VisitCount is the number of visits recorded for userID.
func (s *Store) VisitCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, v := range s.visits {
		if v.userID == userID {
			n++
		}
	}
	return n
}

func (s *Store) Stats(userID string) analytics.VisitStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := analytics.VisitStats{UserID: userID}
	days := map[string]struct{}{}
	for _, v := range s.visits {
		if v.userID != userID {
			continue
		}
		if st.TotalVisits == 0 || v.at.Before(st.FirstVisit) {
			st.FirstVisit = v.at
		}
		if v.at.After(st.LastVisit) {
			st.LastVisit = v.at
		}
		st.TotalVisits++
		days[v.at.Format("2006-01-02")] = struct{}{}
	}
	st.UniqueDays = len(days)
	if st.TotalVisits > 0 {
		st.DaysSpan = int(st.LastVisit.Sub(st.FirstVisit).Hours()/24) + 1
		st.AvgVisitsPerDay = float64(st.TotalVisits) / float64(st.DaysSpan)
	}
	return st
}

// Seed fills the store with a few listings for local runs.
func Seed(s *Store) {
	km := func(v int) *int { return &v }
	desc := "Один владелец, сервисная книжка"
	s.Add(motorcycle.Motorcycle{
		Title: "Honda CB400 Super Four", Price: decimal.NewFromInt(4500), Currency: "USD",
		Status: motorcycle.StatusAvailable, Description: &desc,
		SourceURL: "https://www.goo-net-exchange.com/bike/honda-cb400",
		Data:      &motorcycle.Data{Mileage: km(18000), MileageUnit: "km", Volume: km(400), VolumeUnit: "cc", FrameNumber: "NC42-1100234"},
		Photos: []motorcycle.Photo{
			{S3URL: "https://example.com/cb400/2.jpg", Order: 2},
			{S3URL: "https://example.com/cb400/1.jpg", Order: 1},
		},
	})
	s.Add(motorcycle.Motorcycle{
		Title: "Yamaha MT-07", Price: decimal.NewFromInt(6200), Currency: "USD",
		Status: motorcycle.StatusReserved, SourceURL: "https://www.goo-net-exchange.com/bike/yamaha-mt07",
		Data: &motorcycle.Data{Mileage: km(9000), MileageUnit: "km", Volume: km(689), VolumeUnit: "cc", ArrivalDate: "2026-11-20"},
	})
	s.Add(motorcycle.Motorcycle{
		Title: "Kawasaki Ninja 650", Currency: "USD", Status: motorcycle.StatusDraft,
		SourceURL: "https://www.goo-net-exchange.com/bike/kawasaki-ninja650",
	})
}
