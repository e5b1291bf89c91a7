package user

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/MikeMC777/motoshop/internal/api"
	"github.com/MikeMC777/motoshop/internal/hostenv"
)

// ErrIdentityUnavailable means registration was needed but the host gave
// no profile to register with.
var ErrIdentityUnavailable = errors.New("identity unavailable: host provided no user profile")

type Phase int

const (
	Idle Phase = iota
	Fetching
	Registering
	Found
	Failed
)

func (p Phase) String() string {
	return [...]string{"idle", "fetching", "registering", "found", "failed"}[p]
}

// State is what a consumer renders. Registering and Err are never set at
// the same time: an authentication failure shows as "finalizing
// registration", not as an error.
type State struct {
	Phase       Phase
	User        *User
	Loading     bool
	Registering bool
	Err         error
}

// Users is the subset of the API the resolver needs.
type Users interface {
	GetMe(ctx context.Context) (*User, error)
	CreateMe(ctx context.Context, in CreateUser) (*User, error)
}

// ProfileSource provides the host user profile.
type ProfileSource interface {
	Profile() (hostenv.Profile, bool)
}

// Resolver finds the current user, registering it on first launch.
type Resolver struct {
	users Users
	host  ProfileSource

	// OnChange, when set, receives every state transition.
	OnChange func(State)

	mu    sync.Mutex
	state State
}

func NewResolver(users Users, host ProfileSource) *Resolver {
	return &Resolver{users: users, host: host}
}

func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resolver) set(s State) {
	r.mu.Lock()
	r.state = s
	cb := r.OnChange
	r.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

// ResolveOrCreate returns the current user. A 401 on GET /users/me is read
// as "not registered yet" and triggers a single registration attempt; a
// 401 on that attempt is final.
func (r *Resolver) ResolveOrCreate(ctx context.Context) (*User, error) {
	r.set(State{Phase: Fetching, Loading: true})

	u, err := r.users.GetMe(ctx)
	if err == nil {
		r.set(State{Phase: Found, User: u})
		return u, nil
	}
	if !errors.Is(err, api.ErrAuthenticationRequired) {
		r.fail(err)
		return nil, err
	}

	profile, ok := r.host.Profile()
	if !ok {
		r.fail(ErrIdentityUnavailable)
		return nil, ErrIdentityUnavailable
	}

	r.set(State{Phase: Registering, Loading: true, Registering: true})
	u, err = r.users.CreateMe(ctx, CreateUser{
		TelegramID:       profile.TelegramID,
		TelegramUsername: profile.Username,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		Avatar:           profile.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, api.ErrAuthenticationRequired) {
			// stays in "registering"; not surfaced as an error
			log.Printf("[user] registration of telegram id %d not accepted yet", profile.TelegramID)
			return nil, err
		}
		r.fail(err)
		return nil, err
	}
	log.Printf("[user] registered telegram id %d as %s", profile.TelegramID, u.ID)
	r.set(State{Phase: Found, User: u})
	return u, nil
}

// Refetch runs the resolution again from scratch.
func (r *Resolver) Refetch(ctx context.Context) (*User, error) {
	return r.ResolveOrCreate(ctx)
}

func (r *Resolver) fail(err error) {
	log.Printf("[user] failed to load or create user: %v", err)
	r.set(State{Phase: Failed, Err: err})
}
