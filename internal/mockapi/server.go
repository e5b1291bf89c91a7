// Package mockapi serves the listing API from memory, for local runs of
// the storefront and as the upstream in tests.
package mockapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/motoshop/docs"
	"github.com/MikeMC777/motoshop/internal/analytics"
	"github.com/MikeMC777/motoshop/internal/httpx"
	"github.com/MikeMC777/motoshop/internal/motorcycle"
	"github.com/MikeMC777/motoshop/internal/user"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

type Options struct {
	// BotToken enables init data signature checks when set.
	BotToken string
	// TokenTTL is how long signed init data stays valid.
	TokenTTL time.Duration
	// Admins are the Telegram ids registered as admins.
	Admins []int64
	// Bare answers T instead of {"body": T}.
	Bare bool
}

type Server struct {
	store *Store
	opts  Options
}

func New(store *Store, opts Options) *Server {
	if opts.TokenTTL == 0 {
		opts.TokenTTL = 2 * time.Hour
	}
	return &Server{store: store, opts: opts}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1", httpx.InitData(s.opts.BotToken, s.opts.TokenTTL))
	v1.GET("/motorcycles", s.listMotorcycles)
	v1.GET("/motorcycles/:id", s.getMotorcycle)
	v1.GET("/users/me", s.getMe)
	v1.POST("/users/me", s.createMe)
	v1.PATCH("/admin/motorcycle/:id", s.patchMotorcycle)
	v1.PATCH("/admin/motorcycle/:id/status", s.updateStatus)
	v1.POST("/analytics/visit", s.recordVisit)
	v1.GET("/analytics/my-stats", s.myStats)
	return r
}

func (s *Server) reply(c *gin.Context, status int, v any) {
	if s.opts.Bare {
		c.JSON(status, v)
		return
	}
	c.JSON(status, gin.H{"body": v})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, HTTPError{Error: msg})
}

// currentUser resolves the registered user behind the token, answering 401
// when there is none.
func (s *Server) currentUser(c *gin.Context) (*user.User, bool) {
	tg, ok := httpx.TelegramUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	u, err := s.store.UserByTelegramID(tg.ID)
	if err != nil {
		fail(c, http.StatusUnauthorized, "failed to authenticate user")
		return nil, false
	}
	return u, true
}

func (s *Server) requireAdmin(c *gin.Context) bool {
	u, ok := s.currentUser(c)
	if !ok {
		return false
	}
	if !u.IsAdmin {
		fail(c, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

// listMotorcycles godoc
// @Summary  Get all motorcycles
// @Tags     motorcycles
// @Produce  json
// @Param    status    query string false "available, reserved, sold, draft"
// @Param    title     query string false "partial match"
// @Param    minPrice  query number false "minimum price"
// @Param    maxPrice  query number false "maximum price"
// @Success  200 {array}  motorcycle.Motorcycle
// @Failure  401 {object} HTTPError
// @Router   /motorcycles [get]
func (s *Server) listMotorcycles(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	f, err := motorcycle.FilterFromQuery(c.Request.URL.Query())
	if err != nil {
		fail(c, http.StatusBadRequest, "failed to get motorcycles: "+err.Error())
		return
	}
	s.reply(c, http.StatusOK, s.store.List(f))
}

// getMotorcycle godoc
// @Summary  Get motorcycle by ID
// @Tags     motorcycles
// @Produce  json
// @Param    id  path string true "Motorcycle ID"
// @Success  200 {object} motorcycle.Motorcycle
// @Failure  404 {object} HTTPError
// @Router   /motorcycles/{id} [get]
func (s *Server) getMotorcycle(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	m, err := s.store.Get(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, "motorcycle not found")
		return
	}
	s.reply(c, http.StatusOK, m)
}

// getMe godoc
// @Summary  Get current user
// @Tags     users
// @Produce  json
// @Success  200 {object} user.User
// @Failure  401 {object} HTTPError
// @Router   /users/me [get]
func (s *Server) getMe(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	s.reply(c, http.StatusOK, u)
}

// createMe godoc
// @Summary  Create me
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body user.CreateUser true "profile"
// @Success  200 {object} user.User
// @Failure  400 {object} HTTPError
// @Failure  401 {object} HTTPError
// @Router   /users/me [post]
func (s *Server) createMe(c *gin.Context) {
	tg, ok := httpx.TelegramUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "failed to validate user")
		return
	}
	var in user.CreateUser
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	// the token is authoritative for the identity
	in.TelegramID = tg.ID
	isAdmin := false
	for _, id := range s.opts.Admins {
		if id == tg.ID {
			isAdmin = true
		}
	}
	s.reply(c, http.StatusOK, s.store.CreateUser(in, isAdmin))
}

// patchMotorcycle godoc
// @Summary  Update motorcycle (admin only)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string true "Motorcycle ID"
// @Param    body body motorcycle.Patch true "fields to change"
// @Success  200 {object} motorcycle.Motorcycle
// @Failure  400 {object} HTTPError
// @Failure  401 {object} HTTPError
// @Failure  403 {object} HTTPError
// @Router   /admin/motorcycle/{id} [patch]
func (s *Server) patchMotorcycle(c *gin.Context) {
	if !s.requireAdmin(c) {
		return
	}
	var p motorcycle.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	m, err := s.store.Patch(c.Param("id"), p)
	s.replyUpdate(c, m, err)
}

// updateStatus godoc
// @Summary  Update motorcycle status (admin only)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id   path string true "Motorcycle ID"
// @Param    body body motorcycle.StatusUpdate true "new status"
// @Success  200 {object} motorcycle.Motorcycle
// @Failure  400 {object} HTTPError
// @Failure  403 {object} HTTPError
// @Router   /admin/motorcycle/{id}/status [patch]
func (s *Server) updateStatus(c *gin.Context) {
	if !s.requireAdmin(c) {
		return
	}
	var in motorcycle.StatusUpdate
	if err := c.ShouldBindJSON(&in); err != nil || !in.Status.Valid() {
		fail(c, http.StatusBadRequest, "invalid status")
		return
	}
	m, err := s.store.SetStatus(c.Param("id"), in.Status)
	s.replyUpdate(c, m, err)
}

func (s *Server) replyUpdate(c *gin.Context, m *motorcycle.Motorcycle, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		fail(c, http.StatusNotFound, "motorcycle not found")
	case err != nil:
		fail(c, http.StatusBadRequest, "failed to update motorcycle: "+err.Error())
	default:
		s.reply(c, http.StatusOK, m)
	}
}

// recordVisit godoc
// @Summary  Record a visit
// @Tags     analytics
// @Accept   json
// @Param    body body analytics.Visit true "visit"
// @Success  200 {object} analytics.Visit
// @Failure  401 {object} HTTPError
// @Router   /analytics/visit [post]
func (s *Server) recordVisit(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	var in analytics.Visit
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid json")
		return
	}
	s.store.RecordVisit(u.ID, in.Source)
	s.reply(c, http.StatusOK, in)
}

// myStats godoc
// @Summary  Visit statistics of the current user
// @Tags     analytics
// @Produce  json
// @Success  200 {object} analytics.VisitStats
// @Failure  401 {object} HTTPError
// @Router   /analytics/my-stats [get]
func (s *Server) myStats(c *gin.Context) {
	u, ok := s.currentUser(c)
	if !ok {
		return
	}
	s.reply(c, http.StatusOK, s.store.Stats(u.ID))
}
