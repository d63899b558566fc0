/*
Copyright 2024 The iccinspect Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package server exposes profile decoding over HTTP: upload a profile,
// get back a rendered text report.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mechiko/iccinspect/internal/echolog"
	"github.com/mechiko/iccinspect/pkg/config"
)

const (
	defaultAddr            = "127.0.0.1:8080"
	defaultShutdownTimeout = 5 * time.Second

	// maxUploadSize bounds the multipart body the server will read
	// into memory before decoding it as a profile.
	maxUploadSize = 16 << 20
)

// Server is the report HTTP server: one echo instance, one per-client
// IP rate limiter, and the shutdown plumbing the CLI's "serve"
// subcommand needs.
type Server struct {
	echo            *echo.Echo
	addr            string
	notify          chan error
	shutdownTimeout time.Duration
	limiter         *ipRateLimiter
	cfg             *config.Config
}

// New builds a Server listening on addr (host:port). If addr is
// empty, defaultAddr is used. Rate limiting parameters come from cfg.
func New(addr string, cfg *config.Config) *Server {
	if addr == "" {
		addr = defaultAddr
	}
	if cfg == nil {
		cfg = config.Default()
	}

	log, _ := zap.NewProduction()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(io.Discard)

	e.Use(
		echolog.Recover(log),
		echolog.Logger(log),
	)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	s := &Server{
		echo:            e,
		addr:            addr,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
		limiter:         newIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		cfg:             cfg,
	}

	e.Use(s.rateLimit)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.handleHealthz)
	s.echo.POST("/profile", s.handleProfile)
}

// rateLimit rejects a request with 429 once the requesting IP has
// exhausted its token bucket.
func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.limiter.allow(c.RealIP()) {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Addr returns the resolved listen address (after the defaultAddr
// fallback has been applied).
func (s *Server) Addr() string {
	return s.addr
}

// Start begins serving in the background; errors (including a clean
// shutdown) arrive on Notify().
func (s *Server) Start() {
	go func() {
		s.notify <- s.echo.Start(s.addr)
		close(s.notify)
	}()
}

// Notify returns the channel that receives the error echo's Start
// returns when serving ends; after Shutdown that is
// http.ErrServerClosed.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown stops accepting new connections and waits up to
// shutdownTimeout for in-flight requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

// ipRateLimiter hands out one token-bucket limiter per client IP,
// created lazily on first sight.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

func newIPRateLimiter(r rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.r, l.burst)
		l.limiters[ip] = lim
	}
	l.mu.Unlock()
	return lim.Allow()
}

var errUploadTooLarge = fmt.Errorf("upload exceeds %d bytes", maxUploadSize)
