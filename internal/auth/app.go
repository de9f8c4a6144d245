package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"MiniCatalog/pkg/kit"
)

const (
	tokenLimitPerMin = 5
	limitWindow      = 60 * time.Second
)

// Routes serves POST /token, rate limited per client IP. Mount it under /auth.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	limiter := kit.NewIPRateLimiter(tokenLimitPerMin, limitWindow, kit.WithTrustedProxy(s.TrustProxy))
	r.With(limiter.Middleware).Post("/token", s.handleToken)

	return r
}
