package service

import (
	"strings"
	"time"

	"github.com/staffhq/staff-bot/internal/auth"
	"github.com/staffhq/staff-bot/internal/config"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// IssuedToken is a signed bearer token for the query routes.
type IssuedToken struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService issues bearer tokens for consumers of the query routes.
type AuthService struct {
	tokenMgr *auth.TokenManager
	ttl      time.Duration
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		ttl:      cfg.TokenTTL(),
	}
}

// Tokens exposes the manager used to verify issued tokens.
func (s *AuthService) Tokens() *auth.TokenManager {
	return s.tokenMgr
}

// IssueQueryToken signs a read-only token for subject. A zero ttl uses the
// configured default.
func (s *AuthService) IssueQueryToken(subject string, ttl time.Duration) (*IssuedToken, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, apperrors.NewValidationError("subject is required", nil)
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	token, exp, err := s.tokenMgr.GenerateTokenWithTTL(subject, ttl, auth.ScopeQueryRead)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &IssuedToken{Token: token, Subject: subject, ExpiresAt: exp}, nil
}
