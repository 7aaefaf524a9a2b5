package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/repository"
	"taskboard/pkg/helpers"
	"taskboard/pkg/sentinel"
)

// AuthService issues and refreshes token pairs. Sessions live in redis as a
// hash keyed by the account email; when redis is not configured the service
// degrades to stateless tokens.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Redis  SessionStore
	Logger *logrus.Logger
}

// SessionStore is the slice of the redis client the auth flow needs; tests
// swap in a map-backed fake.
type SessionStore interface {
	SaveSession(ctx context.Context, email string, fields map[string]any, ttl time.Duration) error
	SessionExists(ctx context.Context, email string) (bool, error)
	DropSession(ctx context.Context, email string) error
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

const sessionTTL = 24 * time.Hour

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, sessions SessionStore, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Redis: sessions, Logger: logger}
}

// Login validates credentials and returns a token pair whose subject claim is
// the account email. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.FindByEmail(email)
	if err != nil || u == nil {
		return nil, TokenPair{}, sentinel.ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, TokenPair{}, sentinel.ErrInvalidCredentials
	}
	pair, err := s.issue(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the pair for a valid refresh token with a live session.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, sentinel.ErrInvalidCredentials
	}
	u, err := s.Users.FindByEmail(claims.Email())
	if err != nil || u == nil {
		return TokenPair{}, sentinel.ErrInvalidCredentials
	}
	if s.Redis != nil {
		ok, err := s.Redis.SessionExists(ctx, u.Email)
		if err != nil || !ok {
			return TokenPair{}, sentinel.ErrInvalidCredentials
		}
	}
	return s.issue(ctx, u)
}

// Logout drops the redis session; outstanding tokens expire on their own.
func (s *AuthService) Logout(ctx context.Context, email string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.DropSession(ctx, email); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("session drop failed")
	}
}

func (s *AuthService) issue(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.Email)
	if err != nil {
		return TokenPair{}, err
	}
	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"first_name": u.FirstName,
			"last_name":  u.LastName,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		if err := s.Redis.SaveSession(ctx, u.Email, fields, sessionTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Warn("session save failed")
		}
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}
