package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/auth"
	"github.com/dmitrijs2005/dermasight/internal/server/config"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	SessionID string
	Email     string
	Role      models.Role
}

// SessionService issues access tokens backed by session rows and resolves
// tokens back to principals.
type SessionService struct {
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	validity    time.Duration
	now         func() time.Time
	log         logging.Logger
}

func NewSessionService(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *SessionService {
	return &SessionService{
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		validity:    cfg.SessionValidityDuration,
		now:         time.Now,
		log:         log.With("module", "sessions"),
	}
}

// Issue starts a session for u and returns its access token.
func (s *SessionService) Issue(ctx context.Context, u *models.User) (string, error) {
	now := s.now().UTC()
	sess := &models.Session{
		ID:        uuid.NewString(),
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.validity),
	}

	if err := s.repomanager.Sessions().Create(ctx, sess); err != nil {
		s.log.Error(ctx, "session create failed", "email", u.Email, "error", err)
		return "", fmt.Errorf("%w: create session", common.ErrInternal)
	}

	token, err := auth.GenerateToken(sess, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", common.ErrInternal, err)
	}
	return token, nil
}

// Authenticate verifies token and checks that its session is still live.
func (s *SessionService) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	sess, err := s.repomanager.Sessions().Find(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		s.log.Error(ctx, "session lookup failed", "session", claims.SessionID(), "error", err)
		return nil, fmt.Errorf("%w: session lookup", common.ErrInternal)
	}
	if !s.now().Before(sess.ExpiresAt) {
		return nil, common.ErrSessionExpired
	}

	return &Principal{SessionID: sess.ID, Email: sess.Email, Role: sess.Role}, nil
}

// Revoke ends a session. Revoking an unknown session is not an error.
func (s *SessionService) Revoke(ctx context.Context, sessionID string) error {
	if err := s.repomanager.Sessions().Delete(ctx, sessionID); err != nil {
		s.log.Error(ctx, "session delete failed", "session", sessionID, "error", err)
		return fmt.Errorf("%w: delete session", common.ErrInternal)
	}
	return nil
}
