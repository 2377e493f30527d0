package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

// MessageService is the message directory: append-only per-case
// conversations between the patient who owns a case and doctors.
// Patients may only access threads of their own cases.
type MessageService struct {
	repomanager repomanager.RepositoryManager
	hub         *Hub
	now         func() time.Time
	log         logging.Logger
}

func NewMessageService(m repomanager.RepositoryManager, hub *Hub, log logging.Logger) *MessageService {
	return &MessageService{
		repomanager: m,
		hub:         hub,
		now:         time.Now,
		log:         log.With("module", "messages"),
	}
}

func (s *MessageService) authorize(ctx context.Context, p Principal, caseID string) error {
	c, err := s.repomanager.Cases().Get(ctx, caseID)
	if err != nil {
		if !errors.Is(err, common.ErrCaseNotFound) {
			s.log.Error(ctx, "case lookup failed", "case_id", caseID, "error", err)
		}
		return common.ErrCaseNotFound
	}
	if p.Role == models.RoleDoctor {
		return nil
	}
	if c.UserEmail != p.Email {
		return common.ErrForbidden
	}
	return nil
}

func (s *MessageService) list(ctx context.Context, caseID string) []models.Message {
	msgs, err := s.repomanager.Messages().List(ctx, caseID)
	if err != nil {
		s.log.Error(ctx, "message list failed", "case_id", caseID, "error", err)
		return []models.Message{}
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs
}

// ListForCase returns the thread of caseID in insertion order.
func (s *MessageService) ListForCase(ctx context.Context, p Principal, caseID string) ([]models.Message, error) {
	if err := s.authorize(ctx, p, caseID); err != nil {
		return nil, err
	}
	return s.list(ctx, caseID), nil
}

// Append adds a message from p and returns the full updated thread.
// Subscribers of the case are notified.
func (s *MessageService) Append(ctx context.Context, p Principal, caseID, text string) ([]models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.Validation("message text is required")
	}
	if err := s.authorize(ctx, p, caseID); err != nil {
		return nil, err
	}

	m := models.Message{Sender: p.Role, Text: text, Timestamp: s.now().UTC()}
	if err := s.repomanager.Messages().Append(ctx, caseID, m); err != nil {
		s.log.Error(ctx, "message append failed", "case_id", caseID, "error", err)
	}

	msgs := s.list(ctx, caseID)
	s.hub.Publish(caseID, msgs)
	return msgs, nil
}

// Subscribe streams thread updates for caseID until cancel is called.
func (s *MessageService) Subscribe(ctx context.Context, p Principal, caseID string) (<-chan []models.Message, func(), error) {
	if err := s.authorize(ctx, p, caseID); err != nil {
		return nil, nil, err
	}
	ch, cancel := s.hub.Subscribe(caseID)
	return ch, cancel, nil
}
