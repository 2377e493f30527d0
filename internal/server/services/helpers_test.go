package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/config"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                 "k",
		SessionValidityDuration:   time.Hour,
		ResetCodeValidityDuration: 15 * time.Minute,
		MaxImageBytes:             4 * 1024 * 1024,
	}
}

// fakeClock is a settable time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// captureNotifier records the last reset code per email.
type captureNotifier struct {
	mu    sync.Mutex
	codes map[string]string
}

func (n *captureNotifier) SendResetCode(_ context.Context, email, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.codes == nil {
		n.codes = map[string]string{}
	}
	n.codes[email] = code
	return nil
}

func (n *captureNotifier) code(email string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.codes[email]
}

func newAccountService(t *testing.T, rm repomanager.RepositoryManager) (*AccountService, *captureNotifier, *fakeClock) {
	t.Helper()
	n := &captureNotifier{}
	clk := newFakeClock()
	s := NewAccountService(rm, testConfig(), n, logging.Nop{})
	s.now = clk.Now
	return s, n, clk
}

func tsAt(min int) *time.Time {
	t := time.Date(2024, 1, 1, 0, min, 0, 0, time.UTC)
	return &t
}

func testCase(id, email string, ts *time.Time) *models.Case {
	c := &models.Case{Timestamp: ts, UserEmail: email}
	c.DoctorDashboard.CaseID = id
	return c
}
