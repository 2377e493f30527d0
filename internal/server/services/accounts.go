package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/cryptox"
	"github.com/dmitrijs2005/dermasight/internal/logging"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/config"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

// resetCodeDigits is the length of numeric password reset codes.
const resetCodeDigits = 6

// RegisterInput carries the registration form. LicenseNumber is kept only
// for doctors and DateOfBirth only for patients.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Role          models.Role
	LicenseNumber string
	DateOfBirth   string
}

// ProfileUpdate holds the editable profile fields.
type ProfileUpdate struct {
	Name  string
	Email string
}

// AccountService is the account directory: registration, login, password
// reset and profile updates. Returned users never carry credentials.
type AccountService struct {
	repomanager   repomanager.RepositoryManager
	notifier      ResetNotifier
	resetValidity time.Duration
	now           func() time.Time
	log           logging.Logger
}

func NewAccountService(m repomanager.RepositoryManager, cfg *config.Config, notifier ResetNotifier, log logging.Logger) *AccountService {
	return &AccountService{
		repomanager:   m,
		notifier:      notifier,
		resetValidity: cfg.ResetCodeValidityDuration,
		now:           time.Now,
		log:           log.With("module", "accounts"),
	}
}

// lookup fetches an account; storage failures are logged and reported as
// not found.
func (s *AccountService) lookup(ctx context.Context, email string) (*models.User, error) {
	u, err := s.repomanager.Accounts().Get(ctx, email)
	if err != nil {
		if !errors.Is(err, common.ErrAccountNotFound) {
			s.log.Error(ctx, "account lookup failed", "email", email, "error", err)
		}
		return nil, common.ErrAccountNotFound
	}
	return u, nil
}

func (s *AccountService) save(ctx context.Context, originalEmail string, u *models.User) {
	if err := s.repomanager.Accounts().Update(ctx, originalEmail, u); err != nil {
		s.log.Error(ctx, "account update failed", "email", originalEmail, "error", err)
	}
}

// Register creates an account. Emails are unique case-insensitively.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := models.NormalizeEmail(in.Email)

	switch {
	case name == "":
		return nil, common.Validation("name is required")
	case email == "":
		return nil, common.Validation("email is required")
	case in.Password == "":
		return nil, common.Validation("password is required")
	case !in.Role.Valid():
		return nil, common.Validation(fmt.Sprintf("unknown role %q", in.Role))
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		Role:         in.Role,
		PasswordHash: cryptox.HashPassword(in.Password),
		CreatedAt:    s.now().UTC(),
	}
	if in.Role == models.RoleDoctor {
		u.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	}
	if in.Role == models.RolePatient {
		u.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	}

	if err := s.repomanager.Accounts().Create(ctx, u); err != nil {
		if errors.Is(err, common.ErrDuplicateAccount) {
			return nil, err
		}
		s.log.Error(ctx, "account create failed", "email", email, "error", err)
		return nil, fmt.Errorf("%w: create account", common.ErrInternal)
	}

	s.log.Info(ctx, "account registered", "email", email, "role", in.Role)
	pub := u.Public()
	return &pub, nil
}

// Login checks credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.lookup(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if !cryptox.VerifyPassword(password, u.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	pub := u.Public()
	return &pub, nil
}

// Get returns the public view of an account.
func (s *AccountService) Get(ctx context.Context, email string) (*models.User, error) {
	u, err := s.lookup(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	pub := u.Public()
	return &pub, nil
}

// RequestPasswordReset issues a numeric code valid for the configured
// period. The account must exist with the given role.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email string, role models.Role) error {
	email = models.NormalizeEmail(email)

	u, err := s.lookup(ctx, email)
	if err != nil || u.Role != role {
		return fmt.Errorf("%w: no %s account found with this email address", common.ErrAccountNotFound, role)
	}

	code, err := common.MakeNumericCode(resetCodeDigits)
	if err != nil {
		return fmt.Errorf("%w: generate reset code: %v", common.ErrInternal, err)
	}
	expiry := s.now().UTC().Add(s.resetValidity)

	u.ResetCode = code
	u.ResetCodeExpiry = &expiry
	s.save(ctx, email, u)

	if err := s.notifier.SendResetCode(ctx, email, code); err != nil {
		s.log.Error(ctx, "reset code delivery failed", "email", email, "error", err)
	}
	return nil
}

// ResetPassword replaces the password when code matches and has not
// expired. The code is single use.
func (s *AccountService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = models.NormalizeEmail(email)

	u, err := s.lookup(ctx, email)
	if err != nil {
		return err
	}
	if u.ResetCode == "" || u.ResetCode != code {
		return common.ErrInvalidCode
	}
	if u.ResetCodeExpiry == nil || u.ResetCodeExpiry.Before(s.now()) {
		return common.ErrCodeExpired
	}
	if newPassword == "" {
		return common.Validation("password is required")
	}

	u.PasswordHash = cryptox.HashPassword(newPassword)
	u.ResetCode = ""
	u.ResetCodeExpiry = nil
	s.save(ctx, email, u)

	s.log.Info(ctx, "password reset", "email", email)
	return nil
}

// UpdateProfile changes name and email of the account stored under
// originalEmail. The uniqueness check and the write share one transaction.
func (s *AccountService) UpdateProfile(ctx context.Context, originalEmail string, upd ProfileUpdate) (*models.User, error) {
	originalEmail = models.NormalizeEmail(originalEmail)
	name := strings.TrimSpace(upd.Name)
	email := models.NormalizeEmail(upd.Email)
	if name == "" || email == "" {
		return nil, common.Validation("name and email are required")
	}

	var updated *models.User
	err := s.repomanager.InTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		repo := tx.Accounts()

		u, err := repo.Get(ctx, originalEmail)
		if err != nil {
			if errors.Is(err, common.ErrAccountNotFound) {
				return err
			}
			s.log.Error(ctx, "account lookup failed", "email", originalEmail, "error", err)
			return common.ErrAccountNotFound
		}

		if email != originalEmail {
			_, err := repo.Get(ctx, email)
			if err == nil {
				return common.ErrEmailTaken
			}
			if !errors.Is(err, common.ErrAccountNotFound) {
				s.log.Error(ctx, "account lookup failed", "email", email, "error", err)
			}
		}

		u.Name = name
		u.Email = email
		if err := repo.Update(ctx, originalEmail, u); err != nil {
			if errors.Is(err, common.ErrEmailTaken) {
				return err
			}
			s.log.Error(ctx, "account update failed", "email", originalEmail, "error", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		if updated == nil {
			return nil, err
		}
		s.log.Error(ctx, "profile transaction failed", "email", originalEmail, "error", err)
	}

	pub := updated.Public()
	return &pub, nil
}
