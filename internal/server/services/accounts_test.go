package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/faultx"
	"github.com/dmitrijs2005/dermasight/internal/models"
	"github.com/dmitrijs2005/dermasight/internal/server/repositories/repomanager"
)

func TestAccountService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())

	for _, role := range []models.Role{models.RolePatient, models.RoleDoctor} {
		email := string(role) + "@x.com"
		u, err := s.Register(ctx, RegisterInput{Name: "A", Email: email, Password: "pw", Role: role})
		require.NoError(t, err)
		assert.Equal(t, role, u.Role)
		assert.Empty(t, u.PasswordHash)

		got, err := s.Login(ctx, email, "pw")
		require.NoError(t, err)
		assert.Equal(t, role, got.Role)
		assert.Equal(t, email, got.Email)
	}
}

func TestAccountService_Register_DuplicateIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())

	_, err := s.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: models.RolePatient})
	require.NoError(t, err)

	_, err = s.Register(ctx, RegisterInput{Name: "B", Email: "A@X.com", Password: "pw2", Role: models.RoleDoctor})
	assert.ErrorIs(t, err, common.ErrDuplicateAccount)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestAccountService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"no name", RegisterInput{Email: "a@x.com", Password: "pw", Role: models.RolePatient}},
		{"blank name", RegisterInput{Name: "  ", Email: "a@x.com", Password: "pw", Role: models.RolePatient}},
		{"no email", RegisterInput{Name: "A", Password: "pw", Role: models.RolePatient}},
		{"no password", RegisterInput{Name: "A", Email: "a@x.com", Role: models.RolePatient}},
		{"bad role", RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: "nurse"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.in)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestAccountService_Register_RoleSpecificFields(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())

	d, err := s.Register(ctx, RegisterInput{Name: "D", Email: "d@x.com", Password: "pw", Role: models.RoleDoctor,
		LicenseNumber: "L-1", DateOfBirth: "1980-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "L-1", d.LicenseNumber)
	assert.Empty(t, d.DateOfBirth)

	p, err := s.Register(ctx, RegisterInput{Name: "P", Email: "p@x.com", Password: "pw", Role: models.RolePatient,
		LicenseNumber: "L-2", DateOfBirth: "1990-02-02"})
	require.NoError(t, err)
	assert.Empty(t, p.LicenseNumber)
	assert.Equal(t, "1990-02-02", p.DateOfBirth)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())
	_, err := s.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: models.RolePatient})
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = s.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = s.Login(ctx, "A@x.com", "pw")
	assert.NoError(t, err)
}

func TestAccountService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	s, n, clk := newAccountService(t, repomanager.NewMemoryRepositoryManager())
	_, err := s.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: models.RolePatient})
	require.NoError(t, err)

	err = s.RequestPasswordReset(ctx, "a@x.com", models.RoleDoctor)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
	err = s.RequestPasswordReset(ctx, "b@x.com", models.RolePatient)
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	require.NoError(t, s.RequestPasswordReset(ctx, "a@x.com", models.RolePatient))
	code := n.code("a@x.com")
	require.Len(t, code, 6)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	assert.ErrorIs(t, s.ResetPassword(ctx, "a@x.com", wrong, "new"), common.ErrInvalidCode)
	assert.ErrorIs(t, s.ResetPassword(ctx, "b@x.com", code, "new"), common.ErrAccountNotFound)

	clk.Advance(14 * time.Minute)
	require.NoError(t, s.ResetPassword(ctx, "a@x.com", code, "new"))

	_, err = s.Login(ctx, "a@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = s.Login(ctx, "a@x.com", "new")
	assert.NoError(t, err)

	// the code is single use
	assert.ErrorIs(t, s.ResetPassword(ctx, "a@x.com", code, "again"), common.ErrInvalidCode)
}

func TestAccountService_ResetPassword_Expired(t *testing.T) {
	ctx := context.Background()
	s, n, clk := newAccountService(t, repomanager.NewMemoryRepositoryManager())
	_, err := s.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: models.RolePatient})
	require.NoError(t, err)

	require.NoError(t, s.RequestPasswordReset(ctx, "a@x.com", models.RolePatient))
	code := n.code("a@x.com")

	clk.Advance(15*time.Minute + time.Second)
	assert.ErrorIs(t, s.ResetPassword(ctx, "a@x.com", code, "new"), common.ErrCodeExpired)

	_, err = s.Login(ctx, "a@x.com", "pw")
	assert.NoError(t, err)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newAccountService(t, repomanager.NewMemoryRepositoryManager())
	for _, e := range []string{"a@x.com", "b@x.com"} {
		_, err := s.Register(ctx, RegisterInput{Name: "N", Email: e, Password: "pw", Role: models.RolePatient})
		require.NoError(t, err)
	}

	_, err := s.UpdateProfile(ctx, "a@x.com", ProfileUpdate{Name: "A", Email: "B@x.com"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)

	_, err = s.UpdateProfile(ctx, "zzz@x.com", ProfileUpdate{Name: "A", Email: "zzz@x.com"})
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	_, err = s.UpdateProfile(ctx, "a@x.com", ProfileUpdate{Name: "", Email: "a@x.com"})
	assert.ErrorIs(t, err, common.ErrValidation)

	u, err := s.UpdateProfile(ctx, "a@x.com", ProfileUpdate{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice@x.com", u.Email)

	_, err = s.Login(ctx, "alice@x.com", "pw")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "a@x.com")
	assert.ErrorIs(t, err, common.ErrAccountNotFound)

	// keeping the same email only renames
	u, err = s.UpdateProfile(ctx, "alice@x.com", ProfileUpdate{Name: "Al", Email: "alice@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Al", u.Name)
}

func TestAccountService_StorageFailureDegrades(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	rm := repomanager.NewMemoryRepositoryManager(repomanager.WithFaults(faultx.Injector{
		Fail: faultx.FailOn(boom, "accounts.create", "accounts.get"),
	}))
	s, _, _ := newAccountService(t, rm)

	// a failed write is not reported as a registration
	u, err := s.Register(ctx, RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: models.RolePatient})
	require.ErrorIs(t, err, common.ErrInternal)
	assert.Nil(t, u)

	// read failure looks like an unknown account
	_, err = s.Login(ctx, "a@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}
