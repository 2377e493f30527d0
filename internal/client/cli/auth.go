package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dermasight/internal/api"
	"github.com/dmitrijs2005/dermasight/internal/common"
	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Interactive input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getChoice     = GetChoice
	getMultiline  = GetMultiline
)

var roles = []string{string(models.RolePatient), string(models.RoleDoctor)}

func signedIn(u *models.User) {
	printlnFn(fmt.Sprintf("Signed in as %s (%s)", u.Name, u.Role))
}

// Register prompts for the account fields and creates the account. Doctors
// are asked for a license number, patients for a date of birth. On
// success the new user is signed in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getChoice(a.reader, "Role", roles, string(models.RolePatient), a.out)
	if err != nil {
		return err
	}

	req := &api.RegisterRequest{Name: name, Email: email, Password: string(password), Role: role}
	if req.Role == string(models.RoleDoctor) {
		if req.LicenseNumber, err = getSimpleText(a.reader, "Enter medical license number", a.out); err != nil {
			return err
		}
	} else {
		if req.DateOfBirth, err = getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD, optional)", a.out); err != nil {
			return err
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Register(ctx, req)
	if err != nil {
		return err
	}
	signedIn(u)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	signedIn(u)
	return nil
}

// Logout ends the session on the server and forgets the local token.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out")
	return nil
}

// Profile changes the name and email of the signed-in user. Empty answers
// keep the current values when they are known.
func (a *App) Profile(ctx context.Context) error {
	var curName, curEmail string
	if u := a.api.CurrentUser(); u != nil {
		curName, curEmail = u.Name, u.Email
	}

	name, err := getSimpleText(a.reader, promptWithDefault("Enter full name", curName), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = curName
	}
	email, err := getSimpleText(a.reader, promptWithDefault("Enter email", curEmail), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = curEmail
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.api.UpdateProfile(ctx, name, email); err != nil {
		return err
	}
	printlnFn("Profile updated")
	return nil
}

// Forgot asks the server to issue a password reset code.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	role, err := getChoice(a.reader, "Role", roles, string(models.RolePatient), a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.RequestPasswordReset(ctx, email, models.Role(role)); err != nil {
		return err
	}
	printlnFn("A reset code has been issued. Use 'reset' to set a new password.")
	return nil
}

// Reset sets a new password using a code obtained with Forgot.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter reset code", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.ResetPassword(ctx, email, code, string(password)); err != nil {
		return err
	}
	printlnFn("Password updated, you can log in now")
	return nil
}

func promptWithDefault(prompt, def string) string {
	if def == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, def)
}
