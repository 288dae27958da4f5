package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/common"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errEmptyPassword    = errors.New("password is empty")
	errNothingToUpdate  = errors.New("nothing to update")
)

// readNewPassword asks for a password twice and returns it when both
// entries match. The caller wipes the result.
func (a *App) readNewPassword(prompt string) ([]byte, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errEmptyPassword
	}
	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, err
	}
	defer common.WipeByteArray(confirm)

	if string(pw) != string(confirm) {
		common.WipeByteArray(pw)
		return nil, errPasswordMismatch
	}
	return pw, nil
}

// Register prompts for the account fields and creates the account. The
// backend signs the new user in, so the session store is updated too.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}

	pw, err := a.readNewPassword("Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	req.Password = string(pw)

	u, err := a.authService.Register(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created, signed in as %s\n", displayUser(u))
	return nil
}

// Login prompts for email and password. The password is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.logger.Info(ctx, "login successful", "email", email)
	fmt.Fprintf(a.out, "Welcome, %s\n", displayUser(u))
	return nil
}

// Logout ends the session. The local session is dropped even when the
// backend call fails; that failure is still reported.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, err := a.authService.Init(ctx)
	if err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}

// EditProfile asks for each editable field; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	cur := a.authService.CurrentUser()
	if cur == nil {
		cur = &models.User{}
	}

	var req models.UpdateProfileRequest
	fields := []struct {
		label   string
		current string
		dst     *string
	}{
		{"Username", cur.Username, &req.Username},
		{"Email", cur.Email, &req.Email},
		{"First name", cur.FirstName, &req.FirstName},
		{"Last name", cur.LastName, &req.LastName},
	}

	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, f.current), a.out)
		if err != nil {
			return err
		}
		if v != "" && v != f.current {
			*f.dst = v
		}
	}

	if req.IsEmpty() {
		return errNothingToUpdate
	}

	u, err := a.authService.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated")
	printUser(a.out, u)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.readNewPassword("New password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	if err := a.authService.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func displayUser(u *models.User) string {
	if u == nil {
		return ""
	}
	if n := u.DisplayName(); n != "" {
		return n
	}
	return u.Email
}
