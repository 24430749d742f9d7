package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/common"
)

var errNotConfirmed = errors.New("cancelled")

// readSecret prompts for a password and returns it as a string; the raw
// bytes are wiped.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register asks for name, email and password and signs the new user in.
func (a *App) Register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	resp, err := a.svc.Auth.Register(ctx, email, password, name)
	if err != nil {
		return err
	}
	a.signedIn(resp)
	a.printf("Welcome, %s!\n", resp.Name)
	return nil
}

// Login asks for credentials and stores the session on success.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	resp, err := a.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.signedIn(resp)
	a.println("Login successful")
	return nil
}

func (a *App) signedIn(resp models.AuthResponse) {
	a.setIdentity(&session.Session{Token: resp.Token, UserID: resp.UserID, UserName: resp.Name, UserEmail: resp.Email})
}

// Logout always signs the user out locally, even when the server is down.
func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.svc.Auth.Logout(ctx)
	a.setIdentity(nil)
	if err != nil {
		return err
	}
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	s, err := a.svc.Auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	a.printf("%s <%s> id=%s\n", s.UserName, s.UserEmail, s.UserID)
	if exp, ok, err := session.ExpiryOf(s.Token); err == nil && ok {
		a.printf("session expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) Health(ctx context.Context, _ []string) error {
	if a.probe(ctx) {
		a.println("API is healthy")
	} else {
		a.println("API is unreachable")
	}
	return nil
}

// Profile updates name and email; empty answers keep the current values.
func (a *App) Profile(ctx context.Context, _ []string) error {
	cur, err := a.svc.Auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Name ["+cur.UserName+"]", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email ["+cur.UserEmail+"]", a.out)
	if err != nil {
		return err
	}

	req := models.UpdateProfileRequest{Name: firstNonEmpty(name, cur.UserName), Email: firstNonEmpty(email, cur.UserEmail)}
	p, err := a.svc.Auth.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	cur.UserName, cur.UserEmail = p.Name, p.Email
	a.setIdentity(&cur)
	a.println("Profile updated")
	return nil
}

func (a *App) Password(ctx context.Context, _ []string) error {
	current, err := a.readSecret("Current password")
	if err != nil {
		return err
	}
	next, err := a.readSecret("New password")
	if err != nil {
		return err
	}

	if err := a.svc.Auth.UpdatePassword(ctx, models.UpdatePasswordRequest{CurrentPassword: current, NewPassword: next}); err != nil {
		return err
	}
	a.println("Password changed")
	return nil
}

func (a *App) DeleteAccount(ctx context.Context, _ []string) error {
	ok, err := GetYesNo(a.reader, "This permanently deletes your account and data. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return errNotConfirmed
	}
	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	if err := a.svc.Auth.DeleteAccount(ctx, models.DeleteAccountRequest{Password: password}); err != nil {
		return err
	}
	a.setIdentity(nil)
	a.println("Account deleted")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
