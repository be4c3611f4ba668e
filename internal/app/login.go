package app

import (
	"context"
	"os"

	"github.com/emontoya05/healthtrack/internal/common"
)

// Login prompts for credentials and, on success, loads the account into the
// session.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "- Enter username", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.authService.CheckCredentials(ctx, username, password)
	if err != nil {
		printlnFn("Login failed.")
		return err
	}
	if !ok {
		printlnFn("Wrong username or password.")
		return common.ErrUnauthorized
	}

	user, err := a.authService.GetUserByUsername(ctx, username)
	if err != nil {
		printlnFn("Login failed.")
		return err
	}

	a.currentUser = user
	printlnFn("Logged in as", user.Username)
	return nil
}

// Logout drops the session account.
func (a *App) Logout(ctx context.Context) error {
	if a.currentUser != nil {
		a.log.Info(ctx, "user logged out", "username", a.currentUser.Username)
	}
	a.currentUser = nil
	printlnFn("Logged out.")
	return nil
}
