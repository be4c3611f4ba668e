package app

import (
	"context"
	"errors"
	"os"

	"github.com/emontoya05/healthtrack/internal/common"
)

// Register prompts for a username and password and creates the account.
// The user stays logged out; they log in explicitly afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "- Enter username", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if username == "" {
		printlnFn("Username must not be empty.")
		return common.ErrValidation
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		printlnFn("Password must not be empty.")
		return common.ErrValidation
	}

	if err := a.authService.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			printlnFn("That username is already taken.")
		} else {
			printlnFn("Registration failed.")
		}
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}
