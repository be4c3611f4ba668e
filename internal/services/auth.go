// Package services contains the application services the presentation layer
// calls: account management and health-record handling.
package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/emontoya05/healthtrack/internal/common"
	"github.com/emontoya05/healthtrack/internal/dbx"
	"github.com/emontoya05/healthtrack/internal/logging"
	"github.com/emontoya05/healthtrack/internal/models"
	"github.com/emontoya05/healthtrack/internal/repositories/users"
)

// AuthService defines the account operations.
//
// Contract:
//   - Register: create an account; duplicate usernames (case-insensitive)
//     fail with common.ErrAlreadyExists and leave no row behind.
//   - CheckCredentials: true iff the username exists and the password digest
//     matches the stored one.
//   - GetUserByUsername: case-insensitive lookup, common.ErrNotFound when
//     there is no match.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	CheckCredentials(ctx context.Context, username string, password []byte) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type authService struct {
	db  *sql.DB
	log logging.Logger
}

// NewAuthService constructs an AuthService over the given database handle.
func NewAuthService(db *sql.DB, log logging.Logger) AuthService {
	return &authService{db: db, log: log.With("component", "auth")}
}

func (a *authService) getUsersRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// HashPassword returns the lowercase hex sha256 digest of the UTF-8 password
// bytes. The digest is deterministic and unsalted: it must match rows written
// by every earlier version of the application.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// Register checks for an existing username and inserts the new account in a
// single transaction, so a losing race leaves no partial write.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	digest := HashPassword(password)

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getUsersRepo(tx)

		exists, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return common.ErrAlreadyExists
		}

		_, err = repo.Create(ctx, &models.User{Username: username, PasswordHash: digest})
		return err
	})

	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			a.log.Warn(ctx, "registration rejected, username taken", "username", username)
		} else {
			a.log.Error(ctx, "registration failed", "username", username, "error", err)
		}
		return err
	}

	a.log.Info(ctx, "user registered", "username", username)
	return nil
}

// CheckCredentials verifies the password against the stored digest. A missing
// user and a wrong password are both a plain false, not an error.
func (a *authService) CheckCredentials(ctx context.Context, username string, password []byte) (bool, error) {
	user, err := a.getUsersRepo(a.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			a.log.Debug(ctx, "login attempt for unknown user", "username", username)
			return false, nil
		}
		a.log.Error(ctx, "credential check failed", "username", username, "error", err)
		return false, err
	}

	digest := HashPassword(password)
	ok := subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(digest)) == 1
	if !ok {
		a.log.Debug(ctx, "login attempt with wrong password", "username", username)
	}
	return ok, nil
}

// GetUserByUsername returns the account matching username case-insensitively.
func (a *authService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := a.getUsersRepo(a.db).GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			a.log.Error(ctx, "user lookup failed", "username", username, "error", err)
		}
		return nil, err
	}
	return user, nil
}
