package app

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/emontoya05/healthtrack/internal/config"
	"github.com/emontoya05/healthtrack/internal/logging"
	"github.com/emontoya05/healthtrack/internal/models"
	"github.com/emontoya05/healthtrack/internal/services"
	"github.com/emontoya05/healthtrack/internal/storage"
)

// App holds the state of one interactive session. currentUser is nil until
// a login succeeds; commands that need an account check isLoggedIn first.
type App struct {
	config        *config.Config
	log           logging.Logger
	store         *storage.Storage
	authService   services.AuthService
	recordService services.RecordService
	currentUser   *models.User
	reader        *bufio.Reader
}

// NewApp opens the store, runs migrations, and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config:        cfg,
		log:           log,
		store:         store,
		authService:   services.NewAuthService(store.DB, log),
		recordService: services.NewRecordService(store.DB, log),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	fmt.Println("Welcome to healthtrack (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser.Username)
}
