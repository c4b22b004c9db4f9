// Command todo-api runs the task/note HTTP API with its pluggable
// authentication layer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/todo-api/internal/auth"
	"github.com/skillsenselab/todo-api/internal/config"
	"github.com/skillsenselab/todo-api/internal/docs"
	"github.com/skillsenselab/todo-api/internal/logger"
	"github.com/skillsenselab/todo-api/internal/metrics"
	"github.com/skillsenselab/todo-api/internal/note"
	"github.com/skillsenselab/todo-api/internal/observability"
	"github.com/skillsenselab/todo-api/internal/server"
	"github.com/skillsenselab/todo-api/internal/todo"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	configFile := flag.String("config", "", "path to config.yml")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "todo-api: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownObservability, err := observability.Init(ctx, cfg.Observability, cfg.Name, cfg.Environment)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownObservability(shutdownCtx); err != nil {
			log.Warn("observability shutdown", map[string]interface{}{"error": err.Error()})
		}
	}()

	// Auth state. An invalid initial auth config degrades to no auth with a
	// warning rather than refusing to start.
	authCfg, err := auth.ConfigFromSpec(cfg.Auth)
	if err != nil {
		log.Warn("invalid auth config, starting without authentication",
			map[string]interface{}{"error": err.Error()})
		authCfg = auth.DisabledConfig()
	}
	provider := auth.NewProvider(authCfg)
	store := auth.NewStore()
	sessions := auth.NewSessions()
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	engine := auth.NewEngine(provider, store, sessions, hasher, log)
	controller := auth.NewController(provider, store, sessions, hasher, log)
	log.Info("authentication configured", map[string]interface{}{"method": string(authCfg.Method)})

	if cfg.UsersSeedFile != "" {
		if err := seedUsers(controller, cfg.UsersSeedFile, log); err != nil {
			return err
		}
	}

	// Resource collections.
	seed, err := todo.LoadSeed(cfg.TodosSeedFile)
	if err != nil {
		return err
	}
	todoStore := todo.NewStore(seed)
	noteStore, err := note.NewStore(cfg.NotesDir)
	if err != nil {
		return err
	}

	// HTTP surface.
	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(cfg.Name)

	root := srv.GinEngine()
	auth.NewHandler(engine, controller, provider).Register(root)
	docs.NewHandler(provider).Register(root)

	gateway := auth.Gateway(engine)
	todo.NewHandler(todoStore).Register(root.Group("/todos", gateway))
	note.NewHandler(noteStore).Register(root.Group("/notes", gateway))

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}

// seedUsers loads an initial user registry from a JSON file of the same shape
// the /auth/reset-users endpoint accepts: {"users": [{"username", "password"}]}.
func seedUsers(controller *auth.Controller, path string, log *logger.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading users seed %s: %w", path, err)
	}
	var payload struct {
		Users []auth.UserSpec `json:"users"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parsing users seed %s: %w", path, err)
	}
	summary, err := controller.ResetUsers(payload.Users)
	if err != nil {
		return fmt.Errorf("seeding users from %s: %w", path, err)
	}
	log.Info("seeded user registry", map[string]interface{}{"count": summary.UserCount})
	return nil
}
