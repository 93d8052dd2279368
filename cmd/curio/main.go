package main

import (
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AbhishekSharma9161/curio/internal/app"
	"github.com/AbhishekSharma9161/curio/internal/auth"
	"github.com/AbhishekSharma9161/curio/internal/config"
	"github.com/AbhishekSharma9161/curio/internal/content"
	"github.com/AbhishekSharma9161/curio/internal/logging"
	"github.com/AbhishekSharma9161/curio/internal/persist"
	"github.com/AbhishekSharma9161/curio/internal/state"
	"github.com/AbhishekSharma9161/curio/internal/store"
)

func main() {
	// Data directory: ~/.curio/
	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open durable store
	dbPath := filepath.Join(dataDir, "curio.db")
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	// Restore persisted slices into the initial state
	initial := persist.Load(st)
	stateStore := state.New(initial)

	repo := content.NewRepository(content.Options{
		NewsURL:    cfg.NewsURL,
		NewsAPIKey: cfg.NewsAPIKey,
		MoviesURL:  cfg.MoviesURL,
		TMDBAPIKey: cfg.TMDBAPIKey,
	})

	model := app.New(stateStore, repo, auth.Demo{}, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Persistence middleware observes every transition; the theme side effect
	// feeds back into the program as a message.
	stateStore.Attach(persist.New(st, func(dark bool) {
		program.Send(app.ThemeAppliedMsg{Dark: dark})
	}))

	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "error", err)
		log.Printf("Error running program: %v", err)
	}
}
