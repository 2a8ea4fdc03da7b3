package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtran-dev/deskboard/internal/config"
	"github.com/minhtran-dev/deskboard/internal/kanban"
	"github.com/minhtran-dev/deskboard/internal/logging"
	"github.com/minhtran-dev/deskboard/internal/storage"
	"github.com/minhtran-dev/deskboard/internal/store"
	"github.com/minhtran-dev/deskboard/internal/summarize"
	"github.com/minhtran-dev/deskboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.DataDir); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	st, err := storage.Open(ctx, cfg.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	appStore := store.New(st)
	if err := appStore.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	board := kanban.NewBoard(st)
	if err := board.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize board: %v", err)
	}

	summarizer := summarize.NewRemote(cfg.Summarizer.Endpoint, cfg.Summarizer.Token)

	model := tui.New(appStore, board, summarizer, cfg.NotesPageSize)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Push store changes into the running program.
	appStore.Subscribe(func() {
		p.Send(tui.RefreshMsg{})
	})

	slog.Info("starting deskboard", "data_dir", cfg.DataDir)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
