package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codelens/internal/application"
	appchat "codelens/internal/application/chat"
	"codelens/internal/config"
	domainanalysis "codelens/internal/domain/analysis"
	"codelens/internal/domain/chat"
	"codelens/internal/infra/gateway"
	minioStore "codelens/internal/infra/storage"
	"codelens/internal/infra/transcript"
	"codelens/internal/ui"
)

func main() {
	codePath := flag.String("code", "", "source file to analyze")
	flag.Parse()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("config load error: %v", err)
		}
		cfg = config.Default()
	}

	ctx := context.Background()

	// transcript slot
	var store chat.TranscriptStore
	switch cfg.Transcript.Backend {
	case "file":
		store = transcript.NewFileStore(cfg.Transcript.Path)
	case "sqlite":
		s, err := transcript.OpenSQLite(cfg.Transcript.Path)
		if err != nil {
			log.Fatalf("transcript store error: %v", err)
		}
		defer s.Close()
		store = s
	default:
		log.Fatalf("unknown transcript backend: %q", cfg.Transcript.Backend)
	}

	// optional archive of cleared transcripts
	var archive domainanalysis.ArtifactStore
	if cfg.Minio.Endpoint != "" {
		s, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Printf("minio init error: %v, archive disabled", err)
		} else {
			archive = s
		}
	}

	state := ui.NewViewState()
	presenter := &appchat.Presenter{
		Store:   store,
		Gateway: gateway.New(cfg.Gateway.URL, time.Duration(cfg.Gateway.TimeoutSeconds)*time.Second),
		View:    state,
		Clock:   application.SystemClock{},
		Archive: archive,
	}

	p := tea.NewProgram(ui.New(presenter, state, *codePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
