package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/rihla/internal/audio"
	"github.com/alexanderramin/rihla/internal/capture"
	"github.com/alexanderramin/rihla/internal/cli"
	"github.com/alexanderramin/rihla/internal/db"
	"github.com/alexanderramin/rihla/internal/remote"
	"github.com/alexanderramin/rihla/internal/repository"
	"github.com/alexanderramin/rihla/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.rihla/rihla.db
	dbPath := os.Getenv("RIHLA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".rihla", "rihla.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	prefRepo := repository.NewSQLitePreferenceRepo(database)
	txRunner := db.NewTxRunner(database)
	prefsSvc := service.NewPrefsService(prefRepo, txRunner)

	// Remote client with optional call logging.
	cfg := remote.LoadConfig()
	var observer remote.Observer = remote.NoopObserver{}
	if cfg.LogCalls {
		observer = remote.NewLogObserver(os.Stderr)
	}
	client := remote.NewClient(cfg, observer)

	// Capture source: gallery paths come from the CLI, camera frames from
	// an external capture command when one is configured.
	gallery := &cli.PathHolder{}
	source := &capture.DeviceSource{
		PromptPath: gallery.Next,
		CameraCmd:  commandEnv("RIHLA_CAMERA"),
	}

	// Narration playback through an external audio player.
	playerCmd := commandEnv("RIHLA_PLAYER")
	if len(playerCmd) == 0 {
		playerCmd = []string{"mpv", "--no-terminal"}
	}
	player := &audio.ExecPlayer{
		Command: playerCmd,
		BaseURL: cfg.BaseURL,
		HTTP: &http.Client{
			Timeout: time.Duration(cfg.OpTimeout(remote.OpAudioFetch)) * time.Millisecond,
		},
	}
	defer player.Stop()

	app := &cli.App{
		Checklist: service.NewChecklistEngine(client),
		Capture:   service.NewCapturePipeline(client, prefsSvc, source),
		Prefs:     prefsSvc,
		Player:    player,
		Gallery:   gallery,
		Interactive: isatty.IsTerminal(os.Stdout.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// commandEnv parses an argv from a whitespace-separated env value.
func commandEnv(name string) []string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return nil
	}
	return strings.Fields(v)
}
