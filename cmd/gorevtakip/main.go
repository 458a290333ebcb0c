package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/nhle/gorev-takip/internal/app"
	"github.com/nhle/gorev-takip/internal/logging"
	"github.com/nhle/gorev-takip/internal/model"
	"github.com/nhle/gorev-takip/internal/session"
	"github.com/nhle/gorev-takip/internal/store"
	"github.com/nhle/gorev-takip/internal/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gorevtakip: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFlag := flag.StringP("config", "c", envOrDefault("GOREVTAKIP_CONFIG", model.DefaultConfigPath()), "Path to the YAML config file")
	initFlag := flag.Bool("init-config", false, "Write the default config to the config path and exit")
	flag.Parse()

	if *initFlag {
		if err := model.SaveConfig(*configFlag, model.DefaultConfig()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *configFlag)
		return nil
	}

	cfg, err := model.LoadConfig(*configFlag)
	if err != nil {
		return err
	}

	log, logFile, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Info().
		Str("config", *configFlag).
		Str("backend", cfg.Store.Backend).
		Msg("starting")

	s, err := store.Open(cfg.Store, log)
	if err != nil {
		log.Error().Err(err).Msg("unable to open store")
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	sess := session.New(session.Role(cfg.Session.Role), cfg.Session.UserName)
	th := theme.NewStore(cfg.Display.Dark)

	p := tea.NewProgram(app.New(s, sess, th, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		return err
	}

	log.Info().Msg("stopped")
	return nil
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
