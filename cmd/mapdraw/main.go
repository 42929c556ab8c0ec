package main

import (
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"mapdraw/internal/config"
	"mapdraw/internal/logging"
	"mapdraw/internal/mapstore"
	"mapdraw/internal/settings"
	"mapdraw/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, closer := logging.New(cfg)
	defer closer.Close()
	logger.WithField("config_dir", cfg.ConfigDir).Info("mapdraw starting")

	kv := settings.NewFileKV(cfg.StoragePath())
	prefs := settings.NewStore(kv, logging.Component(logger, "settings"))
	prefs.Load()

	var w *settings.Watcher
	if cfg.WatchSettings {
		w, err = settings.NewWatcher(kv.Path())
		if err != nil {
			logger.WithError(err).Warn("settings watcher disabled")
		} else {
			defer w.Close()
		}
	}

	maps := mapstore.New(mapstore.WithLogger(logging.Component(logger, "mapstore")))
	maps.Seed(cfg.SampleMaps)

	deps := tui.Deps{Maps: maps, Settings: prefs, Watcher: w, Log: logging.Component(logger, "tui")}
	var m tui.Model
	if len(os.Args) > 1 {
		id, err := strconv.Atoi(os.Args[1])
		if err != nil {
			log.Fatalf("map id %q: %v", os.Args[1], err)
		}
		m = tui.NewWithMap(deps, id)
	} else {
		m = tui.New(deps)
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if err != nil {
		logger.WithError(err).Error("program exited with error")
		log.Fatal(err)
	}
	logger.Info("mapdraw stopped")
}
