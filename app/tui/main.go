package main

import (
	"context"
	"fmt"
	"github.com/ribgsilva/notebook/app/tui/widget"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/business/v1/note"
	pnote "github.com/ribgsilva/notebook/persistence/v1/note"
	"github.com/ribgsilva/notebook/platform/env"
	"github.com/ribgsilva/notebook/platform/logger"
	"github.com/ribgsilva/notebook/platform/storage"
	"github.com/ribgsilva/notebook/sys"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// the terminal belongs to the widget, so logs go to TUI_LOG_FILE
	sys.Configs.Tui.LogFile = env.OrDefault(zap.NewNop().Sugar(), "TUI_LOG_FILE", os.DevNull)

	log, err := logger.NewFile("Notebook-TUI", sys.Configs.Tui.LogFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup configs
	storage.LoadConfigs(log)

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	// storage
	medium, closeMedium, err := storage.Open(ctx, log)
	if err != nil {
		return err
	}
	defer closeMedium()

	store := note.New(pnote.NewCollection(medium, sys.Configs.Storage.Key), note.WithLogger(log))
	store.Load(ctx)

	// =======================================================================================================
	// Widget

	log.Infow("startup", "status", "widget started", "notes", store.Len())
	defer log.Infow("shutdown", "status", "widget closed", "notes", store.Len())

	if err := widget.Run(ctx, editor.New(store)); err != nil {
		return fmt.Errorf("widget: %w", err)
	}
	return nil
}
