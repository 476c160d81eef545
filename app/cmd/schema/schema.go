package schema

import (
	"context"
	"github.com/ribgsilva/notebook/persistence/v1/schema"
	"github.com/ribgsilva/notebook/platform/storage"
	"github.com/ribgsilva/notebook/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Schema Commands")
	println("\tcreate\t\t\t- Creates the notebook_kv table")
	println("\tdelete\t\t\t- Deletes the notebook_kv table")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	if err := initVars(log); err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	switch options[0] {
	case "create":
		println("creating schema")
		if err := schema.Create(context.Background(), sys.R.Database); err != nil {
			println("failed to create schema:", err.Error())
		} else {
			println("created schema")
		}
	case "delete":
		println("deleting schema")
		if err := schema.Drop(context.Background(), sys.R.Database); err != nil {
			println("failed to delete schema:", err.Error())
		} else {
			println("deleted schema")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) error {
	storage.LoadConfigs(log)

	// logger
	sys.R.Log = log

	// mysql
	db, err := storage.ConnectDatabase(context.Background(), "mysql", sys.Configs.Database.ConnectionURL)
	if err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
