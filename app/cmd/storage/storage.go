package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	"github.com/ribgsilva/notebook/persistence/v1/note"
	"github.com/ribgsilva/notebook/platform/storage"
	"github.com/ribgsilva/notebook/sys"
	"go.uber.org/zap"
	"io"
	"os"
)

func ListCommands() {
	println("Storage Commands (backend chosen by STORAGE_BACKEND)")
	println("\tdump\t\t\t- Prints the stored notebook as json")
	println("\tclear\t\t\t- Deletes every note by removing the stored notebook")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	storage.LoadConfigs(log)
	sys.R.Log = log

	medium, closeMedium, err := storage.Open(context.Background(), log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer closeMedium()

	switch options[0] {
	case "dump":
		if err := Dump(context.Background(), medium, sys.Configs.Storage.Key, os.Stdout); err != nil {
			println("failed to dump notebook:", err.Error())
		}
	case "clear":
		println("clearing notebook")
		if err := note.NewCollection(medium, sys.Configs.Storage.Key).Clear(context.Background()); err != nil {
			println("failed to clear notebook:", err.Error())
		} else {
			println("cleared notebook")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

// Dump writes the raw stored value, an absent notebook is written as []
func Dump(ctx context.Context, medium kv.Medium, key string, w io.Writer) error {
	get, err := medium.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		get = "[]"
	} else if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, get)
	return err
}
