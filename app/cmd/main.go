package main

import (
	"github.com/ribgsilva/notebook/app/cmd/schema"
	"github.com/ribgsilva/notebook/app/cmd/storage"
	"os"
)

func ListCommands() {
	println("Notebook admin")
	println("\tschema\t\t\t- Manage the mysql table backing the mysql storage")
	println("\tstorage\t\t\t- Inspect or clear the stored notebook")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		ListCommands()
		return
	}
	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "storage":
		storage.Run(os.Args[2:])
	default:
		ListCommands()
	}
}
