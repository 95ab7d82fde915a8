package main

import (
	"errors"
	"fmt"
	"os"

	"mediabridge"
	"mediabridge/cmd/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.HandleHelp(os.Args)
		commands.ExitOnError(errors.New("at least 1 arguments expected"))
	}

	switch os.Args[1] {
	case "run":
		commands.HandleRun(os.Args)

	case "events":
		commands.HandleEvents(os.Args)

	case "health":
		commands.HandleHealth(os.Args)

	case "list":
		commands.HandleList(os.Args)

	case "upload":
		commands.HandleUpload(os.Args)

	case "add-url":
		commands.HandleAddURL(os.Args)

	case "delete":
		commands.HandleDelete(os.Args)

	case "help":
		commands.HandleHelp(os.Args)
		os.Exit(0)

	case "version":
		fmt.Println(mediabridge.StringVersion()) //nolint
		os.Exit(0)

	default:
		commands.HandleHelp(os.Args)
	}
}
