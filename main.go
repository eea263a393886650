package main

import (
	"log"
	"os"

	"github.com/thenoetrevino/tablero/cmd"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Printf("Warning: failed to initialize logging: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
