package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/corpusdex/irspimi/cmd/irspimi/commands"
)

func main() {
	// Best-effort: a .env file in the working directory is loaded into
	// the process environment when present. irspimi itself reads no
	// environment variables; every setting comes from command-line flags.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Default().Warn("main: error loading .env file", "error", err)
	}

	commands.Execute()
}
