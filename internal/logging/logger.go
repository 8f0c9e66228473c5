package logging

import (
	"log/slog"
	"os"
)

// Setup installs the process-wide logger: JSON records to stdout at Info and
// above. Startup code replaces it with a MultiHandler once the database log
// sink is connected.
func Setup() {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(stdout))
}
