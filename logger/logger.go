package logger

import (
	"io"
	"log/slog"
	"os"
)

// Log is a global, exported variable that the rest of the service can access.
var Log *slog.Logger

// init() runs automatically when the 'logger' package is imported.
func init() {
	// Open the log file.
	file, err := os.OpenFile("travel-goals.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		// We can't use our logger here, so we'll panic.
		panic("Failed to open log file: " + err.Error())
	}

	// Write to both the console (os.Stdout) and the file.
	writer := io.MultiWriter(os.Stdout, file)

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Log = slog.New(handler)
	// Route the default slog logger through the same handler so package
	// code can call slog directly.
	slog.SetDefault(Log)
}
