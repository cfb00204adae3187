package drill

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "drill_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the roster drill tool.
func ShowHelp() {
	os.Stdout.WriteString(`Activities Roster Drill Tool
============================

A concurrent tool for exercising the activities sign-up service.

Usage:
  go run cmd/roster-drill/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8000")
  -students int
        Number of drill students to generate and sign up (default 100)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for the drill report (default: drill_report_TIMESTAMP.json)
  -log string
        Log file for drill output (default: drill_log_TIMESTAMP.log)
  -cleanup
        Unregister drill students when the drill completes
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Drill with default settings
  go run cmd/roster-drill/main.go

  # Drill with custom parameters
  go run cmd/roster-drill/main.go -students 500 -workers 16 -url http://localhost:8080

  # Drill and clean up afterwards
  go run cmd/roster-drill/main.go -students 200 -cleanup

  # Drill with custom log file
  go run cmd/roster-drill/main.go -students 500 -log my_drill.log
`)
}
