package drill

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mergington/activities/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete roster drill.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roster drill",
		logger.String("baseURL", config.BaseURL),
		logger.Int("students", config.NumStudents),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Bool("cleanup", config.Cleanup),
		logger.Bool("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the activity directory
	client := newHTTPClient(config.Timeout)
	directory, err := fetchDirectory(ctx, client, config.BaseURL)
	if err != nil {
		return fmt.Errorf("directory fetch failed: %w", err)
	}

	// Step 3: Generate drill students
	students, err := generateStudents(ctx, config, directory, stats)
	if err != nil {
		return fmt.Errorf("student generation failed: %w", err)
	}

	// Step 4: Submit signups concurrently
	signed := submitSignups(ctx, config, students, stats)

	// Step 5: Verify rosters
	if err := verifyRosters(ctx, config, signed, stats); err != nil {
		return fmt.Errorf("roster verification failed: %w", err)
	}

	// Step 6: Optionally clean up the drill signups
	if config.Cleanup {
		unregisterStudents(ctx, config, signed, stats)
		if err := verifyRemoval(ctx, config, signed); err != nil {
			return fmt.Errorf("cleanup verification failed: %w", err)
		}
	}

	// Step 7: Save the drill report to file
	if err := saveReportToFile(ctx, config, signed); err != nil {
		logger.Get().Warn(ctx, "failed to save drill report", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "drill completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveReportToFile saves the signed-up drill students to a JSON file.
func saveReportToFile(ctx context.Context, config *Config, signed []Student) error {
	if len(signed) == 0 {
		return fmt.Errorf("no signups to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "drill_report_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(signed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal drill report: %w", err)
	}

	if err := os.WriteFile(filename, data, logFilePermission); err != nil {
		return fmt.Errorf("failed to write drill report: %w", err)
	}

	logger.Get().Info(ctx, "drill report saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final drill statistics.
func displayFinalStats(stats *Stats) {
	var successRate, signupsPerSecond float64

	if stats.SignupsSubmitted > 0 {
		successRate = float64(stats.SignupsSuccessful) / float64(stats.SignupsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		signupsPerSecond = float64(stats.SignupsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("studentsGenerated", stats.StudentsGenerated),
		logger.Int("signupsSubmitted", stats.SignupsSubmitted),
		logger.Int("signupsSuccessful", stats.SignupsSuccessful),
		logger.Int("signupsRejected", stats.SignupsRejected),
		logger.Int("signupsFailed", stats.SignupsFailed),
		logger.Int("unregistersSuccessful", stats.UnregistersSuccessful),
		logger.Int("rostersVerified", stats.RostersVerified),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("signupsPerSecond", signupsPerSecond))
}
