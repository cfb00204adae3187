package drill

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mergington/activities/pkg/logger"
)

// fetchDirectory retrieves the activity directory from the service.
func fetchDirectory(ctx context.Context, client *HTTPClient, baseURL string) (map[string]Activity, error) {
	resp, err := client.Get(ctx, baseURL+"/activities")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read activities response: %w", err)
	}

	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("activities request failed with status: %d", resp.StatusCode)
	}

	var directory map[string]Activity
	if err := unmarshalJSON(body, &directory); err != nil {
		return nil, fmt.Errorf("failed to parse activities response: %w", err)
	}

	if len(directory) == 0 {
		return nil, fmt.Errorf("activity directory is empty")
	}

	return directory, nil
}

// generateStudents creates the specified number of drill students with
// unique emails, spread round-robin across the available activities.
func generateStudents(ctx context.Context, config *Config, directory map[string]Activity, stats *Stats) ([]Student, error) {
	logger.Get().Info(ctx, "generating drill students",
		logger.Int("numStudents", config.NumStudents),
		logger.Int("activities", len(directory)))

	names := make([]string, 0, len(directory))
	for name := range directory {
		names = append(names, name)
	}

	students := make([]Student, config.NumStudents)
	for i := 0; i < config.NumStudents; i++ {
		students[i] = Student{
			Email:    drillEmail(i),
			Activity: names[i%len(names)],
		}
	}

	stats.StudentsGenerated = len(students)
	logger.Get().Info(ctx, "generated drill students successfully", logger.Int("count", len(students)))

	return students, nil
}

// drillEmail builds a unique, recognizable drill address. The drill_
// prefix makes cleanup and manual inspection straightforward.
func drillEmail(index int) string {
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return "drill_" + strconv.Itoa(index) + "_" + suffix + "@mergington.edu"
}
