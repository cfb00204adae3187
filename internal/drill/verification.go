package drill

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// verifyRosters checks that every successfully signed-up student is
// present in the roster reported by the service.
func verifyRosters(ctx context.Context, config *Config, signed []Student, stats *Stats) error {
	log.Println("🔍 Verifying rosters...")

	if len(signed) == 0 {
		return fmt.Errorf("no signups to verify")
	}

	client := newHTTPClient(config.Timeout)
	directory, err := fetchDirectory(ctx, client, config.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to fetch directory for verification: %w", err)
	}

	missing := 0
	for _, student := range signed {
		activity, ok := directory[student.Activity]
		if !ok {
			missing++
			if config.Verbose {
				log.Printf("⚠️  Activity %s disappeared from the directory", student.Activity)
			}
			continue
		}
		if !containsEmail(activity.Participants, student.Email) {
			missing++
			if config.Verbose {
				log.Printf("⚠️  %s missing from %s roster", student.Email, student.Activity)
			}
		}
	}

	stats.RostersVerified = len(signed) - missing
	if missing > 0 {
		return fmt.Errorf("%d of %d signed-up students missing from rosters", missing, len(signed))
	}

	displayRosterSummary(directory, config.Verbose)

	log.Println("✅ Roster verification completed")
	return nil
}

// verifyRemoval checks that no drill student remains on any roster
// after cleanup.
func verifyRemoval(ctx context.Context, config *Config, signed []Student) error {
	log.Println("🔍 Verifying cleanup...")

	client := newHTTPClient(config.Timeout)
	directory, err := fetchDirectory(ctx, client, config.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to fetch directory after cleanup: %w", err)
	}

	remaining := 0
	for _, student := range signed {
		activity, ok := directory[student.Activity]
		if !ok {
			continue
		}
		if containsEmail(activity.Participants, student.Email) {
			remaining++
			if config.Verbose {
				log.Printf("⚠️  %s still on %s roster", student.Email, student.Activity)
			}
		}
	}

	if remaining > 0 {
		return fmt.Errorf("%d drill students still on rosters after cleanup", remaining)
	}

	log.Println("✅ Cleanup verification completed")
	return nil
}

// containsEmail reports whether email is present in participants.
func containsEmail(participants []string, email string) bool {
	for _, p := range participants {
		if p == email {
			return true
		}
	}
	return false
}

// displayRosterSummary prints per-activity roster sizes, fullest first.
func displayRosterSummary(directory map[string]Activity, verbose bool) {
	type rosterLine struct {
		name  string
		size  int
		max   int
		ratio float64
	}

	lines := make([]rosterLine, 0, len(directory))
	total := 0
	for name, activity := range directory {
		size := len(activity.Participants)
		total += size
		ratio := 0.0
		if activity.MaxParticipants > 0 {
			ratio = float64(size) / float64(activity.MaxParticipants)
		}
		lines = append(lines, rosterLine{name: name, size: size, max: activity.MaxParticipants, ratio: ratio})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ratio > lines[j].ratio
	})

	log.Printf("🏫 Roster summary (%d activities, %d participants):", len(directory), total)
	for _, line := range lines {
		log.Printf("   %s: %d/%d (%.0f%%)", line.name, line.size, line.max, line.ratio*PercentageMultiplier)
	}

	if verbose && len(lines) > 0 {
		avg := float64(total) / float64(len(lines))
		log.Printf(`📊 Roster statistics:
   Average size: %.1f
   Fullest: %s
   Emptiest: %s
`, avg, lines[0].name, lines[len(lines)-1].name)
	}
}
