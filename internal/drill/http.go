package drill

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request without a body
func (c *HTTPClient) Post(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Delete performs a DELETE request
func (c *HTTPClient) Delete(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// unmarshalJSON unmarshals JSON to a struct
func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// signupURL builds the signup endpoint URL for one student.
func signupURL(baseURL string, s Student) string {
	return baseURL + "/activities/" + url.PathEscape(s.Activity) + "/signup?email=" + url.QueryEscape(s.Email)
}

// unregisterURL builds the unregister endpoint URL for one student.
func unregisterURL(baseURL string, s Student) string {
	return baseURL + "/activities/" + url.PathEscape(s.Activity) + "/unregister?email=" + url.QueryEscape(s.Email)
}

// submitSignups signs up students concurrently using worker pools
func submitSignups(ctx context.Context, config *Config, students []Student, stats *Stats) []Student {
	log.Printf("📤 Signing up %d students with %d workers...", len(students), config.Workers)

	client := newHTTPClient(config.Timeout)

	// Counters for statistics
	var (
		successful int64
		rejected   int64
		failed     int64
		submitted  int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	studentChan := make(chan Student, config.Workers*WorkerChannelMultiplier)
	var (
		mu     sync.Mutex
		signed []Student
		wg     sync.WaitGroup
	)

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for student := range studentChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleSignup(ctx, client, config.BaseURL, student)

					// Update counters
					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
						mu.Lock()
						signed = append(signed, student)
						mu.Unlock()
					case "rejected":
						atomic.AddInt64(&rejected, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						rej := atomic.LoadInt64(&rejected)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, rejected: %d, failed: %d)",
								total, len(students), succ, rej, fail)
						} else {
							fmt.Printf("\r📤 Signed up: %d/%d (success: %d, rejected: %d, failed: %d)",
								total, len(students), succ, rej, fail)
						}
					}
				}
			}
		}(i)
	}

	// Send students to workers
	go func() {
		defer close(studentChan)
		for _, student := range students {
			select {
			case <-ctx.Done():
				return
			case studentChan <- student:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.SignupsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.SignupsSuccessful = int(atomic.LoadInt64(&successful))
	stats.SignupsRejected = int(atomic.LoadInt64(&rejected))
	stats.SignupsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Signup submission completed:
   Successful: %d
   Rejected: %d
   Failed: %d
`, stats.SignupsSuccessful, stats.SignupsRejected, stats.SignupsFailed)

	return signed
}

// submitSingleSignup signs up a single student and returns the result
func submitSingleSignup(ctx context.Context, client *HTTPClient, baseURL string, student Student) string {
	resp, err := client.Post(ctx, signupURL(baseURL, student))
	if err != nil {
		return "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case StatusOK:
		var msg MessageResponse
		if err := unmarshalJSON(body, &msg); err == nil && msg.Message != "" {
			return "success"
		}
		return "success" // Assume success for 200 even if parsing fails
	case StatusBadRequest:
		// Duplicate or full roster
		return "rejected"
	default:
		// Error
		return "failed"
	}
}

// unregisterStudents removes the drill students that were signed up.
func unregisterStudents(ctx context.Context, config *Config, students []Student, stats *Stats) {
	log.Printf("🧹 Unregistering %d drill students...", len(students))

	client := newHTTPClient(config.Timeout)

	var successful int64
	for _, student := range students {
		select {
		case <-ctx.Done():
			return
		default:
		}

		resp, err := client.Delete(ctx, unregisterURL(config.BaseURL, student))
		if err != nil {
			continue
		}
		_, _ = readResponseBody(resp)
		if resp.StatusCode == StatusOK {
			successful++
		}
	}

	stats.UnregistersSuccessful = int(successful)
	log.Printf("✅ Unregistered %d/%d drill students", successful, len(students))
}
