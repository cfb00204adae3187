package drill

import "time"

// Config holds configuration for the roster drill
type Config struct {
	BaseURL     string        // Base URL of the service
	NumStudents int           // Number of drill students to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	OutputFile  string        // Output file for the drill report
	LogFile     string        // Log file for drill output
	Cleanup     bool          // Unregister drill students at the end
	Verbose     bool          // Enable verbose logging
}

// Student represents one generated drill signup
type Student struct {
	Email    string `json:"email"`
	Activity string `json:"activity"`
}

// Activity mirrors one entry of the directory response
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MessageResponse represents the response from a successful mutation
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse represents an error response
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Stats holds drill statistics
type Stats struct {
	StudentsGenerated     int
	SignupsSubmitted      int
	SignupsSuccessful     int
	SignupsRejected       int
	SignupsFailed         int
	UnregistersSuccessful int
	RostersVerified       int
	StartTime             time.Time
	EndTime               time.Time
	Duration              time.Duration
}
