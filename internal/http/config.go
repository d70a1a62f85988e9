package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Words       WordStore
	Seeder      WordSeeder
	Preferences PreferenceStore

	// Background work, nil when the task queue is disabled
	TaskQueue TaskQueue

	// Named dependency probes reported by /health
	HealthChecks map[string]HealthCheck

	// Dictionary defaults
	DefaultTargetCount int
	DefaultBatchSize   int
	DefaultLanguage    string
	MaxCount           int // Largest batch accepted for background growth, 0 for no limit

	// Application info
	Version string
}
