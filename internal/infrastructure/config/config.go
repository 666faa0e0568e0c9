// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Traffic policies for routes the traffic API cannot answer.
const (
	TrafficPolicyFail     = "fail"
	TrafficPolicyEstimate = "estimate"
)

// Grounding policies for itinerary requests with no knowledge-base rows.
const (
	GroundingPolicyLabel  = "label"
	GroundingPolicyRefuse = "refuse"
)

// Knowledge-base backends.
const (
	KBBackendFirestore = "firestore"
	KBBackendMongo     = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// External API keys
	FlightAPIKey string
	MapsAPIKey   string
	GeminiAPIKey string
	GeminiModel  string

	// Service-account credential: inline JSON wins over the file path.
	GoogleCredentialsJSON string
	GoogleCredentialsFile string

	// Knowledge base
	KBBackend    string
	KBCollection string
	KBQueryLimit int
	KBTimeout    time.Duration
	ProbeTimeout time.Duration

	// MongoDB (kb backend "mongo")
	MongoURI string
	MongoDB  string

	// Postgres airport directory; empty DSN selects the built-in table
	PostgresDSN string

	// Redis journey store; empty addr selects the in-memory store
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JourneyTTL    time.Duration

	// Departure buffers
	BoardingLead   time.Duration
	SecurityBuffer time.Duration
	QueueBuffer    time.Duration

	// Policies
	TrafficPolicy   string
	TrafficFallback time.Duration
	GroundingPolicy string

	// Generation retry
	GenMaxAttempts int
	GenBaseDelay   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		FlightAPIKey: getEnv("AVIATIONSTACK_API_KEY", ""),
		MapsAPIKey:   getEnv("GOOGLE_MAPS_API_KEY", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		KBBackend:    getEnv("KB_BACKEND", KBBackendFirestore),
		KBCollection: getEnv("KB_COLLECTION", "itineraries_knowledge_base"),
		KBQueryLimit: getEnvAsInt("KB_QUERY_LIMIT", 10),
		KBTimeout:    time.Duration(getEnvAsInt("KB_TIMEOUT", 8)) * time.Second,
		ProbeTimeout: time.Duration(getEnvAsInt("PROBE_TIMEOUT", 10)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "departly"),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		JourneyTTL:    time.Duration(getEnvAsInt("JOURNEY_TTL", 1800)) * time.Second,

		BoardingLead:   time.Duration(getEnvAsInt("BOARDING_LEAD_MIN", 45)) * time.Minute,
		SecurityBuffer: time.Duration(getEnvAsInt("SECURITY_BUFFER_MIN", 60)) * time.Minute,
		QueueBuffer:    time.Duration(getEnvAsInt("QUEUE_BUFFER_MIN", 45)) * time.Minute,

		TrafficPolicy:   getEnv("TRAFFIC_POLICY", TrafficPolicyFail),
		TrafficFallback: time.Duration(getEnvAsInt("TRAFFIC_FALLBACK_MIN", 90)) * time.Minute,
		GroundingPolicy: getEnv("GROUNDING_POLICY", GroundingPolicyLabel),

		GenMaxAttempts: getEnvAsInt("GEN_MAX_ATTEMPTS", 3),
		GenBaseDelay:   time.Duration(getEnvAsInt("GEN_BASE_DELAY_MS", 1000)) * time.Millisecond,
	}

	return config, nil
}

// Validate reports every missing required key at once, so the startup
// diagnostic names the full fix instead of one key per restart.
func (c *Config) Validate() error {
	var missing []string
	if c.FlightAPIKey == "" {
		missing = append(missing, "AVIATIONSTACK_API_KEY")
	}
	if c.MapsAPIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.KBBackend == KBBackendFirestore && c.GoogleCredentialsJSON == "" && c.GoogleCredentialsFile == "" {
		missing = append(missing, "GOOGLE_CREDENTIALS_JSON or GOOGLE_CREDENTIALS_FILE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch c.TrafficPolicy {
	case TrafficPolicyFail, TrafficPolicyEstimate:
	default:
		return fmt.Errorf("unknown TRAFFIC_POLICY %q", c.TrafficPolicy)
	}
	switch c.GroundingPolicy {
	case GroundingPolicyLabel, GroundingPolicyRefuse:
	default:
		return fmt.Errorf("unknown GROUNDING_POLICY %q", c.GroundingPolicy)
	}
	switch c.KBBackend {
	case KBBackendFirestore, KBBackendMongo:
	default:
		return fmt.Errorf("unknown KB_BACKEND %q", c.KBBackend)
	}
	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
