package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pillarcoach/coachengine/internal/domain"
)

// Load reads the .env file specified by COACH_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("COACH_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the process env still applies.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// DefaultEmpathyLevel is applied when a conversation request leaves the
// empathy level unset. Invalid values fall back to medium.
func DefaultEmpathyLevel() domain.EmpathyLevel {
	e := domain.EmpathyLevel(os.Getenv("DEFAULT_EMPATHY_LEVEL"))
	if !e.IsValid() {
		return domain.EmpathyMedium
	}
	return e
}

// DefaultIntensity is applied when a conversation request leaves the
// intensity unset. Invalid values fall back to moderate.
func DefaultIntensity() domain.Intensity {
	i := domain.Intensity(os.Getenv("DEFAULT_INTENSITY"))
	if !i.IsValid() {
		return domain.IntensityModerate
	}
	return i
}
