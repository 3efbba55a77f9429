package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	jwtSecretEnvKey      = "JWT_SECRET"
	requestTimeoutEnvKey = "REQUEST_TIMEOUT_SECONDS"
)

// defaultRequestTimeout matches the upstream node's worst-case archive query latency.
const defaultRequestTimeout = 600 * time.Second

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	RequestTimeout  time.Duration
}

// NewApp reads the application configuration from the environment. A .env
// file in the working directory is loaded first if present.
func NewApp() (App, error) {
	_ = godotenv.Load()

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	timeout := defaultRequestTimeout
	if raw, ok := os.LookupEnv(requestTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", requestTimeoutEnvKey, raw)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		RequestTimeout:  timeout,
	}, nil
}
