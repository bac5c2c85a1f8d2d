package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var loadEnvOnce sync.Once

// LoadEnvFor reads the named variable from the environment, loading the
// project .env file on first use. A missing .env file is not an error: the
// gateway runs fine on plain environment variables.
func LoadEnvFor(v string) (x string) {
	loadEnvOnce.Do(func() {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil {
			zap.L().Debug("no env file loaded", zap.String("file", envFile))
		}
	})

	x = os.Getenv(v)
	return
}

// LoadEnvOr returns the variable's value or the given default when unset.
func LoadEnvOr(v, def string) string {
	if x := LoadEnvFor(v); x != "" {
		return x
	}
	return def
}
