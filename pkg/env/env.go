package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abstratium-informatique-sarl/tapir/pkg/logging"
	"github.com/joho/godotenv"
)

const (
	_PROD    = "prod"
	envName  = "TAPIR_ENV"
	maxDepth = 5
)

var env string

// Setup loads .env.<TAPIR_ENV> and then .env from the nearest directory at or
// above the working directory. Variables that are already set are never
// overridden, so the files only supply defaults.
func Setup() {
	log := logging.GetLog("env")

	env = os.Getenv(envName) // empty means prod

	wd, _ := os.Getwd()
	dir, ok := findEnvDir(wd)
	if !ok {
		log.Debug().Msgf("no .env file found at or above %s", wd)
	} else {
		if len(env) > 0 {
			load(filepath.Join(dir, ".env."+env))
		}
		load(filepath.Join(dir, ".env"))
	}

	if len(env) == 0 {
		env = _PROD
	}
	log.Info().Msgf("environment is %s", env)
}

// findEnvDir walks up from start, as tests run below the module root
func findEnvDir(start string) (string, bool) {
	dir := start
	for i := 0; i <= maxDepth; i++ {
		if _, err := os.Stat(filepath.Join(dir, ".env")); err == nil {
			return dir, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("failed to check for .env in '%s': %w", dir, err))
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

func load(filename string) {
	log := logging.GetLog("env")
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msgf("skipping env file %s as it does not exist", filename)
		return
	}
	log.Debug().Msgf("loading (adding) env file %s", filename)
	if err := godotenv.Load(filename); err != nil {
		panic(fmt.Errorf("failed to load env file '%s': %w", filename, err))
	}
}

func Getenv() string {
	return env
}

func GetenvIsNotProd() bool {
	return !GetenvIsProd()
}

func GetenvIsProd() bool {
	return env == _PROD
}
