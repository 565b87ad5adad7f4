package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once
var envOnce sync.Once

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	defaultServerPort   = "4000"
)

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

// loadDotEnv copies .env from the project root into the process environment once.
// Variables already present in the environment are not overridden. It must not log,
// since GetLogger depends on it.
func loadDotEnv() {
	envOnce.Do(func() {
		path := ".env"
		if root, err := getProjectRoot(); err == nil {
			path = filepath.Join(root, ".env")
		}
		_ = godotenv.Load(path)
	})
}

func initConfig() {
	once.Do(func() {
		loadDotEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

func GetGeocodingApiUrl() string {
	initConfig()
	if url := viper.GetString("open_meteo.geocoding_url"); url != "" {
		return url
	}
	return defaultGeocodingURL
}

func GetForecastApiUrl() string {
	initConfig()
	if url := viper.GetString("open_meteo.forecast_url"); url != "" {
		return url
	}
	return defaultForecastURL
}

// GetOpenMeteoAPIKey returns the commercial Open-Meteo key, empty for the free tier.
func GetOpenMeteoAPIKey() string {
	loadDotEnv()
	return os.Getenv("OPEN_METEO_API_KEY")
}

// GetCitySearchCount returns how many geocoding candidates to request. Defaults to 10.
func GetCitySearchCount() int {
	initConfig()
	count := viper.GetInt("open_meteo.city_search_count")
	if count <= 0 {
		return 10
	}
	return count
}

func GetLanguage() string {
	initConfig()
	if lang := viper.GetString("open_meteo.language"); lang != "" {
		return lang
	}
	return "en"
}

func GetUpstreamTimeout() time.Duration {
	return GetDuration("open_meteo.request_timeout", 10*time.Second)
}

func GetServerPort() string {
	initConfig()
	serverPort := viper.GetString("server.port")
	if serverPort == "" {
		return defaultServerPort
	}
	return serverPort
}

// GetServerTimeout reads server.<key> as a duration, e.g. GetServerTimeout("read_timeout", 15*time.Second).
func GetServerTimeout(key string, fallback time.Duration) time.Duration {
	return GetDuration("server."+key, fallback)
}

// GetDuration reads key as a time.Duration, returning fallback if it is unset or invalid.
func GetDuration(key string, fallback time.Duration) time.Duration {
	initConfig()
	durStr := viper.GetString(key)
	if durStr == "" {
		return fallback
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		GetLogger().Warnw("Invalid duration in config, using fallback", "key", key, "value", durStr, "fallback", fallback)
		return fallback
	}
	return dur
}

func IsPlaygroundEnabled() bool {
	initConfig()
	return viper.GetBool("graphql.playground")
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

// ReplaceLoggerForTest swaps the shared logger and returns a func restoring the previous one. Use only in tests.
func ReplaceLoggerForTest(l *zap.SugaredLogger) (restore func()) {
	prev := GetLogger()
	logger = l
	return func() { logger = prev }
}

// GetLogger returns the process-wide logger. LOG_LEVEL is read after .env is loaded.
func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		loadDotEnv()
		cfg := zap.NewDevelopmentConfig()
		if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
			if parsed, err := zapcore.ParseLevel(lvl); err == nil {
				cfg.Level = zap.NewAtomicLevelAt(parsed)
			}
		}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
