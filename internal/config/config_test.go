package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetOpenMeteoAPIKey(t *testing.T) {
	// Test with the environment variable set
	expectedKey := "test_api_key_123"
	t.Setenv("OPEN_METEO_API_KEY", expectedKey)

	result := GetOpenMeteoAPIKey()
	if result != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, result)
	}

	// Test with environment variable not set
	os.Unsetenv("OPEN_METEO_API_KEY")
	result = GetOpenMeteoAPIKey()
	if result != "" {
		t.Errorf("Expected empty string, got %s", result)
	}
}

func TestGetGeocodingApiUrl(t *testing.T) {
	want := "https://geocoding-api.open-meteo.com/v1/search"
	got := GetGeocodingApiUrl()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetForecastApiUrl(t *testing.T) {
	want := "https://api.open-meteo.com/v1/forecast"
	got := GetForecastApiUrl()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetServerPort(t *testing.T) {
	want := "4000"
	got := GetServerPort()
	if got != want {
		t.Errorf("Expected server port %s, got %s", want, got)
	}
}

func TestGetServerPort_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "5055")
	assert.Equal(t, "5055", GetServerPort())
}

func TestGetServerTimeout(t *testing.T) {
	want := 15 * time.Second
	got := GetServerTimeout("read_header_timeout", time.Second)
	if got != want {
		t.Errorf("Expected read_header_timeout %s, got %s", want, got)
	}
	assert.Equal(t, 7*time.Second, GetServerTimeout("no_such_timeout", 7*time.Second))
}

func TestConfigTestOverlay(t *testing.T) {
	// config_test.yaml is merged on top of config.yaml under go test
	assert.Equal(t, 2*time.Second, GetUpstreamTimeout())
	assert.False(t, IsPlaygroundEnabled())
}

func TestGetCitySearchCount(t *testing.T) {
	assert.Equal(t, 10, GetCitySearchCount())

	viper.Set("open_meteo.city_search_count", -3)
	defer viper.Set("open_meteo.city_search_count", 10)
	assert.Equal(t, 10, GetCitySearchCount(), "non-positive counts fall back to the default")
}

func TestGetLanguage(t *testing.T) {
	assert.Equal(t, "en", GetLanguage())
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		want     time.Duration
	}{
		{name: "valid", value: "3m", fallback: time.Second, want: 3 * time.Minute},
		{name: "empty", value: "", fallback: 7 * time.Second, want: 7 * time.Second},
		{name: "invalid", value: "soon", fallback: 5 * time.Second, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("test.duration", tt.value)
			defer viper.Set("test.duration", "")
			assert.Equal(t, tt.want, GetDuration("test.duration", tt.fallback))
		})
	}
}

func TestReloadConfigForTest(t *testing.T) {
	// Should not panic or error
	ReloadConfigForTest()
}

func TestGetLogger(t *testing.T) {
	l1 := GetLogger()
	l2 := GetLogger()
	assert.NotNil(t, l1)
	assert.Same(t, l1, l2)
}

func TestGetProjectRoot(t *testing.T) {
	root, err := getProjectRoot()
	assert.NoError(t, err)
	_, statErr := os.Stat(root + "/go.mod")
	assert.NoError(t, statErr)
}

func TestDotEnvLoadedOnceBeforeLogger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/dotenv\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("OPEN_METEO_API_KEY=from-dotenv\nLOG_LEVEL=warn\n"), 0o644))
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	for _, key := range []string{"OPEN_METEO_API_KEY", "LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	prevLogger := logger
	envOnce, loggerOnce = sync.Once{}, sync.Once{}
	t.Cleanup(func() {
		logger = prevLogger
		if prevLogger == nil {
			loggerOnce = sync.Once{}
		}
		envOnce = sync.Once{}
	})

	l := GetLogger()
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel), "LOG_LEVEL from .env must apply")
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
	assert.Equal(t, "from-dotenv", GetOpenMeteoAPIKey())

	// .env is not re-read per call
	require.NoError(t, os.Unsetenv("OPEN_METEO_API_KEY"))
	assert.Empty(t, GetOpenMeteoAPIKey())
}

func TestReplaceLoggerForTest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := ReplaceLoggerForTest(zap.New(core).Sugar())

	GetLogger().Infow("hello", "request_id", "abc")
	restore()
	GetLogger().Infow("not observed")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["request_id"])
}
