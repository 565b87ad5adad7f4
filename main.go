package main

import (
	"os"

	"github.com/fakhrymubarak/weather-activity-api/cmd"
	"github.com/fakhrymubarak/weather-activity-api/internal/config"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		config.GetLogger().Errorw("Server exited with error", "error", err)
		os.Exit(1)
	}
}
