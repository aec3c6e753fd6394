package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-flight/internal/log"
)

const appName = "weather-flight"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "weather-flight - trip planning backend",
	Long: `weather-flight serves destinations, activities, trips and a weather
estimate for any day: a live forecast inside the 15-day window, a model
prediction beyond it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	defer log.Sync()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("%s: %v", appName, err)
	}
}
