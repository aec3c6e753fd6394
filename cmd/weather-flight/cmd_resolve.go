package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-flight/internal/common"
	"github.com/i474232898/weather-flight/internal/weather"
)

var resolveCmd = &cobra.Command{
	Use:     "resolve",
	Short:   "Resolve the weather of a catalog destination on a day",
	Example: `  weather-flight resolve --destination Berga --date 2025-08-14`,
	RunE:    runResolve,
}

func init() {
	resolveCmd.Flags().StringP("destination", "d", "", "destination name from the catalog")
	resolveCmd.Flags().String("date", "", "day to resolve (yyyy-MM-dd)")
	_ = resolveCmd.MarkFlagRequired("destination")
	_ = resolveCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("destination")
	dateStr, _ := cmd.Flags().GetString("date")

	c, err := build()
	if err != nil {
		return err
	}

	dest, err := c.catalog.DestinationByName(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	date, err := common.ParseDate(dateStr, c.resolver.Now().Location())
	if err != nil {
		return err
	}

	res := <-c.resolver.ResolveAsync(cmd.Context(), dest, date)
	est, ok := res.Estimate()
	if !ok {
		return fmt.Errorf("%s: %s", weather.Kind(res.Err()), res.Message())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(est)
}
