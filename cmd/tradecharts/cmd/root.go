package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradecharts/config"
	"github.com/rustyeddy/tradecharts/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "tradecharts",
	Short: "Candlestick chart geometry from OHLCV candles",
	Long: `Tradecharts turns a series of OHLCV candles into draw commands for a
scrollable, zoomable candlestick chart.

It provides tools for:
  - Resolving which candles are visible in a pixel window
  - Emitting body/wick rectangles and bullish/bearish tags for any backend
  - Driving the newest candle from a simulated live price feed`,
	SilenceUsage: true,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON); defaults are used when empty")
}

// loadConfig returns the config named by --config, or the defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
