package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kmiernik/nuchart"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "nuchart",
	Short: "Chart of nuclides generator",
	Long: "Nuchart converts the NuBase fixed-column nuclear data file into an SVG\n" +
		"chart of nuclides, or into derived two-nucleon separation-energy tables.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .nuchart.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("elements", "", "element symbol file, line k holds the symbol for Z=k")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".nuchart")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("NUCHART")
	viper.AutomaticEnv()

	viper.SetDefault("chart.cell_size", 30.0)
	viper.SetDefault("chart.cell_gap", 2.0)

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	return nil
}

// newParser builds the record parser, honoring the --elements override.
func newParser(cmd *cobra.Command) (*nuchart.Parser, error) {
	p := nuchart.NewParser()
	path, _ := cmd.Flags().GetString("elements")
	if path == "" {
		return p, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("element symbol file: %w", err)
	}
	defer f.Close()
	table, err := nuchart.LoadElementTable(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded element symbols", zap.String("file", path), zap.Int("symbols", table.Len()))
	p.Elements = table
	return p, nil
}

// loadTable streams the database file into a nuclide table.
func loadTable(cmd *cobra.Command, path string) (*nuchart.Table, error) {
	p, err := newParser(cmd)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}
	defer f.Close()
	t, err := p.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("parsed nuclide table",
		zap.String("file", path),
		zap.Int("nuclides", t.Len()),
	)
	return t, nil
}
