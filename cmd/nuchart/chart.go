package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kmiernik/nuchart"
)

var chartCmd = &cobra.Command{
	Use:   "chart <datafile> <outfile>",
	Short: "Render a chart of nuclides",
	Long: "Chart renders every ground-state entry of the data file as a color-coded\n" +
		"cell in (N, Z) space. The output format follows the outfile extension\n" +
		"(.svg or .png) unless --format overrides it.",
	Args: cobra.ExactArgs(2),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().Bool("names", false, "show element names")
	chartCmd.Flags().Bool("halflives", false, "show half-lives")
	chartCmd.Flags().Bool("magic", false, "show magic numbers")
	chartCmd.Flags().Bool("numbers", false, "show numbers along axes")
	chartCmd.Flags().IntSlice("z", []int{0, 120}, "atomic number Z range")
	chartCmd.Flags().IntSlice("n", []int{0, 180}, "neutron number N range")
	chartCmd.Flags().String("format", "", "output format: svg or png")
	rootCmd.AddCommand(chartCmd)
}

func chartOptions(cmd *cobra.Command) (*nuchart.ChartOptions, error) {
	o := nuchart.DefaultChartOptions()
	o.ShowNames, _ = cmd.Flags().GetBool("names")
	o.ShowHalfLives, _ = cmd.Flags().GetBool("halflives")
	o.ShowMagic, _ = cmd.Flags().GetBool("magic")
	o.ShowNumbers, _ = cmd.Flags().GetBool("numbers")
	if v := viper.GetFloat64("chart.cell_size"); v > 0 {
		o.CellSize = v
	}
	if viper.IsSet("chart.cell_gap") {
		o.CellGap = viper.GetFloat64("chart.cell_gap")
	}

	zRange, _ := cmd.Flags().GetIntSlice("z")
	nRange, _ := cmd.Flags().GetIntSlice("n")
	if len(zRange) != 2 || len(nRange) != 2 {
		return nil, fmt.Errorf("--z and --n take exactly two values, e.g. --z 20,30")
	}
	o.ZMin, o.ZMax = zRange[0], zRange[1]
	o.NMin, o.NMax = nRange[0], nRange[1]
	return o, nil
}

func runChart(cmd *cobra.Command, args []string) error {
	datafile, outfile := args[0], args[1]

	opts, err := chartOptions(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd, datafile)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(outfile), ".")
	}

	out, err := os.Create(outfile)
	if err != nil {
		return fmt.Errorf("output file: %w", err)
	}
	defer out.Close()

	switch format {
	case "png":
		img, err := nuchart.ChartImage(table, opts)
		if err != nil {
			return err
		}
		if err := png.Encode(out, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
	case "svg", "":
		if err := nuchart.WriteChart(out, table, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	logger.Info("chart written",
		zap.String("file", outfile),
		zap.String("format", format),
		zap.Int("nuclides", table.Len()),
	)
	return nil
}
