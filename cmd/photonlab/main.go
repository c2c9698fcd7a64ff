package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/photonlab/internal/config"
	"github.com/san-kum/photonlab/internal/constants"
	"github.com/san-kum/photonlab/internal/experiment"
	"github.com/san-kum/photonlab/internal/export"
	"github.com/san-kum/photonlab/internal/photon"
	"github.com/san-kum/photonlab/internal/viz"
)

var (
	configFile string
	preset     string
	samples    int
	theme      string
	verbose    bool

	material   string
	plotWidth  int
	plotHeight int
	format     string
	outPath    string
	elements   bool
)

func main() {
	if err := newRootCmd(experiment.NewRegistry()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(registry *experiment.Registry) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "photonlab",
		Short: "photon-matter interaction calculator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(registry, cmd, args)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().IntVar(&samples, "samples", config.DefaultSamples, "points per energy sweep (photoelectric, pair)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	calcCmd := &cobra.Command{
		Use:   "calc [experiment]",
		Short: "print the scalar results of an experiment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, cfg, err := runExperiment(registry, cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.RenderReport(rep, viz.GetTheme(cfg.Theme)))
			return nil
		},
	}
	addParamFlags(calcCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [experiment]",
		Short: "plot experiment sweeps in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, cfg, err := runExperiment(registry, cmd, args)
			if err != nil {
				return err
			}
			opts := viz.PlotOptions{Width: plotWidth, Height: plotHeight, Theme: viz.GetTheme(cfg.Theme)}
			fmt.Fprintln(cmd.OutOrStdout(), viz.PlotReport(rep, opts))
			return nil
		},
	}
	addParamFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultPlotWidth, "plot width in columns")
	plotCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultPlotHeight, "plot height in rows")

	exportCmd := &cobra.Command{
		Use:   "export [experiment]",
		Short: "export a report and its sweeps",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportReport(registry, cmd, args)
		},
	}
	addParamFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "", "output format (csv, json, xlsx, svg, png, chart-svg); default from --out extension, else json")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, - for stdout (default <experiment>.<format>)")

	exploreCmd := &cobra.Command{
		Use:   "explore [experiment]",
		Short: "interactive parameter explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(registry, cmd, args)
		},
	}
	addParamFlags(exploreCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list experiments",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tPARAMETERS")
			for _, name := range registry.List() {
				e, _ := registry.Get(name)
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Title, strings.Join(e.Params, ", "))
			}
			w.Flush()
		},
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list photoelectric materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if elements {
				return listElements(cmd.OutOrStdout())
			}
			return listMaterials(cmd.OutOrStdout())
		},
	}
	materialsCmd.Flags().BoolVar(&elements, "elements", false, "list elements and atomic numbers instead")

	presetsCmd := &cobra.Command{
		Use:   "presets [experiment]",
		Short: "list available presets for an experiment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := registry.Get(args[0]); err != nil {
				return err
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no presets for experiment: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml or toml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, "")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			slog.Info("config written", "path", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(calcCmd, plotCmd, exportCmd, exploreCmd, listCmd, materialsCmd, presetsCmd, initCmd)
	return rootCmd
}

func setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runExperiment(registry *experiment.Registry, cmd *cobra.Command, args []string) (*experiment.Report, *config.Config, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	cfg, err := resolveConfig(cmd, name)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("running experiment", "experiment", cfg.Experiment, "samples", cfg.Samples)
	rep, err := registry.Run(cfg.Experiment, cfg)
	return rep, cfg, err
}

func exportReport(registry *experiment.Registry, cmd *cobra.Command, args []string) error {
	rep, _, err := runExperiment(registry, cmd, args)
	if err != nil {
		return err
	}

	f := export.JSON
	switch {
	case format != "":
		if f, err = export.ParseFormat(format); err != nil {
			return err
		}
	case outPath != "" && outPath != "-":
		if f, err = export.FormatFromPath(outPath); err != nil {
			return err
		}
	}

	if outPath == "-" {
		return export.Write(cmd.OutOrStdout(), f, rep)
	}
	path := outPath
	if path == "" {
		path = rep.Name + "." + string(f)
	}
	if err := export.WriteFile(path, f, rep); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	slog.Info("exported", "experiment", rep.Name, "format", f, "path", path, "series", len(rep.Series))
	return nil
}

func runExplore(registry *experiment.Registry, cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	cfg, err := resolveConfig(cmd, name)
	if err != nil {
		return err
	}
	return viz.RunExplorer(registry, cfg, name)
}

func listMaterials(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATERIAL\tWORK FUNCTION\tTHRESHOLD\tCUTOFF")
	for _, name := range constants.Materials() {
		wf, err := constants.WorkFunction(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name,
			viz.FormatValue(wf, "eV"),
			viz.FormatValue(photon.ThresholdFrequency(wf), "Hz"),
			viz.FormatValue(photon.ThresholdWavelength(wf), "m"))
	}
	return w.Flush()
}

func listElements(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ELEMENT\tZ")
	for _, symbol := range constants.Elements() {
		z, err := constants.AtomicNumber(symbol)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", symbol, z)
	}
	return w.Flush()
}
