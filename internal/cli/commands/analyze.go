package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/spacemissions/internal/chart"
	"github.com/leapstack-labs/spacemissions/internal/cli/config"
	"github.com/leapstack-labs/spacemissions/internal/cli/output"
	"github.com/leapstack-labs/spacemissions/internal/filter"
	"github.com/leapstack-labs/spacemissions/internal/loader"
	"github.com/leapstack-labs/spacemissions/internal/report"
	"github.com/leapstack-labs/spacemissions/pkg/core"
)

// Messages printed when a chart cannot be produced or was written.
const (
	NotEnoughDataMessage = "Not enough data to generate a plot."
	plotSavedFormat      = "Plot saved to %s"
)

// AnalyzeOptions holds the filter and plot flags of the analyze command.
type AnalyzeOptions struct {
	Prime       bool
	DivisibleBy int
	Type        string
	Country     string
	Success     string
	Impact      string
	Plot        bool
}

// BindAnalyzeFlags registers the analysis flags on cmd.
func BindAnalyzeFlags(cmd *cobra.Command, opts *AnalyzeOptions) {
	f := cmd.Flags()
	f.String("data", config.DefaultDataPath, "Path to the CSV data file")
	f.String("delimiter", "", `Field delimiter (default "," or tab for .tsv files)`)
	f.BoolVarP(&opts.Prime, "prime", "p", false, "Filter missions by prime number years")
	f.IntVarP(&opts.DivisibleBy, "divisible-by", "a", 0, "Filter missions by years divisible by `N`")
	f.StringVarP(&opts.Type, "type", "t", "", "Filter missions by mission type")
	f.StringVarP(&opts.Country, "country", "c", "", "Filter missions by participating country")
	f.StringVarP(&opts.Success, "success", "s", "", "Filter missions by success status (true|false)")
	f.StringVarP(&opts.Impact, "impact", "i", "", "Filter missions by minimum scientific impact `N`")
	f.Bool("summary", false, "Show summary statistics")
	f.BoolVar(&opts.Plot, "plot", false, "Show a chart of mission success rates")
	f.String("plot-file", "", "Save the chart to `PATH` instead of displaying it")

	_ = cmd.RegisterFlagCompletionFunc("success", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"true", "false"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagFilename("data", "csv", "tsv")
	_ = cmd.MarkFlagFilename("plot-file", "png", "svg", "pdf", "jpg")
}

// Criteria converts the parsed flags into filter criteria.
// Only flags that were set on the command line become filters.
func (o *AnalyzeOptions) Criteria(flags *pflag.FlagSet) (filter.Criteria, error) {
	c := filter.Criteria{
		Prime:   o.Prime,
		Type:    o.Type,
		Country: o.Country,
	}

	if flags.Changed("divisible-by") {
		d := o.DivisibleBy
		c.DivisibleBy = &d
	}

	if flags.Changed("success") {
		if !strings.EqualFold(o.Success, "true") && !strings.EqualFold(o.Success, "false") {
			return filter.Criteria{}, fmt.Errorf("invalid value %q for --success: must be true or false", o.Success)
		}
		c.Success = o.Success
	}

	if flags.Changed("impact") {
		v := o.Impact
		c.Impact = &v
	}

	return c, nil
}

// RunAnalyze loads the mission file, applies the filters, and prints the
// listing, optional summary, and optional chart.
func RunAnalyze(cmd *cobra.Command, opts *AnalyzeOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg, logger, r := cmdCtx.Cfg, cmdCtx.Logger, cmdCtx.Renderer

	criteria, err := opts.Criteria(cmd.Flags())
	if err != nil {
		return err
	}

	missions, err := loader.Load(cfg.DataPath, loader.Options{
		Delimiter: cfg.DelimiterRune(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	res, err := criteria.Run(missions, logger)
	if err != nil {
		return err
	}
	logger.Debug("filters applied", "filters", criteria.Describe(), "matched", len(res.Missions), "total", len(missions))

	var summary *report.Summary
	if cfg.Summary {
		summary, _ = report.Summarize(res.Missions)
	}

	rep := report.New(r)
	if r.EffectiveMode() == output.ModeJSON {
		if err := rep.JSON(report.Document{
			Source:   cfg.DataPath,
			Filters:  criteria.Describe(),
			Missions: res.Missions,
			Summary:  summary,
			Warnings: errorStrings(res.Warnings),
		}); err != nil {
			return err
		}
	} else {
		rep.Warnings(res.Warnings)
		rep.Missions(res.Missions)
		rep.Summary(summary)
	}

	if opts.Plot || cfg.PlotFile != "" {
		return runPlot(cmdCtx, res.Missions)
	}
	return nil
}

func runPlot(cmdCtx *CommandContext, missions []core.Mission) error {
	cfg, r := cmdCtx.Cfg, cmdCtx.Renderer
	jsonMode := r.EffectiveMode() == output.ModeJSON

	// Keep stdout machine-readable in JSON mode.
	notice := func(msg string) {
		if jsonMode {
			_, _ = fmt.Fprintln(r.ErrWriter(), msg)
			return
		}
		r.Println(msg)
	}

	c, ok := chart.Build(missions)
	if !ok {
		notice(NotEnoughDataMessage)
		return nil
	}
	if cfg.Chart.Title != "" {
		c.Title = cfg.Chart.Title
	}

	if cfg.PlotFile != "" {
		if err := chart.Save(c, cfg.PlotFile, chart.Options{
			Width:  cfg.Chart.Width,
			Height: cfg.Chart.Height,
		}); err != nil {
			return err
		}
		cmdCtx.Logger.Debug("chart written", "path", cfg.PlotFile, "years", len(c.Points))
		if jsonMode {
			notice(fmt.Sprintf(plotSavedFormat, cfg.PlotFile))
		} else {
			r.Success(fmt.Sprintf(plotSavedFormat, cfg.PlotFile))
		}
		return nil
	}

	out := r.Writer()
	if jsonMode {
		out = r.ErrWriter()
	}
	return chart.Show(c, chart.ShowOptions{
		In:          cmdCtx.In,
		Out:         out,
		Interactive: r.IsTTY() && !jsonMode,
		Renderer:    r.Lipgloss(),
	})
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
