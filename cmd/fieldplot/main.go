package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldplot/internal/chart"
	"github.com/san-kum/fieldplot/internal/config"
	"github.com/san-kum/fieldplot/internal/deriv"
	"github.com/san-kum/fieldplot/internal/ode"
	"github.com/san-kum/fieldplot/internal/store"
	"github.com/san-kum/fieldplot/internal/viz"
)

var (
	dataDir string

	field    string
	count    int
	step     float64
	ySpread  float64
	startX   float64
	maxX     float64
	maxY     float64
	unboundX bool
	unboundY bool
	maxSteps int
	width    int
	height   int
	output   string

	configFile string
	preset     string
	noSave     bool

	// preview dimensions (terminal cells, not pixels)
	previewWidth  int
	previewHeight int

	// live view
	y0  float64
	fps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldplot",
		Short: "trajectory plotter for first-order ODE fields",
		RunE:  runBatch,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fieldplot", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate a trajectory family and render it to a PNG",
		RunE:  runBatch,
	}
	addBatchFlags(runCmd)
	runCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	runCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")
	runCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "output image path")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip writing the run directory")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "integrate a trajectory family and plot it in the terminal",
		RunE:  runPreview,
	}
	addBatchFlags(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "cols", 100, "chart width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "rows", 24, "chart height in rows")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "step a single trajectory interactively",
		RunE:  runLive,
	}
	addBatchFlags(liveCmd)
	liveCmd.Flags().Float64Var(&y0, "y0", 5.0, "initial y")
	liveCmd.Flags().IntVar(&fps, "fps", 30, "frame rate")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "re-render a stored run to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "canvas width in pixels")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "canvas height in pixels")
	renderCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "output image path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored run's points as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	fieldsCmd := &cobra.Command{
		Use:   "fields",
		Short: "list registered derivative fields",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range deriv.List() {
				f, _ := deriv.Lookup(name)
				marker := ""
				if name == deriv.DefaultField {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%s\n", name, marker, f.Formula)
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [field]",
		Short: "list available presets for a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for field: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, previewCmd, liveCmd, renderCmd, listCmd, exportCSVCmd, exportJSONCmd, fieldsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&field, "field", config.DefaultField, "derivative field name")
	cmd.Flags().IntVar(&count, "count", config.DefaultCount, "number of trajectories")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "step size")
	cmd.Flags().Float64Var(&ySpread, "y-spread", config.DefaultYSpread, "y offset between starts")
	cmd.Flags().Float64Var(&startX, "start-x", config.DefaultStartX, "starting x")
	cmd.Flags().Float64Var(&maxX, "max-x", config.DefaultMaxX, "stop when x exceeds this")
	cmd.Flags().Float64Var(&maxY, "max-y", config.DefaultMaxAbsY, "stop when |y| exceeds this")
	cmd.Flags().BoolVar(&unboundX, "unbound-x", false, "no x bound")
	cmd.Flags().BoolVar(&unboundY, "unbound-y", false, "no |y| bound")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "hard cap on points per trajectory (0 = default)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig layers preset, config file and changed flags over the
// defaults, then validates.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(field, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(field))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("field") {
		cfg.Field = field
	}
	if fl.Changed("count") {
		cfg.Count = count
	}
	if fl.Changed("step") {
		cfg.Step = step
	}
	if fl.Changed("y-spread") {
		cfg.YSpread = ySpread
	}
	if fl.Changed("start-x") {
		cfg.StartX = startX
	}
	if fl.Changed("max-x") {
		cfg.MaxX = ode.Bound(maxX)
	}
	if fl.Changed("max-y") {
		cfg.MaxAbsY = ode.Bound(maxY)
	}
	if unboundX {
		cfg.MaxX = nil
	}
	if unboundY {
		cfg.MaxAbsY = nil
	}
	if fl.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}
	if fl.Changed("width") {
		cfg.Width = width
	}
	if fl.Changed("height") {
		cfg.Height = height
	}
	if fl.Changed("output") {
		cfg.Output = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func integrate(cfg *config.Config) ([]ode.Trajectory, error) {
	f, err := deriv.Get(cfg.Field)
	if err != nil {
		return nil, err
	}
	return cfg.Batch(f).Run(context.Background())
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	trajs, err := integrate(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	view, err := chart.ComputeViewport(trajs)
	if err != nil {
		return err
	}

	opts := chart.Options{Width: cfg.Width, Height: cfg.Height, Title: cfg.Field}
	if err := chart.Render(cfg.Output, trajs, view, opts); err != nil {
		return err
	}

	runID := "-"
	if !noSave {
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err = st.Save(runMeta(cfg), trajs)
		if err != nil {
			return err
		}
	}

	fmt.Println(viz.Summary("run complete", [][2]string{
		{"field", cfg.Field},
		{"trajectories", fmt.Sprintf("%d", len(trajs))},
		{"points", fmt.Sprintf("%d", ode.TotalPoints(trajs))},
		{"elapsed", elapsed.Round(time.Millisecond).String()},
		{"image", cfg.Output},
		{"run id", runID},
	}))

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	trajs, err := integrate(cfg)
	if err != nil {
		return err
	}
	if ode.TotalPoints(trajs) == 0 {
		return chart.ErrNoPoints
	}

	fmt.Println(viz.Preview(trajs, previewWidth, previewHeight))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f, err := deriv.Get(cfg.Field)
	if err != nil {
		return err
	}
	entry, _ := deriv.Lookup(cfg.Field)

	start := ode.Point{X: cfg.StartX, Y: y0}
	m := viz.NewLive(cfg.Field, entry.Formula, f, start, cfg.Step, cfg.EndCondition(), fps)

	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trajs, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}

	view, err := chart.ComputeViewport(trajs)
	if err != nil {
		return err
	}

	opts := chart.Options{Width: width, Height: height, Title: meta.Field}
	if err := chart.Render(output, trajs, view, opts); err != nil {
		return err
	}

	fmt.Printf("rendered %s -> %s\n", meta.ID, output)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tTRAJS\tSTEP\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4g\t%d\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Count,
			run.Step,
			run.Points,
		)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	trajs, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}
	return store.ExportCSV(os.Stdout, trajs)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trajs, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, meta, trajs)
}

func runMeta(cfg *config.Config) store.RunMetadata {
	return store.RunMetadata{
		Field:   cfg.Field,
		Step:    cfg.Step,
		YSpread: cfg.YSpread,
		StartX:  cfg.StartX,
		MaxX:    cfg.MaxX,
		MaxAbsY: cfg.MaxAbsY,
	}
}
