package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/boltjoint/internal/batch"
	"github.com/san-kum/boltjoint/internal/config"
	"github.com/san-kum/boltjoint/internal/export"
	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/san-kum/boltjoint/internal/joint"
	"github.com/san-kum/boltjoint/internal/logging"
	"github.com/san-kum/boltjoint/internal/storage"
	"github.com/san-kum/boltjoint/internal/sweep"
	"github.com/san-kum/boltjoint/internal/viz"
)

var (
	dataDir  string
	logLevel string
	noColor  bool
	// case selection
	configFile    string
	preset        string
	preload       float64
	loadMax       float64
	loadMin       float64
	jointConstant float64
	// sweep
	maxPreload float64
	samples    int
	noSave     bool
	showPlot   bool
	// area / joint-constant
	majorDiameter float64
	minorDiameter float64
	pitch         float64
	tpi           float64
	diameter      float64
	gripLength    float64
	memberModulus float64
	boltModulus   float64
	// output
	outputFile string
	asJSON     bool
	svgFile    string
	workers    int
	template   bool
	params     []string
	author     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "boltjoint",
		Short:         "bolted joint preload and safety factor calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if noColor {
				slog.SetDefault(logging.NewPlain(os.Stderr, level))
			} else {
				slog.SetDefault(logging.New(os.Stderr, level))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".boltjoint", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured log output")

	areaCmd := &cobra.Command{
		Use:   "area",
		Short: "tensile stress area of a threaded fastener",
		RunE:  runArea,
	}
	addCaseFlags(areaCmd)
	areaCmd.Flags().Float64Var(&majorDiameter, "major", 0, "major diameter")
	areaCmd.Flags().Float64Var(&minorDiameter, "minor", 0, "minor diameter")
	areaCmd.Flags().Float64Var(&pitch, "pitch", 0, "thread pitch (metric)")
	areaCmd.Flags().Float64Var(&tpi, "tpi", 0, "threads per inch (unified)")

	stiffnessCmd := &cobra.Command{
		Use:   "stiffness",
		Short: "bolt and member stiffness of a case",
		RunE:  runStiffness,
	}
	addCaseFlags(stiffnessCmd)

	jointConstantCmd := &cobra.Command{
		Use:   "joint-constant",
		Short: "Cornwell joint constant estimate",
		RunE:  runJointConstant,
	}
	addCaseFlags(jointConstantCmd)
	jointConstantCmd.Flags().Float64Var(&diameter, "diameter", 0, "bolt diameter")
	jointConstantCmd.Flags().Float64Var(&gripLength, "grip", 0, "grip length")
	jointConstantCmd.Flags().Float64Var(&memberModulus, "em", 0, "member modulus")
	jointConstantCmd.Flags().Float64Var(&boltModulus, "eb", 0, "bolt modulus")

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "safety factors of a case at its preload",
		RunE:  runEvaluate,
	}
	addCaseFlags(evaluateCmd)
	evaluateCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep preload and find the optimum",
		RunE:  runSweep,
	}
	addCaseFlags(sweepCmd)
	addSweepFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the factors")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "grid search case parameters for the best optimal preload",
		RunE:  runSearch,
	}
	addCaseFlags(searchCmd)
	addSweepFlags(searchCmd)
	searchCmd.Flags().StringArrayVar(&params, "param", nil, "parameter range name=start:stop:n (grip_length, threaded_length, member_modulus, load_max)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a stored sweep to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored sweep to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default stdout)")

	exportXLSXCmd := &cobra.Command{
		Use:   "export-xlsx [run_id]",
		Short: "export a stored sweep to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  exportXLSX,
	}
	exportXLSXCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default <run_id>.xlsx)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "write a PDF report for a case",
		RunE:  runReport,
	}
	addCaseFlags(reportCmd)
	addSweepFlags(reportCmd)
	reportCmd.Flags().StringVarP(&outputFile, "output", "o", "report.pdf", "output file")
	reportCmd.Flags().StringVar(&author, "author", "", "report author")

	diagramCmd := &cobra.Command{
		Use:   "diagram",
		Short: "draw the joint diagram",
		RunE:  runDiagram,
	}
	addCaseFlags(diagramCmd)
	diagramCmd.Flags().StringVar(&svgFile, "svg", "", "write the diagram as SVG to this file")

	batchCmd := &cobra.Command{
		Use:   "batch [cases.xlsx]",
		Short: "evaluate every case in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent evaluations (default GOMAXPROCS)")
	batchCmd.Flags().BoolVar(&template, "template", false, "write a template workbook instead")
	batchCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactively step the preload of a case",
		RunE:  runExplore,
	}
	addCaseFlags(exploreCmd)
	addSweepFlags(exploreCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tUNITS\tMAJOR\tGRIP\tPRELOAD")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\n", name, p.Units, p.Geometry.MajorDiameter, p.Geometry.GripLength, p.Load.Preload)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(areaCmd, stiffnessCmd, jointConstantCmd, evaluateCmd, sweepCmd, searchCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportXLSXCmd, reportCmd, diagramCmd, batchCmd, exploreCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml), exclusive with --preset")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration, exclusive with --config")
	cmd.Flags().Float64Var(&preload, "preload", 0, "bolt preload")
	cmd.Flags().Float64Var(&loadMax, "load-max", 0, "maximum external load")
	cmd.Flags().Float64Var(&loadMin, "load-min", 0, "minimum external load")
	cmd.Flags().Float64Var(&jointConstant, "joint-constant", 0, "joint constant override (0 estimates it)")
	cmd.MarkFlagsMutuallyExclusive("config", "preset")
}

func addSweepFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&maxPreload, "max-preload", 0, "upper end of the preload sweep")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of preload samples")
}

// loadConfig starts from the default, the preset or the config file, and then
// applies any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("preload") {
		cfg.Load.Preload = preload
	}
	if cmd.Flags().Changed("load-max") {
		cfg.Load.Max = loadMax
	}
	if cmd.Flags().Changed("load-min") {
		cfg.Load.Min = loadMin
	}
	if cmd.Flags().Changed("joint-constant") {
		cfg.JointConstant = jointConstant
	}
	if cmd.Flags().Changed("max-preload") {
		cfg.Sweep.MaxPreload = maxPreload
	}
	if cmd.Flags().Changed("samples") {
		cfg.Sweep.Samples = samples
	}
	return cfg, nil
}

func loadCase(cmd *cobra.Command) (joint.Case, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return joint.Case{}, nil, err
	}
	c, err := cfg.Case()
	if err != nil {
		return joint.Case{}, nil, err
	}
	return c, cfg, nil
}

func sweepOptions(cfg *config.Config) sweep.Options {
	return sweep.Options{MaxPreload: cfg.Sweep.MaxPreload, Samples: cfg.Sweep.Samples}
}

func runArea(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("major") {
		thread := fastener.ThreadSpec{Pitch: pitch, ThreadsPerInch: tpi}
		aTs, err := fastener.TensileStressArea(majorDiameter, minorDiameter, thread)
		if err != nil {
			return err
		}
		fmt.Printf("tensile stress area: %.6g\n", aTs)
		return nil
	}

	c, _, err := loadCase(cmd)
	if err != nil {
		return err
	}
	g := c.Geometry
	aTs, err := fastener.TensileStressArea(g.MajorDiameter, g.MinorDiameter, g.Thread)
	if err != nil {
		return err
	}
	fmt.Printf("case: %s\n", c.Name)
	fmt.Printf("tensile stress area: %.6g %s²\n", aTs, c.Units.LengthUnit())
	fmt.Printf("shank area: %.6g %s²\n", fastener.ShankArea(g.Diameter()), c.Units.LengthUnit())
	return nil
}

func runStiffness(cmd *cobra.Command, args []string) error {
	c, _, err := loadCase(cmd)
	if err != nil {
		return err
	}
	j, err := joint.Prepare(c)
	if err != nil {
		return err
	}
	u := c.Units

	source := "given"
	if j.Estimated {
		source = "cornwell"
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "case\t%s\n", c.Name)
	fmt.Fprintf(w, "tensile stress area\t%.6g %s²\n", j.ATs, u.LengthUnit())
	fmt.Fprintf(w, "shank area\t%.6g %s²\n", j.ACs, u.LengthUnit())
	fmt.Fprintf(w, "joint constant\t%.5f (%s)\n", j.State.C, source)
	fmt.Fprintf(w, "bolt stiffness\t%.6g %s\n", j.State.Kb, u.StiffnessUnit())
	fmt.Fprintf(w, "member stiffness\t%.6g %s\n", j.State.Km, u.StiffnessUnit())
	return w.Flush()
}

func runJointConstant(cmd *cobra.Command, args []string) error {
	db, l, em, eb := diameter, gripLength, memberModulus, boltModulus
	if !cmd.Flags().Changed("diameter") {
		c, _, err := loadCase(cmd)
		if err != nil {
			return err
		}
		db, l = c.Geometry.Diameter(), c.Geometry.GripLength
		em, eb = c.Material.MemberModulus, c.Material.BoltModulus
	}

	return printJointConstant(os.Stdout, db, l, em, eb)
}

// printJointConstant shows the Cornwell inputs j = d/l and r = Em/Eb, the
// bracketing table rows and the resulting joint constant.
func printJointConstant(w io.Writer, db, l, em, eb float64) error {
	jc, err := fastener.JointConstant(db, l, em, eb)
	if err != nil {
		return err
	}
	coef := fastener.CornwellCoefficients(db / l)
	fmt.Fprintf(w, "j = d/l = %.4f, r = Em/Eb = %.4f\n", db/l, em/eb)
	fmt.Fprintf(w, "bracket j1 = %.3g, j2 = %.3g\n", coef.J1, coef.J2)
	fmt.Fprintf(w, "joint constant: %.5f\n", jc)
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	c, _, err := loadCase(cmd)
	if err != nil {
		return err
	}
	ev, err := joint.Evaluate(c)
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ev)
	}
	fmt.Println(viz.RenderEvaluation(ev))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadCase(cmd)
	if err != nil {
		return err
	}
	res, err := sweep.Run(cmd.Context(), c, sweepOptions(cfg))
	if err != nil {
		return err
	}
	best, err := res.Best()
	if err != nil {
		return err
	}

	u := c.Units
	fmt.Printf("case: %s\n", c.Name)
	fmt.Printf("samples: %d\n", res.Len())
	fmt.Printf("optimal preload: %.5g %s\n", best.Preload, u.ForceUnit())
	fmt.Printf("  yield %.3f  separation %.3f  fatigue %.3f  min %.3f\n", best.Yield, best.Separation, best.Fatigue, best.Min)
	if sp := c.Material.ProofStrength; sp > 0 {
		fmt.Printf("  %.1f%% of proof load\n", best.Preload/(res.ATs*sp)*100)
	}

	if showPlot {
		graph, err := viz.PlotSweep(res, viz.DefaultPlotWidth, viz.DefaultPlotHeight)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(graph)
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	slog.Info("run saved", "id", runID)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(params) == 0 {
		return fmt.Errorf("at least one --param is required")
	}
	names := make([]string, len(params))
	ranges := make([][]float64, len(params))
	for i, p := range params {
		name, values, err := parseParamRange(p)
		if err != nil {
			return err
		}
		names[i], ranges[i] = name, values
	}

	c, cfg, err := loadCase(cmd)
	if err != nil {
		return err
	}
	search, err := sweep.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}
	res, err := search.Search(cmd.Context(), c, sweepOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("best parameters for %s:\n", c.Name)
	for _, name := range names {
		fmt.Printf("  %s = %g\n", name, res.Params[name])
	}
	fmt.Printf("optimal preload: %.5g %s (min factor %.3f)\n", res.Best.Preload, c.Units.ForceUnit(), res.Best.Min)
	return nil
}

func parseParamRange(s string) (string, []float64, error) {
	name, rng, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("bad param %q: want name=start:stop:n", s)
	}
	if !sweep.IsParam(name) {
		return "", nil, fmt.Errorf("unknown param %q", name)
	}
	parts := strings.Split(rng, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("bad param %q: want name=start:stop:n", s)
	}
	start, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, err
	}
	stop, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, err
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return "", nil, fmt.Errorf("bad param %q: n must be a positive integer", s)
	}

	if n == 1 {
		return name, []float64{start}, nil
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*(stop-start)/float64(n-1)
	}
	return name, values, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASE\tTIME\tUNITS\tSAMPLES\tC\tBEST PRELOAD\tMIN SF")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4f\t%.5g\t%.3f\n",
			run.ID,
			run.Case.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Case.Units,
			run.Samples,
			run.Joint.C,
			run.Best.Preload,
			run.Best.Min,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, meta, err := st.LoadResult(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("case: %s\n", meta.Case.Name)
	fmt.Printf("samples: %d\n\n", res.Len())

	graph, err := viz.PlotSweep(res, viz.DefaultPlotWidth, viz.DefaultPlotHeight)
	if err != nil {
		return err
	}
	fmt.Println(graph)

	if sp := meta.Case.Material.ProofStrength; sp > 0 {
		graph, err := viz.PlotProofLoad(res, sp, viz.DefaultPlotWidth, viz.DefaultPlotHeight)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	res, _, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	if outputFile == "" {
		return export.WriteCSV(os.Stdout, res)
	}
	if err := export.ExportCSV(outputFile, res); err != nil {
		return err
	}
	slog.Info("exported", "file", outputFile)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	res, _, err := storage.New(dataDir).LoadResult(args[0])
	if err != nil {
		return err
	}
	if outputFile == "" {
		return export.WriteJSON(os.Stdout, res)
	}
	if err := export.ExportJSON(outputFile, res); err != nil {
		return err
	}
	slog.Info("exported", "file", outputFile)
	return nil
}

func exportXLSX(cmd *cobra.Command, args []string) error {
	runID := args[0]
	res, _, err := storage.New(dataDir).LoadResult(runID)
	if err != nil {
		return err
	}

	path := outputFile
	if path == "" {
		path = runID + ".xlsx"
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := export.WriteXLSX(file, res); err != nil {
		return err
	}
	slog.Info("exported", "file", path)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadCase(cmd)
	if err != nil {
		return err
	}
	ev, err := joint.Evaluate(c)
	if err != nil {
		return err
	}
	res, err := sweep.Run(cmd.Context(), c, sweepOptions(cfg))
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := export.WriteReport(file, export.ReportInput{Author: author, Evaluation: ev, Sweep: res}); err != nil {
		return err
	}
	slog.Info("report written", "file", outputFile, "case", c.Name)
	return nil
}

func runDiagram(cmd *cobra.Command, args []string) error {
	c, _, err := loadCase(cmd)
	if err != nil {
		return err
	}
	j, err := joint.Prepare(c)
	if err != nil {
		return err
	}
	d := joint.NewDiagram(j.State, c.Load.Preload, c.Load.Max)

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.DiagramToSVG(d, 800, 500)), 0644); err != nil {
			return err
		}
		slog.Info("diagram written", "file", svgFile)
		return nil
	}

	u := c.Units
	fmt.Printf("joint diagram: %s (preload %.5g %s, load %.5g %s)\n", c.Name, c.Load.Preload, u.ForceUnit(), c.Load.Max, u.ForceUnit())
	fmt.Print(viz.DiagramCanvas(d, 60, 15).String())
	fmt.Printf("bolt load %.5g %s, member load %.5g %s\n", d.Bolt[2].Y, u.ForceUnit(), d.Member[2].Y, u.ForceUnit())
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	if template {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()

		var cases []joint.Case
		for _, name := range config.ListPresets() {
			c, err := config.GetPreset(name).Case()
			if err != nil {
				return err
			}
			cases = append(cases, c)
		}
		if err := batch.WriteTemplate(file, cases...); err != nil {
			return err
		}
		slog.Info("template written", "file", path, "cases", len(cases))
		return nil
	}

	entries, err := batch.OpenCases(path)
	if err != nil {
		return err
	}
	outcomes, err := batch.Evaluate(cmd.Context(), entries, workers)
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(outcomes)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tCASE\tC\tYIELD\tSEPARATION\tFATIGUE\tGOVERNING\tRESULT")
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "%d\t%s\t-\t-\t-\t-\t-\t%s\n", o.Row, o.Name, o.Err)
			continue
		}
		ev := o.Evaluation
		result := "pass"
		if !ev.Passes() {
			result = "fail"
		}
		fmt.Fprintf(w, "%d\t%s\t%.4f\t%.3f\t%.3f\t%.3f\t%s\t%s\n",
			o.Row, o.Name, ev.C, ev.Yield, ev.Separation, ev.Fatigue, ev.Governing, result)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		slog.Warn("some rows could not be evaluated", "failed", failed, "total", len(outcomes))
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	c, cfg, err := loadCase(cmd)
	if err != nil {
		return err
	}
	j, err := joint.Prepare(c)
	if err != nil {
		return err
	}
	opts := sweepOptions(cfg)
	res, err := sweep.Run(cmd.Context(), c, opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(viz.NewExplorer(j, res, opts.MaxPreload), tea.WithContext(cmd.Context())).Run()
	return err
}
