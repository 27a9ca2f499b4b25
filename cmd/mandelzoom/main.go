package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelzoom/internal/anim"
	"github.com/san-kum/mandelzoom/internal/automation"
	"github.com/san-kum/mandelzoom/internal/config"
	"github.com/san-kum/mandelzoom/internal/export"
	"github.com/san-kum/mandelzoom/internal/render"
	"github.com/san-kum/mandelzoom/internal/storage"
	"github.com/san-kum/mandelzoom/internal/terminal"
	"github.com/san-kum/mandelzoom/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	frames     int
	delay      time.Duration
)

var errNegativeFrames = errors.New("--frames must not be negative")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the cobra commands. Running with no subcommand starts
// the plain terminal animation, which only stops when interrupted.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mandelzoom",
		Short:        "zooming mandelbrot set in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPlain,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandelzoom", "recordings directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a preset viewport")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", 0, "stop after n frames (0 = forever)")
	rootCmd.PersistentFlags().DurationVar(&delay, "delay", 0, "pause between frames")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the animation in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset viewports",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot span and escape counts over one zoom cycle",
		Args:  cobra.NoArgs,
		RunE:  profileCycle,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "render frames to the recordings directory",
		Args:  cobra.NoArgs,
		RunE:  recordFrames,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	showCmd := &cobra.Command{
		Use:   "show [recording_id]",
		Short: "replay a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecording,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective config to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	tourCmd := &cobra.Command{
		Use:   "tour [file]",
		Short: "play a yaml tour of presets",
		Args:  cobra.ExactArgs(1),
		RunE:  runTour,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [recording_id]",
		Short: "write each recorded frame and the span profile as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	rootCmd.AddCommand(tuiCmd, presetsCmd, profileCmd, recordCmd, listCmd, showCmd, initCmd, tourCmd, exportSVGCmd)
	return rootCmd
}

// loadConfig layers defaults, the config file and command-line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d", errNegativeFrames, frames)
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("delay") {
		cfg.FrameDelay = delay
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLoop(cfg *config.Config) *anim.Loop {
	return anim.New(cfg.Controller(), cfg.Viewport)
}

func runPlain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := terminal.NewLiveRenderer(os.Stdout)
	out.Start()
	defer out.Stop()

	err = newLoop(cfg).Run(ctx, out, anim.Config{Frames: frames, Delay: cfg.FrameDelay})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(newLoop(cfg), anim.Config{Frames: frames, Delay: cfg.FrameDelay})
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tXMIN\tXMAX\tYMIN\tYMAX")
	for _, name := range config.ListPresets() {
		v, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, v.XMin, v.XMax, v.YMin, v.YMax)
	}
	return w.Flush()
}

func profileCycle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n := frames
	if n == 0 {
		n = 2 * cfg.MaxFrames
	}

	rec := storage.NewRecorder()
	loop := newLoop(cfg)
	loop.AddObserver(rec)
	for i := 0; i < n; i++ {
		loop.Step()
	}

	spans := make([]float64, len(rec.Stats))
	means := make([]float64, len(rec.Stats))
	for i, st := range rec.Stats {
		x, _ := st.Viewport.Span()
		spans[i] = math.Log10(x)
		means[i] = st.Mean
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "preset: %s\n", cfg.Preset)
	fmt.Fprintf(w, "frames: %d\n\n", n)

	fmt.Fprintln(w, asciigraph.Plot(spans,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("log10 x-span per frame"),
	))
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(means,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean escape count per frame"),
	))
	return nil
}

func recordFrames(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n := frames
	if n == 0 {
		n = 2 * cfg.MaxFrames
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rec := storage.NewRecorder()
	loop := newLoop(cfg)
	loop.AddObserver(rec)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "recording %d frames...\n", n)
	start := time.Now()
	for i := 0; i < n; i++ {
		loop.Step()
	}
	elapsed := time.Since(start)

	id, err := st.Save(storage.RecordingMetadata{
		Preset:     cfg.Preset,
		Start:      cfg.Viewport,
		ZoomFactor: cfg.ZoomFactor,
		MaxFrames:  cfg.MaxFrames,
	}, rec)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "completed in %v\n", elapsed)
	fmt.Fprintf(w, "recording id: %s\n", id)
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tFACTOR\tPER-DIR")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%d\n",
			r.ID,
			r.Preset,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Frames,
			r.ZoomFactor,
			r.MaxFrames,
		)
	}
	return w.Flush()
}

// showRecording replays saved frames through the same output path as the
// live animation.
func showRecording(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if _, err := st.Load(args[0]); err != nil {
		return err
	}
	saved, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		return fmt.Errorf("no frames in recording %s", args[0])
	}

	wait := cfg.FrameDelay
	if wait == 0 {
		wait = viz.DefaultDelay
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := terminal.NewLiveRenderer(cmd.OutOrStdout())
	out.Start()
	defer out.Stop()

	return replay(ctx, out, saved, wait)
}

// replay shows frames in order, pausing wait between them, until done or
// interrupted.
func replay(ctx context.Context, out anim.Output, saved []render.Frame, wait time.Duration) error {
	for _, f := range saved {
		if err := out.Clear(); err != nil {
			return err
		}
		if err := out.WriteLines(f); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runTour(cmd *cobra.Command, args []string) error {
	tour, err := automation.LoadTour(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := terminal.NewLiveRenderer(os.Stdout)
	out.Start()
	defer out.Stop()

	n, err := automation.RunTour(ctx, tour, out, delay)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("tour %s: %d frames\n", tour.Name, n)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	saved, err := st.LoadFrames(id)
	if err != nil {
		return err
	}
	stats, err := st.LoadStats(id)
	if err != nil {
		return err
	}

	outDir := filepath.Join(dataDir, id, "svg")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for i, f := range saved {
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.svg", i))
		if err := os.WriteFile(path, []byte(export.FrameToSVG(f, 8, 16)), 0644); err != nil {
			return err
		}
	}

	spans := make([]float64, len(stats))
	for i, s := range stats {
		x, _ := s.Viewport.Span()
		spans[i] = math.Log10(x)
	}
	if svg := export.SeriesToSVG(spans, 640, 240); svg != "" {
		if err := os.WriteFile(filepath.Join(outDir, "span.svg"), []byte(svg), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("wrote %d frames to %s\n", len(saved), outDir)
	return nil
}
