package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"gopkg.in/yaml.v3"

	"github.com/glasskit/glassdeco/internal/deco"
	"github.com/glasskit/glassdeco/internal/host"
	"github.com/glasskit/glassdeco/internal/logger"
	"github.com/glasskit/glassdeco/internal/theme"
	"github.com/glasskit/glassdeco/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "inspect":
		os.Exit(runInspect(os.Args[2:]))
	case "theme":
		os.Exit(runTheme(os.Args[2:]))
	case "shadow":
		os.Exit(runShadow(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glassdeco <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inspect             Compute decoration geometry for an X window")
	fmt.Fprintln(w, "  theme               Print the effective theme configuration")
	fmt.Fprintln(w, "  shadow              Print resolved shadow parameters")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'glassdeco <command> -h' for command options.")
}

func runInspect(args []string) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	themePath := fs.String("theme", "", "Theme file path (default: built-in defaults)")
	windowID := fs.String("window", "", "Window ID (default: the active window)")
	scale := fs.Float64("scale", 1.0, "Device pixel ratio")
	logLevel := fs.String("log-level", "warn", "Log level (trace..error)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glassdeco inspect [--theme PATH] [--window ID] [--scale F]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Snapshot one X window and print the decoration geometry the")
		fmt.Fprintln(os.Stderr, "engine computes for it, as YAML.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log, err := logger.New(logger.Options{Level: *logLevel, HumanReadable: true})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := loadTheme(*themePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	conn, err := x11.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer conn.Close()

	var target xproto.Window
	if *windowID == "" {
		target, err = conn.ActiveWindow()
	} else {
		target, err = parseWindowID(*windowID)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	state, err := conn.Snapshot(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	win := &snapshotWindow{state: state, scale: *scale}
	settings := defaultSettings{}
	loop := &drainLoop{}

	d := deco.New(win, settings, theme.StaticProvider{Cfg: cfg}, loop, host.SystemClock{}, log)
	d.Init()
	loop.Drain()
	defer d.Close()

	report := buildReport(state, d)
	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}

func runTheme(args []string) int {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Theme file path (default: built-in defaults)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glassdeco theme [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Load a theme file, apply defaults and fallbacks, and print")
		fmt.Fprintln(os.Stderr, "the effective configuration as YAML.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := loadTheme(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}

func runShadow(args []string) int {
	fs := flag.NewFlagSet("shadow", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	size := fs.String("size", string(theme.ShadowLarge), "Shadow tier (none, small, medium, large, very-large)")
	scale := fs.Float64("scale", 1.0, "Device pixel ratio")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glassdeco shadow [--size TIER] [--scale F]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the composite shadow parameters for one size tier.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved := theme.ShadowFor(theme.ShadowSize(*size), color.NRGBA{A: 255}, *scale)
	report := shadowReport{
		Size:    string(theme.ShadowSize(*size)),
		None:    resolved.Params.IsNone(),
		OffsetX: resolved.Params.Offset.X,
		OffsetY: resolved.Params.Offset.Y,
		Layer1:  layerReport{resolved.Params.Layer1.Offset.Y, resolved.Params.Layer1.Radius, resolved.Params.Layer1.Opacity},
		Layer2:  layerReport{resolved.Params.Layer2.Offset.Y, resolved.Params.Layer2.Radius, resolved.Params.Layer2.Opacity},
		Scale:   resolved.Scale,
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	os.Stdout.Write(out)
	return 0
}

func loadTheme(path string) (*theme.Config, error) {
	if path == "" {
		return theme.Normalize(theme.Default()), nil
	}
	return theme.Load(path)
}

func parseWindowID(s string) (xproto.Window, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), baseFor(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return xproto.Window(id), nil
}

func baseFor(s string) int {
	if strings.HasPrefix(s, "0x") {
		return 16
	}
	return 10
}
