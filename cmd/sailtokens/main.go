// sailtokens is a CLI utility for inspecting the sail design tokens.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/sail/internal/assets"
	"github.com/Faultbox/sail/internal/audio"
	"github.com/Faultbox/sail/internal/config"
	"github.com/Faultbox/sail/internal/daycycle"
	"github.com/Faultbox/sail/internal/layout"
	"github.com/Faultbox/sail/internal/logger"
	"github.com/Faultbox/sail/internal/motion"
	"github.com/Faultbox/sail/internal/theme"
	"github.com/Faultbox/sail/internal/typography"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Debug("config loaded", zap.String("path", config.FilePath()), zap.Any("cycle", cfg.Cycle))

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "palette":
		err = cmdPalette(args)
	case "resolve":
		err = cmdResolve(cfg, args)
	case "wave":
		err = cmdWave(cfg, args)
	case "boat":
		err = cmdBoat(cfg, args)
	case "sound":
		err = cmdSound(args)
	case "assets":
		cmdAssets()
	case "styles":
		cmdStyles()
	case "dump":
		err = cmdDump(cfg)
	case "watch":
		err = cmdWatch(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error(command+" failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sailtokens - sail design token utility

Usage:
  sailtokens [flags] <command> [args]

Commands:
  palette [scene]          Show the palette of one scene, or all four
  resolve <fraction>|now   Resolve the palette for a time of day
  wave <layer> <seconds>   Sample a wave layer at a time
  boat <seconds>           Show the boat bob and rotation at a time
  sound <name> [seconds]   Show a sound's gain envelope
  assets                   List icons, illustrations and sounds
  styles                   List text styles, spacing, radii and sizes
  dump                     Print every token as YAML
  watch                    Re-resolve the current time whenever the config changes

Flags:
  -config <path>  Config file (.yaml or .toml)
  -debug          Enable debug logging
  -dawn/-day/-dusk/-night <fraction>
                  Override a scene's start (0 is midnight)

Examples:
  sailtokens palette dusk
  sailtokens resolve 0.775
  sailtokens -dusk 0.7 resolve now
  sailtokens wave 0 2.5`)
}

func cmdPalette(args []string) error {
	scenes := theme.Scenes()
	if len(args) > 0 {
		s, err := theme.ParseScene(args[0])
		if err != nil {
			return err
		}
		scenes = []theme.Scene{s}
	}

	for i, s := range scenes {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(heading.Render(titled(s.String())))
		printPalette(theme.PaletteFor(s))
	}
	return nil
}

func cmdResolve(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	width := fs.Float64("width", 390, "View width in points, for the celestial position")
	height := fs.Float64("height", 844, "View height in points")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: sailtokens resolve [-width w] [-height h] <fraction>|now")
	}

	f, err := parseFraction(fs.Arg(0))
	if err != nil {
		return err
	}

	r, err := cfg.Resolver()
	if err != nil {
		return err
	}
	res, err := r.Resolve(f)
	if err != nil {
		return err
	}

	printResolution(res, f, *width, *height)
	return nil
}

func parseFraction(arg string) (float64, error) {
	if arg == "now" {
		return daycycle.FractionOf(time.Now()), nil
	}
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("bad fraction %q: %w", arg, err)
	}
	return f, nil
}

func printResolution(res daycycle.Resolution, f, width, height float64) {
	at := time.Duration(f * float64(24*time.Hour)).Truncate(time.Second)
	fmt.Printf("Time:      %.4f (%s after midnight)\n", f, at)
	fmt.Printf("Scene:     %s -> %s, t=%.4f\n", titled(res.From.String()), titled(res.To.String()), res.T)

	pos := motion.CelestialPosition(res.Celestial.Progress).Mul(float32(width), float32(height))
	fmt.Printf("Celestial: %s (%s) %.0f%% across, at (%.1f, %.1f)\n",
		res.Celestial.Body, assets.CelestialIcon(res.Celestial.Body),
		res.Celestial.Progress*100, pos.X, pos.Y)
	fmt.Println()
	printPalette(res.Palette)
}

func cmdWave(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("wave", flag.ExitOnError)
	width := fs.Float64("width", 390, "View width in points")
	height := fs.Float64("height", 844, "View height in points")
	samples := fs.Int("n", 9, "Number of path points")
	fs.Parse(args)

	if fs.NArg() < 2 {
		return errors.New("usage: sailtokens wave [-width w] [-height h] [-n points] <layer> <seconds>")
	}

	layer, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("bad layer %q: %w", fs.Arg(0), err)
	}
	t, err := strconv.ParseFloat(fs.Arg(1), 64)
	if err != nil {
		return fmt.Errorf("bad time %q: %w", fs.Arg(1), err)
	}

	tbl, err := cfg.Motion()
	if err != nil {
		return err
	}
	if layer < 0 || layer >= motion.LayerCount {
		return fmt.Errorf("%w: %d", motion.ErrUnknownLayer, layer)
	}
	w := tbl.Waves[layer]

	fmt.Printf("Layer %d: amplitude %.1f, frequency %.2f, period %s, opacity %.2f\n",
		layer, w.Amplitude, w.Frequency, w.Period(), w.Opacity)
	fmt.Printf("Offset at %.2fs: %+.3f\n\n", t, w.OffsetAt(t))
	for _, p := range w.Path(t, *width, *height, *samples) {
		fmt.Printf("  (%7.1f, %7.2f)\n", p.X, p.Y)
	}
	return nil
}

func cmdBoat(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: sailtokens boat <seconds>")
	}
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("bad time %q: %w", args[0], err)
	}

	tbl, err := cfg.Motion()
	if err != nil {
		return err
	}
	b := tbl.Boat

	fmt.Printf("Bob:      %+.3f pt (period %s, distance %.1f)\n", b.BobAt(t), b.BobPeriod(), b.BobDistance)
	fmt.Printf("Rotation: %+.3f° (period %s, max %.1f°)\n", b.RotationAt(t), b.RotationPeriod(), b.RotationDegree)
	fmt.Printf("Size:     %.0fx%.0f pt\n", layout.BoatWidth, layout.BoatHeight)
	return nil
}

func cmdSound(args []string) error {
	fs := flag.NewFlagSet("sound", flag.ExitOnError)
	step := fs.Duration("step", 250*time.Millisecond, "Sampling step")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return errors.New("usage: sailtokens sound [-step d] <name> [seconds]")
	}

	name, a, err := assets.LookupSound(fs.Arg(0))
	if err != nil {
		return err
	}

	// One-shot sounds need a length for the fade-out; loops play until stopped.
	length := 4 * time.Second
	if fs.NArg() > 1 {
		secs, err := strconv.ParseFloat(fs.Arg(1), 64)
		if err != nil {
			return fmt.Errorf("bad length %q: %w", fs.Arg(1), err)
		}
		length = time.Duration(secs * float64(time.Second))
	}
	if *step <= 0 {
		return errors.New("step must be positive")
	}

	fmt.Printf("%s (%s) loop=%v fade-in=%s fade-out=%s volume=%.2f\n\n",
		name, a.Filename(), a.Loop, a.FadeIn, a.FadeOut, a.DefaultVolume)
	for at := time.Duration(0); at <= length; at += *step {
		g := audio.Gain(a, at, length)
		fmt.Printf("  %6s  %.3f  %s\n", at, g, bar(g/a.DefaultVolume, 30))
	}
	return nil
}

func cmdAssets() {
	fmt.Println(heading.Render("Icons"))
	for _, i := range assets.Icons() {
		a, _ := i.Asset()
		fmt.Printf("  %-12s %-16s %v  %s\n", i, a.Resource, a.Sizes(), dim.Render(a.Description))
	}

	fmt.Println()
	fmt.Println(heading.Render("Illustrations"))
	for _, i := range assets.Illustrations() {
		a, _ := i.Asset()
		fmt.Printf("  %-12s %-20s %s\n", i, a.Resource, dim.Render(a.Description))
	}

	fmt.Println()
	fmt.Println(heading.Render("Sounds"))
	for _, s := range assets.Sounds() {
		a, _ := s.Asset()
		fmt.Printf("  %-12s %-16s loop=%-5v in=%-6s out=%-6s volume=%.2f\n",
			s, a.Filename(), a.Loop, a.FadeIn, a.FadeOut, a.DefaultVolume)
	}
}

func cmdStyles() {
	fmt.Println(heading.Render("Text styles"))
	for _, s := range typography.Styles() {
		st := s.Style
		fmt.Printf("  %-10s %-20s %-8s %4.0fpt  tracking %-4g line %.1fpt\n",
			titled(s.Name), st.Family, st.Weight, st.Size, st.LetterSpacing, st.LineSpacing())
	}

	tables := []struct {
		title  string
		tokens []layout.Token
	}{
		{"Spacing", layout.Spacing()},
		{"Radius", layout.Radii()},
		{"Sizes", layout.Sizes()},
	}
	for _, tbl := range tables {
		fmt.Println()
		fmt.Println(heading.Render(tbl.title))
		for _, tok := range tbl.tokens {
			fmt.Printf("  %-16s %g\n", titled(tok.Name), tok.Value)
		}
	}
}

func cmdDump(cfg *config.Config) error {
	tbl, err := cfg.Motion()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(collectTokens(cfg, tbl))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func cmdWatch(args []string) error {
	path := config.FilePath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no config file to watch; pass -config or a path")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("watching config", zap.String("path", path))
	return config.Watch(ctx, path, func(cfg *config.Config) {
		logger.SetLevel(cfg.Logging.Level)

		r, err := cfg.Resolver()
		if err != nil {
			logger.Warn("resolver rejected config", zap.Error(err))
			return
		}
		f := daycycle.FractionOf(time.Now())
		res, err := r.Resolve(f)
		if err != nil {
			logger.Warn("resolve failed", zap.Float64("fraction", f), zap.Error(err))
			return
		}
		fmt.Println()
		printResolution(res, f, 390, 844)
	})
}

// tokenDump is the YAML shape of `sailtokens dump`.
type tokenDump struct {
	Cycle      daycycle.Breakpoints         `yaml:"cycle"`
	Palettes   map[string]map[string]string `yaml:"palettes"`
	Primitives map[string][]string          `yaml:"primitives"`
	Typography map[string]typography.Style  `yaml:"typography"`
	Spacing    map[string]float64           `yaml:"spacing"`
	Radius     map[string]float64           `yaml:"radius"`
	Sizes      map[string]float64           `yaml:"sizes"`
	Motion     motion.Table                 `yaml:"motion"`
	Durations  map[string]time.Duration     `yaml:"durations"`
	Sounds     map[string]assets.SoundAsset `yaml:"sounds"`
}

func collectTokens(cfg *config.Config, tbl motion.Table) tokenDump {
	d := tokenDump{
		Cycle:      cfg.Cycle,
		Palettes:   make(map[string]map[string]string),
		Primitives: make(map[string][]string),
		Typography: make(map[string]typography.Style),
		Spacing:    make(map[string]float64),
		Radius:     make(map[string]float64),
		Sizes:      make(map[string]float64),
		Motion:     tbl,
		Durations:  make(map[string]time.Duration),
		Sounds:     make(map[string]assets.SoundAsset),
	}

	for _, s := range theme.Scenes() {
		p := theme.PaletteFor(s)
		slots := map[string]string{"celestial": p.Celestial.String()}
		for _, slot := range theme.Slots() {
			slots[slot.String()] = p.Color(slot).String()
		}
		d.Palettes[s.String()] = slots
	}
	for name, scale := range theme.Primitives() {
		for _, c := range scale.Shades() {
			d.Primitives[name] = append(d.Primitives[name], c.String())
		}
	}
	for _, s := range typography.Styles() {
		d.Typography[s.Name] = s.Style
	}
	for _, tok := range layout.Spacing() {
		d.Spacing[tok.Name] = tok.Value
	}
	for _, tok := range layout.Radii() {
		d.Radius[tok.Name] = tok.Value // pill encodes as .inf
	}
	for _, tok := range layout.Sizes() {
		d.Sizes[tok.Name] = tok.Value
	}
	for _, nd := range append(motion.Durations(), motion.Transitions()...) {
		d.Durations[nd.Name] = nd.Duration
	}
	for _, s := range assets.Sounds() {
		a, _ := s.Asset()
		d.Sounds[string(s)] = a
	}
	return d
}
