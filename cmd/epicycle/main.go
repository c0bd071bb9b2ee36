// Command epicycle decomposes closed paths into rotating circles.
//
// Usage:
//
//	epicycle analyze [-config file] [-samples n] PATH
//	epicycle schedule [-config file] [-max-groups n] PATH
//	epicycle reconstruct [-config file] [-count n] [-start n] [-segments n] [-smooth] < terms.json
//	epicycle polygon [-sides n] [-skip n] [-randomness r] [-seed n]
//	epicycle serve [-config file]
//
// PATH uses the absolute SVG path commands M, L, H, V, Q and C. Results are
// written to standard output as JSON, or in path syntax for reconstruct and
// polygon.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"honnef.co/go/epicycle"
	"honnef.co/go/epicycle/fourier"
	"honnef.co/go/epicycle/internal/config"
	"honnef.co/go/epicycle/internal/server"
)

var errUsage = errors.New("usage: epicycle analyze|schedule|reconstruct|polygon|serve [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "epicycle:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML configuration file")

	switch cmd {
	case "analyze":
		samples := fs.Int("samples", 0, "number of samples, a power of two")
		if err := fs.Parse(args); err != nil {
			return err
		}
		cfg, log, err := setup(*configPath, stderr)
		if err != nil {
			return err
		}
		path, err := pathArg(fs)
		if err != nil {
			return err
		}
		opts := cfg.FourierOptions()
		if *samples != 0 {
			opts.SampleCount = *samples
		}
		terms, err := fourier.AnalyzePath(path, cfg.Measurer(), opts)
		if err != nil {
			return err
		}
		log.Info("analyzed path", "terms", len(terms))
		return writeJSON(stdout, terms)

	case "schedule":
		maxGroups := fs.Int("max-groups", 0, "maximum number of groups")
		if err := fs.Parse(args); err != nil {
			return err
		}
		cfg, _, err := setup(*configPath, stderr)
		if err != nil {
			return err
		}
		path, err := pathArg(fs)
		if err != nil {
			return err
		}
		terms, err := fourier.AnalyzePath(path, cfg.Measurer(), cfg.FourierOptions())
		if err != nil {
			return err
		}
		opts := cfg.ScheduleOptions(terms)
		if *maxGroups != 0 {
			opts.MaxGroupsToDisplay = *maxGroups
		}
		script, err := fourier.GroupTerms(opts)
		if err != nil {
			return err
		}
		return writeJSON(stdout, server.ScriptJSON(script))

	case "reconstruct":
		count := fs.Int("count", 0, "number of terms to sum, 0 for all")
		start := fs.Int("start", 0, "index of the first term")
		segments := fs.Int("segments", 0, "number of segments, 0 for the configured default")
		smooth := fs.Bool("smooth", false, "connect samples with quadratic curves")
		if err := fs.Parse(args); err != nil {
			return err
		}
		cfg, _, err := setup(*configPath, stderr)
		if err != nil {
			return err
		}
		var terms []fourier.Term
		if err := json.NewDecoder(stdin).Decode(&terms); err != nil {
			return fmt.Errorf("reading terms: %w", err)
		}
		if len(terms) == 0 {
			return fourier.ErrNoTerms
		}
		n := *count
		if n == 0 {
			n = len(terms)
		}
		segs := *segments
		if segs == 0 {
			segs = cfg.Segments
		}
		var p epicycle.Path
		if *smooth {
			p, err = epicycle.SampleParametricSmooth(fourier.Reconstruct(terms, n, *start), segs)
		} else {
			p, err = fourier.ReconstructPath(terms, n, *start, segs)
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, p)
		return err

	case "polygon":
		sides := fs.Int("sides", 5, "number of sides")
		skip := fs.Int("skip", 0, "vertices to skip between connected ones")
		randomness := fs.Float64("randomness", 0, "radial jitter as a fraction of the radius")
		seed := fs.Uint64("seed", 1, "random seed")
		if err := fs.Parse(args); err != nil {
			return err
		}
		p, err := epicycle.MakePolygon(*sides, *skip, *randomness, rand.New(rand.NewPCG(*seed, *seed)))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, p)
		return err

	case "serve":
		if err := fs.Parse(args); err != nil {
			return err
		}
		cfg, log, err := setup(*configPath, stderr)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		srv := server.New(cfg, log)
		go func() {
			<-ctx.Done()
			if err := srv.Shutdown(); err != nil {
				log.Error("shutdown", "err", err)
			}
		}()
		return srv.Listen()

	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

// setup loads the configuration and installs the logger.
func setup(configPath string, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	epicycle.SetLogger(log)
	return cfg, log, nil
}

func pathArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one path argument", fs.Name())
	}
	return fs.Arg(0), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
