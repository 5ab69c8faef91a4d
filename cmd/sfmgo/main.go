// Command sfmgo drives VisualSFM over its socket interface.
//
// Usage:
//
//	sfmgo run --dir <images> [--vsfm <binary> | --host <h> --port <p>]
//	sfmgo info <file.sift[.zst]>
//	sfmgo commands
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hupe1980/sfmgo"
	"github.com/hupe1980/sfmgo/command"
	"github.com/hupe1980/sfmgo/sift"
	"github.com/hupe1980/sfmgo/vsfm"
	flag "github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sfmgo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage()
	}

	switch args[0] {
	case "run":
		return runReconstruct(ctx, args[1:])
	case "info":
		return runInfo(args[1:])
	case "commands":
		return runCommands()
	case "help", "-h", "--help":
		return usage()
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func usage() error {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
usage:
  sfmgo run --dir <images> [--vsfm <binary> | --host <h> --port <p>]
  sfmgo info <file.sift[.zst]>
  sfmgo commands
`))
	return nil
}

func runReconstruct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	dir := fs.String("dir", "", "image directory (required)")
	binary := fs.String("vsfm", "", "VisualSFM binary to launch")
	host := fs.String("host", "", "host of a running listener")
	port := fs.Int("port", 0, "port of a running listener")
	timeout := fs.Duration("timeout", 0, "per-step completion timeout")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	jsonLog := fs.Bool("json", false, "JSON log output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *binary != "" {
		cfg.Binary = *binary
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *timeout != 0 {
		cfg.StepTimeout = duration(*timeout)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *jsonLog {
		cfg.JSONLog = true
	}

	if *dir == "" {
		return fmt.Errorf("--dir is required")
	}

	logger := newLogger(cfg)

	listenPort := cfg.Port
	if cfg.Binary != "" {
		if listenPort == 0 {
			listenPort, err = vsfm.FreePort()
			if err != nil {
				return err
			}
		}
		proc, err := vsfm.Launch(ctx, cfg.Binary, listenPort, logger)
		if err != nil {
			return err
		}
		defer func() { _ = proc.Kill() }()
	} else if listenPort == 0 {
		return fmt.Errorf("either --vsfm or --port is required")
	}

	client, err := sfmgo.Dial(ctx, cfg.Host, listenPort, sfmgo.WithLogger(logger))
	if err != nil {
		return err
	}
	defer client.Close()

	return vsfm.Reconstruct(ctx, client, *dir, &vsfm.ReconstructOptions{
		StepTimeout: time.Duration(cfg.StepTimeout),
		Exit:        cfg.Binary != "",
	})
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info takes exactly one feature file")
	}
	path := args[0]

	fs, err := sift.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d features\n", path, fs.Len())
	for i, kp := range fs.Keypoints {
		if i == 10 {
			fmt.Printf("  ... %d more\n", fs.Len()-i)
			break
		}
		fmt.Printf("  #%d x=%.2f y=%.2f scale=%.2f orientation=%.1f\n",
			i, kp.X, kp.Y, kp.Scale, kp.Orientation)
	}
	return nil
}

func runCommands() error {
	for _, entry := range command.Default.Paths() {
		fmt.Printf("%-45s %d\n", strings.Join(entry.Path, "/"), entry.Code)
	}
	return nil
}

func newLogger(cfg *Config) *sfmgo.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if cfg.JSONLog {
		return sfmgo.NewJSONLogger(level)
	}
	return sfmgo.NewTextLogger(level)
}
