package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"

	"rotatemac/internal/applier"
	"rotatemac/internal/cli"
	"rotatemac/internal/command"
	"rotatemac/internal/config"
	"rotatemac/internal/elevation"
	"rotatemac/internal/listing"
	"rotatemac/internal/logging"
	"rotatemac/internal/macaddr"
	"rotatemac/internal/netdev"
	"rotatemac/internal/rotation"
	"rotatemac/internal/shutdown"
)

// Set with -ldflags "-X main.sha1ver=... -X main.buildTime=..."
var (
	sha1ver   = "dev"
	buildTime = "unknown"
)

// system holds the host facilities the program touches.
type system struct {
	runner     applier.Runner
	isElevated func() bool
	lookup     func(name string) (netdev.Device, error)
}

func hostSystem() system {
	return system{
		runner:     applier.NewExecRunner(),
		isElevated: elevation.IsElevated,
		lookup:     netdev.Lookup,
	}
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, hostSystem()))
}

// run executes the program and returns its exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, sys system) int {
	parser := cli.NewParser(fmt.Sprintf("%s (build %s, %s)", cli.Name, sha1ver, buildTime), stdout, os.Exit)

	opts, err := parser.Parse(args)
	if err != nil {
		return invalidArguments(parser, stderr, err)
	}

	cfg, err := config.New(opts.ConfigFile)
	if err != nil {
		return invalidArguments(parser, stderr, err)
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return invalidArguments(parser, stderr, err)
	}

	logger, err := logging.NewWithWriters(cfg.LogLevel, stdout, stderr)
	if err != nil {
		return invalidArguments(parser, stderr, err)
	}
	defer func() { _ = logger.Sync() }()

	if opts.ListVendors {
		cli.Banner(stdout)
		listing.Vendors(stdout)
		return 0
	}
	if opts.ListInterfaces {
		devices, err := netdev.List()
		if err != nil {
			logger.Error("Failed to list network interfaces", zap.Error(err))
			return 1
		}
		cli.Banner(stdout)
		listing.Interfaces(stdout, devices)
		return 0
	}

	runMode := applier.ActualRun
	if cfg.DryRun {
		runMode = applier.DryRun
	}

	if runMode == applier.ActualRun && !sys.isElevated() {
		logger.Error(fmt.Sprintf("%s must be run with root privileges; use --dry-run to try it without them", cli.Name))
		return 1
	}

	// A missing device may still appear later; failed rotations count against the tolerance.
	if _, err := sys.lookup(cfg.DeviceName); err != nil {
		logger.Warn("Device not found; rotating anyway",
			zap.String("device", cfg.DeviceName), zap.Error(err))
	}

	appCtx, appCtxCancel := context.WithCancel(ctx)
	defer appCtxCancel()

	shutdown.NewHandler(
		appCtx,
		appCtxCancel,
		shutdown.NewDefaultProvider(),
		shutdown.NewSignalNotifier(),
		logger,
	).Handle()

	loop := rotation.New(
		rotation.Config{
			DeviceName:   cfg.DeviceName,
			CycleSeconds: cfg.CycleSeconds,
			Policy: rotation.Policy{
				MaxFailures:    cfg.MaxFailures,
				ResetOnSuccess: cfg.ResetOnSuccess,
			},
		},
		macaddr.NewGenerator(nil),
		command.ForOS(runtime.GOOS),
		applier.New(runMode, sys.runner, logger),
		logger,
	)

	logger.Info("Starting MAC rotation",
		zap.String("device", cfg.DeviceName),
		zap.Int("cycle_secs", cfg.CycleSeconds),
		zap.Stringer("mode", runMode),
		zap.Int("max_failures", cfg.MaxFailures),
	)

	if err := loop.Run(appCtx); err != nil {
		logger.Error("An error occurred while rotating the MAC address", zap.Error(err))
		return 1
	}
	return 0
}

func invalidArguments(parser *cli.Parser, stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
	parser.Usage(stderr)
	return 1
}
