package cli

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
	"gopkg.in/alecthomas/kingpin.v2"

	"rotatemac/internal/config"
)

const (
	Name  = "rotatemac"
	about = "Rotate MAC addresses on a specified interval, with a bit of variation added. " +
		"Requires superuser privileges. Supports Linux and other Unix-like systems."
)

// Options is the result of parsing the command line. Settings are only applied to a
// config when their flag was given.
type Options struct {
	ConfigFile     string
	ListVendors    bool
	ListInterfaces bool

	deviceName     stringSlot
	cycleSeconds   intSlot
	dryRun         boolSlot
	maxFailures    intSlot
	resetOnSuccess boolSlot
	logLevel       stringSlot
}

// Apply overlays the flags that were given on cfg.
func (o *Options) Apply(cfg *config.Config) {
	if o.deviceName.set {
		cfg.DeviceName = o.deviceName.value
	}
	if o.cycleSeconds.set {
		cfg.CycleSeconds = o.cycleSeconds.value
	}
	if o.dryRun.set {
		cfg.DryRun = o.dryRun.value
	}
	if o.maxFailures.set {
		cfg.MaxFailures = o.maxFailures.value
	}
	if o.resetOnSuccess.set {
		cfg.ResetOnSuccess = o.resetOnSuccess.value
	}
	if o.logLevel.set {
		cfg.LogLevel = o.logLevel.value
	}
}

// Parser wraps the kingpin application. A Parser is good for a single Parse call.
type Parser struct {
	app  *kingpin.Application
	opts *Options
}

// NewParser builds the command line. Help and version output go to out; terminate is
// called after either has been printed.
func NewParser(version string, out io.Writer, terminate func(int)) *Parser {
	opts := &Options{
		deviceName:     stringSlot{slot: slot{name: "device-name"}},
		cycleSeconds:   intSlot{slot: slot{name: "cycle-secs"}},
		dryRun:         boolSlot{slot: slot{name: "dry-run"}},
		maxFailures:    intSlot{slot: slot{name: "max-failures"}},
		resetOnSuccess: boolSlot{slot: slot{name: "reset-on-success"}},
		logLevel:       stringSlot{slot: slot{name: "log-level"}},
	}

	app := kingpin.New(Name, about).
		UsageWriter(out).
		Terminate(terminate)
	app.Version(version)
	app.HelpFlag.PreAction(func(*kingpin.ParseContext) error {
		Banner(out)
		return nil
	})

	app.Flag("device-name", "The network device whose MAC address to rotate, e.g. eth0. Default: eth0").
		PlaceHolder("NAME").SetValue(&opts.deviceName)
	app.Flag("cycle-secs", "The average seconds between each cycle, with variation added. Default: 1800").
		PlaceHolder("SECONDS").SetValue(&opts.cycleSeconds)
	app.Flag("dry-run", "Only print the MAC address-setting commands.").
		SetValue(&opts.dryRun)
	app.Flag("max-failures", "Failures tolerated before giving up; one more than this is allowed. Default: 3").
		PlaceHolder("N").SetValue(&opts.maxFailures)
	app.Flag("reset-on-success", "Forget earlier failures after a successful rotation.").
		SetValue(&opts.resetOnSuccess)
	app.Flag("log-level", "Logging level: debug, info, warn or error. Default: info").
		PlaceHolder("LEVEL").SetValue(&opts.logLevel)
	app.Flag("config", "INI file to read settings from. Default: "+config.DefaultFile+" if present").
		PlaceHolder("FILE").StringVar(&opts.ConfigFile)
	app.Flag("list-vendors", "List the vendors whose prefixes are used and exit.").
		BoolVar(&opts.ListVendors)
	app.Flag("list-interfaces", "List network interfaces and exit.").
		BoolVar(&opts.ListInterfaces)

	return &Parser{app: app, opts: opts}
}

// Parse parses args, which exclude the program name.
func (p *Parser) Parse(args []string) (*Options, error) {
	if err := p.rejectRepeats(args); err != nil {
		return nil, err
	}
	if _, err := p.app.Parse(args); err != nil {
		return nil, err
	}
	return p.opts, nil
}

// rejectRepeats reports the first flag given more than once, before any value is set.
func (p *Parser) rejectRepeats(args []string) error {
	ctx, err := p.app.ParseContext(args)
	if err != nil {
		return err
	}
	seen := map[string]bool{}
	for _, element := range ctx.Elements {
		flag, ok := element.Clause.(*kingpin.FlagClause)
		if !ok {
			continue
		}
		name := flag.Model().Name
		if seen[name] {
			return fmt.Errorf("duplicated %s argument", name)
		}
		seen[name] = true
	}
	return nil
}

// Usage writes the usage text to w.
func (p *Parser) Usage(w io.Writer) {
	p.app.UsageWriter(w)
	p.app.Usage(nil)
}

// Banner writes the program's ASCII art name.
func Banner(w io.Writer) {
	fmt.Fprintln(w, figure.NewFigure(Name, "slant", true).String())
}
