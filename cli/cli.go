package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/unitcalc/cli/cmd"
	"github.com/ardnew/unitcalc/config"
	"github.com/ardnew/unitcalc/pkg"
	"github.com/ardnew/unitcalc/profile"
)

// CLI is the top-level command-line interface for unitcalc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config  string           `default:"${configFile}" help:"Configuration file" short:"c" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Init  cmd.Init  `cmd:"" help:"Initialize configuration file"`
	Units cmd.Units `cmd:"" help:"List known units"`
	Eval  cmd.Eval  `cmd:"" help:"Evaluate expressions"`

	Repl cmd.Repl `cmd:"" default:"1" help:"Read, evaluate and print expressions interactively"`
}

// Run executes the unitcalc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	// The configuration loaders are registered before parsing, so an
	// explicit --config must be found ahead of kong.
	configFilePath := scanConfig(args, configPath(baseConfig))

	vars := kong.Vars{
		cmd.ConfigIdentifier:  configFilePath,
		cmd.CacheIdentifier:   cacheDir(),
		cmd.HistoryIdentifier: cachePath(baseHistory),
		"version":             pkg.Name + " " + pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if profile.Enabled {
		groups = append(groups, cli.Pprof.group())
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	file, err := config.LoadFile(cli.Config)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithConfig(ctx, file)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// scanConfig returns the value of the last --config (or -c) flag in args,
// or fallback if there is none.
func scanConfig(args []string, fallback string) string {
	path := fallback

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		for _, flag := range []string{"--config", "-c"} {
			if value, ok := strings.CutPrefix(arg, flag+"="); ok {
				path = value
			} else if arg == flag && i+1 < len(args) {
				path = args[i+1]
				i++
			}
		}
	}

	return path
}
