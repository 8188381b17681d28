package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rbconf/cli/cmd"
	"github.com/ardnew/rbconf/conf"
	"github.com/ardnew/rbconf/pkg"
)

// CLI is the top-level command-line interface for rbconf.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Table cmd.Table `embed:""`

	Get     cmd.Get     `cmd:"" help:"Print configuration values"`
	List    cmd.List    `cmd:"" default:"1"        help:"Print all configuration entries"`
	Expand  cmd.Expand  `cmd:"" help:"Expand references in text"`
	Dump    cmd.Dump    `cmd:"" help:"Write the configuration as YAML, JSON, or Makefile"`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate an expression over the configuration"`
	Exe     cmd.Exe     `cmd:"" help:"Print the runtime executable path"`
	GemHome cmd.GemHome `cmd:"" help:"Print the gem installation directory"`
	Env     cmd.Env     `cmd:"" help:"Print the library search path assignment"`
	Browse  cmd.Browse  `cmd:"" help:"Browse the configuration interactively"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print version information"`
}

// Run executes the rbconf CLI with the given context and arguments, writing
// command output to os.Stdout.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, os.Stdout, exit, args...)
}

func run(
	ctx context.Context,
	stdout io.Writer,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier:     configFilePath,
		cmd.CacheIdentifier:      cacheDir(),
		cmd.FormatEnumIdentifier: strings.Join(conf.FormatNames(), ","),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position.
	cli.Log.scan(args)

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolve(baseConfig), configFilePath),
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

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOutput(ctx, stdout)
	ctx = cmd.WithTable(ctx, cli.Table)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
