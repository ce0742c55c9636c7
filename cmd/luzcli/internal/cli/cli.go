// Package cli wires luzcli's kong command tree, following
// cmd/radx/internal/cli.CLI's shape: a GlobalConfig embedded in a root
// CLI struct, one subcommand struct per operation, each implementing
// Run(*commands.GlobalConfig) error.
package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/hodefoting/luz/cmd/luzcli/internal/build"
	"github.com/hodefoting/luz/cmd/luzcli/internal/cli/commands"
)

const (
	appName        = "luzcli"
	appDescription = "Spectral coat color-mixing CLI for the luz engine"
)

// CLI represents the root command structure.
type CLI struct {
	commands.GlobalConfig

	Mix      commands.MixCmd      `cmd:"" help:"Evaluate coat levels forward to device RGB"`
	Separate commands.SeparateCmd `cmd:"" help:"Resolve a device RGB target to coat levels"`
	Info     commands.InfoCmd     `cmd:"" help:"Report the active engine's coat count and tuning"`
	Version  kong.VersionFlag     `help:"Print version and exit"`
}

// Run executes the luzcli command line with the provided build info.
func Run(version, commit, date string) error {
	build.SetBuildInfo(version, commit, date)

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	logger := setupLogger()

	logger.Debug("luzcli starting", "version", version, "commit", commit, "build_date", date)

	if err := ctx.Run(&cli.GlobalConfig); err != nil {
		logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

func setupLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	log.SetDefault(logger)
	return logger
}
