package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mutagen-io/rpath/cmd"
	"github.com/mutagen-io/rpath/pkg/configuration"
	"github.com/mutagen-io/rpath/pkg/environment"
	"github.com/mutagen-io/rpath/pkg/logging"
	"github.com/mutagen-io/rpath/pkg/rpath"
	"github.com/mutagen-io/rpath/pkg/version"
)

var (
	// settings is the effective configuration, computed before any command
	// runs.
	settings = configuration.Default()
	// logger is the root logger, computed before any command runs.
	logger *logging.Logger
)

// rootSetup loads configuration, applies environment and flag overrides, and
// configures color and logging for the command being run.
func rootSetup(command *cobra.Command, _ []string) error {
	// Load the configuration file.
	loaded, err := configuration.Load(rpath.From(rootConfiguration.configurationPath))
	if err != nil {
		return err
	}

	// Apply environment overrides.
	environmentVariables, err := environment.Load(rpath.From(rootConfiguration.environmentFile))
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnvironment(environmentVariables); err != nil {
		return err
	}

	// Apply flag overrides.
	flags := command.Flags()
	if flags.Changed("color") {
		loaded.Color = rootConfiguration.color
	}
	if flags.Changed("log-level") {
		loaded.Logging.Level = rootConfiguration.logLevel.String()
	}
	settings = loaded

	// Configure output.
	color.NoColor = !settings.Color.Enabled(os.Stdout)
	logger = logging.NewLogger(settings.LogLevel(), command.ErrOrStderr()).Sublogger(command.Name())
	logger.Debugf("configuration loaded (color: %s, log level: %s)", settings.Color, settings.Logging.Level)

	// Success.
	return nil
}

// rootMain is the entry point for the root command.
func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail. We don't
	// have to worry about warning about arguments being present here (which
	// would be incorrect usage) because arguments can't even reach this point
	// (they will be mistaken for subcommands and a error will be displayed).
	return command.Help()
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:               "rpath",
	Version:           version.Version,
	Short:             "Inspect and transform filesystem paths",
	RunE:              rootMain,
	PersistentPreRunE: rootSetup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configurationPath overrides the configuration file location.
	configurationPath string
	// environmentFile is a dotenv file providing environment overrides.
	environmentFile string
	// color is the color mode flag value.
	color configuration.ColorMode
	// logLevel is the log level flag value.
	logLevel logging.Level
}

// registerPersistentFlags registers the flags shared by all commands.
func registerPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&rootConfiguration.configurationPath, "config", "", "Specify the configuration file (defaults to ~/"+configuration.FileName+")")
	flags.StringVar(&rootConfiguration.environmentFile, "env-file", "", "Load RPATH_* overrides from a dotenv file")
	rootConfiguration.color = configuration.ColorModeAuto
	flags.Var(&rootConfiguration.color, "color", "Colorize output (auto|always|never)")
	rootConfiguration.logLevel = logging.LevelWarn
	flags.Var(&rootConfiguration.logLevel, "log-level", "Set the log level (disabled|error|warn|info|debug)")
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("rpath version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register shared flags.
	registerPersistentFlags(rootCommand.PersistentFlags())

	// Hide Cobra's completion command.
	rootCommand.CompletionOptions.HiddenDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		basenameCommand,
		dirnameCommand,
		extensionCommand,
		joinCommand,
		withBasenameCommand,
		withDirnameCommand,
		expandCommand,
		normalizeCommand,
		pwdCommand,
		homeCommand,
		listCommand,
		infoCommand,
		globCommand,
		matchCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
