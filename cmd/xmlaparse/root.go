package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "XMLAPARSE"

var longRootCmdDescription = `xmlaparse decodes XML for Analysis Execute requests into their typed
command and schema records and prints them as JSON or YAML.

Every flag can also be set through an XMLAPARSE_ prefixed environment
variable, for example XMLAPARSE_OUTPUT=yaml.
`

type app struct {
	v      *viper.Viper
	logger *logrus.Logger
	stdout io.Writer
	stderr io.Writer

	cfgFile        string
	cpuProfile     string
	memProfile     string
	stopCPUProfile func() error
}

func newApp(stdout, stderr io.Writer) *app {
	logger := logrus.New()
	logger.SetOutput(stderr)
	return &app{
		v:      viper.New(),
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "xmlaparse",
		Short:             "Decode XMLA Execute requests.",
		Long:              longRootCmdDescription,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file holding flag values (json, yaml, or toml)")
	flags.BoolP("debug", "d", false, "turn on debug logging")
	flags.StringP("output", "o", formatJSON, fmt.Sprintf("output format, one of %v", supportedFormats))
	flags.IntP("concurrency", "j", runtime.NumCPU(), "maximum number of documents decoded at once")
	flags.Int("max-depth", 0, "deepest element nesting accepted (0 uses the library default)")
	flags.StringVar(&a.cpuProfile, "cpuprofile", "", "write CPU profile to file")
	flags.StringVar(&a.memProfile, "memprofile", "", "write memory profile to file")

	root.AddCommand(a.decodeCommand())
	return root
}

// initConfig layers flags over environment variables over the config file.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	a.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.logger.SetLevel(logrus.InfoLevel)
	if a.v.GetBool("debug") {
		a.logger.SetLevel(logrus.DebugLevel)
	}

	if a.cpuProfile != "" {
		stop, err := startCPUProfile(a.cpuProfile)
		if err != nil {
			return err
		}
		a.stopCPUProfile = stop
	}
	return nil
}

// close flushes the profiles started by initConfig.
func (a *app) close() {
	if a.stopCPUProfile != nil {
		if err := a.stopCPUProfile(); err != nil {
			a.logger.WithError(err).Error("stopping CPU profile")
		}
		a.stopCPUProfile = nil
	}
	if a.memProfile != "" {
		if err := writeMemProfile(a.memProfile); err != nil {
			a.logger.WithError(err).Error("writing memory profile")
		}
	}
}
