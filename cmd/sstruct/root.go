package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries what the subcommands share. Each root command owns its own
// viper instance so tests can build commands side by side.
type app struct {
	v   *viper.Viper
	fs  afero.Fs
	log *zap.Logger
}

var errNoAction = errors.New("no action provided in the command line")

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{v: viper.New(), fs: fs, log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sstruct <action> [filename]",
		Short: "Simple Struct parser",
		Long: `Parses a Simple Struct[ured] input and writes the result to the output stream.

The optional [filename] argument tells which file to parse. If no file is
given, input is read from the input stream.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoAction
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-trim-value", false, "Keep leading and trailing blank lines of values")
	rootCmd.PersistentFlags().Bool("no-trim-meta", false, "Keep leading and trailing blank lines of metadata")

	_ = a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("no_trim_value", rootCmd.PersistentFlags().Lookup("no-trim-value"))
	_ = a.v.BindPFlag("no_trim_meta", rootCmd.PersistentFlags().Lookup("no-trim-meta"))

	a.v.SetEnvPrefix("SSTRUCT")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		a.newParseCmd("data", "Parse input and write the field values to the output stream", false),
		a.newParseCmd("meta", "Parse input and write the field metadata to the output stream", true),
	)
	return rootCmd
}

func (a *app) initLogger(w io.Writer) error {
	level, err := zapcore.ParseLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	a.log = zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
	return nil
}
