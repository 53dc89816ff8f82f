package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/terminal"
)

var isTerminalWriter = terminal.IsTerminalWriter

// rootOptions carries persistent flag values and the logger built from them.
type rootOptions struct {
	file    string
	debug   bool
	noColor bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = opts.noColor || !isTerminalWriter(cmd.OutOrStdout())
			if !opts.debug {
				return nil
			}
			opts.logger = newDebugLogger(cmd)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", messages.RootFlagFile)
	flags.BoolVar(&opts.debug, "debug", false, messages.RootFlagDebug)
	flags.BoolVar(&opts.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newNewCmd(opts),
		newCheckCmd(opts),
		newTraceCmd(opts),
		newDiffCmd(opts),
		newClassesCmd(opts),
	)
	return cmd
}

// newDebugLogger writes development-style logs to the command's stderr.
func newDebugLogger(cmd *cobra.Command) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(cmd.ErrOrStderr()),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// loadRegistry resolves, loads and compiles the definitions file.
func loadRegistry(opts *rootOptions, observer func(murphy.Event)) (*config.File, *classdef.Registry, error) {
	path, err := config.ResolvePath(opts.file)
	if err != nil {
		return nil, nil, err
	}
	opts.logger.Debug("loading definitions", zap.String("path", path))
	file, err := config.LoadDefinitions(path)
	if err != nil {
		return nil, nil, err
	}
	registry, err := classdef.Compile(file, classdef.Options{Logger: opts.logger, Observer: observer})
	if err != nil {
		return nil, nil, err
	}
	return file, registry, nil
}
