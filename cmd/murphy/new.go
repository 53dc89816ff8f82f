package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/render"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   messages.NewUse,
		Short: messages.NewShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := loadRegistry(opts, nil)
			if err != nil {
				return err
			}
			inst, err := registry.Instantiate(args[0], classdef.ParseArgs(args[1:]))
			if err != nil {
				return err
			}
			rendered, err := render.Format(inst.Public, format)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return reportFailures(cmd, inst)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", render.FormatTOML, messages.NewFlagFormat)
	return cmd
}

// reportFailures prints expectation failures to stderr and turns them into
// a command error.
func reportFailures(cmd *cobra.Command, inst *classdef.Instance) error {
	if len(inst.Failures) == 0 {
		return nil
	}
	warn := color.New(color.FgYellow)
	for _, f := range inst.Failures {
		_, _ = warn.Fprintf(cmd.ErrOrStderr(), messages.ExpectationFailureFmt, f)
	}
	return fmt.Errorf(messages.NewExpectFailedFmt, inst.Class, len(inst.Failures))
}
