package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/render"
)

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   messages.DiffUse,
		Short: messages.DiffShort,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := loadRegistry(opts, nil)
			if err != nil {
				return err
			}
			callArgs := classdef.ParseArgs(args[2:])
			left, err := registry.Instantiate(args[0], callArgs)
			if err != nil {
				return err
			}
			right, err := registry.Instantiate(args[1], callArgs)
			if err != nil {
				return err
			}
			diff, err := render.Diff(left.Class, left.Public, right.Class, right.Public, format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if diff == "" {
				_, _ = fmt.Fprintln(out, messages.DiffIdentical)
				return nil
			}
			_, _ = fmt.Fprint(out, diff)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", render.FormatTOML, messages.NewFlagFormat)
	return cmd
}
