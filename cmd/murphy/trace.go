package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/render"
)

func newTraceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.TraceUse,
		Short: messages.TraceShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var events []murphy.Event
			_, registry, err := loadRegistry(opts, func(e murphy.Event) {
				events = append(events, e)
			})
			if err != nil {
				return err
			}
			inst, err := registry.Instantiate(args[0], classdef.ParseArgs(args[1:]))
			if err != nil {
				return err
			}
			rendered, err := render.Format(inst.Public, render.FormatJSON)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.TraceHeaderFmt, inst.ID, inst.Class)
			for _, line := range formatTrace(events) {
				_, _ = fmt.Fprintln(out, line)
			}
			_, _ = fmt.Fprintf(out, messages.TraceResultFmt, strings.TrimSpace(rendered))
			return reportFailures(cmd, inst)
		},
	}
}

// formatTrace indents each event by its distance from the called constructor,
// so delegation to ancestors reads as nesting.
func formatTrace(events []murphy.Event) []string {
	leaf := 0
	for _, e := range events {
		if e.Mode == murphy.ModeDirect && e.Depth > leaf {
			leaf = e.Depth
		}
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		indent := leaf - e.Depth
		if indent < 0 {
			indent = 0
		}
		lines = append(lines, strings.Repeat("  ", indent)+e.String())
	}
	return lines
}
