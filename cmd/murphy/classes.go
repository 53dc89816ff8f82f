package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

func newClassesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ClassesUse,
		Short: messages.ClassesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, registry, err := loadRegistry(opts, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			names := registry.Classes()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(out, messages.ClassesEmpty)
				return nil
			}
			for _, name := range names {
				lineage, err := registry.Lineage(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, messages.ClassesLineFmt, name, strings.Join(lineage, messages.ClassesLineageSep))
			}
			return nil
		},
	}
}
