package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/doctor"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := config.ResolvePath(opts.file)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, path)

			// 1. Load and validate
			allResults, file := doctor.CheckDefinitions(path)

			if file != nil {
				// 2. Compile
				registry, err := classdef.Compile(file, classdef.Options{Logger: opts.logger})
				if err != nil {
					allResults = append(allResults, doctor.Result{
						Status:    doctor.StatusFail,
						CheckName: messages.DoctorCheckNameCompile,
						Message:   fmt.Sprintf(messages.DoctorCompileFailedFmt, err),
					})
				} else {
					// 3. Run samples
					allResults = append(allResults, doctor.CheckSamples(registry, file)...)
				}

				// 4. Lint
				allResults = append(allResults, doctor.CheckWarnings(file)...)
			}

			for _, r := range allResults {
				printResult(out, r)
			}

			if doctor.HasFailure(allResults) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			if doctor.HasWarning(allResults) {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.DoctorWarningSummary))
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		if line == "" {
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
