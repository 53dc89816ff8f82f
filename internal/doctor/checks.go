package doctor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacksonrayhamilton/murphy/internal/classdef"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
	"github.com/jacksonrayhamilton/murphy/internal/warnings"
)

var (
	loadDefinitionsFunc        = config.LoadDefinitions
	loadDefinitionsLenientFunc = config.LoadDefinitionsLenient
)

// CheckDefinitions loads and validates the definitions file at path.
// The file is returned only when it is valid, since compiling and linting
// assume validated names and ancestry.
func CheckDefinitions(path string) ([]Result, *config.File) {
	file, err := loadDefinitionsFunc(path)
	if err == nil {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameDefinitions,
			Message:   fmt.Sprintf(messages.DoctorDefinitionsLoadedFmt, path, len(file.Classes)),
		}}, file
	}

	recommendation := messages.DoctorDefinitionsLoadRecommend
	if errors.Is(err, config.ErrDefinitionValidation) {
		// Syntax is fine; point at the content instead.
		if _, lenientErr := loadDefinitionsLenientFunc(path); lenientErr == nil {
			recommendation = messages.DoctorDefinitionsInvalidRecommend
		}
	}
	return []Result{{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameDefinitions,
		Message:        fmt.Sprintf(messages.DoctorDefinitionsLoadFailedFmt, err),
		Recommendation: recommendation,
	}}, nil
}

// CheckSamples instantiates every class with its sample arguments and reports
// expectation failures.
func CheckSamples(registry *classdef.Registry, file *config.File) []Result {
	var results []Result
	for _, class := range file.Classes {
		inst, err := registry.Instantiate(class.Name, class.Sample)
		if err != nil {
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameSamples,
				Message:   fmt.Sprintf(messages.DoctorSampleErrorFmt, class.Name, err),
			})
			continue
		}
		if len(inst.Failures) > 0 {
			lines := make([]string, 0, len(inst.Failures))
			for _, f := range inst.Failures {
				lines = append(lines, f.String())
			}
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameSamples,
				Message:        fmt.Sprintf(messages.DoctorSampleFailedFmt, class.Name, len(inst.Failures)),
				Recommendation: strings.Join(lines, "\n"),
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSamples,
			Message:   fmt.Sprintf(messages.DoctorSamplePassedFmt, class.Name, strings.Join(inst.Public.Keys(), ", ")),
		})
	}
	return results
}

// CheckWarnings lints the definitions and reports each finding as a warning.
func CheckWarnings(file *config.File) []Result {
	list := warnings.Lint(file)
	if len(list) == 0 {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameLint,
			Message:   messages.DoctorLintClean,
		}}
	}
	results := make([]Result, 0, len(list))
	for _, w := range list {
		status := StatusWarn
		if w.Severity == warnings.SeverityCritical {
			status = StatusFail
		}
		results = append(results, Result{
			Status:         status,
			CheckName:      messages.DoctorCheckNameLint,
			Message:        fmt.Sprintf(messages.DoctorLintFindingFmt, w.Code, w.Subject, w.Message),
			Recommendation: w.Fix,
		})
	}
	return results
}
