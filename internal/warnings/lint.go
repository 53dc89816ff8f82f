package warnings

import (
	"fmt"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// Lint inspects validated definitions for steps that cannot behave as written
// and for parameters or samples that do not line up along a chain.
func Lint(file *config.File) []Warning {
	var out []Warning
	for i := range file.Classes {
		class := &file.Classes[i]
		chain := file.Ancestry(class.Name)
		if len(chain) > 1 {
			out = append(out, checkParams(class, chain[len(chain)-2])...)
		}
		out = append(out, checkSample(class)...)
		out = append(out, checkReads(chain)...)
	}
	return out
}

func checkParams(class *config.Class, parent *config.Class) []Warning {
	var out []Warning
	for i := 0; i < len(class.Params) && i < len(parent.Params); i++ {
		if class.Params[i] == parent.Params[i] {
			continue
		}
		out = append(out, Warning{
			Code:    CodeParamNameMismatch,
			Subject: fmt.Sprintf("%s.params[%d]", class.Name, i),
			Message: fmt.Sprintf(messages.LintParamMismatchFmt, i, class.Params[i], parent.Params[i], parent.Name),
			Fix:     messages.LintParamMismatchFix,
		})
	}
	return out
}

func checkSample(class *config.Class) []Warning {
	switch {
	case len(class.Params) > 0 && len(class.Sample) == 0:
		return []Warning{{
			Code:    CodeSampleMissing,
			Subject: class.Name + ".sample",
			Message: fmt.Sprintf(messages.LintSampleMissingFmt, class.Name, len(class.Params)),
			Fix:     messages.LintSampleMissingFix,
		}}
	case len(class.Sample) > 0 && len(class.Sample) != len(class.Params):
		return []Warning{{
			Code:    CodeSampleArity,
			Subject: class.Name + ".sample",
			Message: fmt.Sprintf(messages.LintSampleArityFmt, class.Name, len(class.Sample), len(class.Params)),
			Fix:     messages.LintSampleArityFix,
		}}
	default:
		return nil
	}
}

// fieldSet tracks which fields of each tier are present at a point in a
// chain's execution.
type fieldSet map[murphy.Tier]map[string]bool

func (s fieldSet) add(tier murphy.Tier, field string) {
	if s[tier] == nil {
		s[tier] = make(map[string]bool)
	}
	s[tier][field] = true
}

func (s fieldSet) remove(tier murphy.Tier, field string) {
	delete(s[tier], field)
}

func (s fieldSet) has(tier murphy.Tier, field string) bool {
	return s[tier][field]
}

// checkReads replays the chain root first and reports reads in the last
// class that no earlier step could have satisfied.
func checkReads(chain []*config.Class) []Warning {
	if len(chain) == 0 {
		return nil
	}
	present := fieldSet{}
	ancestorPrivate := make(map[string]string)
	var out []Warning

	for level, class := range chain {
		present[murphy.TierPrivate] = nil
		last := level == len(chain)-1
		for i, step := range class.Steps {
			tier := murphy.Tier(step.Tier)
			readTier, reads := readOf(step)
			if last && reads && !present.has(readTier, step.Field) {
				out = append(out, unsatisfiedRead(class, i, readTier, step.Field, ancestorPrivate))
			}
			switch step.Op {
			case config.OpSet:
				present.add(tier, step.Field)
			case config.OpCopy:
				if present.has(murphy.Tier(step.From), step.Field) {
					present.add(tier, step.Field)
				}
			case config.OpDelete:
				present.remove(tier, step.Field)
			}
			if tier == murphy.TierPrivate && (step.Op == config.OpSet || step.Op == config.OpCopy) && !last {
				ancestorPrivate[step.Field] = class.Name
			}
		}
	}
	return out
}

// readOf reports the tier a step reads from, if it reads one that must be
// populated.
func readOf(step config.Step) (murphy.Tier, bool) {
	switch step.Op {
	case config.OpExpect:
		return murphy.Tier(step.Tier), true
	case config.OpCopy:
		return murphy.Tier(step.From), true
	default:
		return "", false
	}
}

func unsatisfiedRead(class *config.Class, index int, tier murphy.Tier, field string, ancestorPrivate map[string]string) Warning {
	subject := fmt.Sprintf("%s.step[%d]", class.Name, index)
	if tier == murphy.TierPrivate {
		if owner, ok := ancestorPrivate[field]; ok {
			return Warning{
				Code:     CodePrivateReadByDescendant,
				Subject:  subject,
				Message:  fmt.Sprintf(messages.LintPrivateReadFmt, class.Name, field, owner),
				Fix:      messages.LintPrivateReadFix,
				Severity: SeverityCritical,
			}
		}
	}
	return Warning{
		Code:    CodeFieldNeverSet,
		Subject: subject,
		Message: fmt.Sprintf(messages.LintFieldNeverSetFmt, class.Name, tier, field),
		Fix:     messages.LintFieldNeverSetFix,
	}
}
