package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

var validOps = map[string]struct{}{
	OpSet:          {},
	OpCopy:         {},
	OpDelete:       {},
	OpExpect:       {},
	OpExpectAbsent: {},
}

// NormalizeName canonicalizes class, parameter and field names so visually
// identical identifiers compare equal.
func NormalizeName(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}

// IsValidTier reports whether tier names a member compartment.
func IsValidTier(tier string) bool {
	for _, t := range murphy.Tiers {
		if string(t) == tier {
			return true
		}
	}
	return false
}

// Validate normalizes names and ensures the definitions are complete and
// consistent. path is used in error messages.
func (f *File) Validate(path string) error {
	f.normalizeNames()

	seen := make(map[string]int, len(f.Classes))
	for i, class := range f.Classes {
		if class.Name == "" {
			return fmt.Errorf(messages.ConfigClassNameRequiredFmt, path, i)
		}
		if first, ok := seen[class.Name]; ok {
			return fmt.Errorf(messages.ConfigClassNameDuplicateFmt, path, i, class.Name, first)
		}
		seen[class.Name] = i
	}

	for i := range f.Classes {
		class := &f.Classes[i]
		if class.Parent != "" {
			if _, ok := seen[class.Parent]; !ok {
				return fmt.Errorf(messages.ConfigClassParentUnknownFmt, path, class.Name, class.Parent)
			}
		}
		if err := f.checkCycle(path, class); err != nil {
			return err
		}
		params := make(map[string]struct{}, len(class.Params))
		for _, p := range class.Params {
			if _, dup := params[p]; dup {
				return fmt.Errorf(messages.ConfigParamDuplicateFmt, path, class.Name, p)
			}
			params[p] = struct{}{}
		}
		for j, v := range class.Sample {
			if isOutOfRange(v) {
				return fmt.Errorf(messages.ConfigSampleOutOfRangeFmt, path, class.Name, j, v)
			}
			if !IsScalar(v) {
				return fmt.Errorf(messages.ConfigSampleNotScalarFmt, path, class.Name, j)
			}
		}
		for j := range class.Steps {
			if err := validateStep(path, class, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStep(path string, class *Class, index int) error {
	step := class.Steps[index]
	if _, ok := validOps[step.Op]; !ok {
		return fmt.Errorf(messages.ConfigStepOpInvalidFmt, path, class.Name, index, step.Op)
	}
	if !IsValidTier(step.Tier) {
		return fmt.Errorf(messages.ConfigStepTierInvalidFmt, path, class.Name, index, step.Tier)
	}
	if step.Field == "" {
		return fmt.Errorf(messages.ConfigStepFieldRequiredFmt, path, class.Name, index)
	}

	hasValue := step.Value != nil
	hasArg := step.Arg != ""
	switch step.Op {
	case OpSet, OpExpect:
		if hasValue == hasArg {
			return fmt.Errorf(messages.ConfigStepValueOrArgFmt, path, class.Name, index)
		}
	case OpCopy:
		if step.From == "" {
			return fmt.Errorf(messages.ConfigStepFromRequiredFmt, path, class.Name, index)
		}
		if !IsValidTier(step.From) {
			return fmt.Errorf(messages.ConfigStepFromInvalidFmt, path, class.Name, index, step.From)
		}
		fallthrough
	default:
		if hasValue || hasArg {
			return fmt.Errorf(messages.ConfigStepUnexpectedValueFmt, path, class.Name, index, step.Op)
		}
	}
	if hasValue && isOutOfRange(step.Value) {
		return fmt.Errorf(messages.ConfigStepValueOutOfRangeFmt, path, class.Name, index, step.Value)
	}
	if hasValue && !IsScalar(step.Value) {
		return fmt.Errorf(messages.ConfigStepValueNotScalarFmt, path, class.Name, index)
	}
	if hasArg {
		if _, ok := class.ParamIndex(step.Arg); !ok {
			return fmt.Errorf(messages.ConfigStepArgUnknownFmt, path, class.Name, index, step.Arg)
		}
	}
	return nil
}

// checkCycle walks class's ancestry and fails if it revisits a class.
func (f *File) checkCycle(path string, class *Class) error {
	visited := map[string]bool{class.Name: true}
	chain := []string{class.Name}
	for parent := class.Parent; parent != ""; {
		chain = append(chain, parent)
		if visited[parent] {
			return fmt.Errorf(messages.ConfigClassCycleFmt, path, class.Name, strings.Join(chain, " -> "))
		}
		visited[parent] = true
		next, ok := f.Lookup(parent)
		if !ok {
			return nil
		}
		parent = next.Parent
	}
	return nil
}

func (f *File) normalizeNames() {
	for i := range f.Classes {
		class := &f.Classes[i]
		class.Name = NormalizeName(class.Name)
		class.Parent = NormalizeName(class.Parent)
		for j := range class.Params {
			class.Params[j] = NormalizeName(class.Params[j])
		}
		for j := range class.Steps {
			step := &class.Steps[j]
			step.Op = strings.ToLower(strings.TrimSpace(step.Op))
			step.Tier = strings.ToLower(strings.TrimSpace(step.Tier))
			step.From = strings.ToLower(strings.TrimSpace(step.From))
			step.Field = NormalizeName(step.Field)
			step.Arg = NormalizeName(step.Arg)
		}
	}
}
