package classdef

import (
	"fmt"
	"reflect"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// Failure is one expectation that did not hold during an instantiation.
type Failure struct {
	Class   string
	Step    int
	Message string
}

func (f Failure) String() string {
	return f.Message
}

// Report collects the failures of one instantiation. It travels through the
// chain as the first positional argument, ahead of the user's arguments.
type Report struct {
	failures []Failure
}

// Failures returns a copy of the recorded failures.
func (r *Report) Failures() []Failure {
	return append([]Failure(nil), r.failures...)
}

func (r *Report) add(class string, step int, format string, args ...any) {
	r.failures = append(r.failures, Failure{
		Class:   class,
		Step:    step,
		Message: fmt.Sprintf(format, args...),
	})
}

// compileBody turns the steps of class into a murphy.Body.
func compileBody(class config.Class) murphy.Body {
	name := class.Name
	params := append([]string(nil), class.Params...)
	steps := append([]config.Step(nil), class.Steps...)
	lookup := config.Class{Params: params}

	return func(self *murphy.Self, args ...any) {
		report, ok := firstReport(args)
		if ok {
			args = args[1:]
		} else {
			report = &Report{}
		}

		// resolve returns the literal or the bound argument. A missing
		// argument binds to nil.
		resolve := func(step config.Step) any {
			if step.Arg == "" {
				return step.Value
			}
			i, ok := lookup.ParamIndex(step.Arg)
			if !ok || i >= len(args) {
				return nil
			}
			return config.NormalizeScalar(args[i])
		}

		for i, step := range steps {
			tier := self.Tier(murphy.Tier(step.Tier))
			switch step.Op {
			case config.OpSet:
				tier.Set(step.Field, resolve(step))
			case config.OpCopy:
				if v, ok := self.Tier(murphy.Tier(step.From)).Get(step.Field); ok {
					tier.Set(step.Field, v)
				}
			case config.OpDelete:
				tier.Delete(step.Field)
			case config.OpExpect:
				want := resolve(step)
				got, ok := tier.Get(step.Field)
				switch {
				case !ok:
					report.add(name, i, messages.ExpectValueAbsentFmt, name, i, step.Tier, step.Field, want)
				case !sameValue(want, got):
					report.add(name, i, messages.ExpectValueMismatchFmt, name, i, step.Tier, step.Field, want, got)
				}
			case config.OpExpectAbsent:
				if got, ok := tier.Get(step.Field); ok {
					report.add(name, i, messages.ExpectAbsentFmt, name, i, step.Tier, step.Field, got)
				}
			}
		}
	}
}

func firstReport(args []any) (*Report, bool) {
	if len(args) == 0 {
		return nil, false
	}
	report, ok := args[0].(*Report)
	return report, ok && report != nil
}

// sameValue compares two member values after scalar normalization.
func sameValue(a, b any) bool {
	a, b = config.NormalizeScalar(a), config.NormalizeScalar(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.TypeOf(a).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
