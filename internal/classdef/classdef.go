// Package classdef compiles a definitions file into one murphy constructor
// family and instantiates its classes.
package classdef

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jacksonrayhamilton/murphy"
	"github.com/jacksonrayhamilton/murphy/internal/config"
	"github.com/jacksonrayhamilton/murphy/internal/messages"
)

// ErrUnknownClass is returned when a class name is not declared.
var ErrUnknownClass = errors.New("unknown class")

// Options configures Compile.
type Options struct {
	// Logger receives debug output; nil disables logging.
	Logger *zap.Logger
	// Observer receives every construction step of every instantiation.
	Observer func(murphy.Event)
}

// Registry holds the compiled constructors of one definitions file.
type Registry struct {
	logger       *zap.Logger
	maker        *murphy.Maker
	order        []string
	constructors map[string]*murphy.Constructor
}

// Instance is the outcome of one instantiation.
type Instance struct {
	ID       uuid.UUID
	Class    string
	Public   murphy.Members
	Failures []Failure
}

// Compile builds a constructor for every class in file. file must have passed
// Validate.
func Compile(file *config.File, opts Options) (*Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	var makerOpts []murphy.Option
	if opts.Observer != nil {
		makerOpts = append(makerOpts, murphy.WithObserver(opts.Observer))
	}
	r := &Registry{
		logger:       logger,
		maker:        murphy.NewMaker(makerOpts...),
		constructors: make(map[string]*murphy.Constructor, len(file.Classes)),
	}

	inProgress := make(map[string]bool)
	var define func(class *config.Class) (*murphy.Constructor, error)
	define = func(class *config.Class) (*murphy.Constructor, error) {
		if k, ok := r.constructors[class.Name]; ok {
			return k, nil
		}
		if inProgress[class.Name] {
			return nil, fmt.Errorf(messages.ClassdefCycleFmt, class.Name)
		}
		inProgress[class.Name] = true
		defer delete(inProgress, class.Name)

		var parent *murphy.Constructor
		if class.Parent != "" {
			parentClass, ok := file.Lookup(class.Parent)
			if !ok {
				return nil, fmt.Errorf(messages.ClassdefUnknownClassFmt, ErrUnknownClass, class.Parent)
			}
			var err error
			if parent, err = define(parentClass); err != nil {
				return nil, err
			}
		}
		k := r.maker.Define(class.Name, parent, compileBody(*class))
		r.constructors[class.Name] = k
		r.logger.Debug("compiled class",
			zap.String("class", class.Name),
			zap.String("parent", class.Parent),
			zap.Int("depth", k.Depth()),
			zap.Int("steps", len(class.Steps)))
		return k, nil
	}

	for i := range file.Classes {
		if _, err := define(&file.Classes[i]); err != nil {
			return nil, err
		}
		r.order = append(r.order, file.Classes[i].Name)
	}
	return r, nil
}

// Classes returns the class names in declaration order.
func (r *Registry) Classes() []string {
	return append([]string(nil), r.order...)
}

// Lineage returns the ancestry of name, root first.
func (r *Registry) Lineage(name string) ([]string, error) {
	k, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return k.Lineage(), nil
}

// Instantiate runs the constructor for name with args and collects any
// expectation failures raised by the bodies of its chain.
func (r *Registry) Instantiate(name string, args []any) (*Instance, error) {
	k, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	report := &Report{}
	callArgs := make([]any, 0, len(args)+1)
	callArgs = append(callArgs, report)
	callArgs = append(callArgs, args...)

	r.logger.Debug("instantiating",
		zap.String("class", k.Name()),
		zap.Stringer("id", id),
		zap.Int("args", len(args)))
	public := k.New(callArgs...)
	r.logger.Debug("instantiated",
		zap.String("class", k.Name()),
		zap.Stringer("id", id),
		zap.Strings("public", public.Keys()),
		zap.Int("failures", len(report.failures)))

	return &Instance{
		ID:       id,
		Class:    k.Name(),
		Public:   public,
		Failures: report.Failures(),
	}, nil
}

func (r *Registry) lookup(name string) (*murphy.Constructor, error) {
	k, ok := r.constructors[config.NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf(messages.ClassdefUnknownClassFmt, ErrUnknownClass, name)
	}
	return k, nil
}
