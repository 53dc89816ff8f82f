package murphy

// chainMarker tells a constructor it is being invoked by a child rather than by
// external code. The pointer is only ever held by a Maker and its constructors.
// The field keeps the type non-zero-sized so separate allocations never share
// an address.
type chainMarker struct {
	_ byte
}

// newChainMarker allocates the marker for one family.
func newChainMarker() *chainMarker {
	return &chainMarker{}
}

// Maker mints constructors that can inherit from one another.
// Constructors from different makers must not be chained.
type Maker struct {
	marker   *chainMarker
	observer func(Event)
}

// Option configures a Maker.
type Option func(*Maker)

// WithObserver registers fn to receive an Event for every protocol step of
// every instantiation made by the family. fn runs synchronously.
func WithObserver(fn func(Event)) Option {
	return func(m *Maker) {
		m.observer = fn
	}
}

// NewMaker returns a new, independent constructor family.
func NewMaker(opts ...Option) *Maker {
	m := &Maker{marker: newChainMarker()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Build returns an anonymous constructor. See Define.
func (m *Maker) Build(parent *Constructor, body Body) *Constructor {
	return m.Define("", parent, body)
}

// Define returns a constructor that runs parent (if non-nil) and then body.
// parent must have been created by m; a parent from another family never
// recognizes the delegation and the child sees nil Protected and Public maps.
func (m *Maker) Define(name string, parent *Constructor, body Body) *Constructor {
	depth := 1
	if parent != nil {
		depth = parent.depth + 1
	}
	return &Constructor{
		name:     name,
		marker:   m.marker,
		observer: m.observer,
		parent:   parent,
		body:     body,
		depth:    depth,
	}
}

// Owns reports whether k was created by this family.
func (m *Maker) Owns(k *Constructor) bool {
	return k != nil && k.marker == m.marker
}

// Constructor is an immutable function value produced by a Maker.
type Constructor struct {
	name     string
	marker   *chainMarker
	observer func(Event)
	parent   *Constructor
	body     Body
	depth    int
}

// Name returns the name given to Define, or "" for Build.
func (k *Constructor) Name() string {
	return k.name
}

// Parent returns the constructor k inherits from, or nil for a root.
func (k *Constructor) Parent() *Constructor {
	return k.parent
}

// Depth returns the length of k's ancestry including k itself.
func (k *Constructor) Depth() int {
	return k.depth
}

// Lineage returns the names of k's ancestry, root first.
func (k *Constructor) Lineage() []string {
	names := make([]string, k.depth)
	for c, i := k, k.depth-1; c != nil && i >= 0; c, i = c.parent, i-1 {
		names[i] = c.name
	}
	return names
}

// New instantiates k with args and returns the public members left by the
// chain's bodies. Private and protected members are not reachable from the
// result.
func (k *Constructor) New(args ...any) Members {
	public, _ := k.invoke(args).(Members)
	return public
}

// inheritance is what a delegated call hands back to the child that made it.
type inheritance struct {
	protected Members
	public    Members
}

// detect splits args into the invocation mode and the real user arguments.
func (k *Constructor) detect(args []any) (Mode, []any) {
	if len(args) > 0 {
		if marker, ok := args[0].(*chainMarker); ok && marker == k.marker {
			return ModeDelegated, args[1:]
		}
	}
	return ModeDirect, args
}

// invoke runs the protocol for one link of the chain. It returns an
// inheritance for a delegated call and the public Members for a direct one.
func (k *Constructor) invoke(args []any) any {
	mode, userArgs := k.detect(args)
	k.emit(PhaseDetect, mode)

	var self *Self
	if k.parent == nil {
		self = &Self{
			Private:   Members{},
			Protected: Members{},
			Public:    Members{},
		}
	} else {
		parentArgs := args
		if mode == ModeDirect {
			parentArgs = make([]any, 0, len(args)+1)
			parentArgs = append(parentArgs, k.marker)
			parentArgs = append(parentArgs, args...)
		}
		k.emit(PhaseDelegate, mode)
		inherited, _ := k.parent.invoke(parentArgs).(inheritance)
		self = &Self{
			Private:   Members{},
			Protected: inherited.protected,
			Public:    inherited.public,
		}
	}

	k.emit(PhaseBody, mode)
	if k.body != nil {
		k.body(self, userArgs...)
	}

	k.emit(PhaseProject, mode)
	if mode == ModeDelegated {
		return inheritance{protected: self.Protected, public: self.Public}
	}
	return self.Public
}

func (k *Constructor) emit(phase Phase, mode Mode) {
	if k.observer == nil {
		return
	}
	k.observer(Event{Phase: phase, Mode: mode, Depth: k.depth, Name: k.name})
}
