// Package typed is the statically typed form of murphy constructors.
//
// A family fixes the argument type A and the shared Protected and Public
// struct types; every level picks its own Private type when it is built.
// Protected and Public are allocated once per instantiation by the root and
// the same pointers are handed to every level. Private is a new zero value at
// each level.
package typed

// chainMarker marks a call made by a child constructor of the same family.
type chainMarker struct {
	_ byte
}

// Self is the member container passed to a level's body.
type Self[Priv, Prot, Pub any] struct {
	Private   *Priv
	Protected *Prot
	Public    *Pub
}

// Maker is one family of typed constructors.
type Maker[A, Prot, Pub any] struct {
	marker *chainMarker
}

// NewMaker returns a new, independent family.
func NewMaker[A, Prot, Pub any]() *Maker[A, Prot, Pub] {
	return &Maker[A, Prot, Pub]{marker: &chainMarker{}}
}

// Owns reports whether k was created by m.
func (m *Maker[A, Prot, Pub]) Owns(k *Constructor[A, Prot, Pub]) bool {
	return k != nil && k.marker == m.marker
}

// Constructor is an immutable typed constructor.
type Constructor[A, Prot, Pub any] struct {
	marker *chainMarker
	parent *Constructor[A, Prot, Pub]
	run    func(self *Self[struct{}, Prot, Pub], args A)
	depth  int
}

// Build returns a constructor that runs parent (if non-nil) and then body.
// parent must come from m; a parent from another family runs as if called
// directly and the child sees a nil Protected.
// Priv is the type of the level's private state. Go methods cannot declare
// type parameters, so Build is a function rather than a Maker method.
func Build[Priv, A, Prot, Pub any](m *Maker[A, Prot, Pub], parent *Constructor[A, Prot, Pub], body func(self *Self[Priv, Prot, Pub], args A)) *Constructor[A, Prot, Pub] {
	depth := 1
	if parent != nil {
		depth = parent.depth + 1
	}
	return &Constructor[A, Prot, Pub]{
		marker: m.marker,
		parent: parent,
		depth:  depth,
		run: func(shared *Self[struct{}, Prot, Pub], args A) {
			if body == nil {
				return
			}
			body(&Self[Priv, Prot, Pub]{
				Private:   new(Priv),
				Protected: shared.Protected,
				Public:    shared.Public,
			}, args)
		},
	}
}

// Depth returns the length of k's ancestry including k itself.
func (k *Constructor[A, Prot, Pub]) Depth() int {
	return k.depth
}

// New instantiates k and returns the public state.
func (k *Constructor[A, Prot, Pub]) New(args A) *Pub {
	_, public := k.invoke(nil, args)
	return public
}

// invoke runs one link. marker is nil for a call from user code and the
// caller's family marker for a call from a child. Protected is only returned
// to a recognized child.
func (k *Constructor[A, Prot, Pub]) invoke(marker *chainMarker, args A) (*Prot, *Pub) {
	delegated := marker != nil && marker == k.marker

	shared := &Self[struct{}, Prot, Pub]{}
	if k.parent == nil {
		shared.Protected = new(Prot)
		shared.Public = new(Pub)
	} else {
		shared.Protected, shared.Public = k.parent.invoke(k.marker, args)
	}

	k.run(shared, args)

	if delegated {
		return shared.Protected, shared.Public
	}
	return nil, shared.Public
}
