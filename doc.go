// Package murphy builds constructors that compose through single-parent
// inheritance while keeping three visibility tiers apart.
//
// A Maker is one family of constructors. Each constructor runs its parent
// first, then its own Body with a Self holding three compartments:
//
//   - Private: a fresh map for every level; never seen by parents or children.
//   - Protected: shared by reference with every level of the same instance.
//   - Public: shared like Protected and returned to the caller of New.
//
// Example:
//
//	m := murphy.NewMaker()
//	animal := m.Build(nil, func(self *murphy.Self, args ...any) {
//	    self.Protected.Set("sound", args[0])
//	    self.Public.Set("name", args[1])
//	})
//	dog := m.Build(animal, func(self *murphy.Self, args ...any) {
//	    sound, _ := self.Protected.Get("sound")
//	    self.Public.Set("speak", fmt.Sprintf("%v!", sound))
//	})
//	rex := dog.New("woof", "rex") // {"name": "rex", "speak": "woof!"}
//
// A constructor tells whether it was called by user code or by a child
// through a marker value private to its Maker, so user code cannot obtain a
// child's view of an instance. Two consequences are left to the caller:
//
//   - Chaining a parent from another Maker is not detected; the child receives
//     nil Protected and Public maps. Maker.Owns reports family membership.
//   - An ancestry that contains itself recurses until the stack is exhausted.
//     Build cannot produce one because a parent must exist before its child.
//
// Instantiations share nothing but the immutable constructors, so New may be
// called concurrently as long as the bodies themselves are safe to run
// concurrently.
package murphy
