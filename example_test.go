package murphy_test

import (
	"fmt"

	"github.com/jacksonrayhamilton/murphy"
)

func ExampleMaker_Build() {
	m := murphy.NewMaker()
	animal := m.Build(nil, func(self *murphy.Self, args ...any) {
		self.Private.Set("legs", 4)
		self.Protected.Set("sound", args[0])
		self.Public.Set("name", args[1])
	})
	dog := m.Build(animal, func(self *murphy.Self, args ...any) {
		sound, _ := self.Protected.Get("sound")
		self.Public.Set("speak", fmt.Sprintf("%v!", sound))
	})

	rex := dog.New("woof", "rex")
	for _, key := range rex.Keys() {
		fmt.Printf("%s=%v\n", key, rex[key])
	}
	// Output:
	// name=rex
	// speak=woof!
}
