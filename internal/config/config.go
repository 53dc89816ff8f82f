package config

// Step operations.
const (
	OpSet          = "set"
	OpCopy         = "copy"
	OpDelete       = "delete"
	OpExpect       = "expect"
	OpExpectAbsent = "expect_absent"
)

// File is the parsed class definitions file.
type File struct {
	Classes []Class `toml:"class" yaml:"class"`
}

// Class declares one constructor and the steps of its body.
type Class struct {
	Name   string   `toml:"name" yaml:"name"`
	Parent string   `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Params []string `toml:"params,omitempty" yaml:"params,omitempty"`
	// Sample holds the arguments `murphy check` instantiates the class with.
	Sample []any  `toml:"sample,omitempty" yaml:"sample,omitempty"`
	Steps  []Step `toml:"step,omitempty" yaml:"step,omitempty"`
}

// Step is one statement of a class body.
// Value and Arg are mutually exclusive; Arg names a positional parameter.
type Step struct {
	Op    string `toml:"op" yaml:"op"`
	Tier  string `toml:"tier" yaml:"tier"`
	Field string `toml:"field" yaml:"field"`
	From  string `toml:"from,omitempty" yaml:"from,omitempty"`
	Value any    `toml:"value,omitempty" yaml:"value,omitempty"`
	Arg   string `toml:"arg,omitempty" yaml:"arg,omitempty"`
}

// Lookup returns the class named name.
func (f *File) Lookup(name string) (*Class, bool) {
	name = NormalizeName(name)
	for i := range f.Classes {
		if f.Classes[i].Name == name {
			return &f.Classes[i], true
		}
	}
	return nil, false
}

// Ancestry returns the chain ending at name, root first.
// The file must have passed Validate; unknown names return nil.
func (f *File) Ancestry(name string) []*Class {
	var chain []*Class
	seen := make(map[string]bool)
	for current := name; current != ""; {
		class, ok := f.Lookup(current)
		if !ok || seen[class.Name] {
			break
		}
		seen[class.Name] = true
		chain = append(chain, class)
		current = class.Parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ParamIndex returns the position of param in the class's parameter list.
func (c *Class) ParamIndex(param string) (int, bool) {
	for i, p := range c.Params {
		if p == param {
			return i, true
		}
	}
	return 0, false
}
