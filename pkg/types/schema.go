package types

// Attribute is a typed default declared by a concrete type. The default's
// Go type decides how console input for the attribute is coerced.
type Attribute struct {
	Name    string
	Default any
}

// Schema lists the declared attributes of a concrete type. Declared
// attributes are not instance fields: they are neither exported nor rendered
// until set.
type Schema []Attribute

// Default returns the declared default for name.
func (s Schema) Default(name string) (any, bool) {
	for _, a := range s {
		if a.Name == name {
			return a.Default, true
		}
	}
	return nil, false
}

// Names returns the attribute names in declaration order.
func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, a := range s {
		out[i] = a.Name
	}
	return out
}
