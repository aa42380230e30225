package types

import "fmt"

// Type names known to the default catalog.
const (
	TypeBaseModel = "BaseModel"
	TypeUser      = "User"
	TypeState     = "State"
	TypeCity      = "City"
	TypeAmenity   = "Amenity"
	TypePlace     = "Place"
	TypeReview    = "Review"
)

// Constructor builds an entity of one concrete type. A nil or empty record
// yields a fresh entity; a non-empty record is adopted verbatim.
type Constructor func(rec *Record) (Entity, error)

// Catalog maps type names to constructors. It is the only way a type name
// read from input or from disk turns into a concrete type.
type Catalog struct {
	ctors map[string]Constructor
	names []string
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{ctors: make(map[string]Constructor)}
}

// DefaultCatalog returns a catalog holding every model type of this package.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	c.mustRegister(TypeBaseModel, constructor(NewBaseModel))
	c.mustRegister(TypeUser, constructor(NewUser))
	c.mustRegister(TypeState, constructor(NewState))
	c.mustRegister(TypeCity, constructor(NewCity))
	c.mustRegister(TypeAmenity, constructor(NewAmenity))
	c.mustRegister(TypePlace, constructor(NewPlace))
	c.mustRegister(TypeReview, constructor(NewReview))
	return c
}

// constructor adapts a typed constructor to Constructor without leaking a
// typed nil through the interface.
func constructor[T Entity](fn func(*Record) (T, error)) Constructor {
	return func(rec *Record) (Entity, error) {
		e, err := fn(rec)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// Register adds a constructor under name.
// Returns ErrDuplicateType if name is taken.
func (c *Catalog) Register(name string, ctor Constructor) error {
	if name == "" {
		return ErrMissingTypeName
	}
	if _, ok := c.ctors[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	c.ctors[name] = ctor
	c.names = append(c.names, name)
	return nil
}

func (c *Catalog) mustRegister(name string, ctor Constructor) {
	if err := c.Register(name, ctor); err != nil {
		panic(err)
	}
}

// Lookup returns the constructor for name.
// Returns ErrMissingTypeName for an empty name and ErrUnknownType otherwise.
func (c *Catalog) Lookup(name string) (Constructor, error) {
	if name == "" {
		return nil, ErrMissingTypeName
	}
	ctor, ok := c.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return ctor, nil
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.ctors[name]
	return ok
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// New constructs a fresh entity of type name.
func (c *Catalog) New(name string) (Entity, error) {
	ctor, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return ctor(nil)
}

// FromRecord reconstructs an entity of type name from rec. An empty record
// is rejected: reconstruction never generates a new identity.
func (c *Catalog) FromRecord(name string, rec *Record) (Entity, error) {
	ctor, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Len() == 0 {
		return nil, fmt.Errorf("%w: empty record for %s", ErrMalformedData, name)
	}
	return ctor(rec)
}
