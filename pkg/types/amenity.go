package types

type Amenity struct {
	BaseModel
}

var amenitySchema = Schema{
	{Name: "name", Default: ""},
}

// NewAmenity constructs an Amenity, fresh when rec is empty.
func NewAmenity(rec *Record) (*Amenity, error) {
	b, err := newBase(TypeAmenity, amenitySchema, rec)
	if err != nil {
		return nil, err
	}
	return &Amenity{BaseModel: *b}, nil
}

func (a *Amenity) Name() string { return a.stringField("name") }
