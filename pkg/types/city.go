package types

// City belongs to a State through StateID.
type City struct {
	BaseModel
}

var citySchema = Schema{
	{Name: "state_id", Default: ""},
	{Name: "name", Default: ""},
}

// NewCity constructs a City, fresh when rec is empty.
func NewCity(rec *Record) (*City, error) {
	b, err := newBase(TypeCity, citySchema, rec)
	if err != nil {
		return nil, err
	}
	return &City{BaseModel: *b}, nil
}

func (c *City) StateID() string { return c.stringField("state_id") }
func (c *City) Name() string    { return c.stringField("name") }
