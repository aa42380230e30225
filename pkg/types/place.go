package types

// Place is a listing offered by a User in a City.
type Place struct {
	BaseModel
}

// placeSchema declares the listing attributes. Counts and prices are
// integers and coordinates are floats, so console updates coerce to those.
var placeSchema = Schema{
	{Name: "city_id", Default: ""},
	{Name: "user_id", Default: ""},
	{Name: "name", Default: ""},
	{Name: "description", Default: ""},
	{Name: "number_rooms", Default: int64(0)},
	{Name: "number_bathrooms", Default: int64(0)},
	{Name: "max_guest", Default: int64(0)},
	{Name: "price_by_night", Default: int64(0)},
	{Name: "latitude", Default: 0.0},
	{Name: "longitude", Default: 0.0},
	{Name: "amenity_ids", Default: []any{}},
}

// NewPlace constructs a Place, fresh when rec is empty.
func NewPlace(rec *Record) (*Place, error) {
	b, err := newBase(TypePlace, placeSchema, rec)
	if err != nil {
		return nil, err
	}
	return &Place{BaseModel: *b}, nil
}

func (p *Place) CityID() string         { return p.stringField("city_id") }
func (p *Place) UserID() string         { return p.stringField("user_id") }
func (p *Place) Name() string           { return p.stringField("name") }
func (p *Place) Description() string    { return p.stringField("description") }
func (p *Place) NumberRooms() int64     { return p.intField("number_rooms") }
func (p *Place) NumberBathrooms() int64 { return p.intField("number_bathrooms") }
func (p *Place) MaxGuest() int64        { return p.intField("max_guest") }
func (p *Place) PriceByNight() int64    { return p.intField("price_by_night") }
func (p *Place) Latitude() float64      { return p.floatField("latitude") }
func (p *Place) Longitude() float64     { return p.floatField("longitude") }
func (p *Place) AmenityIDs() []string   { return p.listField("amenity_ids") }
