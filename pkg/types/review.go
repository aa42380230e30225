package types

// Review is a User's text about a Place.
type Review struct {
	BaseModel
}

var reviewSchema = Schema{
	{Name: "place_id", Default: ""},
	{Name: "user_id", Default: ""},
	{Name: "text", Default: ""},
}

// NewReview constructs a Review, fresh when rec is empty.
func NewReview(rec *Record) (*Review, error) {
	b, err := newBase(TypeReview, reviewSchema, rec)
	if err != nil {
		return nil, err
	}
	return &Review{BaseModel: *b}, nil
}

func (r *Review) PlaceID() string { return r.stringField("place_id") }
func (r *Review) UserID() string  { return r.stringField("user_id") }
func (r *Review) Text() string    { return r.stringField("text") }
