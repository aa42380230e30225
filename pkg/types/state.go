package types

// State is a top-level geographic area.
type State struct {
	BaseModel
}

var stateSchema = Schema{
	{Name: "name", Default: ""},
}

// NewState constructs a State, fresh when rec is empty.
func NewState(rec *Record) (*State, error) {
	b, err := newBase(TypeState, stateSchema, rec)
	if err != nil {
		return nil, err
	}
	return &State{BaseModel: *b}, nil
}

func (s *State) Name() string { return s.stringField("name") }
