package types

// User is an account holder.
type User struct {
	BaseModel
}

var userSchema = Schema{
	{Name: "email", Default: ""},
	{Name: "password", Default: ""},
	{Name: "first_name", Default: ""},
	{Name: "last_name", Default: ""},
}

// NewUser constructs a User, fresh when rec is empty.
func NewUser(rec *Record) (*User, error) {
	b, err := newBase(TypeUser, userSchema, rec)
	if err != nil {
		return nil, err
	}
	return &User{BaseModel: *b}, nil
}

func (u *User) Email() string     { return u.stringField("email") }
func (u *User) Password() string  { return u.stringField("password") }
func (u *User) FirstName() string { return u.stringField("first_name") }
func (u *User) LastName() string  { return u.stringField("last_name") }
