package entity

type Admin struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	PassHash  []byte `json:"-"`
}
