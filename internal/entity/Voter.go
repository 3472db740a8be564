package entity

type Voter struct {
	ID         int64
	VoterID    string
	PassHash   []byte `json:"-"`
	Voted      bool
	ElectionID int64
}
