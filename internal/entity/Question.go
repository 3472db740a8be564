package entity

type Question struct {
	ID          int64
	Question    string
	Description string
	ElectionID  int64
}
