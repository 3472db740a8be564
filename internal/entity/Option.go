package entity

type Option struct {
	ID         int64
	Option     string
	QuestionID int64
}
