package entity

type Feedback struct {
	Base
	Rating   int    `db:"rating"`
	Comments string `db:"comments"`
	UserID   int64  `db:"user_id"`
}

type FeedbackPatch struct {
	Rating   *int
	Comments *string
	UserID   *int64
}
