package models

type Notification struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	Title     string `bson:"title"`
	Body      string `bson:"body"`
	Read      bool   `bson:"read"`
	TimeModel `bson:",inline"`
}
