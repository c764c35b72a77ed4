package models

import "time"

type User struct {
	ID           string       `bson:"_id,omitempty"`
	Email        string       `bson:"email"`
	Name         string       `bson:"name"`
	Password     string       `bson:"password"`
	Role         Role         `bson:"role"`
	AvatarObject string       `bson:"avatarObject,omitempty"`
	Subscription Subscription `bson:"subscription"`
	TimeModel    `bson:",inline"`
}

type Subscription struct {
	Active      bool       `bson:"active" json:"active"`
	Plan        string     `bson:"plan,omitempty" json:"plan,omitempty"`
	ActivatedAt *time.Time `bson:"activatedAt,omitempty" json:"activated_at,omitempty"`
}
