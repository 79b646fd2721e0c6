package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	PhoneNumber   string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Gender        string    `json:"gender,omitempty" bson:"gender,omitempty"`
	Bio           string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Avatar        string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// UserProfileResponse is the public view of a user.
type UserProfileResponse struct {
	UserID      string `json:"userid" bson:"userid"`
	Username    string `json:"username" bson:"username"`
	Email       string `json:"email" bson:"email"`
	Bio         string `json:"bio,omitempty" bson:"bio,omitempty"`
	Gender      string `json:"gender,omitempty" bson:"gender,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Avatar      string `json:"avatar,omitempty" bson:"avatar,omitempty"`
}
