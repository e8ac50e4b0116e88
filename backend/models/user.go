package models

import (
	"strings"
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"` // opaque credential
	Email     string    `json:"email" gorm:"unique;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Validate() error {
	errs := ValidationErrors{}
	errs.require("username", u.Username)
	errs.require("password", u.Password)
	errs.require("email", u.Email)
	if u.Email != "" && !strings.Contains(u.Email, "@") {
		errs["email"] = "must be an email address"
	}
	return errs.orNil()
}
