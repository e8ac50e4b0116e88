package models

import "time"

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"not null;index"`
	CourseID  string    `json:"courseId" gorm:"not null;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating>=1 AND rating<=5"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Review) Validate() error {
	errs := ValidationErrors{}
	errs.require("userId", r.UserID)
	errs.require("courseId", r.CourseID)
	if r.Rating < 1 || r.Rating > 5 {
		errs["rating"] = "must be between 1 and 5"
	}
	return errs.orNil()
}
