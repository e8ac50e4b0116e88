package models

import "time"

// Enrollment links a user to a course. (UserID, CourseID) is unique; ID is
// only a storage key.
type Enrollment struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	UserID           string     `json:"userId" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID         string     `json:"courseId" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Progress         float64    `json:"progress"` // 0-100, not enforced
	CompletedLessons int        `json:"completedLessons"`
	EnrolledAt       time.Time  `json:"enrolledAt"`
	CompletedAt      *time.Time `json:"completedAt"`
}

func (e Enrollment) Validate() error {
	errs := ValidationErrors{}
	errs.require("userId", e.UserID)
	errs.require("courseId", e.CourseID)
	return errs.orNil()
}
