package models

import "time"

type Course struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null"`
	ShortDescription *string   `json:"shortDescription"`
	Category         string    `json:"category" gorm:"not null;index"` // free-text label, matched exactly
	Level            string    `json:"level" gorm:"not null"`
	Price            float64   `json:"price" gorm:"not null"`
	OriginalPrice    *float64  `json:"originalPrice"` // pre-discount price
	Rating           float64   `json:"rating"`
	ReviewCount      int       `json:"reviewCount"`
	StudentCount     int       `json:"studentCount"`
	Duration         string    `json:"duration" gorm:"not null"` // e.g. "52 hours"
	TotalLessons     int       `json:"totalLessons"`
	InstructorID     string    `json:"instructorId" gorm:"not null;index"`
	Thumbnail        *string   `json:"thumbnail"`
	PreviewVideo     *string   `json:"previewVideo"`
	IsPublished      bool      `json:"isPublished"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (c Course) Validate() error {
	errs := ValidationErrors{}
	errs.require("title", c.Title)
	errs.require("description", c.Description)
	errs.require("category", c.Category)
	errs.require("level", c.Level)
	errs.require("duration", c.Duration)
	errs.require("instructorId", c.InstructorID)
	if c.Price < 0 {
		errs["price"] = "must not be negative"
	}
	if c.OriginalPrice != nil && *c.OriginalPrice < 0 {
		errs["originalPrice"] = "must not be negative"
	}
	return errs.orNil()
}

type Section struct {
	ID            string  `json:"id" gorm:"primaryKey"`
	CourseID      string  `json:"courseId" gorm:"not null;index"`
	Title         string  `json:"title" gorm:"not null"`
	Order         int     `json:"order" gorm:"column:sort_order;not null"`
	TotalLessons  int     `json:"totalLessons"`
	TotalDuration *string `json:"totalDuration"` // e.g. "2h 15m"
}

func (s Section) Validate() error {
	errs := ValidationErrors{}
	errs.require("courseId", s.CourseID)
	errs.require("title", s.Title)
	return errs.orNil()
}

type Lesson struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	CourseID    string  `json:"courseId" gorm:"not null;index"`
	SectionID   *string `json:"sectionId"`
	Title       string  `json:"title" gorm:"not null"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	Duration    string  `json:"duration" gorm:"not null"` // e.g. "12:34"
	Order       int     `json:"order" gorm:"column:sort_order;not null"`
	IsPreview   bool    `json:"isPreview"` // watchable without enrollment
}

func (l Lesson) Validate() error {
	errs := ValidationErrors{}
	errs.require("courseId", l.CourseID)
	errs.require("title", l.Title)
	errs.require("duration", l.Duration)
	return errs.orNil()
}

// CourseWithInstructor is a catalog entry. Instructor is nil when InstructorID
// does not resolve.
type CourseWithInstructor struct {
	Course
	Instructor *Instructor `json:"instructor,omitempty"`
}

// CourseDetails is the course page payload.
type CourseDetails struct {
	Course
	Instructor *Instructor `json:"instructor,omitempty"`
	Sections   []Section   `json:"sections"`
	Reviews    []Review    `json:"reviews"`
}
