package models

type Instructor struct {
	ID            string  `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	Title         string  `json:"title" gorm:"not null"`
	Bio           *string `json:"bio"`
	Rating        float64 `json:"rating"`
	TotalReviews  int     `json:"totalReviews"`
	TotalStudents int     `json:"totalStudents"`
	TotalCourses  int     `json:"totalCourses"`
}

func (i Instructor) Validate() error {
	errs := ValidationErrors{}
	errs.require("name", i.Name)
	errs.require("title", i.Title)
	if i.Rating < 0 || i.Rating > 5 {
		errs["rating"] = "must be between 0 and 5"
	}
	return errs.orNil()
}
