package storage

import (
	"fmt"
	"time"

	"coursehub/backend/models"
)

// FixtureSet is the catalog every fresh store starts from.
type FixtureSet struct {
	Instructors []models.Instructor
	Courses     []models.Course
	Sections    []models.Section
	Lessons     []models.Lesson
}

func ptr[T any](v T) *T { return &v }

type courseSeed struct {
	id, title, description, short, category, level string
	price, originalPrice, rating                     float64
	reviews, students                                int
	duration                                         string
	lessons                                          int
	instructorID, thumbnail                          string
	preview                                          int
}

var instructorFixtures = []models.Instructor{
	{
		ID:            "inst-1",
		Name:          "Dr. Angela Yu",
		Title:         "Lead Instructor at App Brewery",
		Bio:           ptr("Dr. Angela Yu is a developer with a passion for teaching. She is the lead instructor at the London App Brewery, London's leading Programming Bootcamp."),
		Rating:        4.8,
		TotalReviews:  45123,
		TotalStudents: 189456,
		TotalCourses:  12,
	},
	{
		ID:            "inst-2",
		Name:          "Sarah Johnson",
		Title:         "Senior UX Designer",
		Bio:           ptr("Sarah is a seasoned UX designer with over 8 years of experience in creating user-centered designs."),
		Rating:        4.9,
		TotalReviews:  12450,
		TotalStudents: 67890,
		TotalCourses:  8,
	},
	{
		ID:            "inst-3",
		Name:          "Michael Chen",
		Title:         "Data Science Director",
		Bio:           ptr("Michael is a data science expert with 10+ years at leading tech companies. He specializes in machine learning and AI applications."),
		Rating:        4.7,
		TotalReviews:  18500,
		TotalStudents: 95000,
		TotalCourses:  15,
	},
	{
		ID:            "inst-4",
		Name:          "Emily Rodriguez",
		Title:         "Digital Marketing Strategist",
		Bio:           ptr("Emily has helped hundreds of businesses grow their online presence through strategic digital marketing campaigns."),
		Rating:        4.8,
		TotalReviews:  22000,
		TotalStudents: 85000,
		TotalCourses:  10,
	},
	{
		ID:            "inst-5",
		Name:          "David Kim",
		Title:         "Business Strategy Consultant",
		Bio:           ptr("Former McKinsey consultant with expertise in business strategy, operations, and entrepreneurship."),
		Rating:        4.9,
		TotalReviews:  8500,
		TotalStudents: 42000,
		TotalCourses:  6,
	},
	{
		ID:            "inst-6",
		Name:          "Lisa Thompson",
		Title:         "Mobile App Developer",
		Bio:           ptr("Lisa has developed over 50 mobile apps with millions of downloads. She specializes in React Native and Flutter."),
		Rating:        4.6,
		TotalReviews:  15200,
		TotalStudents: 78000,
		TotalCourses:  12,
	},
}

var courseSeeds = []courseSeed{
	{"course-1", "Complete Web Development Bootcamp",
		"Master full-stack web development with the most comprehensive course available. Learn HTML, CSS, JavaScript, React, Node.js, Express, MongoDB and deploy real projects.",
		"Learn HTML, CSS, JavaScript, React, Node.js and more in this comprehensive course.",
		"Programming", "Beginner", 89, 199, 4.8, 2341, 15432, "52 hours", 64, "inst-1",
		"https://images.unsplash.com/photo-1498050108023-c5249f4df085", 1},
	{"course-2", "UI/UX Design Masterclass",
		"Master user interface and user experience design with Figma, Adobe XD, and design principles.",
		"Master user interface and user experience design with Figma, Adobe XD, and design principles.",
		"Design", "Intermediate", 69, 149, 4.9, 1842, 8934, "38 hours", 45, "inst-2",
		"https://images.unsplash.com/photo-1558655146-9f40138edfeb", 2},
	{"course-3", "Machine Learning with Python",
		"Learn machine learning from scratch using Python, scikit-learn, and TensorFlow. Build real-world ML models and understand the algorithms behind them.",
		"Complete machine learning course covering algorithms, data preprocessing, and model deployment.",
		"Data Science", "Intermediate", 119, 299, 4.7, 3456, 23000, "45 hours", 78, "inst-3",
		"https://images.unsplash.com/photo-1555949963-aa79dcee981c", 3},
	{"course-4", "Digital Marketing Complete Course",
		"Master digital marketing with hands-on training in SEO, social media, email marketing, and Google Ads. Grow your business or start a marketing career.",
		"Complete digital marketing training covering SEO, social media, email marketing, and paid advertising.",
		"Marketing", "Beginner", 79, 179, 4.8, 5234, 34500, "32 hours", 56, "inst-4",
		"https://images.unsplash.com/photo-1460925895917-afdab827c52f", 4},
	{"course-5", "Business Strategy and Entrepreneurship",
		"Learn how to develop winning business strategies, validate ideas, and build successful startups. Perfect for entrepreneurs and business professionals.",
		"Master business strategy, startup fundamentals, and entrepreneurial skills.",
		"Business", "Intermediate", 149, 299, 4.9, 1823, 12400, "28 hours", 42, "inst-5",
		"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d", 5},
	{"course-6", "React Native Mobile App Development",
		"Build cross-platform mobile apps with React Native. Learn to create iOS and Android apps using JavaScript and React principles.",
		"Create mobile apps for iOS and Android using React Native and JavaScript.",
		"Programming", "Intermediate", 99, 249, 4.6, 2890, 18700, "40 hours", 65, "inst-6",
		"https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c", 6},
	{"course-7", "Data Analysis with Excel & Power BI",
		"Master data analysis using Excel and Power BI. Learn to create dashboards, analyze data, and make data-driven decisions.",
		"Complete data analysis course using Excel and Power BI for business intelligence.",
		"Data Science", "Beginner", 59, 139, 4.5, 4567, 28900, "25 hours", 48, "inst-3",
		"https://images.unsplash.com/photo-1551288049-bebda4e38f71", 7},
	{"course-8", "Advanced Graphic Design with Adobe Creative Suite",
		"Master Photoshop, Illustrator, and InDesign. Create stunning graphics, logos, and layouts for print and digital media.",
		"Professional graphic design course covering Photoshop, Illustrator, and InDesign.",
		"Design", "Advanced", 129, 279, 4.8, 2103, 15600, "48 hours", 72, "inst-2",
		"https://images.unsplash.com/photo-1561070791-2526d30994b5", 8},
	{"course-9", "Social Media Marketing Mastery",
		"Grow your brand on Instagram, Facebook, TikTok, and LinkedIn. Learn content creation, influencer marketing, and social media advertising.",
		"Complete social media marketing course for all major platforms.",
		"Marketing", "Beginner", 69, 159, 4.7, 3721, 25800, "30 hours", 52, "inst-4",
		"https://images.unsplash.com/photo-1611162617474-5b21e879e113", 9},
	{"course-10", "Python Programming for Beginners",
		"Learn Python from zero to hero. Perfect for beginners who want to start programming. Covers basics, data structures, and real projects.",
		"Complete Python programming course for absolute beginners with hands-on projects.",
		"Programming", "Beginner", 49, 129, 4.9, 6789, 45600, "35 hours", 68, "inst-1",
		"https://images.unsplash.com/photo-1526379095098-d400fd0bf935", 10},
	{"course-11", "Financial Planning and Investment",
		"Learn personal finance, budgeting, investing in stocks, bonds, and real estate. Build wealth and secure your financial future.",
		"Complete guide to personal finance, investing, and wealth building strategies.",
		"Business", "Beginner", 89, 199, 4.6, 2456, 19300, "22 hours", 38, "inst-5",
		"https://images.unsplash.com/photo-1579621970563-ebec7560ff3e", 11},
	{"course-12", "Flutter Mobile App Development",
		"Build beautiful mobile apps for iOS and Android using Flutter and Dart. Learn widgets, state management, and app deployment.",
		"Create cross-platform mobile apps with Flutter and Dart programming language.",
		"Programming", "Intermediate", 109, 259, 4.7, 1987, 14200, "42 hours", 71, "inst-6",
		"https://images.unsplash.com/photo-1551650975-87deedd944c3", 12},
}

// Fixtures builds the seed catalog. Course creation timestamps are set to now.
func Fixtures(now time.Time) FixtureSet {
	courses := make([]models.Course, 0, len(courseSeeds))
	for _, cs := range courseSeeds {
		courses = append(courses, models.Course{
			ID:               cs.id,
			Title:            cs.title,
			Description:      cs.description,
			ShortDescription: ptr(cs.short),
			Category:         cs.category,
			Level:            cs.level,
			Price:            cs.price,
			OriginalPrice:    ptr(cs.originalPrice),
			Rating:           cs.rating,
			ReviewCount:      cs.reviews,
			StudentCount:     cs.students,
			Duration:         cs.duration,
			TotalLessons:     cs.lessons,
			InstructorID:     cs.instructorID,
			Thumbnail:        ptr(cs.thumbnail),
			PreviewVideo:     ptr(fmt.Sprintf("https://example.com/preview%d.mp4", cs.preview)),
			IsPublished:      true,
			CreatedAt:        now,
		})
	}

	instructors := make([]models.Instructor, len(instructorFixtures))
	copy(instructors, instructorFixtures)

	return FixtureSet{
		Instructors: instructors,
		Courses:     courses,
		Sections: []models.Section{
			{
				ID:            "section-1",
				CourseID:      "course-1",
				Title:         "Introduction to Web Development",
				Order:         1,
				TotalLessons:  8,
				TotalDuration: ptr("2h 15m"),
			},
		},
		Lessons: []models.Lesson{
			{
				ID:          "lesson-1",
				CourseID:    "course-1",
				SectionID:   ptr("section-1"),
				Title:       "What is Web Development?",
				Description: ptr("Learn the fundamentals of web development and what you'll be building in this course."),
				VideoURL:    ptr("https://example.com/lesson1.mp4"),
				Duration:    "12:34",
				Order:       1,
				IsPreview:   true,
			},
			{
				ID:          "lesson-2",
				CourseID:    "course-1",
				SectionID:   ptr("section-1"),
				Title:       "Setting Up Your Development Environment",
				Description: ptr("Install and configure all the tools you'll need for web development."),
				VideoURL:    ptr("https://example.com/lesson2.mp4"),
				Duration:    "18:45",
				Order:       2,
				IsPreview:   false,
			},
		},
	}
}
