package repository

import "course_platform_backend/internal/model"

// Seed loads the demonstration catalog: three courses, three lessons for the
// first course and one quiz on its first lesson. Fixture data only, there is
// no migration mechanism.
func (s *Store) Seed() {
	course1 := s.Courses.Create(&model.Course{
		Title:        "Complete Web Development Bootcamp",
		Description:  "Learn HTML, CSS, JavaScript, React, and Node.js from scratch to build modern web applications.",
		Instructor:   "John Smith",
		Price:        99,
		Rating:       48,
		StudentCount: 1234,
		Category:     "Web Development",
		Level:        "Beginner",
		Duration:     "12 hours",
		LessonCount:  48,
		ImageURL:     "https://images.unsplash.com/photo-1498050108023-c5249f4df085?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
	})

	s.Courses.Create(&model.Course{
		Title:        "Python for Data Science",
		Description:  "Master Python programming for data analysis, visualization, and machine learning applications.",
		Instructor:   "Sarah Johnson",
		Price:        79,
		Rating:       49,
		StudentCount: 856,
		Category:     "Data Science",
		Level:        "Intermediate",
		Duration:     "16 hours",
		LessonCount:  62,
		ImageURL:     "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
	})

	s.Courses.Create(&model.Course{
		Title:        "UI/UX Design Fundamentals",
		Description:  "Learn user interface and user experience design principles to create beautiful, functional designs.",
		Instructor:   "Mike Chen",
		Price:        69,
		Rating:       47,
		StudentCount: 189,
		Category:     "Design",
		Level:        "Beginner",
		Duration:     "14 hours",
		LessonCount:  36,
		ImageURL:     "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
	})

	lesson1 := s.Lessons.Create(&model.Lesson{
		CourseID:    course1.ID,
		Title:       "Introduction to HTML",
		Description: "Learn the basics of HTML structure and elements",
		VideoURL:    "dQw4w9WgXcQ",
		Duration:    "12:34",
		OrderIndex:  1,
		ModuleTitle: "Module 1: HTML Basics",
	})

	s.Lessons.Create(&model.Lesson{
		CourseID:    course1.ID,
		Title:       "HTML Structure & Tags",
		Description: "Understanding HTML document structure",
		VideoURL:    "dQw4w9WgXcQ",
		Duration:    "15:22",
		OrderIndex:  2,
		ModuleTitle: "Module 1: HTML Basics",
	})

	s.Lessons.Create(&model.Lesson{
		CourseID:    course1.ID,
		Title:       "CSS Fundamentals",
		Description: "Introduction to CSS styling",
		VideoURL:    "dQw4w9WgXcQ",
		Duration:    "18:45",
		OrderIndex:  3,
		ModuleTitle: "Module 2: CSS Styling",
	})

	s.Quizzes.Create(&model.Quiz{
		LessonID: lesson1.ID,
		Title:    "HTML Basics Quiz",
		Questions: []model.QuizQuestion{
			{
				Question: "What does HTML stand for?",
				Options: []string{
					"Home Tool Markup Language",
					"HyperText Markup Language",
					"Hyperlinks and Text Markup Language",
					"None of the above",
				},
				CorrectAnswer: 1,
			},
			{
				Question:      "Which HTML element is used for the largest heading?",
				Options:       []string{"<h6>", "<h1>", "<header>", "<heading>"},
				CorrectAnswer: 1,
			},
		},
	})
}
