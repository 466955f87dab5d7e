// Package repository is the in-memory entity store. Each entity type has its
// own repository owning a mutex, a monotonic id counter and an id-keyed map.
// Records never leave the store by reference: reads and writes exchange
// copies, so callers can only mutate through store operations. Ids are never
// reused. Nothing is persisted, data lives for the process lifetime.
package repository

// Store aggregates the per-entity repositories. It has no global state, so
// independent stores can coexist (one per test, for example).
type Store struct {
	Users        *UserRepository
	Courses      *CourseRepository
	Lessons      *LessonRepository
	Quizzes      *QuizRepository
	Enrollments  *EnrollmentRepository
	Progress     *ProgressRepository
	QuizResults  *QuizResultRepository
	Certificates *CertificateRepository
}

func NewStore() *Store {
	return &Store{
		Users:        NewUserRepository(),
		Courses:      NewCourseRepository(),
		Lessons:      NewLessonRepository(),
		Quizzes:      NewQuizRepository(),
		Enrollments:  NewEnrollmentRepository(),
		Progress:     NewProgressRepository(),
		QuizResults:  NewQuizResultRepository(),
		Certificates: NewCertificateRepository(),
	}
}
