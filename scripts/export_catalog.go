// Export the built-in demonstration catalog.
//
// The server loads the same catalog at startup when seed.enabled is set.
// This script is for manual export only, e.g. generating frontend fixtures
// or reviewing the catalog contents.
//
// Usage: go run scripts/export_catalog.go [-format json|yaml]

package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"course_platform_backend/internal/model"
	"course_platform_backend/internal/repository"

	"gopkg.in/yaml.v3"
)

type lessonExport struct {
	model.Lesson `yaml:",inline"`
	Quiz         *model.Quiz `json:"quiz,omitempty" yaml:"quiz,omitempty"`
}

type courseExport struct {
	model.Course `yaml:",inline"`
	Lessons      []lessonExport `json:"lessons" yaml:"lessons"`
}

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	flag.Parse()

	store := repository.NewStore()
	store.Seed()

	var catalog []courseExport
	for _, course := range store.Courses.FindAll() {
		export := courseExport{Course: course}
		for _, lesson := range store.Lessons.FindByCourse(course.ID) {
			item := lessonExport{Lesson: lesson}
			if quiz, ok := store.Quizzes.FindByLesson(lesson.ID); ok {
				item.Quiz = quiz
			}
			export.Lessons = append(export.Lessons, item)
		}
		catalog = append(catalog, export)
	}

	var out []byte
	var err error
	switch *format {
	case "json":
		out, err = json.MarshalIndent(catalog, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(catalog)
	default:
		log.Fatalf("unknown output format: %s", *format)
	}
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	os.Stdout.Write(out)
	os.Stdout.WriteString("\n")
}
