package controller

import (
	"course_platform_backend/internal/service"
	"course_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// GetCourses godoc
// @Summary List the course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	util.Success(ctx, c.CourseService.List())
}

// GetCourse godoc
// @Summary Fetch one course
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "Course not found")
		return
	}

	course, err := c.CourseService.Get(id)
	if err != nil {
		util.NotFound(ctx, "Course not found")
		return
	}

	util.Success(ctx, course)
}

// GetCourseLessons godoc
// @Summary List a course's lessons in display order
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /courses/{id}/lessons [get]
func (c *CourseController) GetCourseLessons(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "Course not found")
		return
	}

	util.Success(ctx, c.CourseService.LessonsForCourse(id))
}
