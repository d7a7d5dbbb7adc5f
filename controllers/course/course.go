package courseController

import (
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the active catalog
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_active = ?", false, true).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseDetails returns a course with its modules and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_active = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []models.CourseModule
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	type moduleWithLessons struct {
		models.CourseModule
		Lessons []models.Lesson `json:"lessons"`
	}

	result := make([]moduleWithLessons, len(modules))
	for i, m := range modules {
		var lessons []models.Lesson
		db.Where("module_id = ? AND is_deleted = ?", m.ID, false).Order("order_index asc").Find(&lessons)
		result[i] = moduleWithLessons{CourseModule: m, Lessons: lessons}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"modules": result,
	})
}

// GetAllTours lists upcoming active tours
func GetAllTours(c *fiber.Ctx) error {
	var tours []models.Tour
	if err := database.Database.Db.Where("is_deleted = ? AND is_active = ?", false, true).
		Order("date asc").Find(&tours).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tours!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tours fetched successfully!", fiber.Map{
		"tours": tours,
		"total": len(tours),
	})
}
