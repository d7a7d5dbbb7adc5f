package adminController

import (
	"log"

	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"
	validators "openstudents/validators/adminValidator"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse adds a new course to the catalog
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Category:      reqData.Category,
		PriceNgn:      reqData.PriceNgn,
		PriceUsd:      reqData.PriceUsd,
		DurationWeeks: reqData.DurationWeeks,
		ThumbnailURL:  reqData.ThumbnailURL,
		ClassroomLink: reqData.ClassroomLink,
		IsActive:      true,
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse edits an existing course
func UpdateCourse(c *fiber.Ctx) error {
	id, _ := c.Locals("courseId").(int)
	reqData, ok := c.Locals("validatedCourse").(*validators.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.PriceNgn = reqData.PriceNgn
	course.PriceUsd = reqData.PriceUsd
	course.DurationWeeks = reqData.DurationWeeks
	course.ThumbnailURL = reqData.ThumbnailURL
	course.ClassroomLink = reqData.ClassroomLink
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course. Enrollment rows keep their course id so
// history stays intact.
func DeleteCourse(c *fiber.Ctx) error {
	id, _ := c.Locals("courseId").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ListCourses returns every course, active or not
func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateModule adds a module to a course
func CreateModule(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*validators.ModulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	module := models.CourseModule{
		CourseID:   reqData.CourseID,
		Title:      reqData.Title,
		OrderIndex: reqData.OrderIndex,
	}
	if err := db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule edits a module
func UpdateModule(c *fiber.Ctx) error {
	id, _ := c.Locals("moduleId").(int)
	reqData, ok := c.Locals("validatedModule").(*validators.ModulePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var module models.CourseModule
	if err := db.First(&module, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.Title = reqData.Title
	module.OrderIndex = reqData.OrderIndex

	if err := db.Save(&module).Error; err != nil {
		log.Printf("Error updating module %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule removes a module and its lessons
func DeleteModule(c *fiber.Ctx) error {
	id, _ := c.Locals("moduleId").(int)

	db := database.Database.Db

	var module models.CourseModule
	if err := db.First(&module, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	db.Where("module_id = ?", module.ID).Delete(&models.Lesson{})
	if err := db.Delete(&module).Error; err != nil {
		log.Printf("Error deleting module %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// CreateLesson adds a lesson to a module
func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*validators.LessonPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.CourseModule{}, reqData.ModuleID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	lesson := models.Lesson{
		ModuleID:        reqData.ModuleID,
		Title:           reqData.Title,
		ContentURL:      reqData.ContentURL,
		DurationMinutes: reqData.DurationMinutes,
		OrderIndex:      reqData.OrderIndex,
	}
	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// UpdateLesson edits a lesson
func UpdateLesson(c *fiber.Ctx) error {
	id, _ := c.Locals("lessonId").(int)
	reqData, ok := c.Locals("validatedLesson").(*validators.LessonPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.Title = reqData.Title
	lesson.ContentURL = reqData.ContentURL
	lesson.DurationMinutes = reqData.DurationMinutes
	lesson.OrderIndex = reqData.OrderIndex

	if err := db.Save(&lesson).Error; err != nil {
		log.Printf("Error updating lesson %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson removes a lesson
func DeleteLesson(c *fiber.Ctx) error {
	id, _ := c.Locals("lessonId").(int)

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Delete(&lesson).Error; err != nil {
		log.Printf("Error deleting lesson %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// CreateTour adds a tour
func CreateTour(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTour").(*validators.TourPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tour := models.Tour{
		Title:           reqData.Title,
		Description:     reqData.Description,
		Location:        reqData.Location,
		State:           reqData.State,
		Date:            reqData.Date,
		PriceNgn:        reqData.PriceNgn,
		PriceUsd:        reqData.PriceUsd,
		MaxParticipants: reqData.MaxParticipants,
		ThumbnailURL:    reqData.ThumbnailURL,
		IsActive:        true,
	}
	if reqData.IsActive != nil {
		tour.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Create(&tour).Error; err != nil {
		log.Printf("Error creating tour: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tour!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tour created successfully!", tour)
}

// UpdateTour edits a tour
func UpdateTour(c *fiber.Ctx) error {
	id, _ := c.Locals("tourId").(int)
	reqData, ok := c.Locals("validatedTour").(*validators.TourPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var tour models.Tour
	if err := db.First(&tour, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tour not found!", nil)
	}

	tour.Title = reqData.Title
	tour.Description = reqData.Description
	tour.Location = reqData.Location
	tour.State = reqData.State
	tour.Date = reqData.Date
	tour.PriceNgn = reqData.PriceNgn
	tour.PriceUsd = reqData.PriceUsd
	tour.MaxParticipants = reqData.MaxParticipants
	tour.ThumbnailURL = reqData.ThumbnailURL
	if reqData.IsActive != nil {
		tour.IsActive = *reqData.IsActive
	}

	if err := db.Save(&tour).Error; err != nil {
		log.Printf("Error updating tour %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tour!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tour updated successfully!", tour)
}

// DeleteTour removes a tour
func DeleteTour(c *fiber.Ctx) error {
	id, _ := c.Locals("tourId").(int)

	db := database.Database.Db

	var tour models.Tour
	if err := db.First(&tour, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tour not found!", nil)
	}

	if err := db.Delete(&tour).Error; err != nil {
		log.Printf("Error deleting tour %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tour!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tour deleted successfully!", nil)
}

// ListTours returns every tour, active or not
func ListTours(c *fiber.Ctx) error {
	var tours []models.Tour
	if err := database.Database.Db.Order("created_at DESC").Find(&tours).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tours!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tours fetched successfully!", tours)
}
