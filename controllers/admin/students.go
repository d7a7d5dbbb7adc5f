package adminController

import (
	"openstudents/database"
	"openstudents/middleware"
	"openstudents/models"

	"github.com/gofiber/fiber/v2"
)

// ListStudents returns every registered student with their profile
func ListStudents(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("role = ? AND is_deleted = ?", models.RoleStudent, false).
		Order("created_at DESC").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}

	profilesByUser := make(map[uint]models.Profile)
	enrollmentCounts := make(map[uint]int64)
	if len(userIDs) > 0 {
		var profiles []models.Profile
		db.Where("user_id IN ?", userIDs).Find(&profiles)
		for _, p := range profiles {
			profilesByUser[p.UserID] = p
		}

		type countRow struct {
			UserID uint
			Count  int64
		}
		var counts []countRow
		db.Model(&models.Enrollment{}).
			Select("user_id, COUNT(*) as count").
			Where("user_id IN ? AND is_deleted = ?", userIDs, false).
			Group("user_id").
			Scan(&counts)
		for _, row := range counts {
			enrollmentCounts[row.UserID] = row.Count
		}
	}

	type studentRow struct {
		models.User
		Profile     *models.Profile `json:"profile,omitempty"`
		Enrollments int64           `json:"enrollments"`
	}
	rows := make([]studentRow, 0, len(users))
	for _, u := range users {
		row := studentRow{User: u, Enrollments: enrollmentCounts[u.ID]}
		if p, ok := profilesByUser[u.ID]; ok {
			profile := p
			row.Profile = &profile
		}
		rows = append(rows, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", rows)
}

// ListEnrollments returns every enrollment, newest first. An optional status
// query filters by payment status.
func ListEnrollments(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Enrollment{}).Where("is_deleted = ?", false)
	if status := c.Query("status"); status != "" {
		query = query.Where("payment_status = ?", status)
	}

	var enrollments []models.Enrollment
	if err := query.Order("created_at DESC").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// ListCertificates returns every issued certificate, newest first
func ListCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.Database.Db.Order("issued_at DESC").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}
