package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/realtime"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

type trainerApplicationRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Specialty  string `json:"specialty"`
	Experience int    `json:"experienceYears"`
	Message    string `json:"message"`
}

// HandleCreateTrainerApplication files a trainer application for the
// logged-in user, stores an admin notification and fans the event out
// to the admin room.
func HandleCreateTrainerApplication(c *fiber.Ctx) error {
	var req trainerApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	userID := usercontext.GetUserID(c)
	app := &models.TrainerApplication{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Message:    req.Message,
		Status:     models.TrainerStatusPending,
	}
	if err := validator.New().Struct(app); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, a valid email and a specialty are required",
		})
	}

	if existing, err := repos().Trainer.ListByStatus(models.TrainerStatusPending, 0, 1000); err == nil {
		for i := range existing {
			if existing[i].UserID == userID {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "You already have a pending application",
				})
			}
		}
	}

	if err := repos().Trainer.Create(app); err != nil {
		log.Printf("trainer application create failed: %v", err)
		return storageError(c)
	}

	payload, _ := json.Marshal(fiber.Map{
		"applicationId": app.ID,
		"name":          app.Name,
		"specialty":     app.Specialty,
	})
	n := &models.Notification{
		Scope:   models.NotificationScopeAdmin,
		Type:    "trainer-application",
		Payload: string(payload),
	}
	if err := repos().Notification.Create(n); err != nil {
		log.Printf("admin notification persist failed: %v", err)
	}
	if hub := realtime.Global(); hub != nil {
		hub.EmitToAdmins(realtime.EventNewTrainerApplication, json.RawMessage(payload))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"application": app,
	})
}

// HandleAdminListTrainerApplications lists applications by status
// (admin only).
func HandleAdminListTrainerApplications(c *fiber.Ctx) error {
	status := c.Query("status", models.TrainerStatusPending)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	apps, err := repos().Trainer.ListByStatus(status, offset, limit)
	if err != nil {
		log.Printf("trainer application list failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"applications": apps})
}

// HandleAdminReviewTrainerApplication approves or rejects a pending
// application. Approval promotes the applicant to the trainer role and
// notifies them in their user room.
func HandleAdminReviewTrainerApplication(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	var req struct {
		Decision string `json:"decision"`
	}
	if err := c.BodyParser(&req); err != nil ||
		(req.Decision != models.TrainerStatusApproved && req.Decision != models.TrainerStatusRejected) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "decision must be approved or rejected",
		})
	}

	app, err := repos().Trainer.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return storageError(c)
	}
	if !app.IsPending() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Application already reviewed",
		})
	}

	reviewerID := usercontext.GetUserID(c)
	app.Status = req.Decision
	app.ReviewedBy = &reviewerID
	if err := repos().Trainer.Update(app); err != nil {
		log.Printf("trainer application update failed: %v", err)
		return storageError(c)
	}

	if req.Decision == models.TrainerStatusApproved {
		user, err := repos().User.GetByID(app.UserID)
		if err != nil {
			log.Printf("applicant lookup failed: %v", err)
			return storageError(c)
		}
		user.Role = models.RoleTrainer
		if err := repos().User.Update(user); err != nil {
			log.Printf("role promotion failed: %v", err)
			return storageError(c)
		}
	}

	payload, _ := json.Marshal(fiber.Map{
		"applicationId": app.ID,
		"status":        app.Status,
		"message":       fmt.Sprintf("Your trainer application was %s", app.Status),
	})
	n := &models.Notification{
		UserID:  app.UserID,
		Scope:   models.NotificationScopeUser,
		Type:    "trainer-application",
		Payload: string(payload),
	}
	if err := repos().Notification.Create(n); err != nil {
		log.Printf("user notification persist failed: %v", err)
	}
	if hub := realtime.Global(); hub != nil {
		hub.EmitToUser(app.UserID, realtime.EventNewNotification, json.RawMessage(payload))
	}

	return c.JSON(fiber.Map{"success": true, "application": app})
}
