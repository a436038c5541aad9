package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitkart/FitKart/app/models"
	"github.com/fitkart/FitKart/internal/pkg/session"
	"github.com/fitkart/FitKart/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and opens a session for it.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, a valid email and a password of at least 6 characters are required",
		})
	}

	if _, err := repos().User.GetByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already registered",
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storageError(c)
	}

	if err := repos().User.Create(user); err != nil {
		log.Printf("user create failed: %v", err)
		return storageError(c)
	}

	if err := openSession(c, user); err != nil {
		log.Printf("session open failed: %v", err)
		return storageError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    userJSON(user),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and opens a session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email and password are required",
		})
	}

	user, err := repos().User.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		return storageError(c)
	}
	if !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}
	if !user.IsActive() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Account is not active",
		})
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := repos().User.Update(user); err != nil {
		log.Printf("last login update failed: %v", err)
	}

	if err := openSession(c, user); err != nil {
		log.Printf("session open failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true, "user": userJSON(user)})
}

// HandleLogout destroys the current session.
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSession(c)
	if err != nil {
		return storageError(c)
	}
	if err := sess.Destroy(); err != nil {
		log.Printf("session destroy failed: %v", err)
		return storageError(c)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleMe returns the logged-in user's profile.
func HandleMe(c *fiber.Ctx) error {
	user, err := repos().User.GetByID(usercontext.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "not logged in",
			})
		}
		return storageError(c)
	}
	return c.JSON(fiber.Map{"user": userJSON(user)})
}

func openSession(c *fiber.Ctx, user *models.User) error {
	sess, err := session.GetSession(c)
	if err != nil {
		return err
	}
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyRole, string(user.Role))
	return sess.Save()
}

func userJSON(u *models.User) fiber.Map {
	return fiber.Map{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"role":          u.Role,
		"status":        u.Status,
		"last_login_at": u.LastLoginAt,
		"created_at":    u.CreatedAt,
	}
}
