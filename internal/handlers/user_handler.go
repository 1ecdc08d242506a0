package handlers

import (
	"eventia/internal/errors"
	"eventia/internal/middleware"
	"eventia/internal/models"
	"eventia/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterPublicRoutes registers the public user listing.
func (h *UserHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/users", h.HandleGetUsers)
}

// RegisterProtectedRoutes registers the profile routes, which act on the
// authenticated user only.
func (h *UserHandler) RegisterProtectedRoutes(router fiber.Router) {
	profileRoutes := router.Group("/users")
	profileRoutes.Get("/profile", h.HandleGetProfile)
	profileRoutes.Put("/profile", h.HandleUpdateProfile)
	profileRoutes.Delete("/profile", h.HandleDeleteProfile)
}

// HandleGetUsers retrieves all users without their credentials.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// HandleGetProfile retrieves the authenticated user's own record.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleUpdateProfile applies a self-service partial update.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.userService.UpdateProfile(middleware.UserID(c), update); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// HandleDeleteProfile removes the authenticated user's account.
func (h *UserHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(middleware.UserID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}
