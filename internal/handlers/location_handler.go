package handlers

import (
	"fmt"

	"eventia/internal/errors"
	"eventia/internal/middleware"
	"eventia/internal/models"
	"eventia/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LocationHandler handles HTTP requests for event locations. Every route is
// scoped to the authenticated user's own venues.
type LocationHandler struct {
	locationService *services.LocationService
	validate        *validator.Validate
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the event location routes with the Fiber app.
func (h *LocationHandler) RegisterRoutes(router fiber.Router) {
	locationRoutes := router.Group("/event-locations")
	locationRoutes.Get("/", h.HandleGetLocations)
	locationRoutes.Get("/:id", h.HandleGetLocationByID)
	locationRoutes.Post("/", h.HandleCreateLocation)
	locationRoutes.Put("/:id", h.HandleUpdateLocation)
	locationRoutes.Delete("/:id", h.HandleDeleteLocation)
}

// HandleGetLocations retrieves a page of the authenticated user's venues.
func (h *LocationHandler) HandleGetLocations(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	locations, err := h.locationService.GetOwnLocations(middleware.UserID(c), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(locations)
}

// HandleGetLocationByID retrieves one of the authenticated user's venues.
func (h *LocationHandler) HandleGetLocationByID(c *fiber.Ctx) error {
	location, err := h.locationService.GetOwnLocation(c.Params("id"), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(location)
}

// HandleCreateLocation creates a new venue owned by the authenticated user.
func (h *LocationHandler) HandleCreateLocation(c *fiber.Ctx) error {
	var location models.EventLocation
	if err := c.BodyParser(&location); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(location); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	created, err := h.locationService.CreateLocation(&location, middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateLocation applies a partial update to one of the authenticated
// user's venues.
func (h *LocationHandler) HandleUpdateLocation(c *fiber.Ctx) error {
	var update models.EventLocationUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.locationService.UpdateLocation(c.Params("id"), middleware.UserID(c), update); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Event location updated successfully",
	})
}

// HandleDeleteLocation deletes one of the authenticated user's venues.
func (h *LocationHandler) HandleDeleteLocation(c *fiber.Ctx) error {
	if err := h.locationService.DeleteLocation(c.Params("id"), middleware.UserID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Event location deleted successfully",
	})
}
