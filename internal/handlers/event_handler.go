package handlers

import (
	"fmt"
	"time"

	"eventia/internal/errors"
	"eventia/internal/middleware"
	"eventia/internal/models"
	"eventia/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EventHandler handles HTTP requests for events and enrollments.
type EventHandler struct {
	eventService      *services.EventService
	enrollmentService *services.EnrollmentService
	validate          *validator.Validate
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *services.EventService, enrollmentService *services.EnrollmentService) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		enrollmentService: enrollmentService,
		validate:          validator.New(),
	}
}

// RegisterPublicRoutes registers the routes that need no authentication:
// listing, search and event detail.
func (h *EventHandler) RegisterPublicRoutes(router fiber.Router) {
	publicRoutes := router.Group("/events")
	publicRoutes.Get("/", h.HandleGetEvents)
	publicRoutes.Get("/search", h.HandleSearchEvents)
	publicRoutes.Get("/:id", h.HandleGetEventByID)
}

// RegisterProtectedRoutes registers mutations and enrollment, which act on the
// authenticated user.
func (h *EventHandler) RegisterProtectedRoutes(router fiber.Router) {
	protectedRoutes := router.Group("/events")
	protectedRoutes.Post("/", h.HandleCreateEvent)
	protectedRoutes.Put("/:id", h.HandleUpdateEvent)
	protectedRoutes.Delete("/:id", h.HandleDeleteEvent)
	protectedRoutes.Post("/:id/enrollment", h.HandleEnroll)
	protectedRoutes.Delete("/:id/enrollment", h.HandleUnenroll)
	protectedRoutes.Get("/:id/enrollment", h.HandleGetEnrollmentStatus)
}

// HandleGetEvents retrieves a page of events.
func (h *EventHandler) HandleGetEvents(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	events, err := h.eventService.GetEvents(page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(events)
}

// HandleSearchEvents filters events by name, minimum start date and tag.
func (h *EventHandler) HandleSearchEvents(c *fiber.Ctx) error {
	name := c.Query("name")
	tag := c.Query("tag")

	var startFrom *time.Time
	if raw := c.Query("startdate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "startdate must be RFC3339 or YYYY-MM-DD",
			})
		}
		startFrom = &parsed
	}

	events, err := h.eventService.SearchEvents(name, startFrom, tag)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(events)
}

// HandleGetEventByID retrieves a single event with its current enrollment count.
func (h *EventHandler) HandleGetEventByID(c *fiber.Ctx) error {
	eventID := c.Params("id")
	event, err := h.eventService.GetEventByID(eventID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}

	count, err := h.enrollmentService.EnrollmentCount(eventID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}

	return c.JSON(fiber.Map{
		"event":            event,
		"enrollment_count": count,
	})
}

// CreateEventRequest represents the request body for creating an event.
type CreateEventRequest struct {
	Name                 string    `json:"name" validate:"required,min=3,max=100"`
	Description          string    `json:"description" validate:"required,min=3,max=500"`
	CategoryID           *string   `json:"id_event_category"`
	EventLocationID      string    `json:"id_event_location" validate:"required"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	DurationInMinutes    int       `json:"duration_in_minutes" validate:"gte=0"`
	Price                float64   `json:"price" validate:"gte=0"`
	EnabledForEnrollment bool      `json:"enabled_for_enrollment"`
	MaxAssistance        int       `json:"max_assistance" validate:"gte=0"`
	Tags                 []string  `json:"tags"`
}

// HandleCreateEvent creates a new event owned by the authenticated user.
func (h *EventHandler) HandleCreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	event := &models.Event{
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		EventLocationID:      req.EventLocationID,
		StartDate:            req.StartDate,
		DurationInMinutes:    req.DurationInMinutes,
		Price:                req.Price,
		EnabledForEnrollment: req.EnabledForEnrollment,
		MaxAssistance:        req.MaxAssistance,
	}

	created, err := h.eventService.CreateEvent(event, req.Tags, middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateEvent applies a partial update to an event owned by the
// authenticated user. Only fields present in the body are touched.
func (h *EventHandler) HandleUpdateEvent(c *fiber.Ctx) error {
	var update models.EventUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.eventService.UpdateEvent(c.Params("id"), middleware.UserID(c), update); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Event updated successfully",
	})
}

// HandleDeleteEvent deletes an event owned by the authenticated user.
func (h *EventHandler) HandleDeleteEvent(c *fiber.Ctx) error {
	if err := h.eventService.DeleteEvent(c.Params("id"), middleware.UserID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Event deleted successfully",
	})
}

// HandleEnroll enrolls the authenticated user in the event.
func (h *EventHandler) HandleEnroll(c *fiber.Ctx) error {
	enrollment, err := h.enrollmentService.Enroll(c.Params("id"), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// HandleUnenroll removes the authenticated user's enrollment.
func (h *EventHandler) HandleUnenroll(c *fiber.Ctx) error {
	if err := h.enrollmentService.Unenroll(c.Params("id"), middleware.UserID(c)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"message": "Enrollment cancelled successfully",
	})
}

// HandleGetEnrollmentStatus reports whether the authenticated user is
// enrolled in the event.
func (h *EventHandler) HandleGetEnrollmentStatus(c *fiber.Ctx) error {
	enrolled, err := h.enrollmentService.IsEnrolled(c.Params("id"), middleware.UserID(c))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.Status(httpErr.StatusCode).JSON(httpErr.ToErrorResponse())
	}
	return c.JSON(fiber.Map{
		"enrolled": enrolled,
	})
}
