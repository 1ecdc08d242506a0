package services

import (
	"time"

	"eventia/internal/models"
	"eventia/internal/repositories"
	"eventia/pkg/rabbitmq"

	"github.com/rs/zerolog"
)

// EnrollmentService tracks which users are enrolled in which events. The
// capacity and timing checks themselves run atomically inside the repository;
// this service supplies the clock, logs outcomes and publishes enrollment
// events to RabbitMQ.
type EnrollmentService struct {
	enrollmentRepo repositories.EnrollmentRepository
	mqClient       *rabbitmq.Client
	log            *zerolog.Logger
	now            func() time.Time
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollmentRepo repositories.EnrollmentRepository, mqClient *rabbitmq.Client, log *zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		mqClient:       mqClient,
		log:            log,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin the clock.
func (s *EnrollmentService) WithClock(now func() time.Time) *EnrollmentService {
	s.now = now
	return s
}

// Enroll registers the user for the event. Preconditions are checked in order
// by the repository, first failing condition wins: existing enrollment, event
// existence, capacity, start date, enrollment flag.
func (s *EnrollmentService) Enroll(eventID, userID string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.Enroll(eventID, userID, s.now())
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("user enrolled")
	s.publish("enrollment.created", eventID, userID, enrollment.RegistrationDateTime)
	return enrollment, nil
}

// Unenroll removes the user's enrollment for the event.
func (s *EnrollmentService) Unenroll(eventID, userID string) error {
	now := s.now()
	if err := s.enrollmentRepo.Unenroll(eventID, userID, now); err != nil {
		return err
	}

	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("user unenrolled")
	s.publish("enrollment.cancelled", eventID, userID, now)
	return nil
}

// IsEnrolled reports whether the user holds an enrollment for the event.
func (s *EnrollmentService) IsEnrolled(eventID, userID string) (bool, error) {
	return s.enrollmentRepo.IsEnrolled(eventID, userID)
}

// EnrollmentCount returns the current number of enrollments for the event.
func (s *EnrollmentService) EnrollmentCount(eventID string) (int64, error) {
	return s.enrollmentRepo.CountForEvent(eventID)
}

// publish sends an enrollment change to RabbitMQ. Publishing is best-effort:
// the enrollment is already committed, so a broker failure is logged and the
// caller still gets a success.
func (s *EnrollmentService) publish(action, eventID, userID string, at time.Time) {
	if s.mqClient == nil {
		return
	}
	msg := rabbitmq.EnrollmentMessage{
		Action:     action,
		EventID:    eventID,
		UserID:     userID,
		OccurredAt: at,
	}
	if err := s.mqClient.PublishEnrollmentEvent(msg); err != nil {
		s.log.Warn().Err(err).Str("event_id", eventID).Msg("failed to publish enrollment event")
	}
}
