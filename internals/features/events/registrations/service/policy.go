// Package service holds the registration capacity/waitlist policy.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aicommunity_backend/internals/constants"
	eventModel "aicommunity_backend/internals/features/events/events/model"
	eventService "aicommunity_backend/internals/features/events/events/service"
	"aicommunity_backend/internals/features/events/registrations/model"
)

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrRegistrationClosed    = errors.New("registration is closed for this event")
	ErrDuplicateRegistration = errors.New("this email is already registered for the event")
)

// Decide is the capacity/waitlist rule: WAITLISTED when a capacity is
// defined and the confirmed count has reached it, CONFIRMED otherwise.
func Decide(capacity *int, confirmed int64) string {
	if capacity != nil && confirmed >= int64(*capacity) {
		return constants.RegistrationWaitlisted
	}
	return constants.RegistrationConfirmed
}

// Availability is the derived, non-persisted capacity projection.
// Remaining is nil when the event has no capacity limit.
type Availability struct {
	Capacity  *int   `json:"capacity"`
	Confirmed int64  `json:"confirmed"`
	Remaining *int64 `json:"remaining"`
	IsFull    bool   `json:"is_full"`
}

func ComputeAvailability(capacity *int, confirmed int64) Availability {
	a := Availability{Capacity: capacity, Confirmed: confirmed}
	if capacity == nil {
		return a
	}
	remaining := int64(*capacity) - confirmed
	if remaining < 0 {
		remaining = 0
	}
	a.Remaining = &remaining
	a.IsFull = confirmed >= int64(*capacity)
	return a
}

func confirmedCount(db *gorm.DB, eventID uuid.UUID) (int64, error) {
	var n int64
	err := db.Model(&model.RegistrationModel{}).
		Where("registration_event_id = ? AND registration_status = ?", eventID, constants.RegistrationConfirmed).
		Count(&n).Error
	return n, err
}

// GetAvailability recomputes the projection per request; there is no cache.
func GetAvailability(db *gorm.DB, eventID uuid.UUID) (Availability, error) {
	var event eventModel.EventModel
	if err := db.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Availability{}, ErrEventNotFound
		}
		return Availability{}, err
	}
	confirmed, err := confirmedCount(db, eventID)
	if err != nil {
		return Availability{}, err
	}
	return ComputeAvailability(event.EventCapacity, confirmed), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateRegistrationTx decides CONFIRMED vs WAITLISTED and inserts the
// registration in a single transaction. The event row is locked FOR UPDATE
// so two near-capacity submissions cannot both read "under capacity" and
// overshoot.
func CreateRegistrationTx(db *gorm.DB, eventID uuid.UUID, name, email string) (model.RegistrationModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var reg model.RegistrationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var event eventModel.EventModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&event, "event_id = ? AND event_is_published = true", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		if !eventService.RegistrationOpen(event, time.Now()) {
			return ErrRegistrationClosed
		}

		// app-level duplicate check; the unique index is the backstop
		var dup int64
		if err := tx.Model(&model.RegistrationModel{}).
			Where("registration_event_id = ? AND registration_email = ?", eventID, email).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateRegistration
		}

		confirmed, err := confirmedCount(tx, eventID)
		if err != nil {
			return err
		}

		reg = model.RegistrationModel{
			RegistrationEventID: eventID,
			RegistrationName:    name,
			RegistrationEmail:   email,
			RegistrationStatus:  Decide(event.EventCapacity, confirmed),
		}
		if err := tx.Create(&reg).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateRegistration
			}
			return err
		}
		return nil
	})
	return reg, err
}

// CancelRegistrationTx marks a registration CANCELLED. No waitlist
// promotion happens here.
func CancelRegistrationTx(db *gorm.DB, registrationID uuid.UUID) (model.RegistrationModel, error) {
	var reg model.RegistrationModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reg, "registration_id = ?", registrationID).Error; err != nil {
			return err
		}
		reg.RegistrationStatus = constants.RegistrationCancelled
		return tx.Model(&model.RegistrationModel{}).
			Where("registration_id = ?", registrationID).
			Update("registration_status", constants.RegistrationCancelled).Error
	})
	return reg, err
}
