package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/events/events/dto"
	"aicommunity_backend/internals/features/events/events/model"
	"aicommunity_backend/internals/features/events/events/service"
	regService "aicommunity_backend/internals/features/events/registrations/service"
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/storage"
)

var validateEvent = validator.New()

type EventController struct {
	DB    *gorm.DB
	Blobs storage.BlobService
}

func NewEventController(db *gorm.DB, blobs storage.BlobService) *EventController {
	return &EventController{DB: db, Blobs: blobs}
}

func parseEventTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// =======================
// Create Event (admin, multipart with optional thumbnail)
// =======================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	start, err := parseEventTime(body.StartTime)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"start_time": {"must be RFC3339"}})
	}
	end, err := parseEventTime(body.EndTime)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"end_time": {"must be RFC3339"}})
	}
	if !end.After(start) {
		return helper.JsonValidationError(c, map[string][]string{"end_time": {"must be after start_time"}})
	}
	var deadline *time.Time
	if body.RegistrationDeadline != "" {
		d, err := parseEventTime(body.RegistrationDeadline)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"registration_deadline": {"must be RFC3339"}})
		}
		deadline = &d
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "events",
		SlugColumn:  "event_slug",
		DefaultBase: "event",
	}, body.Title)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	event := model.EventModel{
		EventTitle:                body.Title,
		EventSlug:                 slug,
		EventDescription:          body.Description,
		EventLocation:             body.Location,
		EventStartTime:            start,
		EventEndTime:              end,
		EventCapacity:             body.Capacity,
		EventRegistrationDeadline: deadline,
	}
	if body.IsPublished != nil {
		event.EventIsPublished = *body.IsPublished
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, err := ctrl.Blobs.UploadImage(c.UserContext(), "events", fh)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Thumbnail upload failed: "+err.Error())
			}
			event.EventThumbnailURL = &url
		}
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(event, service.Phase(event, time.Now())))
}

// =======================
// Get All Events (public, paginated)
// Query: ?page=&per_page=&search=&phase=upcoming|ongoing|past
// =======================
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctrl.DB.Model(&model.EventModel{}).Where("event_is_published = true")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("event_title ILIKE ? OR event_description ILIKE ?", like, like)
	}
	switch c.Query("phase") {
	case "upcoming":
		q = q.Where("event_start_time > ?", now)
	case "ongoing":
		q = q.Where("event_start_time <= ? AND event_end_time >= ?", now, now)
	case "past":
		q = q.Where("event_end_time < ?", now)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_start_time ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	resp := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventDTO(e, service.Phase(e, now)))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Get All Events (admin; includes drafts)
// =======================
func (ctrl *EventController) GetAllEventsAdmin(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctrl.DB.Model(&model.EventModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("event_title ILIKE ?", like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.Order("event_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	resp := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventDTO(e, service.Phase(e, now)))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *EventController) findEvent(c *fiber.Ctx, publishedOnly bool) (model.EventModel, error) {
	var event model.EventModel
	idOrSlug := c.Params("id")

	q := ctrl.DB
	if publishedOnly {
		q = q.Where("event_is_published = true")
	}

	if id, err := uuid.Parse(idOrSlug); err == nil {
		err = q.First(&event, "event_id = ?", id).Error
		return event, err
	}
	err := q.First(&event, "event_slug = ?", idOrSlug).Error
	return event, err
}

// =======================
// Get Event detail (public; by id or slug) + availability
// =======================
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	event, err := ctrl.findEvent(c, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event")
	}

	availability, err := regService.GetAvailability(ctrl.DB, event.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute availability")
	}

	return helper.JsonOK(c, "", dto.ToEventDetailDTO(event, service.Phase(event, time.Now()), availability))
}

// =======================
// Get Event availability only
// =======================
func (ctrl *EventController) GetEventAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	availability, err := regService.GetAvailability(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, regService.ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute availability")
	}

	return helper.JsonOK(c, "", availability)
}

// =======================
// Update Event (admin, multipart with optional new thumbnail)
// =======================
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if body.Title != nil {
		event.EventTitle = *body.Title
	}
	if body.Description != nil {
		event.EventDescription = *body.Description
	}
	if body.Location != nil {
		event.EventLocation = *body.Location
	}
	if body.StartTime != nil {
		t, err := parseEventTime(*body.StartTime)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"start_time": {"must be RFC3339"}})
		}
		event.EventStartTime = t
	}
	if body.EndTime != nil {
		t, err := parseEventTime(*body.EndTime)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{"end_time": {"must be RFC3339"}})
		}
		event.EventEndTime = t
	}
	if !event.EventEndTime.After(event.EventStartTime) {
		return helper.JsonValidationError(c, map[string][]string{"end_time": {"must be after start_time"}})
	}
	if body.Capacity != nil {
		event.EventCapacity = body.Capacity
	}
	if body.RegistrationDeadline != nil {
		if *body.RegistrationDeadline == "" {
			event.EventRegistrationDeadline = nil
		} else {
			t, err := parseEventTime(*body.RegistrationDeadline)
			if err != nil {
				return helper.JsonValidationError(c, map[string][]string{"registration_deadline": {"must be RFC3339"}})
			}
			event.EventRegistrationDeadline = &t
		}
	}
	if body.IsPublished != nil {
		event.EventIsPublished = *body.IsPublished
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, err := ctrl.Blobs.UploadImage(c.UserContext(), "events", fh)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Thumbnail upload failed: "+err.Error())
			}
			if event.EventThumbnailURL != nil {
				if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *event.EventThumbnailURL); err != nil {
					log.Println("[WARN] old thumbnail delete:", err)
				}
			}
			event.EventThumbnailURL = &url
		}
	}

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(event, service.Phase(event, time.Now())))
}

// =======================
// Delete Event (admin). Thumbnail cleanup is best-effort: a storage
// failure is logged, the record is still gone.
// =======================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event")
	}

	if err := ctrl.DB.Delete(&model.EventModel{}, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	if event.EventThumbnailURL != nil {
		if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *event.EventThumbnailURL); err != nil {
			log.Println("[WARN] thumbnail delete:", err)
		}
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id.String()})
}
