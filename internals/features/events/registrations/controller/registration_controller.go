package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aicommunity_backend/internals/constants"
	eventModel "aicommunity_backend/internals/features/events/events/model"
	"aicommunity_backend/internals/features/events/registrations/dto"
	"aicommunity_backend/internals/features/events/registrations/model"
	"aicommunity_backend/internals/features/events/registrations/service"
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/mailer"
)

var validateRegistration = validator.New()

// allowed sort columns for the admin list
var registrationSortColumns = map[string]string{
	"created_at": "registration_created_at",
	"name":       "registration_name",
	"email":      "registration_email",
	"status":     "registration_status",
}

type RegistrationController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewRegistrationController(db *gorm.DB, m *mailer.Mailer) *RegistrationController {
	return &RegistrationController{DB: db, Mailer: m}
}

// =======================
// Create Registration (public)
// =======================
func (ctrl *RegistrationController) CreateRegistration(c *fiber.Ctx) error {
	var body dto.CreateRegistrationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	eventID, err := uuid.Parse(body.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	reg, err := service.CreateRegistrationTx(ctrl.DB, eventID, body.Name, body.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, service.ErrRegistrationClosed):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateRegistration):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			log.Println("[ERROR] create registration:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create registration")
		}
	}

	ctrl.notifyRegistrant(reg)

	return helper.JsonCreated(c, "Registration received", dto.ToRegistrationDTO(reg))
}

// notifyRegistrant sends the confirmation/waitlist mail off the request
// path. Send failures are logged and never surfaced.
func (ctrl *RegistrationController) notifyRegistrant(reg model.RegistrationModel) {
	if ctrl.Mailer == nil {
		return
	}
	var event eventModel.EventModel
	if err := ctrl.DB.First(&event, "event_id = ?", reg.RegistrationEventID).Error; err != nil {
		log.Println("[WARN] mail: event lookup:", err)
		return
	}
	go func() {
		var err error
		if reg.RegistrationStatus == constants.RegistrationWaitlisted {
			err = ctrl.Mailer.SendRegistrationWaitlisted(reg.RegistrationEmail, reg.RegistrationName, event.EventTitle)
		} else {
			err = ctrl.Mailer.SendRegistrationConfirmed(reg.RegistrationEmail, reg.RegistrationName, event.EventTitle)
		}
		if err != nil {
			log.Println("[WARN] mail send:", err)
		}
	}()
}

// =======================
// Get All Registrations (admin, paginated)
// Query: ?event_id=&page=&limit=&sort_by=&order=&status=&search=
// =======================
func (ctrl *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.RegistrationModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event_id")
		}
		q = q.Where("registration_event_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("registration_status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("registration_name ILIKE ? OR registration_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	sortCol, ok := registrationSortColumns[c.Query("sort_by")]
	if !ok {
		sortCol = "registration_created_at"
	}
	order := "DESC"
	if c.Query("order") == "asc" {
		order = "ASC"
	}

	var regs []model.RegistrationModel
	if err := q.Order(sortCol + " " + order).
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	resp := make([]dto.RegistrationDTO, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationDTO(r))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Cancel Registration (admin). No waitlist promotion.
// =======================
func (ctrl *RegistrationController) CancelRegistration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	reg, err := service.CancelRegistrationTx(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel registration")
	}

	return helper.JsonUpdated(c, "Registration cancelled", dto.ToRegistrationDTO(reg))
}

// =======================
// Delete Registration (admin)
// =======================
func (ctrl *RegistrationController) DeleteRegistration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	if err := ctrl.DB.Delete(&model.RegistrationModel{}, "registration_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}

	return helper.JsonDeleted(c, "Registration deleted", fiber.Map{"registration_id": id.String()})
}
