package controller

import (
	"time"

	"aicommunity_backend/internals/features/content/opportunities/dto"
	"aicommunity_backend/internals/features/content/opportunities/model"
	helper "aicommunity_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type OpportunityController struct {
	DB *gorm.DB
}

func NewOpportunityController(db *gorm.DB) *OpportunityController {
	return &OpportunityController{DB: db}
}

var validateOpportunity = validator.New()

func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateOpportunity handles POST /api/a/opportunities.
func (ctrl *OpportunityController) CreateOpportunity(c *fiber.Ctx) error {
	var req dto.CreateOpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOpportunity.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	deadline, err := parseDeadline(req.OpportunityDeadline)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "opportunity_deadline must be RFC3339")
	}

	opp := model.OpportunityModel{
		OpportunityTitle:       req.OpportunityTitle,
		OpportunityCompany:     req.OpportunityCompany,
		OpportunityType:        req.OpportunityType,
		OpportunityDescription: req.OpportunityDescription,
		OpportunityLocation:    req.OpportunityLocation,
		OpportunityApplyURL:    req.OpportunityApplyURL,
		OpportunityTags:        pq.StringArray(req.OpportunityTags),
		OpportunityDeadline:    deadline,
		OpportunityIsActive:    true,
	}
	if err := ctrl.DB.Create(&opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create opportunity")
	}
	return helper.JsonCreated(c, "Opportunity created", dto.ToOpportunityDTO(opp))
}

// GetAllOpportunities handles GET /api/opportunities. Active listings
// whose deadline has not passed.
func (ctrl *OpportunityController) GetAllOpportunities(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 50)

	q := ctrl.DB.Model(&model.OpportunityModel{}).
		Where("opportunity_is_active = ?", true).
		Where("opportunity_deadline IS NULL OR opportunity_deadline > ?", time.Now())
	if typ := c.Query("type"); typ != "" {
		q = q.Where("opportunity_type = ?", typ)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(opportunity_tags)", tag)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("opportunity_title ILIKE ? OR opportunity_company ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count opportunities")
	}

	var opps []model.OpportunityModel
	if err := q.Order("opportunity_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&opps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch opportunities")
	}

	return helper.JsonList(c, "", dto.ToOpportunityDTOList(opps), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GetAllOpportunitiesAdmin handles GET /api/a/opportunities including
// inactive and expired listings.
func (ctrl *OpportunityController) GetAllOpportunitiesAdmin(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.OpportunityModel{})
	if typ := c.Query("type"); typ != "" {
		q = q.Where("opportunity_type = ?", typ)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("opportunity_title ILIKE ? OR opportunity_company ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count opportunities")
	}

	var opps []model.OpportunityModel
	if err := q.Order("opportunity_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&opps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch opportunities")
	}

	return helper.JsonList(c, "", dto.ToOpportunityDTOList(opps), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *OpportunityController) findOpportunity(id string) (*model.OpportunityModel, error) {
	oppID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var opp model.OpportunityModel
	if err := ctrl.DB.First(&opp, "opportunity_id = ?", oppID).Error; err != nil {
		return nil, err
	}
	return &opp, nil
}

// GetOpportunity handles GET /api/opportunities/:id.
func (ctrl *OpportunityController) GetOpportunity(c *fiber.Ctx) error {
	opp, err := ctrl.findOpportunity(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}
	return helper.JsonOK(c, "OK", dto.ToOpportunityDTO(*opp))
}

// UpdateOpportunity handles PUT /api/a/opportunities/:id with partial fields.
func (ctrl *OpportunityController) UpdateOpportunity(c *fiber.Ctx) error {
	opp, err := ctrl.findOpportunity(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}

	var req dto.UpdateOpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOpportunity.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.OpportunityTitle != nil {
		updates["opportunity_title"] = *req.OpportunityTitle
	}
	if req.OpportunityCompany != nil {
		updates["opportunity_company"] = *req.OpportunityCompany
	}
	if req.OpportunityType != nil {
		updates["opportunity_type"] = *req.OpportunityType
	}
	if req.OpportunityDescription != nil {
		updates["opportunity_description"] = *req.OpportunityDescription
	}
	if req.OpportunityLocation != nil {
		updates["opportunity_location"] = *req.OpportunityLocation
	}
	if req.OpportunityApplyURL != nil {
		updates["opportunity_apply_url"] = *req.OpportunityApplyURL
	}
	if req.OpportunityTags != nil {
		updates["opportunity_tags"] = pq.StringArray(*req.OpportunityTags)
	}
	if req.OpportunityDeadline != nil {
		deadline, err := parseDeadline(req.OpportunityDeadline)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "opportunity_deadline must be RFC3339")
		}
		updates["opportunity_deadline"] = deadline
	}
	if req.OpportunityIsActive != nil {
		updates["opportunity_is_active"] = *req.OpportunityIsActive
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(opp).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update opportunity")
		}
	}

	refreshed, err := ctrl.findOpportunity(opp.OpportunityID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload opportunity")
	}
	return helper.JsonUpdated(c, "Opportunity updated", dto.ToOpportunityDTO(*refreshed))
}

// DeleteOpportunity handles DELETE /api/a/opportunities/:id.
func (ctrl *OpportunityController) DeleteOpportunity(c *fiber.Ctx) error {
	opp, err := ctrl.findOpportunity(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Opportunity not found")
	}
	if err := ctrl.DB.Delete(opp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete opportunity")
	}
	return helper.JsonDeleted(c, "Opportunity deleted", fiber.Map{"opportunity_id": opp.OpportunityID})
}
