package controller

import (
	"log"

	"aicommunity_backend/internals/constants"
	"aicommunity_backend/internals/features/content/sponsors/dto"
	"aicommunity_backend/internals/features/content/sponsors/model"
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// tierRank orders sponsor listings by prominence.
var tierRank = map[string]int{
	constants.TierPlatinum:  0,
	constants.TierGold:      1,
	constants.TierSilver:    2,
	constants.TierCommunity: 3,
}

type SponsorController struct {
	DB    *gorm.DB
	Blobs storage.BlobService
}

func NewSponsorController(db *gorm.DB, blobs storage.BlobService) *SponsorController {
	return &SponsorController{DB: db, Blobs: blobs}
}

var validateSponsor = validator.New()

// CreateSponsor handles POST /api/a/sponsors (multipart, optional logo).
func (ctrl *SponsorController) CreateSponsor(c *fiber.Ctx) error {
	var req dto.CreateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSponsor.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	sponsor := model.SponsorModel{
		SponsorName:        req.SponsorName,
		SponsorTier:        req.SponsorTier,
		SponsorDescription: req.SponsorDescription,
		SponsorIsActive:    true,
	}
	if req.SponsorLinks != nil {
		sponsor.SponsorLinks = datatypes.JSON(*req.SponsorLinks)
	}
	if req.SponsorIsActive != nil {
		sponsor.SponsorIsActive = *req.SponsorIsActive
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "sponsors", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Logo upload failed: "+upErr.Error())
			}
			sponsor.SponsorLogoURL = &url
		}
	}

	if err := ctrl.DB.Create(&sponsor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sponsor")
	}
	return helper.JsonCreated(c, "Sponsor created", dto.ToSponsorDTO(sponsor))
}

// GetAllSponsors handles GET /api/sponsors. Active sponsors grouped by
// tier, highest tier first.
func (ctrl *SponsorController) GetAllSponsors(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.SponsorModel{}).Where("sponsor_is_active = ?", true)
	if tier := c.Query("tier"); tier != "" {
		q = q.Where("sponsor_tier = ?", tier)
	}

	var sponsors []model.SponsorModel
	if err := q.Order("sponsor_name ASC").Find(&sponsors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sponsors")
	}
	sortByTier(sponsors)

	return helper.JsonOK(c, "OK", dto.ToSponsorDTOList(sponsors))
}

// GetAllSponsorsAdmin handles GET /api/a/sponsors including inactive rows.
func (ctrl *SponsorController) GetAllSponsorsAdmin(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.SponsorModel{})
	if tier := c.Query("tier"); tier != "" {
		q = q.Where("sponsor_tier = ?", tier)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("sponsor_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sponsors")
	}

	var sponsors []model.SponsorModel
	if err := q.Order("sponsor_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&sponsors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sponsors")
	}

	return helper.JsonList(c, "", dto.ToSponsorDTOList(sponsors), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func sortByTier(sponsors []model.SponsorModel) {
	// insertion sort, the list is small and already name-ordered
	for i := 1; i < len(sponsors); i++ {
		for j := i; j > 0 && tierRank[sponsors[j].SponsorTier] < tierRank[sponsors[j-1].SponsorTier]; j-- {
			sponsors[j], sponsors[j-1] = sponsors[j-1], sponsors[j]
		}
	}
}

func (ctrl *SponsorController) findSponsor(id string) (*model.SponsorModel, error) {
	sponsorID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var sponsor model.SponsorModel
	if err := ctrl.DB.First(&sponsor, "sponsor_id = ?", sponsorID).Error; err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// GetSponsor handles GET /api/sponsors/:id.
func (ctrl *SponsorController) GetSponsor(c *fiber.Ctx) error {
	sponsor, err := ctrl.findSponsor(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
	}
	return helper.JsonOK(c, "OK", dto.ToSponsorDTO(*sponsor))
}

// UpdateSponsor handles PUT /api/a/sponsors/:id with partial fields.
func (ctrl *SponsorController) UpdateSponsor(c *fiber.Ctx) error {
	sponsor, err := ctrl.findSponsor(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
	}

	var req dto.UpdateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSponsor.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.SponsorName != nil {
		updates["sponsor_name"] = *req.SponsorName
	}
	if req.SponsorTier != nil {
		updates["sponsor_tier"] = *req.SponsorTier
	}
	if req.SponsorDescription != nil {
		updates["sponsor_description"] = *req.SponsorDescription
	}
	if req.SponsorLinks != nil {
		updates["sponsor_links"] = datatypes.JSON(*req.SponsorLinks)
	}
	if req.SponsorIsActive != nil {
		updates["sponsor_is_active"] = *req.SponsorIsActive
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "sponsors", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Logo upload failed: "+upErr.Error())
			}
			if sponsor.SponsorLogoURL != nil {
				if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *sponsor.SponsorLogoURL); err != nil {
					log.Println("[WARN] old logo delete:", err)
				}
			}
			updates["sponsor_logo_url"] = url
		}
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(sponsor).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sponsor")
		}
	}

	refreshed, err := ctrl.findSponsor(sponsor.SponsorID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload sponsor")
	}
	return helper.JsonUpdated(c, "Sponsor updated", dto.ToSponsorDTO(*refreshed))
}

// DeleteSponsor handles DELETE /api/a/sponsors/:id.
func (ctrl *SponsorController) DeleteSponsor(c *fiber.Ctx) error {
	sponsor, err := ctrl.findSponsor(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsor not found")
	}
	if err := ctrl.DB.Delete(sponsor).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sponsor")
	}
	if sponsor.SponsorLogoURL != nil {
		if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *sponsor.SponsorLogoURL); err != nil {
			log.Println("[WARN] logo delete:", err)
		}
	}
	return helper.JsonDeleted(c, "Sponsor deleted", fiber.Map{"sponsor_id": sponsor.SponsorID})
}
