package controller

import (
	"log"

	"aicommunity_backend/internals/features/content/projects/dto"
	"aicommunity_backend/internals/features/content/projects/model"
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ProjectController struct {
	DB    *gorm.DB
	Blobs storage.BlobService
}

func NewProjectController(db *gorm.DB, blobs storage.BlobService) *ProjectController {
	return &ProjectController{DB: db, Blobs: blobs}
}

var validateProject = validator.New()

// CreateProject handles POST /api/a/projects (multipart, optional image).
func (ctrl *ProjectController) CreateProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:      "projects",
		SlugColumn: "project_slug",
	}, req.ProjectTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	project := model.ProjectModel{
		ProjectTitle:       req.ProjectTitle,
		ProjectSlug:        slug,
		ProjectDescription: req.ProjectDescription,
		ProjectTechStack:   pq.StringArray(req.ProjectTechStack),
		ProjectRepoURL:     req.ProjectRepoURL,
		ProjectDemoURL:     req.ProjectDemoURL,
	}
	if req.ProjectIsFeatured != nil {
		project.ProjectIsFeatured = *req.ProjectIsFeatured
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "projects", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed: "+upErr.Error())
			}
			project.ProjectImageURL = &url
		}
	}

	if err := ctrl.DB.Create(&project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create project")
	}
	return helper.JsonCreated(c, "Project created", dto.ToProjectDTO(project))
}

// GetAllProjects handles GET /api/projects. Featured first, then newest.
func (ctrl *ProjectController) GetAllProjects(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 12, 50)

	q := ctrl.DB.Model(&model.ProjectModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("project_title ILIKE ?", "%"+search+"%")
	}
	if tech := c.Query("tech"); tech != "" {
		q = q.Where("? = ANY(project_tech_stack)", tech)
	}
	if c.Query("featured") == "true" {
		q = q.Where("project_is_featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count projects")
	}

	var projects []model.ProjectModel
	if err := q.Order("project_is_featured DESC, project_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&projects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	return helper.JsonList(c, "", dto.ToProjectDTOList(projects), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctrl *ProjectController) findProject(idOrSlug string) (*model.ProjectModel, error) {
	var project model.ProjectModel
	q := ctrl.DB
	if id, err := uuid.Parse(idOrSlug); err == nil {
		q = q.Where("project_id = ?", id)
	} else {
		q = q.Where("project_slug = ?", idOrSlug)
	}
	if err := q.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject handles GET /api/projects/:id (UUID or slug).
func (ctrl *ProjectController) GetProject(c *fiber.Ctx) error {
	project, err := ctrl.findProject(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
	}
	return helper.JsonOK(c, "OK", dto.ToProjectDTO(*project))
}

// UpdateProject handles PUT /api/a/projects/:id with partial fields.
func (ctrl *ProjectController) UpdateProject(c *fiber.Ctx) error {
	project, err := ctrl.findProject(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProject.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	updates := map[string]interface{}{}
	if req.ProjectTitle != nil {
		updates["project_title"] = *req.ProjectTitle
	}
	if req.ProjectDescription != nil {
		updates["project_description"] = *req.ProjectDescription
	}
	if req.ProjectTechStack != nil {
		updates["project_tech_stack"] = pq.StringArray(*req.ProjectTechStack)
	}
	if req.ProjectRepoURL != nil {
		updates["project_repo_url"] = *req.ProjectRepoURL
	}
	if req.ProjectDemoURL != nil {
		updates["project_demo_url"] = *req.ProjectDemoURL
	}
	if req.ProjectIsFeatured != nil {
		updates["project_is_featured"] = *req.ProjectIsFeatured
	}

	if form, err := c.MultipartForm(); err == nil {
		if fh := storage.GetImageFile(form); fh != nil {
			url, upErr := ctrl.Blobs.UploadImage(c.UserContext(), "projects", fh)
			if upErr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed: "+upErr.Error())
			}
			if project.ProjectImageURL != nil {
				if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *project.ProjectImageURL); err != nil {
					log.Println("[WARN] old image delete:", err)
				}
			}
			updates["project_image_url"] = url
		}
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(project).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update project")
		}
	}

	refreshed, err := ctrl.findProject(project.ProjectID.String())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload project")
	}
	return helper.JsonUpdated(c, "Project updated", dto.ToProjectDTO(*refreshed))
}

// DeleteProject handles DELETE /api/a/projects/:id.
func (ctrl *ProjectController) DeleteProject(c *fiber.Ctx) error {
	project, err := ctrl.findProject(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Project not found")
	}
	if err := ctrl.DB.Delete(project).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete project")
	}
	if project.ProjectImageURL != nil {
		if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), *project.ProjectImageURL); err != nil {
			log.Println("[WARN] image delete:", err)
		}
	}
	return helper.JsonDeleted(c, "Project deleted", fiber.Map{"project_id": project.ProjectID})
}
