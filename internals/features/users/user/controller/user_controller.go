package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aicommunity_backend/internals/features/users/user/dto"
	"aicommunity_backend/internals/features/users/user/model"
	"aicommunity_backend/internals/features/users/user/service"
	helper "aicommunity_backend/internals/helpers"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =======================
// Get All Users (paginated)
// Query: ?page=&per_page=&search=&role=
// =======================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("user_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserDTO(u))
	}

	return helper.JsonList(c, "", resp, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// =======================
// Get User by ID
// =======================
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return helper.JsonOK(c, "", dto.ToUserDTO(user))
}

// =======================
// Update User (name / role / active)
// Role changes go through the last-admin guard.
// =======================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	if body.UserRole != nil {
		if _, err := service.UpdateUserRoleTx(ctrl.DB, id, *body.UserRole); err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				return helper.JsonError(c, fiber.StatusNotFound, "User not found")
			case errors.Is(err, service.ErrLastAdminDemote):
				return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
			default:
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
			}
		}
	}

	updates := map[string]any{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.IsActive != nil {
		updates["user_is_active"] = *body.IsActive
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.UserModel{}).
			Where("user_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
		}
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// =======================
// Delete User (last-admin protected)
// =======================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := service.DeleteUserTx(ctrl.DB, id); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrLastAdminDelete):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
		}
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id.String()})
}
