package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aicommunity_backend/internals/constants"
	"aicommunity_backend/internals/features/users/user/model"
)

var (
	ErrLastAdminDelete = errors.New("cannot delete the last admin")
	ErrLastAdminDemote = errors.New("cannot demote the last admin")
	ErrUserNotFound    = errors.New("user not found")
)

// GuardLastAdmin is the last-admin rule. newRole == nil means the target is
// being deleted; otherwise it is the role the update would assign. The rule
// only blocks when the target is the sole remaining ADMIN and the operation
// would remove or demote it.
func GuardLastAdmin(adminCount int64, targetRole string, newRole *string) error {
	if targetRole != constants.RoleAdmin || adminCount > 1 {
		return nil
	}
	if newRole == nil {
		return ErrLastAdminDelete
	}
	if *newRole != constants.RoleAdmin {
		return ErrLastAdminDemote
	}
	return nil
}

// DeleteUserTx deletes a user. The guard check and the delete run in one
// transaction with the target row locked, so two concurrent deletes cannot
// both pass the sole-admin check.
func DeleteUserTx(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var target model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "user_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var adminCount int64
		if err := tx.Model(&model.UserModel{}).
			Where("user_role = ?", constants.RoleAdmin).
			Count(&adminCount).Error; err != nil {
			return err
		}

		if err := GuardLastAdmin(adminCount, target.UserRole, nil); err != nil {
			return err
		}

		return tx.Delete(&model.UserModel{}, "user_id = ?", id).Error
	})
}

// UpdateUserRoleTx applies a role change under the same transactional guard.
func UpdateUserRoleTx(db *gorm.DB, id uuid.UUID, newRole string) (model.UserModel, error) {
	var target model.UserModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "user_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var adminCount int64
		if err := tx.Model(&model.UserModel{}).
			Where("user_role = ?", constants.RoleAdmin).
			Count(&adminCount).Error; err != nil {
			return err
		}

		if err := GuardLastAdmin(adminCount, target.UserRole, &newRole); err != nil {
			return err
		}

		target.UserRole = newRole
		return tx.Model(&model.UserModel{}).
			Where("user_id = ?", id).
			Update("user_role", newRole).Error
	})
	return target, err
}
