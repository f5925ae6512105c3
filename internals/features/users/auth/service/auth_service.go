package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aicommunity_backend/internals/configs"
	"aicommunity_backend/internals/constants"
	authModel "aicommunity_backend/internals/features/users/auth/model"
	userDTO "aicommunity_backend/internals/features/users/user/dto"
	userModel "aicommunity_backend/internals/features/users/user/model"
	helper "aicommunity_backend/internals/helpers"
)

var validateAuth = validator.New()

/* ==========================
   Requests
========================== */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* ==========================
   Register
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     body.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		UserPassword: string(hashed),
		UserRole:     constants.RoleUser,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Account created", userDTO.ToUserDTO(user))
}

/* ==========================
   Login (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var user userModel.UserModel
	err := db.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueSession(db, c, user)
}

/* ==========================
   Login with Google ID token
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var body GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	email := strings.ToLower(claimSet.Email)
	var user userModel.UserModel
	err = db.First(&user, "user_email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		name := claimSet.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: "-", // no password login for Google accounts
			UserGoogleID: &claimSet.Sub,
			UserRole:     constants.RoleUser,
			UserIsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("[ERROR] google register:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return issueSession(db, c, user)
}

/* ==========================
   Logout
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist the current access token until its natural expiry
	if token := bearerOrCookieToken(c); token != "" {
		entry := authModel.TokenBlacklistModel{
			TokenBlacklistToken:     token,
			TokenBlacklistExpiredAt: time.Now().Add(accessTTL()),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Println("[WARN] blacklist insert:", err)
		}
	}

	// revoke the refresh token if present
	if refresh := strings.TrimSpace(c.Cookies("refresh_token")); refresh != "" {
		if secret, err := getRefreshSecret(); err == nil {
			h := computeRefreshHash(refresh, secret)
			if err := db.Delete(&authModel.RefreshTokenModel{}, "refresh_token_hash = ?", h).Error; err != nil {
				log.Println("[WARN] refresh delete:", err)
			}
		}
	}

	clearSessionCookies(c)
	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================
   Change password
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing session")
	}

	var body ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.OldPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed", nil)
}

func bearerOrCookieToken(c *fiber.Ctx) string {
	if h := strings.TrimSpace(c.Get("Authorization")); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
