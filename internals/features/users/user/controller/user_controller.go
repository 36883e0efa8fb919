package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"userservice_backend/internals/features/users/user/dto"
	"userservice_backend/internals/features/users/user/model"
	helper "userservice_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// db returns the request-scoped session placed in Locals by DBMiddleware.
func (ctrl *UserController) db(c *fiber.Ctx) *gorm.DB {
	if tx, ok := c.Locals("db").(*gorm.DB); ok {
		return tx
	}
	return ctrl.DB.WithContext(c.UserContext())
}

func userIDParam(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("user_id")
	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "user_id must be an integer")
	}
	return id, nil
}

func userNotFound(id int) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("User with id '%d' not found", id))
}

// fetchFullUser re-reads the user with its contact relation so the response
// reflects committed state.
func (ctrl *UserController) fetchFullUser(c *fiber.Ctx, id int) error {
	var user model.UserModel
	if err := ctrl.db(c).Preload("ContactDetails").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(id)
		}
		log.Println("[ERROR] Failed to fetch user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	return c.JSON(dto.FromUserModelFull(&user))
}

/* =========================================================
   GET
   ========================================================= */

// GET /api/v1/users/?offset=&limit= — summary shapes only, no relation.
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 100)

	var users []model.UserModel
	if err := ctrl.db(c).Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	return c.JSON(dto.FromUserModels(users))
}

// GET /api/v1/users/:user_id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	return ctrl.fetchFullUser(c, id)
}

// GET /api/v1/users/email/:email
func (ctrl *UserController) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user model.UserModel
	if err := ctrl.db(c).Preload("ContactDetails").First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("User with email '%s' not found", email))
		}
		log.Println("[ERROR] Failed to fetch user by email:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve user")
	}
	return c.JSON(dto.FromUserModelFull(&user))
}

/* =========================================================
   CREATE
   ========================================================= */

// POST /api/v1/users/ — new users start active, no contact details yet.
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.UserBasicInfo
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	user := req.ToModel()
	if err := ctrl.db(c).Create(user).Error; err != nil {
		log.Println("[ERROR] Failed to create user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	log.Printf("[INFO] Created user id=%d", user.ID)
	return c.JSON(dto.FromUserModelFull(user))
}

/* =========================================================
   UPDATE
   ========================================================= */

// updateUserColumn applies a single-column update by id. Zero rows affected
// means the id does not exist.
func (ctrl *UserController) updateUserColumn(c *fiber.Ctx, id int, column string, value interface{}) error {
	res := ctrl.db(c).Model(&model.UserModel{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		log.Printf("[ERROR] Failed to update user %s: %v", column, res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return userNotFound(id)
	}
	return ctrl.fetchFullUser(c, id)
}

// PUT /api/v1/users/:user_id/username?username=
func (ctrl *UserController) UpdateUserUsername(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		return helper.DetailFields(c, fiber.StatusUnprocessableEntity, map[string]string{
			"username": "query parameter required",
		})
	}
	return ctrl.updateUserColumn(c, id, "username", username)
}

// PUT /api/v1/users/:user_id/email?email=
func (ctrl *UserController) UpdateUserEmail(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	email := strings.TrimSpace(strings.ToLower(c.Query("email")))
	if email == "" {
		return helper.DetailFields(c, fiber.StatusUnprocessableEntity, map[string]string{
			"email": "query parameter required",
		})
	}
	return ctrl.updateUserColumn(c, id, "email", email)
}

// PUT /api/v1/users/:user_id/active?active=
func (ctrl *UserController) UpdateUserActive(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}
	active, err := strconv.ParseBool(c.Query("active"))
	if err != nil {
		return helper.DetailFields(c, fiber.StatusUnprocessableEntity, map[string]string{
			"active": "query parameter must be a boolean",
		})
	}
	return ctrl.updateUserColumn(c, id, "active", active)
}

// PUT /api/v1/users/:user_id/contact_details — upsert keyed by user_id, then
// re-read the user so the response reflects the committed relation.
func (ctrl *UserController) UpsertUserContactDetails(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var req dto.ContactDetailsData
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	cd := model.ContactDetailsModel{
		UserID:      id,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := ctrl.db(c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "phone_number"}),
	}).Create(&cd).Error; err != nil {
		log.Println("[ERROR] Failed to upsert contact details:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save contact details")
	}

	return ctrl.fetchFullUser(c, id)
}

/* =========================================================
   DELETE
   ========================================================= */

// DELETE /api/v1/users/:user_id — returns the last known state; the store
// cascades the contact_details row.
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.db(c).Preload("ContactDetails").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userNotFound(id)
		}
		log.Println("[ERROR] Failed to fetch user for delete:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	if err := ctrl.db(c).Delete(&model.UserModel{}, "id = ?", id).Error; err != nil {
		log.Println("[ERROR] Failed to delete user:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	log.Printf("[INFO] Deleted user id=%d", id)
	return c.JSON(dto.FromUserModelFull(&user))
}

// DELETE /api/v1/users/:user_id/contact_details
func (ctrl *UserController) DeleteUserContactDetails(c *fiber.Ctx) error {
	id, err := userIDParam(c)
	if err != nil {
		return err
	}

	var cd model.ContactDetailsModel
	if err := ctrl.db(c).First(&cd, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Contact details for user with id '%d' not found", id))
		}
		log.Println("[ERROR] Failed to fetch contact details:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete contact details")
	}

	if err := ctrl.db(c).Delete(&cd).Error; err != nil {
		log.Println("[ERROR] Failed to delete contact details:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete contact details")
	}

	return c.JSON(dto.FromContactDetailsModel(&cd))
}
