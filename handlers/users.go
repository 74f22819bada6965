package handlers

import (
	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateUser godoc
// @Summary Tạo user mới
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.AddUserRequest true "User"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /users [post]
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	req, err := request[validation.AddUserRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}
	ctx := c.UserContext()

	// Kiểm tra trùng tên trước khi ghi (không nguyên tử với lệnh insert)
	exists, err := h.users.NameExists(ctx, req.Name)
	if err != nil {
		return h.storeError(c, err, "check user name")
	}
	if exists {
		return utils.SendResponse(c, utils.Empty(), "User already exists in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	hashed, err := h.hashPassword(req.Password)
	if err != nil {
		return h.storeError(c, err, "hash password")
	}

	user := &models.User{Name: req.Name, Password: hashed, AdminPrivileges: *req.AdminPrivileges}
	if err := h.users.Insert(ctx, user); err != nil {
		return h.storeError(c, err, "insert user")
	}

	h.publish(events.UserCreated, user)
	return utils.SendResponse(c, user, "User created in DB.", fiber.StatusOK, fiber.StatusCreated)
}

// ListUsers godoc
// @Summary Danh sách user, có lọc và sắp xếp
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param name query string false "Tiền tố tên"
// @Param adminPrivileges query boolean false "Quyền quản trị"
// @Param orderName query string false "asc | desc"
// @Param orderAdminPrivileges query string false "asc | desc"
// @Success 200 {object} utils.Response
// @Router /users [get]
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	filter := utils.FilterData(validated(c))

	users, err := h.users.Find(c.UserContext(), filter)
	if err != nil {
		return h.storeError(c, err, "find users")
	}

	users = utils.OrderUsers(users, c.Queries())
	return utils.SendResponse(c, users, "User List.", fiber.StatusOK, fiber.StatusOK)
}

// UpdateUser godoc
// @Summary Cập nhật mật khẩu hoặc quyền của user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.UpdateUserRequest true "Các field cần cập nhật"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /users [put]
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	req, err := request[validation.UpdateUserRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	set := bson.M{}
	if req.AdminPrivileges != nil {
		set["adminPrivileges"] = *req.AdminPrivileges
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := h.hashPassword(*req.Password)
		if err != nil {
			return h.storeError(c, err, "hash password")
		}
		set["password"] = hashed
	}

	user, err := h.users.Update(c.UserContext(), req.ID, set)
	if err != nil {
		return h.storeError(c, err, "update user")
	}
	if user == nil {
		return utils.SendResponse(c, utils.Empty(), "User not found in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	h.publish(events.UserUpdated, user)
	return utils.SendResponse(c, user, "User updated in DB.", fiber.StatusOK, fiber.StatusCreated)
}

// DeleteUser godoc
// @Summary Xóa user
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.IDRequest true "Id của user"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /users [delete]
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	req, err := request[validation.IDRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	user, err := h.users.Delete(c.UserContext(), req.ID)
	if err != nil {
		return h.storeError(c, err, "delete user")
	}
	if user == nil {
		return utils.SendResponse(c, utils.Empty(), "User not found in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	h.publish(events.UserDeleted, user)
	return utils.SendResponse(c, user, "User deleted in DB.", fiber.StatusOK, fiber.StatusOK)
}
