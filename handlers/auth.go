package handlers

import (
	"errors"
	"time"

	"github.com/biosecret/go-tasks/middleware"
	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login godoc
// @Summary Đăng nhập, trả về access token
// @Tags users
// @Accept json
// @Produce json
// @Param body body validation.LoginRequest true "Thông tin đăng nhập"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /users/Login [post]
func (h *Handler) Login(c *fiber.Ctx) error {
	req, err := request[validation.LoginRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	user, err := h.users.FindByName(c.UserContext(), req.Name)
	if err != nil {
		return h.storeError(c, err, "find user for login")
	}
	if user == nil {
		return utils.SendResponse(c, fiber.Map{"login": false}, "Invalid User.", utils.CodeBusiness, fiber.StatusUnauthorized)
	}

	// So khớp mật khẩu
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return utils.SendResponse(c, fiber.Map{"login": false}, "Invalid Password.", utils.CodeBusiness, fiber.StatusUnauthorized)
		}
		return h.storeError(c, err, "compare password hash")
	}

	token, err := generateJWT(user.ID.Hex(), h.opts.TokenKey, h.opts.TokenTTL, h.now())
	if err != nil {
		return h.storeError(c, err, "sign token")
	}

	data := fiber.Map{
		"login":           true,
		"name":            user.Name,
		"adminPrivileges": user.AdminPrivileges,
		"_id":             user.ID,
	}
	return utils.SendResponseWithToken(c, data, "Login Success.", fiber.StatusOK, fiber.StatusOK, token)
}

// generateJWT ký token HS256 chứa userId, hết hạn sau ttl
func generateJWT(userID string, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// hashPassword băm mật khẩu bằng bcrypt với cost cấu hình
func (h *Handler) hashPassword(password string) (string, error) {
	cost := h.opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
