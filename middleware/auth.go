package middleware

import (
	"fmt"

	"github.com/biosecret/go-tasks/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey là key trong c.Locals chứa userId lấy từ token
const UserIDKey = "user_id"

// Claims là payload của access token
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// ParseToken kiểm tra chữ ký HS256 và hạn dùng của token
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// JWTMiddleware xác thực token trong header chỉ định.
// Thiếu token: 403; token sai hoặc hết hạn: 401.
func JWTMiddleware(secret []byte, header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Get(header)
		if tokenString == "" {
			return utils.SendResponse(c, utils.Empty(), "A token is required for authentication.", utils.CodeAuth, fiber.StatusForbidden)
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			return utils.SendResponseWithToken(c, utils.Empty(), "Invalid Token.", utils.CodeAuth, fiber.StatusUnauthorized, tokenString)
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}
