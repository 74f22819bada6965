package utils

import "github.com/gofiber/fiber/v2"

// Mã trong envelope
const (
	CodeAPIError   = 1
	CodeAuth       = 2
	CodeValidation = 3
	CodeBusiness   = 10
)

// Response là envelope thống nhất của mọi phản hồi
type Response struct {
	Data  any    `json:"data"`
	Msg   string `json:"msg"`
	Code  int    `json:"code"`
	Token string `json:"token,omitempty"`
}

// Empty là data rỗng {} cho các phản hồi không có dữ liệu
func Empty() fiber.Map {
	return fiber.Map{}
}

func SendResponse(c *fiber.Ctx, data any, msg string, code, status int) error {
	return c.Status(status).JSON(Response{Data: data, Msg: msg, Code: code})
}

func SendResponseWithToken(c *fiber.Ctx, data any, msg string, code, status int, token string) error {
	return c.Status(status).JSON(Response{Data: data, Msg: msg, Code: code, Token: token})
}

// SendErrorResponse trả về lỗi hạ tầng (500, code 1) kèm nội dung lỗi
func SendErrorResponse(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(Response{
		Data: err.Error(),
		Msg:  "API Error.",
		Code: CodeAPIError,
	})
}
