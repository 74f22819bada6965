package middleware

import (
	"errors"
	"strings"

	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
)

// InputKey là key trong c.Locals chứa dữ liệu đã kiểm tra và chuyển kiểu
const InputKey = "input"

// ValidateData kiểm tra request theo schema có tên name trước khi vào handler.
// Panic nếu schema không tồn tại, lỗi này chỉ xảy ra lúc khai báo route.
func ValidateData(name string) fiber.Handler {
	schema, source, ok := validation.Lookup(name)
	if !ok {
		panic("validation: unknown schema " + name)
	}

	return func(c *fiber.Ctx) error {
		input, keys, err := collectInput(c, source)
		if err != nil {
			detail := validation.Detail{
				Message: `"value" must be of type object`,
				Path:    []any{},
				Type:    "object.base",
				Context: map[string]any{"label": "value", "type": "object"},
			}
			return utils.SendResponse(c, []validation.Detail{detail}, "Invalid Data.", utils.CodeValidation, fiber.StatusBadRequest)
		}

		in, err := schema.Validate(input, keys)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				return utils.SendResponse(c, verr.Details, "Invalid Data.", utils.CodeValidation, fiber.StatusBadRequest)
			}
			return utils.SendErrorResponse(c, err)
		}

		c.Locals(InputKey, in)
		return c.Next()
	}
}

// collectInput lấy dữ liệu thô theo nguồn của schema, giữ nguyên thứ tự key
func collectInput(c *fiber.Ctx, source validation.Source) (map[string]any, validation.KeyOrder, error) {
	input := map[string]any{}
	keys := validation.KeyOrder{}
	add := func(k, v string) {
		keys.Add("", k)
		input[k] = v
	}

	switch source {
	case validation.SourceQuery, validation.SourceQueryWithUserID:
		c.Request().URI().QueryArgs().VisitAll(func(k, v []byte) {
			add(string(k), string(v))
		})
		if source == validation.SourceQueryWithUserID {
			add("userId", c.Params("userId"))
		}
		return input, keys, nil
	case validation.SourceParams:
		for _, r := range c.Route().Params {
			add(r, c.Params(r))
		}
		return input, keys, nil
	}

	ctype := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.HasPrefix(ctype, fiber.MIMEApplicationForm) {
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			add(string(k), string(v))
		})
		return input, keys, nil
	}
	body := c.Body()
	if len(body) == 0 {
		return input, keys, nil
	}
	return validation.ParseJSON(body)
}
