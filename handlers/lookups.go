package handlers

import (
	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
)

// GetStatus godoc
// @Summary Tiêu đề của một mã trạng thái
// @Tags misc
// @Produce json
// @Security ApiKeyAuth
// @Param code path number true "1 - 3"
// @Success 200 {object} utils.Response
// @Router /status/{code} [get]
func (h *Handler) GetStatus(c *fiber.Ctx) error {
	req, err := request[validation.StatusCode](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	// mã không nguyên (vd. 1.5) vẫn hợp lệ và không khớp bản ghi nào
	status, err := h.lookups.FindStatus(c.UserContext(), *req.Code)
	if err != nil {
		return h.storeError(c, err, "find status")
	}
	if status == nil {
		return utils.SendResponse(c, nil, "Status Title.", fiber.StatusOK, fiber.StatusOK)
	}
	return utils.SendResponse(c, status, "Status Title.", fiber.StatusOK, fiber.StatusOK)
}

// GetPriority godoc
// @Summary Tiêu đề của một mức ưu tiên
// @Tags misc
// @Produce json
// @Security ApiKeyAuth
// @Param code path number true "0 - 2"
// @Success 200 {object} utils.Response
// @Router /priority/{code} [get]
func (h *Handler) GetPriority(c *fiber.Ctx) error {
	req, err := request[validation.PriorityCode](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	priority, err := h.lookups.FindPriority(c.UserContext(), *req.Code)
	if err != nil {
		return h.storeError(c, err, "find priority")
	}
	if priority == nil {
		return utils.SendResponse(c, nil, "Priority Title.", fiber.StatusOK, fiber.StatusOK)
	}
	return utils.SendResponse(c, priority, "Priority Title.", fiber.StatusOK, fiber.StatusOK)
}
