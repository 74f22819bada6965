package handlers

import (
	"github.com/biosecret/go-tasks/events"
	"github.com/biosecret/go-tasks/models"
	"github.com/biosecret/go-tasks/utils"
	"github.com/biosecret/go-tasks/validation"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateTask godoc
// @Summary Tạo task cho một user đã tồn tại
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.AddTaskRequest true "Task"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /tasks [post]
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	req, err := request[validation.AddTaskRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}
	ctx := c.UserContext()

	exists, err := h.users.Exists(ctx, req.UserID)
	if err != nil {
		return h.storeError(c, err, "check task owner")
	}
	if !exists {
		return utils.SendResponse(c, utils.Empty(), "User not found in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	task := &models.Task{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.DefaultTaskStatus,
		Priority:    models.DefaultTaskPriority,
		EndDate:     req.EndDate,
		UpdateDate:  utils.TodayDate(h.now()),
		Notes:       []models.Note{},
		Tags:        []models.Tag{},
	}
	if err := h.tasks.Insert(ctx, task); err != nil {
		return h.storeError(c, err, "insert task")
	}

	h.publish(events.TaskCreated, task)
	return utils.SendResponse(c, task, "Task created in DB.", fiber.StatusCreated, fiber.StatusCreated)
}

// ListTasks godoc
// @Summary Danh sách task, có lọc và sắp xếp
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Param userId query string false "Id của user"
// @Param title query string false "Tiền tố tiêu đề"
// @Param description query string false "Tiền tố mô tả"
// @Param status query number false "1 - 3"
// @Param priority query number false "0 - 2"
// @Param tagsText query string false "Tiền tố nhãn"
// @Param notesText query string false "Tiền tố ghi chú"
// @Param endDate query string false "dd/mm/yyyy"
// @Param updateDate query string false "dd/mm/yyyy"
// @Param orderStatus query string false "asc | desc"
// @Param orderPriority query string false "asc | desc"
// @Param orderTitle query string false "asc | desc"
// @Param orderEndDate query string false "asc | desc"
// @Param orderUpdateDate query string false "asc | desc"
// @Success 200 {object} utils.Response
// @Router /tasks [get]
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	return h.listTasks(c, utils.FilterData(validated(c)))
}

// ListUserTasks godoc
// @Summary Danh sách task của một user
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "Id của user"
// @Success 200 {object} utils.Response
// @Router /tasks/{userId} [get]
func (h *Handler) ListUserTasks(c *fiber.Ctx) error {
	filter := utils.FilterData(validated(c))
	filter["userId"] = c.Params("userId")
	return h.listTasks(c, filter)
}

func (h *Handler) listTasks(c *fiber.Ctx, filter bson.M) error {
	tasks, err := h.tasks.Find(c.UserContext(), filter)
	if err != nil {
		return h.storeError(c, err, "find tasks")
	}

	tasks = utils.OrderTasks(tasks, utils.TaskOrder(c.Queries()))
	return utils.SendResponse(c, tasks, "Tasks List.", fiber.StatusOK, fiber.StatusOK)
}

// UpdateTask godoc
// @Summary Cập nhật một phần task, luôn làm mới updateDate
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.UpdateTaskRequest true "Các field cần cập nhật"
// @Success 201 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /tasks [put]
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	req, err := request[validation.UpdateTaskRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	task, err := h.tasks.Update(c.UserContext(), req.ID, req.UserID, taskChanges(req, utils.TodayDate(h.now())))
	if err != nil {
		return h.storeError(c, err, "update task")
	}
	if task == nil {
		return utils.SendResponse(c, utils.Empty(), "Task not found in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	h.publish(events.TaskUpdated, task)
	return utils.SendResponse(c, task, "Task updated in DB.", fiber.StatusOK, fiber.StatusCreated)
}

// taskChanges chỉ chứa các field được gửi lên, cộng với updateDate.
// status và priority không có trong request nên không bao giờ bị sửa ở đây.
func taskChanges(req *validation.UpdateTaskRequest, today string) bson.M {
	set := bson.M{"updateDate": today}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.EndDate != nil {
		set["endDate"] = *req.EndDate
	}
	if req.Notes != nil {
		notes := make([]models.Note, 0, len(*req.Notes))
		for _, n := range *req.Notes {
			notes = append(notes, models.Note{Text: n.Text, Date: n.Date})
		}
		set["notes"] = notes
	}
	if req.Tags != nil {
		tags := make([]models.Tag, 0, len(*req.Tags))
		for _, t := range *req.Tags {
			tags = append(tags, models.Tag{Text: t.Text, Color: *t.Color})
		}
		set["tags"] = tags
	}
	return set
}

// DeleteTask godoc
// @Summary Xóa task
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body validation.IDRequest true "Id của task"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /tasks [delete]
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	req, err := request[validation.IDRequest](c)
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}

	task, err := h.tasks.Delete(c.UserContext(), req.ID)
	if err != nil {
		return h.storeError(c, err, "delete task")
	}
	if task == nil {
		return utils.SendResponse(c, utils.Empty(), "Task not found in DB.", utils.CodeBusiness, fiber.StatusBadRequest)
	}

	h.publish(events.TaskDeleted, task)
	return utils.SendResponse(c, task, "Task deleted in DB.", fiber.StatusOK, fiber.StatusOK)
}
