package validation

import (
	"strings"
	"unicode/utf16"
)

// Source cho biết dữ liệu cần kiểm tra được lấy từ đâu trong request
type Source int

const (
	SourceBody Source = iota
	SourceQuery
	SourceParams
	// SourceQueryWithUserID: query string cộng thêm path param userId
	SourceQueryWithUserID
)

// PasswordPattern là biểu thức hiển thị khi mật khẩu không đạt yêu cầu
const PasswordPattern = "/^(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9])(?=.*[!@#$%^&*])(?=.{8,})/"

const passwordSpecials = "!@#$%^&*"

// StrongPassword: trên dòng đầu tiên có ít nhất một chữ thường, một chữ hoa, một chữ số,
// một ký tự đặc biệt và dài >= 8. Các lookahead của PasswordPattern không vượt qua ký tự xuống dòng.
func StrongPassword(s string) bool {
	if i := strings.IndexAny(s, "\n\r\u2028\u2029"); i >= 0 {
		s = s[:i]
	}

	var lower, upper, digit, special bool
	units := 0
	for _, c := range s {
		units += utf16.RuneLen(c)
		switch {
		case 'a' <= c && c <= 'z':
			lower = true
		case 'A' <= c && c <= 'Z':
			upper = true
		case '0' <= c && c <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, c):
			special = true
		}
	}
	return lower && upper && digit && special && units >= 8
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AddUserRequest struct {
	Name            string `json:"name" validate:"required,alphanum,min=5,max=255"`
	Password        string `json:"password" validate:"required,strongpassword,max=255"`
	AdminPrivileges *bool  `json:"adminPrivileges" validate:"required"`
}

type UserQuery struct {
	Name                 *string `json:"name" validate:"omitnil,alphanum,min=1,max=255"`
	AdminPrivileges      *bool   `json:"adminPrivileges"`
	OrderName            *string `json:"orderName" validate:"omitnil,oneof=asc desc"`
	OrderAdminPrivileges *string `json:"orderAdminPrivileges" validate:"omitnil,oneof=asc desc"`
}

type UpdateUserRequest struct {
	ID              string  `json:"_id" validate:"required,alphanum,min=24,max=24"`
	Password        *string `json:"password" validate:"omitnil,strongpassword,max=255"`
	AdminPrivileges *bool   `json:"adminPrivileges"`
}

// IDRequest dùng cho xóa user và xóa task
type IDRequest struct {
	ID string `json:"_id" validate:"required,alphanum,min=24,max=24"`
}

type AddTaskRequest struct {
	UserID      string `json:"userId" validate:"required,alphanum,min=24,max=24"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	EndDate     string `json:"endDate" validate:"required,min=10,max=10"`
}

// TaskQuery là các tham số lọc và sắp xếp của GET /tasks
type TaskQuery struct {
	UserID          *string  `json:"userId" validate:"omitnil,alphanum,min=24,max=24"`
	Title           *string  `json:"title" validate:"omitnil,max=255"`
	Description     *string  `json:"description"`
	Status          *float64 `json:"status" validate:"omitnil,min=1,max=3"`
	Priority        *float64 `json:"priority" validate:"omitnil,min=0,max=2"`
	TagsText        *string  `json:"tagsText"`
	NotesText       *string  `json:"notesText"`
	EndDate         *string  `json:"endDate" validate:"omitnil,min=10,max=10"`
	UpdateDate      *string  `json:"updateDate" validate:"omitnil,min=10,max=10"`
	OrderStatus     *string  `json:"orderStatus" validate:"omitnil,oneof=asc desc"`
	OrderPriority   *string  `json:"orderPriority" validate:"omitnil,oneof=asc desc"`
	OrderTitle      *string  `json:"orderTitle" validate:"omitnil,oneof=asc desc"`
	OrderEndDate    *string  `json:"orderEndDate" validate:"omitnil,oneof=asc desc"`
	OrderUpdateDate *string  `json:"orderUpdateDate" validate:"omitnil,oneof=asc desc"`
}

// UserTaskQuery giống TaskQuery nhưng userId lấy từ path và bắt buộc
type UserTaskQuery struct {
	UserID          string   `json:"userId" validate:"required,alphanum,min=24,max=24"`
	Title           *string  `json:"title" validate:"omitnil,max=255"`
	Description     *string  `json:"description"`
	Status          *float64 `json:"status" validate:"omitnil,min=1,max=3"`
	Priority        *float64 `json:"priority" validate:"omitnil,min=0,max=2"`
	TagsText        *string  `json:"tagsText"`
	NotesText       *string  `json:"notesText"`
	EndDate         *string  `json:"endDate" validate:"omitnil,min=10,max=10"`
	UpdateDate      *string  `json:"updateDate" validate:"omitnil,min=10,max=10"`
	OrderStatus     *string  `json:"orderStatus" validate:"omitnil,oneof=asc desc"`
	OrderPriority   *string  `json:"orderPriority" validate:"omitnil,oneof=asc desc"`
	OrderTitle      *string  `json:"orderTitle" validate:"omitnil,oneof=asc desc"`
	OrderEndDate    *string  `json:"orderEndDate" validate:"omitnil,oneof=asc desc"`
	OrderUpdateDate *string  `json:"orderUpdateDate" validate:"omitnil,oneof=asc desc"`
}

type NoteInput struct {
	Text string `json:"text" validate:"required"`
	Date string `json:"date" validate:"required,min=10,max=10"`
}

type TagInput struct {
	Text  string  `json:"text" validate:"required"`
	Color *string `json:"color" validate:"required,oneof=primary secondary danger warning success info dark light white muted"`
}

// UpdateTaskRequest: status và priority không sửa được qua API
type UpdateTaskRequest struct {
	UserID      string       `json:"userId" validate:"required,alphanum,min=24,max=24"`
	ID          string       `json:"_id" validate:"required,alphanum,min=24,max=24"`
	Title       *string      `json:"title" validate:"omitnil,max=255"`
	Description *string      `json:"description"`
	EndDate     *string      `json:"endDate" validate:"omitnil,min=10,max=10"`
	Notes       *[]NoteInput `json:"notes" validate:"omitnil,dive"`
	Tags        *[]TagInput  `json:"tags" validate:"omitnil,dive"`
}

type StatusCode struct {
	Code *float64 `json:"code" validate:"required,min=1,max=3"`
}

type PriorityCode struct {
	Code *float64 `json:"code" validate:"required,min=0,max=2"`
}

type named struct {
	schema *Schema
	source Source
}

var schemas = map[string]named{
	"loginSchema":          {schemaFor[LoginRequest](), SourceBody},
	"addUserSchema":        {schemaFor[AddUserRequest](), SourceBody},
	"getUsersSchema":       {schemaFor[UserQuery](), SourceQuery},
	"updateUserSchema":     {schemaFor[UpdateUserRequest](), SourceBody},
	"deleteUserSchema":     {schemaFor[IDRequest](), SourceBody},
	"addTaskSchema":        {schemaFor[AddTaskRequest](), SourceBody},
	"getTasksSchema":       {schemaFor[TaskQuery](), SourceQuery},
	"getTasksByUserSchema": {schemaFor[UserTaskQuery](), SourceQueryWithUserID},
	"updateTaskSchema":     {schemaFor[UpdateTaskRequest](), SourceBody},
	"deleteTaskSchema":     {schemaFor[IDRequest](), SourceBody},
	"getStatusSchema":      {schemaFor[StatusCode](), SourceParams},
	"getPrioritySchema":    {schemaFor[PriorityCode](), SourceParams},
}

// Lookup trả về schema theo tên cùng nguồn dữ liệu của nó
func Lookup(name string) (*Schema, Source, bool) {
	n, ok := schemas[name]
	if !ok {
		return nil, 0, false
	}
	return n.schema, n.source, true
}
