package utils

import (
	"cmp"
	"slices"
	"strings"

	"github.com/biosecret/go-tasks/models"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// orderSequence là thứ tự cố định áp dụng các lượt sắp xếp.
// Mỗi lượt sắp xếp lại toàn bộ danh sách nên lượt cuối cùng được áp dụng quyết định thứ tự.
var orderSequence = []string{
	"adminPrivileges",
	"name",
	"orderAdminPrivileges",
	"orderName",
	"status",
	"priority",
	"title",
	"endDate",
	"updateDate",
}

// comparator trả về thứ tự "asc" của một field
type comparator[T any] func(a, b T) int

func orderData[T any](items []T, order map[string]string, comparators map[string]comparator[T]) []T {
	for _, key := range orderSequence {
		cmpFn, ok := comparators[key]
		if !ok {
			continue
		}
		switch order[key] {
		case OrderAsc:
			slices.SortStableFunc(items, cmpFn)
		case OrderDesc:
			slices.SortStableFunc(items, func(a, b T) int { return cmpFn(b, a) })
		}
	}
	return items
}

// true đứng trước false khi "asc"
func compareBoolTrueFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareDate(a, b string) int {
	ta, _ := ParseDate(a)
	tb, _ := ParseDate(b)
	return ta.Compare(tb)
}

var userComparators = map[string]comparator[models.User]{
	"adminPrivileges": func(a, b models.User) int {
		return compareBoolTrueFirst(a.AdminPrivileges, b.AdminPrivileges)
	},
	"name": func(a, b models.User) int { return compareFold(a.Name, b.Name) },
	"orderAdminPrivileges": func(a, b models.User) int {
		return compareBoolTrueFirst(a.AdminPrivileges, b.AdminPrivileges)
	},
	"orderName": func(a, b models.User) int { return compareFold(a.Name, b.Name) },
}

var taskComparators = map[string]comparator[models.Task]{
	"status": func(a, b models.Task) int { return cmp.Compare(a.Status, b.Status) },
	// priority "asc" cho ra giá trị số giảm dần
	"priority":   func(a, b models.Task) int { return cmp.Compare(b.Priority, a.Priority) },
	"title":      func(a, b models.Task) int { return compareFold(a.Title, b.Title) },
	"endDate":    func(a, b models.Task) int { return compareDate(a.EndDate, b.EndDate) },
	"updateDate": func(a, b models.Task) int { return compareDate(a.UpdateDate, b.UpdateDate) },
}

// OrderUsers sắp xếp users tại chỗ theo các chỉ thị trong order
func OrderUsers(users []models.User, order map[string]string) []models.User {
	return orderData(users, order, userComparators)
}

// OrderTasks sắp xếp tasks tại chỗ theo các chỉ thị trong order
func OrderTasks(tasks []models.Task, order map[string]string) []models.Task {
	return orderData(tasks, order, taskComparators)
}

// taskOrderAliases: tham số query orderX -> chỉ thị sắp xếp tương ứng
var taskOrderAliases = map[string]string{
	"orderStatus":     "status",
	"orderPriority":   "priority",
	"orderTitle":      "title",
	"orderEndDate":    "endDate",
	"orderUpdateDate": "updateDate",
}

// TaskOrder dựng chỉ thị sắp xếp task từ query: giữ nguyên các key gốc
// và ánh xạ thêm orderStatus, orderPriority, orderTitle, orderEndDate, orderUpdateDate.
func TaskOrder(query map[string]string) map[string]string {
	order := make(map[string]string, len(query))
	for k, v := range query {
		order[k] = v
	}
	for alias, key := range taskOrderAliases {
		if v, ok := query[alias]; ok && v != "" {
			order[key] = v
		}
	}
	return order
}
