package utils

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// prefixFields: tham số query -> field trong document, so khớp theo tiền tố
var prefixFields = []struct{ param, field string }{
	{"name", "name"},
	{"title", "title"},
	{"description", "description"},
	{"tagsText", "tags.text"},
	{"notesText", "notes.text"},
}

var equalFields = []string{"adminPrivileges", "userId", "endDate", "updateDate"}

// FilterData chuyển các tham số query đã được kiểm tra thành filter MongoDB.
// Không có tham số nào thì filter rỗng (khớp tất cả).
func FilterData(input map[string]any) bson.M {
	filter := bson.M{}

	for _, p := range prefixFields {
		if s, ok := input[p.param].(string); ok && s != "" {
			filter[p.field] = prefixRegex(s)
		}
	}

	for _, key := range equalFields {
		if v, ok := input[key]; ok && v != nil && v != "" {
			filter[key] = v
		}
	}

	// status = 0 bị bỏ qua, priority = 0 vẫn được lọc. Số lẻ được giữ nguyên
	if n, ok := number(input["status"]); ok && n != 0 {
		filter["status"] = n
	}
	if n, ok := number(input["priority"]); ok {
		filter["priority"] = n
	}

	return filter
}

func prefixRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s)}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
