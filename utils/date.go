package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout là định dạng dd/mm/yyyy dùng cho endDate, updateDate và ngày của note
const DateLayout = "02/01/2006"

// TodayDate trả về ngày của t theo định dạng dd/mm/yyyy
func TodayDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate đọc chuỗi dd/mm/yyyy. Ngày vượt số ngày của tháng được cộng dồn sang tháng sau
// (31/02/2023 là 03/03/2023); tháng ngoài 1..12 hoặc ngày ngoài 1..31 trả về zero time và false.
func ParseDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	var n [3]int
	for i, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return time.Time{}, false
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}
	day, month, year := n[0], n[1], n[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
