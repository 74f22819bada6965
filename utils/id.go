package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex trả về chuỗi hex ngẫu nhiên từ n byte (2n ký tự)
func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ClientID tạo id duy nhất cho client MQTT hoặc subscriber SSE, dạng <prefix>-<8 ký tự hex>
func ClientID(prefix string) (string, error) {
	id, err := RandomHex(4)
	if err != nil {
		return "", err
	}
	return prefix + "-" + id, nil
}
