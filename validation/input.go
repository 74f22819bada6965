package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// KeyOrder giữ thứ tự key ban đầu của từng object trong input, theo label
// ("" là object gốc, "notes[0]" là phần tử đầu của notes)
type KeyOrder map[string][]string

// Add ghi nhận key của object có nhãn label nếu chưa có
func (k KeyOrder) Add(label, key string) {
	if !slices.Contains(k[label], key) {
		k[label] = append(k[label], key)
	}
}

var (
	errNotObject    = errors.New("body is not a json object")
	errTrailingData = errors.New("unexpected data after json value")
)

// ParseJSON giải mã body thành map và ghi lại thứ tự key của mọi object bên trong
func ParseJSON(body []byte) (map[string]any, KeyOrder, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	keys := KeyOrder{}

	v, err := decodeValue(dec, "", keys)
	if err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, errTrailingData
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, nil, errNotObject
	}
	return obj, keys, nil
}

func decodeValue(dec *json.Decoder, label string, keys KeyOrder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := map[string]any{}
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key := kt.(string)
			child := key
			if label != "" {
				child = label + "." + key
			}
			v, err := decodeValue(dec, child, keys)
			if err != nil {
				return nil, err
			}
			keys.Add(label, key)
			obj[key] = v
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		list := []any{}
		for i := 0; dec.More(); i++ {
			v, err := decodeValue(dec, fmt.Sprintf("%s[%d]", label, i), keys)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}
