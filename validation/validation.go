// Package validation kiểm tra dữ liệu đầu vào bằng go-playground/validator và trả về lỗi
// có cấu trúc {message, path, type, context}.
//
// Mỗi schema là một struct request có tag `validate`. Trước khi gọi validator, dữ liệu thô
// (query, params, body) được kiểm tra kiểu và chuyển sang kiểu của field; key lạ bị từ chối.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Detail mô tả một vi phạm rule của một field
type Detail struct {
	Message string         `json:"message"`
	Path    []any          `json:"path"`
	Type    string         `json:"type"`
	Context map[string]any `json:"context"`
}

// Error được trả về khi dữ liệu không hợp lệ
type Error struct {
	Details []Detail
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}
	return e.Details[0].Message
}

// Input là kết quả kiểm tra thành công
type Input struct {
	// Request là con trỏ tới struct request của schema
	Request any
	// Values chứa các giá trị đã chuyển kiểu, theo tên key trong request
	Values map[string]any
}

const tagStrongPassword = "strongpassword"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(tagStrongPassword, func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type kind int

const (
	kindString kind = iota
	kindNumber
	kindBoolean
	kindArray
)

type field struct {
	key    string
	kind   kind
	valids []string
	items  *Schema
}

// Schema mô tả một struct request: các field theo thứ tự khai báo
type Schema struct {
	typ    reflect.Type
	fields []field
	index  map[string]int
}

func schemaFor[T any]() *Schema {
	return schemaOf(reflect.TypeOf((*T)(nil)).Elem())
}

func schemaOf(t reflect.Type) *Schema {
	s := &Schema{typ: t, index: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := field{key: strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		switch ft.Kind() {
		case reflect.String:
			f.kind = kindString
		case reflect.Float64:
			f.kind = kindNumber
		case reflect.Bool:
			f.kind = kindBoolean
		case reflect.Slice:
			f.kind = kindArray
			f.items = schemaOf(ft.Elem())
		default:
			panic(fmt.Sprintf("validation: unsupported field %s.%s", t.Name(), sf.Name))
		}

		for _, rule := range strings.Split(sf.Tag.Get("validate"), ",") {
			if values, ok := strings.CutPrefix(rule, "oneof="); ok {
				f.valids = strings.Fields(values)
			}
		}

		s.index[f.key] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s
}

// Validate kiểm tra input và chỉ báo lỗi đầu tiên theo thứ tự khai báo field,
// key lạ được xét sau cùng. keys giữ thứ tự key ban đầu của từng object, có thể nil.
func (s *Schema) Validate(input map[string]any, keys KeyOrder) (*Input, error) {
	values, first := s.convert(input, ref{}, nil, keys)

	req := reflect.New(s.typ).Interface()
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		if f := s.failure(verrs[0], values); first == nil || before(f.pos, first.pos) {
			first = f
		}
	}

	if first != nil {
		return nil, &Error{Details: []Detail{*first.detail}}
	}
	return &Input{Request: req, Values: values}, nil
}

// failure là một lỗi cùng vị trí của nó trong schema, dùng để chọn lỗi xuất hiện trước
type failure struct {
	detail *Detail
	pos    []int
}

// before so sánh vị trí theo thứ tự từ điển; vị trí cha đứng trước vị trí con
func before(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func withPos(pos []int, i int) []int {
	return append(slices.Clip(pos), i)
}

// ref xác định vị trí của giá trị đang kiểm tra
type ref struct {
	key   any
	label string
	path  []any
}

func (r ref) child(key string) ref {
	label := key
	if r.label != "" {
		label = r.label + "." + key
	}
	return ref{key: key, label: label, path: append(slices.Clip(r.path), key)}
}

func (r ref) index(i int) ref {
	return ref{key: i, label: fmt.Sprintf("%s[%d]", r.label, i), path: append(slices.Clip(r.path), i)}
}

func (r ref) fail(typ, msg string, value any, present bool, extra map[string]any) *Detail {
	ctx := map[string]any{"label": r.label, "key": r.key}
	if present {
		ctx["value"] = value
	}
	for k, v := range extra {
		ctx[k] = v
	}
	path := r.path
	if path == nil {
		path = []any{}
	}
	return &Detail{
		Message: fmt.Sprintf("%q %s", r.label, msg),
		Path:    path,
		Type:    typ,
		Context: ctx,
	}
}

// convert kiểm tra kiểu từng field và chuyển giá trị sang kiểu của struct.
// Field sai kiểu bị bỏ khỏi kết quả; lỗi đầu tiên theo thứ tự duyệt được trả về.
func (s *Schema) convert(input map[string]any, r ref, pos []int, keys KeyOrder) (map[string]any, *failure) {
	out := make(map[string]any, len(input))
	var first *failure

	for i, f := range s.fields {
		value, present := input[f.key]
		if !present {
			continue
		}
		converted, fail := f.convert(value, r.child(f.key), withPos(pos, i), keys)
		if first == nil {
			first = fail
		}
		if converted != nil {
			out[f.key] = converted
		}
	}

	if first == nil {
		if key, ok := s.firstUnknown(input, keys[r.label]); ok {
			kr := r.child(key)
			first = &failure{
				detail: kr.fail("object.unknown", "is not allowed", input[key], true, map[string]any{"child": key}),
				pos:    withPos(pos, len(s.fields)),
			}
		}
	}
	return out, first
}

// firstUnknown trả về key lạ đầu tiên theo thứ tự trong order;
// key không có trong order được xét sau, theo alphabet
func (s *Schema) firstUnknown(input map[string]any, order []string) (string, bool) {
	for _, k := range order {
		if _, known := s.index[k]; !known {
			if _, ok := input[k]; ok {
				return k, true
			}
		}
	}
	var rest []string
	for k := range input {
		if _, known := s.index[k]; !known {
			rest = append(rest, k)
		}
	}
	if len(rest) == 0 {
		return "", false
	}
	slices.Sort(rest)
	return rest[0], true
}

func (f field) convert(value any, r ref, pos []int, keys KeyOrder) (any, *failure) {
	fail := func(typ, msg string, extra map[string]any) (any, *failure) {
		return nil, &failure{detail: r.fail(typ, msg, value, true, extra), pos: pos}
	}

	// field có tập giá trị cố định: mọi chuỗi được chuyển cho validator kiểm tra oneof
	if len(f.valids) > 0 {
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fail("any.only", onlyMessage(f.valids), map[string]any{"valids": f.valids})
	}

	switch f.kind {
	case kindString:
		s, ok := value.(string)
		if !ok {
			return fail("string.base", "must be a string", nil)
		}
		if s == "" {
			return fail("string.empty", "is not allowed to be empty", nil)
		}
		return s, nil

	case kindNumber:
		switch n := value.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case string:
			trimmed := strings.TrimSpace(n)
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err == nil && trimmed != "" && !math.IsInf(parsed, 0) && !math.IsNaN(parsed) {
				return parsed, nil
			}
		}
		return fail("number.base", "must be a number", nil)

	case kindBoolean:
		switch b := value.(type) {
		case bool:
			return b, nil
		case string:
			if strings.EqualFold(b, "true") {
				return true, nil
			}
			if strings.EqualFold(b, "false") {
				return false, nil
			}
		}
		return fail("boolean.base", "must be a boolean", nil)

	case kindArray:
		list, ok := value.([]any)
		if !ok {
			return fail("array.base", "must be an array", nil)
		}
		out := make([]any, len(list))
		var first *failure
		for i, item := range list {
			ir := r.index(i)
			ipos := withPos(pos, i)
			obj, ok := item.(map[string]any)
			if !ok {
				// giữ chỗ để chỉ số các phần tử sau không đổi
				out[i] = map[string]any{}
				if first == nil {
					first = &failure{
						detail: ir.fail("object.base", "must be of type object", item, true, map[string]any{"type": "object"}),
						pos:    ipos,
					}
				}
				continue
			}
			converted, fail := f.items.convert(obj, ir, ipos, keys)
			out[i] = converted
			if first == nil {
				first = fail
			}
		}
		return out, first
	}
	return value, nil
}

func onlyMessage(valids []string) string {
	return "must be one of [" + strings.Join(valids, ", ") + "]"
}

// failure chuyển lỗi của validator sang Detail
func (s *Schema) failure(fe validator.FieldError, values map[string]any) *failure {
	r, pos, f := s.resolve(fe.Namespace())
	value, present := lookup(values, r.path)

	switch fe.Tag() {
	case "required":
		return &failure{detail: r.fail("any.required", "is required", nil, false, nil), pos: pos}

	case "min", "max":
		limit := param(fe.Param())
		var typ, msg string
		switch {
		case f.kind == kindNumber && fe.Tag() == "min":
			typ, msg = "number.min", fmt.Sprintf("must be greater than or equal to %v", limit)
		case f.kind == kindNumber:
			typ, msg = "number.max", fmt.Sprintf("must be less than or equal to %v", limit)
		case fe.Tag() == "min":
			typ, msg = "string.min", fmt.Sprintf("length must be at least %v characters long", limit)
		default:
			typ, msg = "string.max", fmt.Sprintf("length must be less than or equal to %v characters long", limit)
		}
		return &failure{detail: r.fail(typ, msg, value, present, map[string]any{"limit": limit}), pos: pos}

	case "alphanum":
		return &failure{detail: r.fail("string.alphanum", "must only contain alpha-numeric characters", value, present, nil), pos: pos}

	case "oneof":
		valids := strings.Fields(fe.Param())
		return &failure{detail: r.fail("any.only", onlyMessage(valids), value, present, map[string]any{"valids": valids}), pos: pos}

	case tagStrongPassword:
		msg := fmt.Sprintf("with value %q fails to match the required pattern: %s", value, PasswordPattern)
		return &failure{detail: r.fail("string.pattern.base", msg, value, present, map[string]any{"regex": map[string]any{}}), pos: pos}
	}

	return &failure{detail: r.fail("any.invalid", "contains an invalid value", value, present, nil), pos: pos}
}

// resolve đổi namespace của validator (vd. "UpdateTaskRequest.notes[0].text")
// thành ref, vị trí trong schema và field tương ứng
func (s *Schema) resolve(namespace string) (ref, []int, field) {
	var (
		r   ref
		pos []int
		f   field
		cur = s
	)
	parts := strings.Split(namespace, ".")
	for _, part := range parts[1:] {
		name, idx, indexed := strings.Cut(part, "[")
		i := cur.index[name]
		f = cur.fields[i]
		r = r.child(name)
		pos = withPos(pos, i)
		if indexed {
			n, _ := strconv.Atoi(strings.TrimSuffix(idx, "]"))
			r = r.index(n)
			pos = withPos(pos, n)
			cur = f.items
		}
	}
	return r, pos, f
}

func lookup(values map[string]any, path []any) (any, bool) {
	var cur any = values
	for _, p := range path {
		switch k := p.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			if cur, ok = m[k]; !ok {
				return nil, false
			}
		case int:
			list, ok := cur.([]any)
			if !ok || k >= len(list) {
				return nil, false
			}
			cur = list[k]
		}
	}
	return cur, true
}

func param(p string) any {
	if n, err := strconv.Atoi(p); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(p, 64); err == nil {
		return f
	}
	return p
}
