package utils

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterData(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  bson.M
	}{
		{
			name:  "empty input matches all",
			input: map[string]any{},
			want:  bson.M{},
		},
		{
			name:  "text fields use prefix regex",
			input: map[string]any{"name": "jo", "title": "Buy", "description": "milk"},
			want: bson.M{
				"name":        primitive.Regex{Pattern: "^jo"},
				"title":       primitive.Regex{Pattern: "^Buy"},
				"description": primitive.Regex{Pattern: "^milk"},
			},
		},
		{
			name:  "nested text fields",
			input: map[string]any{"tagsText": "work", "notesText": "call"},
			want: bson.M{
				"tags.text":  primitive.Regex{Pattern: "^work"},
				"notes.text": primitive.Regex{Pattern: "^call"},
			},
		},
		{
			name:  "regex metacharacters are literal",
			input: map[string]any{"title": "a.b"},
			want:  bson.M{"title": primitive.Regex{Pattern: `^a\.b`}},
		},
		{
			name: "equality fields",
			input: map[string]any{
				"adminPrivileges": false,
				"userId":          "64a5a590648bd50348e07e37",
				"endDate":         "10/10/2023",
				"updateDate":      "09/10/2023",
			},
			want: bson.M{
				"adminPrivileges": false,
				"userId":          "64a5a590648bd50348e07e37",
				"endDate":         "10/10/2023",
				"updateDate":      "09/10/2023",
			},
		},
		{
			name:  "priority zero is kept",
			input: map[string]any{"priority": float64(0)},
			want:  bson.M{"priority": float64(0)},
		},
		{
			name:  "status zero is dropped",
			input: map[string]any{"status": float64(0)},
			want:  bson.M{},
		},
		{
			name:  "status equality",
			input: map[string]any{"status": float64(2)},
			want:  bson.M{"status": float64(2)},
		},
		{
			name:  "fractional numbers are not truncated",
			input: map[string]any{"status": 1.5, "priority": 0.5},
			want:  bson.M{"status": 1.5, "priority": 0.5},
		},
		{
			name:  "unknown and order keys are ignored",
			input: map[string]any{"orderTitle": "asc", "foo": "bar"},
			want:  bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterData(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterData() = %v, want %v", got, tt.want)
			}
		})
	}
}
