package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Object(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "raw json",
			raw:  `{"spots": [], "message": "none"}`,
			want: `{"spots": [], "message": "none"}`,
		},
		{
			name: "fenced with language tag",
			raw:  "```json\n{\"trips\": [{\"title\": \"A\"}]}\n```",
			want: `{"trips": [{"title": "A"}]}`,
		},
		{
			name: "fenced upper case tag",
			raw:  "```JSON\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "wrapped in prose",
			raw:  "Sure! Here are the gems:\n{\"spots\": [{\"name\": \"Cafe {Blue}\"}]}\nEnjoy your trip.",
			want: `{"spots": [{"name": "Cafe {Blue}"}]}`,
		},
		{
			name: "first candidate is not json",
			raw:  "Use {curly} notes. {\"ok\": true} done",
			want: `{"ok": true}`,
		},
		{
			name: "escaped quote inside string",
			raw:  `prefix {"name": "The \"Hidden\" Bar }"} suffix`,
			want: `{"name": "The \"Hidden\" Bar }"}`,
		},
		{
			name: "unmatched brace before payload",
			raw:  "Here is the object you asked for { see below:\n{\"spots\": []}",
			want: `{"spots": []}`,
		},
		{
			name: "object wrapped in array",
			raw:  `[{"spots": [{"name": "Gilbert Hill"}]}]`,
			want: `{"spots": [{"name": "Gilbert Hill"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw, ShapeObject)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestExtract_Array(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "fenced with trailing footnote",
			raw:  "Here you go:\n```json\n[{\"name\": \"Juhu Beach\", \"rating\": 4.4}]\n```\nHope this helps [1].",
		},
		{
			name: "unmatched bracket before payload",
			raw:  "Results below (format: a JSON array starting with [ as requested):\n[{\"name\": \"Juhu Beach\", \"rating\": 4.4}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw, ShapeArray)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"name": "Juhu Beach", "rating": 4.4}]`, string(got))
		})
	}
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		shape Shape
	}{
		{name: "empty", raw: "   ", shape: ShapeObject},
		{name: "no brackets", raw: "I could not find anything.", shape: ShapeObject},
		{name: "unbalanced", raw: `here {"spots": [`, shape: ShapeObject},
		{name: "array when object expected", raw: `[1, 2]`, shape: ShapeObject},
		{name: "object when array expected", raw: `{"a": 1}`, shape: ShapeArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw, tt.shape)
			require.Error(t, err)
			var me *MalformedResponseError
			assert.True(t, errors.As(err, &me))
		})
	}
}

func TestExtractInto(t *testing.T) {
	var payload RawTrips
	err := ExtractInto("```\n{\"trips\": [{\"title\": \"Kyoto\", \"location\": \"Kyoto, Japan\"}]}\n```", ShapeObject, &payload)
	require.NoError(t, err)
	require.Len(t, payload.Trips, 1)
	assert.Equal(t, "Kyoto", payload.Trips[0].Title.Text())

	var wrong RawTrips
	err = ExtractInto(`{"trips": "not a list"}`, ShapeObject, &wrong)
	var me *MalformedResponseError
	assert.True(t, errors.As(err, &me))
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", StripCodeFences("plain"))
}
