package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autoi18n.dev/pkg/autoi18n/internal/model"
)

func TestApplyEdits(t *testing.T) {
	src := []byte("hello world")

	tests := []struct {
		name  string
		edits []m.Edit
		want  string
	}{
		{"no edits", nil, "hello world"},
		{"replace", []m.Edit{{Start: 6, End: 11, Text: "there"}}, "hello there"},
		{"insert", []m.Edit{{Start: 5, End: 5, Text: ","}}, "hello, world"},
		{
			"unsorted input",
			[]m.Edit{{Start: 6, End: 11, Text: "go"}, {Start: 0, End: 5, Text: "hi"}},
			"hi go",
		},
		{
			"insertions at one offset keep order",
			[]m.Edit{{Start: 0, End: 0, Text: "a"}, {Start: 0, End: 0, Text: "b"}},
			"abhello world",
		},
		{
			"insert right after a replacement",
			[]m.Edit{{Start: 0, End: 5, Text: "bye"}, {Start: 5, End: 5, Text: "!"}},
			"bye! world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyEdits(src, tt.edits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}

	assert.Equal(t, "hello world", string(src))
}

func TestApplyEdits_Errors(t *testing.T) {
	src := []byte("hello world")

	tests := []struct {
		name  string
		edits []m.Edit
	}{
		{"overlap", []m.Edit{{Start: 0, End: 5, Text: "x"}, {Start: 3, End: 8, Text: "y"}}},
		{"past end", []m.Edit{{Start: 6, End: 40, Text: "x"}}},
		{"inverted", []m.Edit{{Start: 5, End: 2, Text: "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyEdits(src, tt.edits)
			assert.Error(t, err)
		})
	}
}
