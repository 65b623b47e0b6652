package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"FooBar", "foo_bar"},
		{"fooBar", "foo_bar"},
		{"foo_bar", "foo_bar"}, // already snake: unchanged
		{"HTTPSConnection", "https_connection"},
		{"new", "new"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToSnakeCase(tt.input), "input: %q", tt.input)
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"foo_bar", "FooBar"},
		{"foo-bar", "FooBar"},
		{"FooBar", "FooBar"}, // already pascal: unchanged
		{"ok", "Ok"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToPascalCase(tt.input), "input: %q", tt.input)
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "fooBar", ToCamelCase("foo_bar"))
	assert.Equal(t, "", ToCamelCase(""))
}

func TestUppercaseFirst(t *testing.T) {
	assert.Equal(t, "Foo_bar", UppercaseFirst("foo_bar"))
	assert.Equal(t, "X", UppercaseFirst("x"))
	assert.Equal(t, "", UppercaseFirst(""))
}
