package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "photo.jpg", want: "photo.jpg"},
		{name: "spaces kept inside", in: "my photo.jpg", want: "my photo.jpg"},
		{name: "surrounding spaces trimmed", in: "  a.txt ", want: "a.txt"},
		{name: "traversal", in: "../../etc/passwd", want: "passwd"},
		{name: "absolute", in: "/etc/passwd", want: "passwd"},
		{name: "windows path", in: `C:\tmp\a.txt`, want: "a.txt"},
		{name: "trailing slash", in: "dir/", want: "dir"},
		{name: "control characters", in: "a\x00b\nc", want: "abc"},
		{name: "empty", in: "", want: ""},
		{name: "dot", in: ".", want: ""},
		{name: "dot dot", in: "..", want: ""},
		{name: "dot dot slash", in: "../", want: ""},
		{name: "root", in: "/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}
