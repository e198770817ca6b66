package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeclaredLength(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{raw: "1000", want: 1000},
		{raw: " 42 ", want: 42},
		{raw: "", want: UnknownLength},
		{raw: "0", want: UnknownLength},
		{raw: "-5", want: UnknownLength},
		{raw: "abc", want: UnknownLength},
		{raw: "12abc", want: UnknownLength},
		{raw: "99999999999999999999999", want: UnknownLength},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDeclaredLength(tt.raw))
		})
	}
}

func TestParseShouldFail(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{name: "absent", values: nil, want: false},
		{name: "empty value", values: []string{""}, want: false},
		{name: "whitespace only", values: []string{"  "}, want: false},
		{name: "true", values: []string{"true"}, want: true},
		{name: "one", values: []string{"1"}, want: true},
		{name: "arbitrary text", values: []string{"yes please"}, want: true},
		{name: "false is still present", values: []string{"false"}, want: true},
		{name: "zero is still present", values: []string{"0"}, want: true},
		{name: "blank then value", values: []string{"", "off"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseShouldFail(tt.values))
		})
	}
}
