package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{600, "10시간"},
		{90, "1시간 30분"},
		{45, "45분"},
		{0, "0분"},
		{-90, "-1시간 30분"},
		{-30, "-30분"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestHoursToMinutes(t *testing.T) {
	assert.Equal(t, 600, HoursToMinutes(10))
	assert.Equal(t, 0, HoursToMinutes(0))
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"partial mobile", "0101", "010-1"},
		{"ten digit mobile", "0111234567", "011-123-4567"},
		{"eleven digit mobile", "01012345678", "010-1234-5678"},
		{"strips separators", "010-1234-5678", "010-1234-5678"},
		{"truncates extra digits", "010123456789", "010-1234-5678"},
		{"seoul short", "021234567", "02-123-4567"},
		{"seoul long", "0212345678", "02-1234-5678"},
		{"seoul partial", "0212", "02-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "01012345678", DigitsOnly("(010) 1234-5678"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "15,000", FormatAmount(15000))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
	assert.Equal(t, "-30,000", FormatAmount(-30000))
}
