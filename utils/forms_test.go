package utils_test

import (
	"testing"

	"acelerador/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"1500.50", 1500.5},
		{"1.5", 1.5},
		{"1500", 1500},
		{"1.500,00", 1500},
		{"1500,50", 1500.5},
		{"0,99", 0.99},
		{"  42,5  ", 42.5},
		{"", 0},
	}
	for _, tc := range cases {
		got, err := utils.ParseDecimal(tc.raw)
		assert.NoError(t, err, "ParseDecimal(%q)", tc.raw)
		assert.Equal(t, tc.want, got, "ParseDecimal(%q)", tc.raw)
	}

	for _, raw := range []string{"abc", "1,5,0", "1.2.3"} {
		_, err := utils.ParseDecimal(raw)
		assert.Error(t, err, "ParseDecimal(%q)", raw)
	}
}
