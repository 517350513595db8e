package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatType_String(t *testing.T) {
	tcs := []struct {
		format OutputFormatType
		expect string
	}{
		{OutputFormatTable, "table"},
		{OutputFormatPlain, "plain"},
		{OutputFormatType(9), "OutputFormatType(9)"},
		{OutputFormatType(-1), "OutputFormatType(-1)"},
	}

	for _, tc := range tcs {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.format.String())
		})
	}
}

func TestMustParseOutputFormatType(t *testing.T) {
	for _, name := range availableOutputFormats {
		assert.Equal(t, name, MustParseOutputFormatType(name).String())
	}

	assert.Panics(t, func() { MustParseOutputFormatType("json") })
}
