package terminal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/emreeozkull/biletbudur-cli/internal/utils/test/assert"
)

func TestOutputFormat(t *testing.T) {
	for _, tc := range []OutputFormat{
		OutputFormatJSON,
		OutputFormatText,
	} {
		t.Run(fmt.Sprintf("%s should be valid", tc), func(t *testing.T) {
			assert.True(t, isValidOutputFormat(tc), "must be valid output format")
		})
	}

	t.Run("Should report a string type for flag help", func(t *testing.T) {
		assert.Equal(t, "string", OutputFormatText.Type())
	})

	t.Run("Should set its value correctly with a valid output format", func(t *testing.T) {
		var of OutputFormat

		assert.Nil(t, of.Set("json"))
		assert.Equal(t, "json", of.String())

		assert.Nil(t, of.Set(""))
		assert.Equal(t, "<blank>", of.String())
	})

	t.Run("Should return an error when setting its value with an invalid output format", func(t *testing.T) {
		var of OutputFormat

		assert.Equal(t, errors.New("unsupported value, use one of [<blank>, json] instead"), of.Set("yaml"))
		assert.Equal(t, OutputFormatText, of)
	})
}
