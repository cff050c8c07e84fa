package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Supported.Valid(Auto))
	for code := range Supported {
		assert.True(t, Supported.Valid(code), code)
	}

	for _, bad := range []string{"", "xx", "ES", "es-ES", "auto ", "español"} {
		assert.False(t, Supported.Valid(bad), bad)
	}
}

func TestValidUsesGivenTable(t *testing.T) {
	small := Table{"es": "Español"}

	assert.True(t, small.Valid("es"))
	assert.True(t, small.Valid(Auto))
	assert.False(t, small.Valid("en"))
}

func TestName(t *testing.T) {
	assert.Equal(t, "Español", Supported.Name("es"))
	assert.Equal(t, "Detección automática", Supported.Name(Auto))
	assert.Equal(t, "Desconocido", Supported.Name("xx"))
}

func TestCodes(t *testing.T) {
	codes := Supported.Codes()

	assert.Len(t, codes, len(Supported)+1)
	assert.Equal(t, Auto, codes[0])
	assert.Equal(t, "af", codes[1])
	assert.IsIncreasing(t, codes[1:])
}

func TestHint(t *testing.T) {
	assert.Equal(t, "", Hint(Auto))
	assert.Equal(t, "fr", Hint("fr"))
}

func TestDefaultIsSupported(t *testing.T) {
	assert.True(t, Supported.Valid(Default))
}
