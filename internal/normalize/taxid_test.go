package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCNPJ(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12345678000190", NormalizeCNPJ("12.345.678/0001-90"))
	assert.Equal(t, "12345678000190", NormalizeCNPJ("12345678000190"))
	assert.Equal(t, "", NormalizeCNPJ(""))
	assert.Equal(t, "", NormalizeCNPJ("sem número"))
}

func TestOnlyDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11144477735", OnlyDigits("111.444.777-35"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestFormatCPF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "111.444.777-35", FormatCPF("11144477735"))
	assert.Equal(t, "123", FormatCPF("12-3"))
	assert.Equal(t, "", FormatCPF(""))
}

func TestValidateCPF(t *testing.T) {
	t.Parallel()

	t.Run("valid with punctuation", func(t *testing.T) {
		t.Parallel()
		assert.True(t, ValidateCPF("111.444.777-35"))
	})

	t.Run("valid digits only", func(t *testing.T) {
		t.Parallel()
		assert.True(t, ValidateCPF("11144477735"))
	})

	t.Run("bad check digit", func(t *testing.T) {
		t.Parallel()
		assert.False(t, ValidateCPF("11144477736"))
	})

	t.Run("repeated digits rejected", func(t *testing.T) {
		t.Parallel()
		assert.False(t, ValidateCPF("11111111111"))
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		assert.False(t, ValidateCPF("1114447773"))
	})
}
