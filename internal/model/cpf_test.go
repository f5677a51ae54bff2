package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCPF(t *testing.T) {
	t.Run("cpfs válidos", func(t *testing.T) {
		assert.True(t, ValidarCPF("33475078007"))
		assert.True(t, ValidarCPF("52998224725"))
	})

	t.Run("dígito verificador errado", func(t *testing.T) {
		assert.False(t, ValidarCPF("33475078017"))
		assert.False(t, ValidarCPF("52998224726"))
	})

	t.Run("todos os dígitos repetidos", func(t *testing.T) {
		assert.False(t, ValidarCPF("00000000000"))
		assert.False(t, ValidarCPF("11111111111"))
	})

	t.Run("formato inválido", func(t *testing.T) {
		assert.False(t, ValidarCPF(""))
		assert.False(t, ValidarCPF("334.750.780-07"))
		assert.False(t, ValidarCPF("3347507800"))
	})
}
