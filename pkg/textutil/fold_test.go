package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/trading-pro/pkg/textutil"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"PÉREZ", "perez"},
		{"algodón", "algodon"},
		{"ya en minusculas", "ya en minusculas"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, textutil.Fold(c.in), "Fold(%q)", c.in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("María Pérez", "perez"))
	assert.True(t, textutil.ContainsFold("Camisa de Algodón", "ALGODON"))
	assert.False(t, textutil.ContainsFold("María Pérez", "gomez"))
}
