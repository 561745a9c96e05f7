package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_FormattedAddress(t *testing.T) {
	t.Parallel()

	address := &Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Complement:   "Apto 45",
		Neighborhood: "Centro",
		City:         "Curitiba",
		State:        "PR",
		ZipCode:      "80010-000",
	}

	assert.Equal(t,
		"Rua das Flores, 123 - Apto 45, Centro, Curitiba - PR, CEP: 80010-000",
		address.FormattedAddress())

	address.Complement = ""
	assert.Equal(t,
		"Rua das Flores, 123, Centro, Curitiba - PR, CEP: 80010-000",
		address.FormattedAddress())
}
