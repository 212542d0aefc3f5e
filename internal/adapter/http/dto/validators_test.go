package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindingValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestValidateCPF(t *testing.T) {
	v := bindingValidator(t)

	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"masked valid", "123.456.789-09", true},
		{"bare valid", "12345678909", true},
		{"wrong check digit", "123.456.789-00", false},
		{"too short", "123", false},
		{"letters", "abc.def.ghi-jk", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.cpf, "cpf")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSanitizeStruct(t *testing.T) {
	req := RegisterCustomerRequest{
		Name:    "  Ana <b>Souza</b>  ",
		CPF:     " 123.456.789-09 ",
		Address: "Rua A, 10",
	}

	SanitizeStruct(&req)

	assert.Equal(t, "Ana &lt;b&gt;Souza&lt;/b&gt;", req.Name)
	assert.Equal(t, "123.456.789-09", req.CPF)
	assert.Equal(t, "Rua A, 10", req.Address)
}

func TestSanitizeStruct_NonStructIsNoop(t *testing.T) {
	s := " hello "
	SanitizeStruct(&s)
	assert.Equal(t, " hello ", s)

	SanitizeStruct(nil)
}

func TestSanitizeStruct_PointerFields(t *testing.T) {
	type form struct {
		Note *string
	}
	note := " <i>hi</i> "
	f := form{Note: &note}

	SanitizeStruct(&f)

	assert.Equal(t, "&lt;i&gt;hi&lt;/i&gt;", *f.Note)
}
