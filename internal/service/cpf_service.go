package service

import (
	"strings"

	"github.com/paemuri/brdoc"
)

// CPFValidatorService implements ports.IDValidator using CPF check digits.
type CPFValidatorService struct{}

// NewCPFValidatorService creates a CPF validator.
func NewCPFValidatorService() *CPFValidatorService {
	return &CPFValidatorService{}
}

// Normalize strips mask characters (dots, dash, spaces), keeping digits.
func (s *CPFValidatorService) Normalize(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether id is a structurally valid CPF.
func (s *CPFValidatorService) IsValid(id string) bool {
	return brdoc.IsCPF(id)
}
