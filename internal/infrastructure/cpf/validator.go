// Package cpf provides the CPF validators the customer workflow can be wired with.
package cpf

import (
	"context"
	"fmt"
	"strings"

	"github.com/clientes/backend/internal/domain/customer"
	"github.com/clientes/backend/internal/domain/shared/valueobject"
	"github.com/clientes/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// StubValidator accepts any well-formed CPF not ending in a rejected suffix.
// It performs no check-digit arithmetic and is meant for development.
type StubValidator struct {
	rejectedSuffixes []string
}

// NewStubValidator creates a StubValidator. Empty suffixes are ignored.
func NewStubValidator(rejectedSuffixes []string) *StubValidator {
	suffixes := make([]string, 0, len(rejectedSuffixes))
	for _, s := range rejectedSuffixes {
		if s = strings.TrimSpace(s); s != "" {
			suffixes = append(suffixes, s)
		}
	}
	return &StubValidator{rejectedSuffixes: suffixes}
}

func (v *StubValidator) Validate(_ context.Context, cpf string) bool {
	if !valueobject.IsWellFormedCPF(cpf) {
		return false
	}
	for _, suffix := range v.rejectedSuffixes {
		if strings.HasSuffix(cpf, suffix) {
			return false
		}
	}
	return true
}

// ChecksumValidator verifies the two modulo-11 check digits
type ChecksumValidator struct{}

func (ChecksumValidator) Validate(_ context.Context, cpf string) bool {
	return valueobject.HasValidCPFCheckDigits(cpf)
}

// New builds the validator selected by cfg.Mode
func New(cfg config.CPFConfig, logger *zap.Logger) (customer.CPFValidator, error) {
	switch cfg.Mode {
	case config.CPFModeStub, "":
		logger.Warn("Using stub CPF validator, check digits are not verified",
			zap.Strings("rejected_suffixes", cfg.RejectedSuffixes))
		return NewStubValidator(cfg.RejectedSuffixes), nil
	case config.CPFModeChecksum:
		return ChecksumValidator{}, nil
	case config.CPFModeRemote:
		return NewRemoteValidator(cfg.RemoteURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown cpf mode %q", cfg.Mode)
	}
}

var (
	_ customer.CPFValidator = (*StubValidator)(nil)
	_ customer.CPFValidator = ChecksumValidator{}
	_ customer.CPFValidator = (*RemoteValidator)(nil)
)
