package cpf

import (
	"context"
	"testing"

	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStubValidator(t *testing.T) {
	v := NewStubValidator([]string{"00", " ", ""})
	ctx := context.Background()

	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"well formed", "12345678901", true},
		{"check digits are not verified", "11111111111", true},
		{"rejected suffix", "12345678900", false},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"punctuation", "123.456.789-01", false},
		{"letters", "1234567890a", false},
		{"blank", "", false},
		{"whitespace", " 2345678901 ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(ctx, tt.cpf))
		})
	}
}

func TestStubValidator_NoSuffixes(t *testing.T) {
	v := NewStubValidator(nil)
	assert.True(t, v.Validate(context.Background(), "12345678900"))
}

func TestChecksumValidator(t *testing.T) {
	v := ChecksumValidator{}
	ctx := context.Background()

	assert.True(t, v.Validate(ctx, "52998224725"))
	assert.True(t, v.Validate(ctx, "12345678909"))
	assert.False(t, v.Validate(ctx, "12345678901"))
	assert.False(t, v.Validate(ctx, "00000000000"))
	assert.False(t, v.Validate(ctx, "529.982.247-25"))
}

func TestNew(t *testing.T) {
	logger := zaptest.NewLogger(t)

	v, err := New(config.CPFConfig{Mode: config.CPFModeStub, RejectedSuffixes: []string{"00"}}, logger)
	require.NoError(t, err)
	assert.IsType(t, &StubValidator{}, v)

	v, err = New(config.CPFConfig{Mode: config.CPFModeChecksum}, logger)
	require.NoError(t, err)
	assert.IsType(t, ChecksumValidator{}, v)

	v, err = New(config.CPFConfig{Mode: config.CPFModeRemote, RemoteURL: "http://localhost"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &RemoteValidator{}, v)

	_, err = New(config.CPFConfig{Mode: "oracle"}, logger)
	assert.Error(t, err)
}
