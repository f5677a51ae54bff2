package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "segredo-de-teste", time.Hour, testLogger())

	token, err := svc.GenerateJWTToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	usuarioID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), usuarioID)
}

func TestParseTokenComSegredoErrado(t *testing.T) {
	emissor := NewAuthService(nil, "segredo-a", time.Hour, testLogger())
	verificador := NewAuthService(nil, "segredo-b", time.Hour, testLogger())

	token, err := emissor.GenerateJWTToken(7)
	require.NoError(t, err)

	_, err = verificador.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpirado(t *testing.T) {
	svc := NewAuthService(nil, "segredo-de-teste", -time.Minute, testLogger())

	token, err := svc.GenerateJWTToken(7)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenMalformado(t *testing.T) {
	svc := NewAuthService(nil, "segredo-de-teste", time.Hour, testLogger())

	_, err := svc.ParseToken("nao-e-um-token")
	assert.Error(t, err)
}
