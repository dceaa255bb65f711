package main

import (
	"bytes"
	"strings"
	"testing"

	"fitcoach/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func field(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, name+":") {
			return strings.TrimSpace(strings.TrimPrefix(line, name+":"))
		}
	}
	t.Fatalf("no %s line in %q", name, out)
	return ""
}

func TestRun_AccessToken(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-principal", "coach", "-role", "admin", "-email", "coach@example.com"}, &out, testSecret))

	claims, err := auth.ValidateToken(field(t, out.String(), "access"), testSecret)
	require.NoError(t, err)
	assert.Equal(t, "coach", claims.Principal)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Equal(t, "coach@example.com", claims.Email)
}

func TestRun_RandomPrincipal(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, testSecret))
	assert.Len(t, field(t, out.String(), "principal"), 36)
}

func TestRun_PairAndRefresh(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-principal", "u-1", "-pair"}, &out, testSecret))
	refresh := field(t, out.String(), "refresh")

	out.Reset()
	require.NoError(t, run([]string{"-refresh", refresh}, &out, testSecret))
	assert.Equal(t, "u-1", field(t, out.String(), "principal"))

	out.Reset()
	require.NoError(t, run([]string{"-principal", "u-1"}, &out, testSecret))
	access := field(t, out.String(), "access")
	assert.ErrorIs(t, run([]string{"-refresh", access}, &out, testSecret), auth.ErrInvalidTokenType)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-role", "owner"}, &out, testSecret))
	assert.ErrorIs(t, run(nil, &out, ""), auth.ErrEmptyJWTSecret)
	assert.Error(t, run([]string{"-nope"}, &out, testSecret))
}
