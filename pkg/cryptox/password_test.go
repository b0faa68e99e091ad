package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
	require.Len(t, strings.Split(hash, "$"), 6)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	a, err := HashPassword("samepassword")
	require.NoError(t, err)
	b, err := HashPassword("samepassword")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("longenough1A")
	require.NoError(t, err)

	t.Run("correct", func(t *testing.T) {
		require.NoError(t, VerifyPassword("longenough1A", hash))
	})

	t.Run("wrong", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("longenough1a", hash), ErrPasswordMismatch)
		require.ErrorIs(t, VerifyPassword("", hash), ErrPasswordMismatch)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"plaintext",
			"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
			"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
		} {
			require.ErrorIs(t, VerifyPassword("x", bad), ErrMalformedHash, bad)
		}
	})
}

func TestPepperIsPersisted(t *testing.T) {
	p1, err := GetPepper()
	require.NoError(t, err)
	require.NotEmpty(t, p1)

	p2, err := GetPepper()
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
