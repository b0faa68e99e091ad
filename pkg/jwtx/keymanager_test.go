package jwtx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/kidventure/partnerhub/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, n int) *jwtx.KeyManager {
	t.Helper()
	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:   "https://partners.test",
		Audience: []string{"partner-api"},
		NumKeys:  n,
	})
	require.NoError(t, err)
	return km
}

func accessParams() jwtx.AccessParams {
	return jwtx.AccessParams{
		Subject:  "acc_1",
		SID:      "sid_1",
		Role:     "staff",
		OrgID:    "org_1",
		Email:    "contact@example.com",
		Scopes:   []string{"sessions:read", "checkins:write"},
		AMR:      []string{"pwd"},
		Issuer:   "https://partners.test",
		Audience: []string{"partner-api"},
		TTL:      time.Minute,
	}
}

func TestKeyManager_Defaults(t *testing.T) {
	require.Equal(t, 3, newManager(t, 0).NumSigners())
	require.Equal(t, 10, newManager(t, 50).NumSigners())

	_, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)
}

func TestKeyManager_SignAndVerify(t *testing.T) {
	km := newManager(t, 3)
	require.True(t, km.IsReady())
	require.Len(t, km.KeySet.PublicJWKS().Keys, 3)

	// Every signer must produce tokens the shared verifier accepts.
	for range 20 {
		raw, err := km.GetSigner().Sign(jwtx.NewAccessClaims(accessParams(), time.Now().UTC()))
		require.NoError(t, err)

		claims, err := km.Verifier.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, "acc_1", claims.Subject)
		require.Equal(t, "staff", claims.Role)
		require.Equal(t, "org_1", claims.OrgID)
		require.True(t, claims.HasScope("checkins:write"))
		require.False(t, claims.HasScope("finance:read"))
	}
}

func TestVerify_Rejects(t *testing.T) {
	km := newManager(t, 1)

	t.Run("expired", func(t *testing.T) {
		raw, err := km.GetSigner().Sign(jwtx.NewAccessClaims(accessParams(), time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong audience", func(t *testing.T) {
		p := accessParams()
		p.Audience = []string{"other"}
		raw, err := km.GetSigner().Sign(jwtx.NewAccessClaims(p, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		p := accessParams()
		p.Issuer = "https://evil.test"
		raw, err := km.GetSigner().Sign(jwtx.NewAccessClaims(p, time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("foreign key", func(t *testing.T) {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		s, err := jwtx.NewSignerEdDSA("kvp-foreign", priv)
		require.NoError(t, err)

		raw, err := s.Sign(jwtx.NewAccessClaims(accessParams(), time.Now()))
		require.NoError(t, err)
		_, err = km.Verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := km.Verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestClaims_ValidateExpiryLeeway(t *testing.T) {
	now := time.Now().UTC()
	c := jwtx.NewAccessClaims(accessParams(), now)

	require.NoError(t, c.ValidateExpiry(now.Add(time.Minute+10*time.Second), 30*time.Second))
	require.ErrorIs(t, c.ValidateExpiry(now.Add(2*time.Minute), 30*time.Second), jwtx.ErrExpired)
	require.ErrorIs(t, c.ValidateExpiry(now.Add(-time.Minute), 0), jwtx.ErrNotYetValid)
}

func TestKeySet_RejectsNonEd25519(t *testing.T) {
	ks := jwtx.NewKeySet()
	require.Error(t, ks.AddJWK(jwtx.JWK{Kty: "RSA", Kid: "r"}))
	require.Error(t, ks.AddJWK(jwtx.JWK{Kty: "OKP", Crv: "Ed25519", Kid: "short", X: "AAAA"}))
	require.False(t, ks.IsReady())
}
