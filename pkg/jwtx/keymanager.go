package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"sync"
)

// KeyManagerOptions configure NewEphemeralKeyManager.
type KeyManagerOptions struct {
	Issuer   string
	Audience []string

	// NumKeys signing keys are generated; defaults to 3, capped at 10.
	NumKeys int
}

// KeyManager owns the signing keys of one process and the verifier built on
// their public halves.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	mu      sync.RWMutex
	signers []Signer
}

// NewEphemeralKeyManager generates fresh Ed25519 keys held only in memory.
// Tokens issued before a restart stop verifying after it, which forces a
// refresh through the refresh token.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	n := opts.NumKeys
	if n <= 0 {
		n = 3
	}
	n = min(n, 10)

	ks := NewKeySet()
	km := &KeyManager{
		KeySet:   ks,
		Verifier: NewVerifierEdDSA(ks, opts.Issuer, opts.Audience),
	}

	for i := range n {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}
		s, err := NewSignerEdDSA(newKeyID(), priv)
		if err != nil {
			return nil, err
		}
		if err := ks.AddSigner(s); err != nil {
			return nil, fmt.Errorf("jwtx: register key %d: %w", i+1, err)
		}
		km.signers = append(km.signers, s)
	}

	return km, nil
}

// GetSigner picks one of the active signers at random.
func (km *KeyManager) GetSigner() Signer {
	km.mu.RLock()
	defer km.mu.RUnlock()

	switch len(km.signers) {
	case 0:
		return nil
	case 1:
		return km.signers[0]
	}
	return km.signers[mrand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int {
	km.mu.RLock()
	defer km.mu.RUnlock()
	return len(km.signers)
}

func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady() && km.NumSigners() > 0
}

func newKeyID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return "kvp-" + hex.EncodeToString(b[:])
}
