// Licensed to SolID under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. SolID licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/licensify/licensify/paserk"
	v4 "github.com/licensify/licensify/paseto/v4"
)

// SymmetricKey owns a 32-byte XChaCha20 key used for v4.local encryption
// and as a wrapping key for the *-wrap.pie PASERK format. It is not
// goroutine-safe: concurrent ExecuteWithKeyBytes and Dispose calls on
// the same handle are a programming error.
type SymmetricKey struct {
	buf      [v4.KeyLength]byte
	disposed bool
}

var _ Handle = (*SymmetricKey)(nil)

func (k *SymmetricKey) sealed() {}

// GenerateEncryptionKey produces a fresh random symmetric key, reading
// randomness from r.
func GenerateEncryptionKey(r io.Reader) (*SymmetricKey, error) {
	raw, err := v4.GenerateLocalKey(r)
	if err != nil {
		return nil, fmt.Errorf("keys: unable to generate symmetric key: %w", err)
	}
	return &SymmetricKey{buf: [v4.KeyLength]byte(*raw)}, nil
}

// NewSymmetricKey wraps 32 bytes of existing key material in a handle.
// The caller's slice is copied; it is the caller's responsibility to
// zero its own copy if it is no longer needed.
func NewSymmetricKey(raw []byte) (*SymmetricKey, error) {
	if len(raw) != v4.KeyLength {
		return nil, fmt.Errorf("%w: symmetric key must be %d bytes", ErrKeyTypeMismatch, v4.KeyLength)
	}
	k := &SymmetricKey{}
	copy(k.buf[:], raw)
	return k, nil
}

func (k *SymmetricKey) Type() KeyType    { return KeyTypeXChaCha20Local }
func (k *SymmetricKey) IsDisposed() bool { return k.disposed }

// Dispose overwrites the backing buffer with zeros. All subsequent
// operations on this handle return ErrDisposed.
func (k *SymmetricKey) Dispose() {
	zeroBytes(k.buf[:])
	k.disposed = true
}

// ExecuteWithKeyBytes yields a defensive copy of the key bytes to fn,
// zeroing that copy on every exit path. Returns ErrDisposed if the
// handle has already been disposed.
func (k *SymmetricKey) ExecuteWithKeyBytes(fn func([]byte) error) error {
	return executeWithCopy(k.buf[:], k.disposed, fn)
}

// ExecuteWithKeyBytesAsync is the task-returning variant of
// ExecuteWithKeyBytes for callers that want to run fn off the calling
// goroutine. Cancelling ctx does not affect a fn already running; the
// caller simply stops waiting on the returned channel ("abandon to
// cancel").
func (k *SymmetricKey) ExecuteWithKeyBytesAsync(ctx context.Context, fn func([]byte) error) <-chan error {
	return executeWithCopyAsync(ctx, k.buf[:], k.disposed, fn)
}

// localKey returns a *v4.LocalKey copy of the key bytes for internal use
// by the PASERK/license layers. Callers outside this package should go
// through ExecuteWithKeyBytes instead.
func (k *SymmetricKey) localKey() (*v4.LocalKey, error) {
	if k.disposed {
		return nil, ErrDisposed
	}
	lk := v4.LocalKey(k.buf)
	return &lk, nil
}

// ToPASERK encodes the key as a k4.local string.
func (k *SymmetricKey) ToPASERK() (string, error) {
	lk, err := k.localKey()
	if err != nil {
		return "", err
	}
	return paserk.LocalToPASERK(lk)
}

// SymmetricKeyFromPASERK decodes a k4.local string into a new handle.
func SymmetricKeyFromPASERK(s string) (*SymmetricKey, error) {
	lk, err := paserk.LocalFromPASERK(s)
	if err != nil {
		return nil, err
	}
	return &SymmetricKey{buf: [v4.KeyLength]byte(*lk)}, nil
}

// Identifier returns the k4.lid fingerprint of this key.
func (k *SymmetricKey) Identifier() (string, error) {
	lk, err := k.localKey()
	if err != nil {
		return "", err
	}
	return paserk.LocalID(lk)
}

// PasswordWrap encodes the key as a k4.local-pw string protected by
// password, using the given Argon2id cost factors.
func (k *SymmetricKey) PasswordWrap(password string, p paserk.PasswordParams) (string, error) {
	lk, err := k.localKey()
	if err != nil {
		return "", err
	}
	return paserk.LocalPasswordWrap(lk, password, p)
}

// SymmetricKeyFromPasswordWrap decodes a k4.local-pw string, returning
// ErrBadPassword if password does not match.
func SymmetricKeyFromPasswordWrap(s, password string) (*SymmetricKey, error) {
	lk, err := paserk.LocalPasswordUnwrap(s, password)
	if err != nil {
		return nil, err
	}
	return &SymmetricKey{buf: [v4.KeyLength]byte(*lk)}, nil
}

// Wrap encodes the key as a k4.local-wrap.pie string under wrappingKey.
func (k *SymmetricKey) Wrap(wrappingKey *SymmetricKey) (string, error) {
	lk, err := k.localKey()
	if err != nil {
		return "", err
	}
	wk, err := wrappingKey.localKey()
	if err != nil {
		return "", err
	}
	return paserk.LocalPieWrap(lk, wk)
}

// SymmetricKeyFromWrap decodes a k4.local-wrap.pie string under
// wrappingKey.
func SymmetricKeyFromWrap(s string, wrappingKey *SymmetricKey) (*SymmetricKey, error) {
	wk, err := wrappingKey.localKey()
	if err != nil {
		return nil, err
	}
	lk, err := paserk.LocalPieUnwrap(s, wk)
	if err != nil {
		return nil, err
	}
	return &SymmetricKey{buf: [v4.KeyLength]byte(*lk)}, nil
}

// Seal encrypts the key to recipient's verifying key, producing a
// k4.seal string.
func (k *SymmetricKey) Seal(recipient *VerifyingPublicKey) (string, error) {
	lk, err := k.localKey()
	if err != nil {
		return "", err
	}
	return paserk.Seal(lk, recipient.pub)
}

// SymmetricKeyFromSeal unseals a k4.seal string using the full signing
// key pair it was sealed to.
func SymmetricKeyFromSeal(s string, recipient *KeyPair) (*SymmetricKey, error) {
	sk, err := recipient.private.expanded()
	if err != nil {
		return nil, err
	}
	lk, err := paserk.Unseal(s, sk)
	if err != nil {
		return nil, err
	}
	return &SymmetricKey{buf: [v4.KeyLength]byte(*lk)}, nil
}
