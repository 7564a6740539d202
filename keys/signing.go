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
	"crypto/ed25519"
	"fmt"
)

// SigningPrivateKey owns a 32-byte Ed25519 seed. The 64-byte expanded
// signing key is derived on demand rather than stored, per spec.
type SigningPrivateKey struct {
	seed     [ed25519.SeedSize]byte
	disposed bool
}

var _ Handle = (*SigningPrivateKey)(nil)

func (k *SigningPrivateKey) sealed() {}

// newSigningPrivateKey wraps a 32-byte Ed25519 seed in a handle.
func newSigningPrivateKey(seed []byte) (*SigningPrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: signing key seed must be %d bytes", ErrKeyTypeMismatch, ed25519.SeedSize)
	}
	k := &SigningPrivateKey{}
	copy(k.seed[:], seed)
	return k, nil
}

func (k *SigningPrivateKey) Type() KeyType    { return KeyTypeEd25519Secret }
func (k *SigningPrivateKey) IsDisposed() bool { return k.disposed }

func (k *SigningPrivateKey) Dispose() {
	zeroBytes(k.seed[:])
	k.disposed = true
}

// ExecuteWithKeyBytes yields a defensive copy of the 32-byte seed.
func (k *SigningPrivateKey) ExecuteWithKeyBytes(fn func([]byte) error) error {
	return executeWithCopy(k.seed[:], k.disposed, fn)
}

// ExecuteWithKeyBytesAsync is the task-returning variant of
// ExecuteWithKeyBytes.
func (k *SigningPrivateKey) ExecuteWithKeyBytesAsync(ctx context.Context, fn func([]byte) error) <-chan error {
	return executeWithCopyAsync(ctx, k.seed[:], k.disposed, fn)
}

// expanded derives the 64-byte Ed25519 signing key from the seed.
func (k *SigningPrivateKey) expanded() (ed25519.PrivateKey, error) {
	if k.disposed {
		return nil, ErrDisposed
	}
	return ed25519.NewKeyFromSeed(k.seed[:]), nil
}

// Public derives the verifying key that corresponds to this signing
// key.
func (k *SigningPrivateKey) Public() (*VerifyingPublicKey, error) {
	sk, err := k.expanded()
	if err != nil {
		return nil, err
	}
	pub, ok := sk.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("keys: unexpected public key type from Ed25519 derivation")
	}
	return newVerifyingPublicKey(pub)
}
