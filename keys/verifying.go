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

	"github.com/licensify/licensify/paserk"
)

// VerifyingPublicKey owns a 32-byte Ed25519 public point.
type VerifyingPublicKey struct {
	pub      ed25519.PublicKey
	disposed bool
}

var _ Handle = (*VerifyingPublicKey)(nil)

func (k *VerifyingPublicKey) sealed() {}

func newVerifyingPublicKey(pub ed25519.PublicKey) (*VerifyingPublicKey, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: verifying key must be %d bytes", ErrKeyTypeMismatch, ed25519.PublicKeySize)
	}
	cp := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(cp, pub)
	return &VerifyingPublicKey{pub: cp}, nil
}

func (k *VerifyingPublicKey) Type() KeyType    { return KeyTypeEd25519Public }
func (k *VerifyingPublicKey) IsDisposed() bool { return k.disposed }

func (k *VerifyingPublicKey) Dispose() {
	zeroBytes(k.pub)
	k.disposed = true
}

// ExecuteWithKeyBytes yields a defensive copy of the public key bytes.
func (k *VerifyingPublicKey) ExecuteWithKeyBytes(fn func([]byte) error) error {
	return executeWithCopy(k.pub, k.disposed, fn)
}

// ExecuteWithKeyBytesAsync is the task-returning variant of
// ExecuteWithKeyBytes.
func (k *VerifyingPublicKey) ExecuteWithKeyBytesAsync(ctx context.Context, fn func([]byte) error) <-chan error {
	return executeWithCopyAsync(ctx, k.pub, k.disposed, fn)
}

// ToPASERK encodes the key as a k4.public string.
func (k *VerifyingPublicKey) ToPASERK() (string, error) {
	if k.disposed {
		return "", ErrDisposed
	}
	return paserk.PublicToPASERK(k.pub)
}

// VerifyingPublicKeyFromPASERK decodes a k4.public string into a new
// handle.
func VerifyingPublicKeyFromPASERK(s string) (*VerifyingPublicKey, error) {
	pub, err := paserk.PublicFromPASERK(s)
	if err != nil {
		return nil, err
	}
	return newVerifyingPublicKey(pub)
}

// Identifier returns the k4.pid fingerprint of this key.
func (k *VerifyingPublicKey) Identifier() (string, error) {
	if k.disposed {
		return "", ErrDisposed
	}
	return paserk.PublicID(k.pub)
}
