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
	"crypto/ed25519"
	"fmt"
	"io"

	"github.com/licensify/licensify/paserk"
)

// KeyPair exclusively owns one SigningPrivateKey and one
// VerifyingPublicKey. Disposing the pair disposes both sub-handles.
type KeyPair struct {
	private *SigningPrivateKey
	public  *VerifyingPublicKey
}

var _ Handle = (*KeyPair)(nil)

func (k *KeyPair) sealed() {}

// GenerateSigningKeys produces a fresh Ed25519 key pair, reading
// randomness from r.
func GenerateSigningKeys(r io.Reader) (*KeyPair, error) {
	pub, sk, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("keys: unable to generate signing key pair: %w", err)
	}
	priv, err := newSigningPrivateKey(sk.Seed())
	if err != nil {
		return nil, err
	}
	pubHandle, err := newVerifyingPublicKey(pub)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv, public: pubHandle}, nil
}

func (k *KeyPair) Type() KeyType { return KeyTypeEd25519Secret }

func (k *KeyPair) IsDisposed() bool {
	return k.private.IsDisposed() || k.public.IsDisposed()
}

// Dispose disposes both sub-handles.
func (k *KeyPair) Dispose() {
	k.private.Dispose()
	k.public.Dispose()
}

// IsConsistent reports whether both sub-handles are present and are
// the expected Ed25519 types — always true for a KeyPair constructed
// through this package, since the type system rules out mixing in
// anything else.
func (k *KeyPair) IsConsistent() bool {
	return k.private != nil && k.public != nil &&
		k.private.Type() == KeyTypeEd25519Secret && k.public.Type() == KeyTypeEd25519Public
}

// Private returns the owned signing-private-key handle.
func (k *KeyPair) Private() *SigningPrivateKey { return k.private }

// Public returns the owned verifying-public-key handle.
func (k *KeyPair) Public() *VerifyingPublicKey { return k.public }

// ToPASERK encodes the pair as a k4.secret string.
func (k *KeyPair) ToPASERK() (string, error) {
	sk, err := k.private.expanded()
	if err != nil {
		return "", err
	}
	return paserk.SecretToPASERK(sk)
}

// KeyPairFromPASERK decodes a k4.secret string into a new handle.
func KeyPairFromPASERK(s string) (*KeyPair, error) {
	sk, err := paserk.SecretFromPASERK(s)
	if err != nil {
		return nil, err
	}
	return keyPairFromPrivateKey(sk)
}

func keyPairFromPrivateKey(sk ed25519.PrivateKey) (*KeyPair, error) {
	priv, err := newSigningPrivateKey(sk.Seed())
	if err != nil {
		return nil, err
	}
	pubRaw, ok := sk.Public().(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("keys: unexpected public key type from Ed25519 derivation")
	}
	pub, err := newVerifyingPublicKey(pubRaw)
	if err != nil {
		return nil, err
	}
	return &KeyPair{private: priv, public: pub}, nil
}

// Identifier returns the k4.sid fingerprint of this key pair.
func (k *KeyPair) Identifier() (string, error) {
	sk, err := k.private.expanded()
	if err != nil {
		return "", err
	}
	return paserk.SecretID(sk)
}

// PasswordWrap encodes the pair as a k4.secret-pw string.
func (k *KeyPair) PasswordWrap(password string, p paserk.PasswordParams) (string, error) {
	sk, err := k.private.expanded()
	if err != nil {
		return "", err
	}
	return paserk.SecretPasswordWrap(sk, password, p)
}

// KeyPairFromPasswordWrap decodes a k4.secret-pw string, returning
// ErrBadPassword if password does not match.
func KeyPairFromPasswordWrap(s, password string) (*KeyPair, error) {
	sk, err := paserk.SecretPasswordUnwrap(s, password)
	if err != nil {
		return nil, err
	}
	return keyPairFromPrivateKey(sk)
}

// Wrap encodes the pair as a k4.secret-wrap.pie string under
// wrappingKey.
func (k *KeyPair) Wrap(wrappingKey *SymmetricKey) (string, error) {
	sk, err := k.private.expanded()
	if err != nil {
		return "", err
	}
	wk, err := wrappingKey.localKey()
	if err != nil {
		return "", err
	}
	return paserk.SecretPieWrap(sk, wk)
}

// KeyPairFromWrap decodes a k4.secret-wrap.pie string under
// wrappingKey.
func KeyPairFromWrap(s string, wrappingKey *SymmetricKey) (*KeyPair, error) {
	wk, err := wrappingKey.localKey()
	if err != nil {
		return nil, err
	}
	sk, err := paserk.SecretPieUnwrap(s, wk)
	if err != nil {
		return nil, err
	}
	return keyPairFromPrivateKey(sk)
}
