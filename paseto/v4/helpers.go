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

package v4

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/licensify/licensify/internal/common"
)

// kdf derives the encryption key/nonce pair (Ek, n2) from the long-term
// local key and the per-message random seed, domain-separated from the
// authentication key derived by the same seed.
func kdf(key *LocalKey, n []byte) (ek, n2 []byte, err error) {
	if key == nil {
		return nil, nil, errors.New("paseto: unable to derive keys from a nil local key")
	}

	encKDF, err := blake2b.New(encryptionKDFLength, key[:])
	if err != nil {
		return nil, nil, fmt.Errorf("paseto: unable to initialize encryption kdf: %w", err)
	}

	// Domain separation: the same seed drives two distinct derivations.
	encKDF.Write([]byte("paseto-encryption-key")) //nolint:errcheck
	encKDF.Write(n)                               //nolint:errcheck
	tmp := encKDF.Sum(nil)

	return tmp[:KeyLength], tmp[KeyLength:], nil
}

// authKey derives the BLAKE2b-MAC key (Ak) from the local key and seed.
func authKey(key *LocalKey, n []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.New("paseto: unable to derive keys from a nil local key")
	}

	authKDF, err := blake2b.New(authenticationKeyLength, key[:])
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize authentication kdf: %w", err)
	}

	authKDF.Write([]byte("paseto-auth-key-for-aead")) //nolint:errcheck
	authKDF.Write(n)                                  //nolint:errcheck

	return authKDF.Sum(nil), nil
}

// mac computes the keyed BLAKE2b-MAC tag over the pre-authentication
// encoding of the given pieces.
func mac(ak []byte, h string, n, c, f, i []byte) ([]byte, error) {
	preAuth := common.PreAuthenticationEncoding([]byte(h), n, c, f, i)

	m, err := blake2b.New(macLength, ak)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize MAC: %w", err)
	}
	m.Write(preAuth) //nolint:errcheck

	return m.Sum(nil), nil
}
