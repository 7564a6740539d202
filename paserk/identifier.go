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

package paserk

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/base64"

	v4 "github.com/licensify/licensify/paseto/v4"
)

// identifier computes a k4.lid/pid/sid fingerprint: a truncated SHA-384
// digest of the identifier's own prefix concatenated with the full
// serialized PASERK string it fingerprints. For lid and sid that string
// carries the secret key bytes; crypto/sha512 has no data-dependent
// branches, so the time taken depends only on the input length.
func identifier(idPrefix, keyPASERK string) string {
	h := sha512.Sum384([]byte(idPrefix + keyPASERK))
	return idPrefix + base64.RawURLEncoding.EncodeToString(h[:identifierLength])
}

// LocalID returns the k4.lid identifier for a symmetric key.
func LocalID(key *v4.LocalKey) (string, error) {
	paserk, err := LocalToPASERK(key)
	if err != nil {
		return "", err
	}
	return identifier(LocalIDPrefix, paserk), nil
}

// PublicID returns the k4.pid identifier for a verifying key.
func PublicID(pk ed25519.PublicKey) (string, error) {
	paserk, err := PublicToPASERK(pk)
	if err != nil {
		return "", err
	}
	return identifier(PublicIDPrefix, paserk), nil
}

// SecretID returns the k4.sid identifier for a signing key.
func SecretID(sk ed25519.PrivateKey) (string, error) {
	paserk, err := SecretToPASERK(sk)
	if err != nil {
		return "", err
	}
	return identifier(SecretIDPrefix, paserk), nil
}
