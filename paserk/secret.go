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
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/licensify/licensify/internal/common"
)

// SecretToPASERK encodes an Ed25519 signing key as a k4.secret string.
// Go's ed25519.PrivateKey is already laid out as seed(32) || public(32),
// matching the PASERK k4.secret body exactly.
func SecretToPASERK(sk ed25519.PrivateKey) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("paserk: invalid private key length, it must be %d bytes long", ed25519.PrivateKeySize)
	}
	return SecretPrefix + base64.RawURLEncoding.EncodeToString(sk), nil
}

// SecretFromPASERK decodes a k4.secret string into an Ed25519 signing
// key.
func SecretFromPASERK(s string) (ed25519.PrivateKey, error) {
	if !strings.HasPrefix(s, SecretPrefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, SecretPrefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(SecretPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}
	if len(body) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, ed25519.PrivateKeySize, len(body))
	}

	return ed25519.PrivateKey(body), nil
}
