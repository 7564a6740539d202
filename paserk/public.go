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

// PublicToPASERK encodes an Ed25519 verifying key as a k4.public string.
func PublicToPASERK(pk ed25519.PublicKey) (string, error) {
	if len(pk) != ed25519.PublicKeySize {
		return "", fmt.Errorf("paserk: invalid public key length, it must be %d bytes long", ed25519.PublicKeySize)
	}
	return PublicPrefix + base64.RawURLEncoding.EncodeToString(pk), nil
}

// PublicFromPASERK decodes a k4.public string into an Ed25519 verifying
// key.
func PublicFromPASERK(s string) (ed25519.PublicKey, error) {
	if !strings.HasPrefix(s, PublicPrefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, PublicPrefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(PublicPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}
	if len(body) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, ed25519.PublicKeySize, len(body))
	}

	return ed25519.PublicKey(body), nil
}
