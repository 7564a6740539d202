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
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/licensify/licensify/internal/common"
)

// Sign implements the PASETO v4 public signature primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#sign
func Sign(m []byte, sk ed25519.PrivateKey, f, i []byte) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("paseto: invalid private key length, it must be %d bytes long", ed25519.PrivateKeySize)
	}

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f, i)
	sig := ed25519.Sign(sk, m2)

	body := make([]byte, 0, len(m)+ed25519.SignatureSize)
	body = append(body, m...)
	body = append(body, sig...)

	token := PublicPrefix + base64.RawURLEncoding.EncodeToString(body)
	if len(f) > 0 {
		token += "." + base64.RawURLEncoding.EncodeToString(f)
	}

	return token, nil
}

// Verify implements the PASETO v4 public signature verification
// primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#verify
func Verify(t string, pk ed25519.PublicKey, f, i []byte) ([]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("paseto: invalid public key length, it must be %d bytes long", ed25519.PublicKeySize)
	}

	rawToken := []byte(t)
	if !bytes.HasPrefix(rawToken, []byte(PublicPrefix)) {
		return nil, fmt.Errorf("paseto: unexpected header: %w", common.ErrBadVersion)
	}
	rawToken = rawToken[len(PublicPrefix):]

	if len(f) > 0 {
		footerIdx := bytes.IndexByte(rawToken, '.')
		if footerIdx <= 0 {
			return nil, fmt.Errorf("paseto: footer is missing but expected: %w", common.ErrFooterMismatch)
		}

		footer := make([]byte, base64.RawURLEncoding.DecodedLen(len(rawToken[footerIdx+1:])))
		n, err := base64.RawURLEncoding.Decode(footer, rawToken[footerIdx+1:])
		if err != nil {
			return nil, fmt.Errorf("paseto: footer has invalid encoding: %w", common.ErrBadEncoding)
		}
		footer = footer[:n]

		if !common.SecureCompare(f, footer) {
			return nil, fmt.Errorf("paseto: footer mismatch: %w", common.ErrFooterMismatch)
		}

		rawToken = rawToken[:footerIdx]
	}

	raw := make([]byte, base64.RawURLEncoding.DecodedLen(len(rawToken)))
	n, err := base64.RawURLEncoding.Decode(raw, rawToken)
	if err != nil {
		return nil, fmt.Errorf("paseto: invalid token body: %w", common.ErrBadEncoding)
	}
	raw = raw[:n]

	if len(raw) < ed25519.SignatureSize {
		return nil, fmt.Errorf("paseto: token body shorter than a signature: %w", common.ErrTruncated)
	}

	m := raw[:len(raw)-ed25519.SignatureSize]
	sig := raw[len(raw)-ed25519.SignatureSize:]

	m2 := common.PreAuthenticationEncoding([]byte(PublicPrefix), m, f, i)
	if !ed25519.Verify(pk, m2, sig) {
		return nil, fmt.Errorf("paseto: signature verification failed: %w", common.ErrSignatureInvalid)
	}

	return m, nil
}
