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
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/licensify/licensify/internal/common"
)

// GenerateLocalKey generates a random key for v4.local encryption,
// reading randomness from r.
func GenerateLocalKey(r io.Reader) (*LocalKey, error) {
	var key LocalKey
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return nil, fmt.Errorf("paseto: unable to generate a random local key: %w", err)
	}
	return &key, nil
}

// LocalKeyFromSeed builds a local key from raw key material, such as
// bytes unwrapped from a k4.local PASERK.
func LocalKeyFromSeed(seed []byte) (*LocalKey, error) {
	if len(seed) < KeyLength {
		return nil, fmt.Errorf("paseto: invalid seed length, it must be %d bytes long at least", KeyLength)
	}
	var key LocalKey
	copy(key[:], seed[:KeyLength])
	return &key, nil
}

// Encrypt implements the PASETO v4 symmetric encryption primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#encrypt
func Encrypt(r io.Reader, key *LocalKey, m, f, i []byte) (string, error) {
	if key == nil {
		return "", errors.New("paseto: key is nil")
	}

	var n [nonceLength]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", fmt.Errorf("paseto: unable to generate random seed: %w", err)
	}

	ek, n2, err := kdf(key, n[:])
	if err != nil {
		return "", fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}
	ak, err := authKey(key, n[:])
	if err != nil {
		return "", fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(ek, n2)
	if err != nil {
		return "", fmt.Errorf("paseto: unable to initialize XChaCha20 cipher: %w", err)
	}

	c := make([]byte, len(m))
	ciph.XORKeyStream(c, m)

	t, err := mac(ak, LocalPrefix, n[:], c, f, i)
	if err != nil {
		return "", fmt.Errorf("paseto: unable to compute MAC: %w", err)
	}

	// h || base64url(n || c || t)
	body := make([]byte, 0, nonceLength+len(c)+macLength)
	body = append(body, n[:]...)
	body = append(body, c...)
	body = append(body, t...)

	token := LocalPrefix + base64.RawURLEncoding.EncodeToString(body)
	if len(f) > 0 {
		token += "." + base64.RawURLEncoding.EncodeToString(f)
	}

	return token, nil
}

// Decrypt implements the PASETO v4 symmetric decryption primitive.
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md#decrypt
func Decrypt(key *LocalKey, input string, f, i []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.New("paseto: key is nil")
	}
	if input == "" {
		return nil, errors.New("paseto: input is blank")
	}

	rawToken := []byte(input)
	if !bytes.HasPrefix(rawToken, []byte(LocalPrefix)) {
		return nil, fmt.Errorf("paseto: unexpected header: %w", common.ErrBadVersion)
	}
	rawToken = rawToken[len(LocalPrefix):]

	if len(f) > 0 {
		footerIdx := bytes.IndexByte(rawToken, '.')
		if footerIdx < 0 {
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

	if len(raw) < nonceLength+macLength {
		return nil, fmt.Errorf("paseto: token body shorter than nonce+tag: %w", common.ErrTruncated)
	}

	nonce := raw[:nonceLength]
	tag := raw[len(raw)-macLength:]
	c := raw[nonceLength : len(raw)-macLength]

	ek, n2, err := kdf(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}
	ak, err := authKey(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to derive keys from seed: %w", err)
	}

	expectedTag, err := mac(ak, LocalPrefix, nonce, c, f, i)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to compute MAC: %w", err)
	}
	if !common.SecureCompare(tag, expectedTag) {
		return nil, fmt.Errorf("paseto: tag verification failed: %w", common.ErrAuthFailed)
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(ek, n2)
	if err != nil {
		return nil, fmt.Errorf("paseto: unable to initialize XChaCha20 cipher: %w", err)
	}

	m := make([]byte, len(c))
	ciph.XORKeyStream(m, c)

	return m, nil
}
