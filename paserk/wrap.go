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
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

// deriveWrapSubkeys implements the PASERK "pie" construction: two
// domain-separated HMAC-SHA384 derivations keyed by the wrapping key,
// each over its label followed by the nonce, yielding an AES-256 key and
// an HMAC-SHA384 key.
func deriveWrapSubkeys(wrappingKey *v4.LocalKey, nonce []byte) (encKey, macKey []byte) {
	encMAC := hmac.New(sha512.New384, wrappingKey[:])
	encMAC.Write([]byte("paserk-wrap-encryption-key")) //nolint:errcheck
	encMAC.Write(nonce)                                //nolint:errcheck
	encKeyFull := encMAC.Sum(nil)

	authMAC := hmac.New(sha512.New384, wrappingKey[:])
	authMAC.Write([]byte("paserk-wrap-auth-key-for-aead")) //nolint:errcheck
	authMAC.Write(nonce)                                   //nolint:errcheck
	macKeyFull := authMAC.Sum(nil)

	return encKeyFull[:32], macKeyFull[:32]
}

func pieWrap(prefix string, plaintext []byte, wrappingKey *v4.LocalKey) (string, error) {
	if wrappingKey == nil {
		return "", fmt.Errorf("paserk: wrapping key is nil")
	}

	nonce := make([]byte, pieNonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("paserk: unable to generate nonce: %w", err)
	}

	encKey, macKey := deriveWrapSubkeys(wrappingKey, nonce)

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", fmt.Errorf("paserk: unable to initialize AES cipher: %w", err)
	}
	ct := make([]byte, len(plaintext))
	cipher.NewCTR(block, nonce[:aes.BlockSize]).XORKeyStream(ct, plaintext)

	preAuth := common.PreAuthenticationEncoding([]byte(prefix), nonce, ct)
	tagMAC := hmac.New(sha512.New384, macKey)
	tagMAC.Write(preAuth) //nolint:errcheck
	tag := tagMAC.Sum(nil)

	body := make([]byte, 0, len(nonce)+len(ct)+len(tag))
	body = append(body, nonce...)
	body = append(body, ct...)
	body = append(body, tag...)

	return prefix + base64.RawURLEncoding.EncodeToString(body), nil
}

func pieUnwrap(prefix, s string, wrappingKey *v4.LocalKey) ([]byte, error) {
	if wrappingKey == nil {
		return nil, fmt.Errorf("paserk: wrapping key is nil")
	}
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, prefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(prefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}
	if len(body) < pieNonceLength+48 {
		return nil, fmt.Errorf("%w: wrapped body too short", common.ErrTruncated)
	}

	nonce := body[:pieNonceLength]
	tag := body[len(body)-48:]
	ct := body[pieNonceLength : len(body)-48]

	_, macKey := deriveWrapSubkeys(wrappingKey, nonce)
	preAuth := common.PreAuthenticationEncoding([]byte(prefix), nonce, ct)
	tagMAC := hmac.New(sha512.New384, macKey)
	tagMAC.Write(preAuth) //nolint:errcheck
	expectedTag := tagMAC.Sum(nil)

	if !common.SecureCompare(tag, expectedTag) {
		return nil, common.ErrAuthFailed
	}

	encKey, _ := deriveWrapSubkeys(wrappingKey, nonce)
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize AES cipher: %w", err)
	}
	plaintext := make([]byte, len(ct))
	cipher.NewCTR(block, nonce[:aes.BlockSize]).XORKeyStream(plaintext, ct)

	return plaintext, nil
}

// LocalPieWrap wraps a symmetric key under another symmetric key,
// producing a k4.local-wrap.pie string.
func LocalPieWrap(key, wrappingKey *v4.LocalKey) (string, error) {
	if key == nil {
		return "", fmt.Errorf("paserk: key is nil")
	}
	return pieWrap(LocalWrapPiePrefix, key[:], wrappingKey)
}

// LocalPieUnwrap reverses LocalPieWrap.
func LocalPieUnwrap(s string, wrappingKey *v4.LocalKey) (*v4.LocalKey, error) {
	plaintext, err := pieUnwrap(LocalWrapPiePrefix, s, wrappingKey)
	if err != nil {
		return nil, err
	}
	if len(plaintext) != v4.KeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, v4.KeyLength, len(plaintext))
	}
	var key v4.LocalKey
	copy(key[:], plaintext)
	return &key, nil
}

// SecretPieWrap wraps a signing key under a symmetric key, producing a
// k4.secret-wrap.pie string.
func SecretPieWrap(sk ed25519.PrivateKey, wrappingKey *v4.LocalKey) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("paserk: invalid private key length, it must be %d bytes long", ed25519.PrivateKeySize)
	}
	return pieWrap(SecretWrapPiePrefix, sk, wrappingKey)
}

// SecretPieUnwrap reverses SecretPieWrap.
func SecretPieUnwrap(s string, wrappingKey *v4.LocalKey) (ed25519.PrivateKey, error) {
	plaintext, err := pieUnwrap(SecretWrapPiePrefix, s, wrappingKey)
	if err != nil {
		return nil, err
	}
	if len(plaintext) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, ed25519.PrivateKeySize, len(plaintext))
	}
	return ed25519.PrivateKey(plaintext), nil
}
