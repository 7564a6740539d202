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
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

const passwordWrapNonceLength = 24

// PasswordParams carries the Argon2id cost factors and salt used to
// derive a wrapping key from a password. Callers source defaults from
// the keys package; this package only validates and applies them.
type PasswordParams struct {
	// MemoryCost is the Argon2id memory parameter, in KiB.
	MemoryCost uint32
	// TimeCost is the Argon2id number of iterations.
	TimeCost uint32
	// Parallelism is the Argon2id number of lanes.
	Parallelism uint8
	// Salt must be at least 16 bytes.
	Salt []byte
}

func (p PasswordParams) validate() error {
	if p.MemoryCost == 0 || p.MemoryCost%1024 != 0 {
		return fmt.Errorf("%w: memory cost must be a positive multiple of 1024", common.ErrBadParameters)
	}
	if p.TimeCost == 0 {
		return fmt.Errorf("%w: time cost must be positive", common.ErrBadParameters)
	}
	if p.Parallelism == 0 {
		return fmt.Errorf("%w: parallelism must be positive", common.ErrBadParameters)
	}
	if len(p.Salt) < 16 {
		return fmt.Errorf("%w: salt must be at least 16 bytes", common.ErrBadParameters)
	}
	return nil
}

func wrappingKeyFromPassword(password string, p PasswordParams) []byte {
	return argon2.IDKey([]byte(password), p.Salt, p.TimeCost, p.MemoryCost, p.Parallelism, 32)
}

func passwordWrapBody(prefix string, plaintext []byte, password string, p PasswordParams) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	wk := wrappingKeyFromPassword(password, p)

	nonce := make([]byte, passwordWrapNonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("paserk: unable to generate nonce: %w", err)
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(wk, nonce)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize cipher: %w", err)
	}
	ct := make([]byte, len(plaintext))
	ciph.XORKeyStream(ct, plaintext)

	memLE := make([]byte, 8)
	binary.BigEndian.PutUint64(memLE, uint64(p.MemoryCost))
	timeLE := make([]byte, 4)
	binary.BigEndian.PutUint32(timeLE, p.TimeCost)
	parLE := make([]byte, 4)
	binary.BigEndian.PutUint32(parLE, uint32(p.Parallelism))

	preAuth := common.PreAuthenticationEncoding([]byte(prefix), p.Salt, memLE, timeLE, parLE, nonce, ct)
	tagMAC, err := blake2b.New(32, wk)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize MAC: %w", err)
	}
	tagMAC.Write(preAuth) //nolint:errcheck
	tag := tagMAC.Sum(nil)

	body := make([]byte, 0, len(p.Salt)+16+len(nonce)+len(ct)+len(tag))
	body = append(body, p.Salt...)
	body = append(body, memLE...)
	body = append(body, timeLE...)
	body = append(body, parLE...)
	body = append(body, nonce...)
	body = append(body, ct...)
	body = append(body, tag...)

	return body, nil
}

func passwordUnwrapBody(prefix, s, password string) ([]byte, error) {
	if !strings.HasPrefix(s, prefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, prefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(prefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}

	const headerLen = 16 + 8 + 4 + 4 // salt + memCost + timeCost + parallelism
	if len(body) < headerLen+passwordWrapNonceLength+32 {
		return nil, fmt.Errorf("%w: password-wrapped body too short", common.ErrTruncated)
	}

	salt := body[:16]
	memCost := binary.BigEndian.Uint64(body[16:24])
	timeCost := binary.BigEndian.Uint32(body[24:28])
	parallelism := binary.BigEndian.Uint32(body[28:32])
	rest := body[32:]

	if len(rest) < passwordWrapNonceLength+32 {
		return nil, fmt.Errorf("%w: password-wrapped body too short", common.ErrTruncated)
	}
	nonce := rest[:passwordWrapNonceLength]
	tag := rest[len(rest)-32:]
	ct := rest[passwordWrapNonceLength : len(rest)-32]

	p := PasswordParams{
		MemoryCost:  uint32(memCost),
		TimeCost:    timeCost,
		Parallelism: uint8(parallelism),
		Salt:        salt,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	wk := wrappingKeyFromPassword(password, p)

	memLE := body[16:24]
	timeLE := body[24:28]
	parLE := body[28:32]
	preAuth := common.PreAuthenticationEncoding([]byte(prefix), salt, memLE, timeLE, parLE, nonce, ct)

	tagMAC, err := blake2b.New(32, wk)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize MAC: %w", err)
	}
	tagMAC.Write(preAuth) //nolint:errcheck
	expectedTag := tagMAC.Sum(nil)

	if !common.SecureCompare(tag, expectedTag) {
		return nil, common.ErrBadPassword
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(wk, nonce)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize cipher: %w", err)
	}
	plaintext := make([]byte, len(ct))
	ciph.XORKeyStream(plaintext, ct)

	return plaintext, nil
}

// LocalPasswordWrap encodes a symmetric key as a k4.local-pw string.
func LocalPasswordWrap(key *v4.LocalKey, password string, p PasswordParams) (string, error) {
	if key == nil {
		return "", fmt.Errorf("paserk: key is nil")
	}
	body, err := passwordWrapBody(LocalPasswordPrefix, key[:], password, p)
	if err != nil {
		return "", err
	}
	return LocalPasswordPrefix + base64.RawURLEncoding.EncodeToString(body), nil
}

// LocalPasswordUnwrap decodes a k4.local-pw string, returning
// common.ErrBadPassword if the password does not match.
func LocalPasswordUnwrap(s, password string) (*v4.LocalKey, error) {
	plaintext, err := passwordUnwrapBody(LocalPasswordPrefix, s, password)
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

// SecretPasswordWrap encodes a signing key as a k4.secret-pw string.
func SecretPasswordWrap(sk ed25519.PrivateKey, password string, p PasswordParams) (string, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("paserk: invalid private key length, it must be %d bytes long", ed25519.PrivateKeySize)
	}
	body, err := passwordWrapBody(SecretPasswordPrefix, sk, password, p)
	if err != nil {
		return "", err
	}
	return SecretPasswordPrefix + base64.RawURLEncoding.EncodeToString(body), nil
}

// SecretPasswordUnwrap decodes a k4.secret-pw string, returning
// common.ErrBadPassword if the password does not match.
func SecretPasswordUnwrap(s, password string) (ed25519.PrivateKey, error) {
	plaintext, err := passwordUnwrapBody(SecretPasswordPrefix, s, password)
	if err != nil {
		return nil, err
	}
	if len(plaintext) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, ed25519.PrivateKeySize, len(plaintext))
	}
	return ed25519.PrivateKey(plaintext), nil
}
