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
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/curve25519"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

// fieldPrime is 2^255 - 19, the Curve25519 base field prime.
var fieldPrime, _ = new(big.Int).SetString(
	"57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// ed25519PublicToX25519 converts an Ed25519 verifying key to its
// Montgomery (X25519) form via the standard birational map
// u = (1+y)/(1-y) mod p, applied to the Edwards y-coordinate the
// compressed public key already encodes.
func ed25519PublicToX25519(pk ed25519.PublicKey) ([]byte, error) {
	if len(pk) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("paserk: invalid public key length, it must be %d bytes long", ed25519.PublicKeySize)
	}

	yLE := make([]byte, ed25519.PublicKeySize)
	copy(yLE, pk)
	yLE[31] &= 0x7f // clear the sign bit carried in the top bit of the last byte
	reverseBytes(yLE)
	y := new(big.Int).SetBytes(yLE)

	one := big.NewInt(1)
	num := new(big.Int).Mod(new(big.Int).Add(one, y), fieldPrime)
	den := new(big.Int).Mod(new(big.Int).Sub(one, y), fieldPrime)
	den.ModInverse(den, fieldPrime)

	u := new(big.Int).Mod(new(big.Int).Mul(num, den), fieldPrime)

	out := u.Bytes()
	buf := make([]byte, 32)
	copy(buf[32-len(out):], out)
	reverseBytes(buf)
	return buf, nil
}

// ed25519PrivateToX25519 converts an Ed25519 signing key's seed to its
// Montgomery (X25519) scalar, following the same SHA-512-and-clamp
// derivation Ed25519 itself uses to turn a seed into a signing scalar.
func ed25519PrivateToX25519(sk ed25519.PrivateKey) []byte {
	h := sha512.Sum512(sk.Seed())
	scalar := make([]byte, 32)
	copy(scalar, h[:32])
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	return scalar
}

// deriveSealKeys derives the encryption key, nonce, and MAC key for
// k4.seal from the X25519 shared secret and the public context values
// that bind the ciphertext to this specific ephemeral exchange.
func deriveSealKeys(ss, epk, recipientX []byte) (ek, nonce, ak []byte, err error) {
	encKDF, err := blake2b.New(56, ss)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paserk: unable to initialize seal encryption kdf: %w", err)
	}
	encKDF.Write([]byte("paserk-seal-encryption-key")) //nolint:errcheck
	encKDF.Write(epk)                                  //nolint:errcheck
	encKDF.Write(recipientX)                           //nolint:errcheck
	tmp := encKDF.Sum(nil)

	authKDF, err := blake2b.New(32, ss)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("paserk: unable to initialize seal auth kdf: %w", err)
	}
	authKDF.Write([]byte("paserk-seal-auth-key-for-aead")) //nolint:errcheck
	authKDF.Write(epk)                                     //nolint:errcheck
	authKDF.Write(recipientX)                              //nolint:errcheck

	return tmp[:32], tmp[32:], authKDF.Sum(nil), nil
}

// Seal encrypts a symmetric key to a recipient's Ed25519 verifying key
// via an ephemeral X25519 KEM, producing a k4.seal string.
func Seal(key *v4.LocalKey, recipient ed25519.PublicKey) (string, error) {
	if key == nil {
		return "", fmt.Errorf("paserk: key is nil")
	}

	recipientX, err := ed25519PublicToX25519(recipient)
	if err != nil {
		return "", err
	}

	var esk [32]byte
	if _, err := io.ReadFull(rand.Reader, esk[:]); err != nil {
		return "", fmt.Errorf("paserk: unable to generate ephemeral key: %w", err)
	}
	esk[0] &= 248
	esk[31] &= 127
	esk[31] |= 64

	epk, err := curve25519.X25519(esk[:], curve25519.Basepoint)
	if err != nil {
		return "", fmt.Errorf("paserk: unable to derive ephemeral public key: %w", err)
	}
	ss, err := curve25519.X25519(esk[:], recipientX)
	if err != nil {
		return "", fmt.Errorf("paserk: unable to compute shared secret: %w", err)
	}

	ek, nonce, ak, err := deriveSealKeys(ss, epk, recipientX)
	if err != nil {
		return "", err
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(ek, nonce)
	if err != nil {
		return "", fmt.Errorf("paserk: unable to initialize cipher: %w", err)
	}
	ct := make([]byte, len(key))
	ciph.XORKeyStream(ct, key[:])

	preAuth := common.PreAuthenticationEncoding([]byte(SealPrefix), epk, ct)
	tagMAC, err := blake2b.New(32, ak)
	if err != nil {
		return "", fmt.Errorf("paserk: unable to initialize MAC: %w", err)
	}
	tagMAC.Write(preAuth) //nolint:errcheck
	tag := tagMAC.Sum(nil)

	body := make([]byte, 0, len(epk)+len(ct)+len(tag))
	body = append(body, epk...)
	body = append(body, ct...)
	body = append(body, tag...)

	return SealPrefix + base64.RawURLEncoding.EncodeToString(body), nil
}

// Unseal decrypts a k4.seal string using the recipient's full Ed25519
// signing key. Returns common.ErrAuthFailed if the seal's tag does not
// verify, which includes being sealed to a different key pair.
func Unseal(s string, recipient ed25519.PrivateKey) (*v4.LocalKey, error) {
	if !strings.HasPrefix(s, SealPrefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, SealPrefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(SealPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}
	if len(body) < 32+32 {
		return nil, fmt.Errorf("%w: sealed body too short", common.ErrTruncated)
	}

	epk := body[:32]
	tag := body[len(body)-32:]
	ct := body[32 : len(body)-32]

	recipientXPriv := ed25519PrivateToX25519(recipient)
	recipientXPub, err := curve25519.X25519(recipientXPriv, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to derive recipient X25519 public key: %w", err)
	}
	ss, err := curve25519.X25519(recipientXPriv, epk)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to compute shared secret: %w", err)
	}

	ek, nonce, ak, err := deriveSealKeys(ss, epk, recipientXPub)
	if err != nil {
		return nil, err
	}

	preAuth := common.PreAuthenticationEncoding([]byte(SealPrefix), epk, ct)
	tagMAC, err := blake2b.New(32, ak)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize MAC: %w", err)
	}
	tagMAC.Write(preAuth) //nolint:errcheck
	expectedTag := tagMAC.Sum(nil)

	if !common.SecureCompare(tag, expectedTag) {
		return nil, common.ErrAuthFailed
	}

	ciph, err := chacha20.NewUnauthenticatedCipher(ek, nonce)
	if err != nil {
		return nil, fmt.Errorf("paserk: unable to initialize cipher: %w", err)
	}
	plaintext := make([]byte, len(ct))
	ciph.XORKeyStream(plaintext, ct)

	if len(plaintext) != v4.KeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, v4.KeyLength, len(plaintext))
	}
	var key v4.LocalKey
	copy(key[:], plaintext)
	return &key, nil
}
