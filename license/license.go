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

// Package license implements the License payload schema layered on
// PASETO v4.public: issuance, signature/expiration validation, and
// symmetric data encryption over v4.local.
package license

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/licensify/licensify/keys"
	v4 "github.com/licensify/licensify/paseto/v4"
)

const issuer = "licensify"

var (
	appIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{3,100}$`)
	typePattern  = regexp.MustCompile(`^[A-Za-z0-9._@-]{2,100}$`)
)

// LicenseType wraps a validated, lowercased license tier string.
type LicenseType string

func newLicenseType(raw string) (LicenseType, error) {
	lowered := strings.ToLower(raw)
	if !typePattern.MatchString(lowered) {
		return "", fmt.Errorf("%w: type must match %s", ErrInvalidPayload, typePattern.String())
	}
	return LicenseType(lowered), nil
}

// License is the validated, signed payload produced by CreateLicense
// or FromToken. It is immutable after construction.
type License struct {
	Sub      string
	IssuedAt time.Time
	Expiry   time.Time
	Issuer   string
	AppID    string
	Type     LicenseType
	Features map[string]any
	Metadata map[string]any
	Trial    bool

	token  string
	pub    *keys.VerifyingPublicKey
	footer []byte
}

// Token returns the canonical v4.public serialization of this license.
func (l *License) Token() string { return l.token }

type payload struct {
	Sub      string         `json:"sub"`
	IssuedAt string         `json:"iat"`
	Expiry   string         `json:"exp"`
	Issuer   string         `json:"iss"`
	AppID    string         `json:"app_id"`
	Type     string         `json:"type"`
	Features map[string]any `json:"features,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Trial    bool           `json:"trial,omitempty"`
}

const timeLayout = time.RFC3339

func roundDownToMinute(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}

// CreateLicense builds, signs, and returns a new License. priv signs
// the payload; the caller retains ownership of priv and must dispose of
// it separately.
func CreateLicense(priv *keys.SigningPrivateKey, appID string, exp time.Time, licenseType string, features, metadata map[string]any, isTrial bool, footer []byte) (*License, error) {
	if !appIDPattern.MatchString(appID) {
		return nil, fmt.Errorf("%w: app_id must match %s", ErrInvalidPayload, appIDPattern.String())
	}
	lt, err := newLicenseType(licenseType)
	if err != nil {
		return nil, err
	}

	iat := roundDownToMinute(time.Now())
	expiry := roundDownToMinute(exp)

	p := payload{
		Sub:      uuid.NewString(),
		IssuedAt: iat.Format(timeLayout),
		Expiry:   expiry.Format(timeLayout),
		Issuer:   issuer,
		AppID:    appID,
		Type:     string(lt),
		Features: features,
		Metadata: metadata,
		Trial:    isTrial,
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("license: unable to serialize payload: %w", err)
	}

	var token string
	signErr := priv.ExecuteWithKeyBytes(func(seed []byte) error {
		sk := ed25519.NewKeyFromSeed(seed)
		defer zeroBytes(sk)
		t, err := v4.Sign(body, sk, footer, nil)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if signErr != nil {
		return nil, fmt.Errorf("license: unable to sign payload: %w", signErr)
	}

	pub, err := priv.Public()
	if err != nil {
		return nil, fmt.Errorf("license: unable to derive verifying key: %w", err)
	}

	return &License{
		Sub:      p.Sub,
		IssuedAt: iat,
		Expiry:   expiry,
		Issuer:   issuer,
		AppID:    appID,
		Type:     lt,
		Features: features,
		Metadata: metadata,
		Trial:    isTrial,
		token:    token,
		pub:      pub,
		footer:   footer,
	}, nil
}

// FromToken verifies token against pub and parses its payload into a
// License. Fails closed on any signature error; returns ErrInvalidPayload
// for schema failures and ErrExpired once exp has passed.
func FromToken(token string, pub *keys.VerifyingPublicKey, footer []byte) (*License, error) {
	m, err := verifyToken(token, pub, footer)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal(m, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	lic, err := licenseFromPayload(p, token, pub, footer)
	if err != nil {
		return nil, err
	}

	if !time.Now().UTC().Before(lic.Expiry) {
		return nil, fmt.Errorf("%w: expired at %s", ErrExpired, lic.Expiry.Format(timeLayout))
	}

	return lic, nil
}

func licenseFromPayload(p payload, token string, pub *keys.VerifyingPublicKey, footer []byte) (*License, error) {
	if p.Sub == "" || p.Issuer == "" {
		return nil, fmt.Errorf("%w: missing sub or iss", ErrInvalidPayload)
	}
	if !appIDPattern.MatchString(p.AppID) {
		return nil, fmt.Errorf("%w: app_id must match %s", ErrInvalidPayload, appIDPattern.String())
	}
	lt, err := newLicenseType(p.Type)
	if err != nil {
		return nil, err
	}
	iat, err := time.Parse(timeLayout, p.IssuedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid iat: %v", ErrInvalidPayload, err)
	}
	expiry, err := time.Parse(timeLayout, p.Expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid exp: %v", ErrInvalidPayload, err)
	}

	return &License{
		Sub:      p.Sub,
		IssuedAt: iat.UTC(),
		Expiry:   expiry.UTC(),
		Issuer:   p.Issuer,
		AppID:    p.AppID,
		Type:     lt,
		Features: p.Features,
		Metadata: p.Metadata,
		Trial:    p.Trial,
		token:    token,
		pub:      pub,
		footer:   footer,
	}, nil
}

func verifyToken(token string, pub *keys.VerifyingPublicKey, footer []byte) ([]byte, error) {
	var (
		m   []byte
		err error
	)
	execErr := pub.ExecuteWithKeyBytes(func(pk []byte) error {
		m, err = v4.Verify(token, ed25519.PublicKey(pk), footer, nil)
		return nil
	})
	if execErr != nil {
		return nil, execErr
	}
	return m, err
}

// ValidationResult is the {is_valid, message} record returned by
// ValidateLicense/ValidateSignature/ValidateExpiration instead of an
// error, matching spec's "validation APIs return a result record"
// policy.
type ValidationResult struct {
	IsValid bool
	Message string
}

// ValidateLicense runs ValidateSignature then ValidateExpiration,
// short-circuiting on the first invalid result.
func ValidateLicense(l *License) ValidationResult {
	if r := ValidateSignature(l); !r.IsValid {
		return r
	}
	return ValidateExpiration(l)
}

// ValidateSignature re-verifies l.token against l's own verifying key.
func ValidateSignature(l *License) ValidationResult {
	if _, err := verifyToken(l.token, l.pub, l.footer); err != nil {
		return ValidationResult{IsValid: false, Message: "signature verification failed"}
	}
	return ValidationResult{IsValid: true, Message: "signature valid"}
}

// ValidateExpiration compares l.Expiry against unrounded now. Ties
// (now == exp) count as expired.
func ValidateExpiration(l *License) ValidationResult {
	if !time.Now().UTC().Before(l.Expiry) {
		return ValidationResult{IsValid: false, Message: fmt.Sprintf("expired at %s", l.Expiry.Format(timeLayout))}
	}
	return ValidationResult{IsValid: true, Message: "active"}
}

// EncryptData JSON-encodes data and encrypts it as a v4.local token
// under key.
func EncryptData(data map[string]any, key *keys.SymmetricKey, footer []byte) (string, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("license: unable to serialize data: %w", err)
	}

	var token string
	err = key.ExecuteWithKeyBytes(func(raw []byte) error {
		lk, err := v4.LocalKeyFromSeed(raw)
		if err != nil {
			return err
		}
		t, err := v4.Encrypt(rand.Reader, lk, body, footer, nil)
		if err != nil {
			return err
		}
		token = t
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// DecryptData decrypts token under key and JSON-decodes the plaintext
// into a map.
func DecryptData(token string, key *keys.SymmetricKey, footer []byte) (map[string]any, error) {
	var plaintext []byte
	err := key.ExecuteWithKeyBytes(func(raw []byte) error {
		lk, err := v4.LocalKeyFromSeed(raw)
		if err != nil {
			return err
		}
		m, err := v4.Decrypt(lk, token, footer, nil)
		if err != nil {
			return err
		}
		plaintext = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	return data, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
