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

package common

import "errors"

// Sentinel errors shared across the protocol, key-format, and key-handle
// layers. Higher layers (license) add their own on top of these rather
// than redefining them.
var (
	// ErrBadVersion is returned when a token or PASERK string carries a
	// prefix for a version/format this library does not implement.
	ErrBadVersion = errors.New("licensify: unsupported version or format")

	// ErrBadEncoding is returned when the base64 or textual envelope of
	// a token or PASERK string cannot be decoded.
	ErrBadEncoding = errors.New("licensify: invalid encoding")

	// ErrTruncated is returned when a decoded body is shorter than the
	// fixed layout its format requires.
	ErrTruncated = errors.New("licensify: truncated body")

	// ErrSignatureInvalid is returned when an Ed25519 signature fails
	// to verify.
	ErrSignatureInvalid = errors.New("licensify: invalid signature")

	// ErrAuthFailed is returned when a MAC/tag check fails: PASERK
	// wrap/seal tags, v4.local tags.
	ErrAuthFailed = errors.New("licensify: authentication failed")

	// ErrFooterMismatch is returned when a caller-supplied footer does
	// not match the footer embedded in a token.
	ErrFooterMismatch = errors.New("licensify: footer mismatch")

	// ErrBadParameters is returned when caller-supplied parameters
	// (Argon2id cost factors, salt length, ...) are out of range.
	ErrBadParameters = errors.New("licensify: invalid parameters")

	// ErrBadPassword is returned when a password-wrapped key fails its
	// tag check, i.e. the password was wrong.
	ErrBadPassword = errors.New("licensify: invalid password")

	// ErrKeyTypeMismatch is returned when a handle or key-bytes value
	// of the wrong kind is presented to an operation.
	ErrKeyTypeMismatch = errors.New("licensify: key type mismatch")

	// ErrDisposed is returned by any operation on a key handle after
	// its dispose() has run.
	ErrDisposed = errors.New("licensify: key handle disposed")
)
