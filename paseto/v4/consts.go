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

// Package v4 implements the PASETO v4 protocol: v4.public (Ed25519
// sign/verify) and v4.local (XChaCha20 + keyed BLAKE2b encrypt/decrypt).
// https://github.com/paseto-standard/paseto-spec/blob/master/docs/01-Protocol-Versions/Version4.md
package v4

const (
	// KeyLength is the size in bytes of a v4.local symmetric key.
	KeyLength = 32

	// LocalPrefix is the header used for symmetric (encrypted) tokens.
	LocalPrefix = "v4.local."
	// PublicPrefix is the header used for asymmetric (signed) tokens.
	PublicPrefix = "v4.public."
)

const (
	nonceLength = 32
	macLength   = 32

	// encryptionKDFLength is the combined size of the derived XChaCha20
	// key (32 bytes) and nonce (24 bytes).
	encryptionKDFLength     = 56
	authenticationKeyLength = 32
)

// LocalKey is a 32-byte symmetric key used for v4.local encryption.
type LocalKey [KeyLength]byte
