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

// Package paserk implements PASERK k4: the text envelope and wrapping
// formats used to serialize, identify, password-protect, symmetrically
// wrap, and asymmetrically seal PASETO v4 key material.
// https://github.com/paseto-standard/paserk
package paserk

const (
	LocalPrefix          = "k4.local."
	PublicPrefix         = "k4.public."
	SecretPrefix         = "k4.secret."
	LocalPasswordPrefix  = "k4.local-pw."
	SecretPasswordPrefix = "k4.secret-pw."
	LocalWrapPiePrefix   = "k4.local-wrap.pie."
	SecretWrapPiePrefix  = "k4.secret-wrap.pie."
	SealPrefix           = "k4.seal."
	LocalIDPrefix        = "k4.lid."
	PublicIDPrefix       = "k4.pid."
	SecretIDPrefix       = "k4.sid."
)

// identifierLength is the truncation length, in bytes, applied to the
// SHA-384 digest backing lid/pid/sid identifiers.
const identifierLength = 33

// pieNonceLength is the nonce size used by the *-wrap.pie construction.
const pieNonceLength = 32
