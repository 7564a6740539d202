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

package license

import (
	"errors"

	"github.com/licensify/licensify/internal/common"
)

// License-specific sentinels, layered on top of the shared taxonomy in
// internal/common rather than redefining it.
var (
	// ErrInvalidPayload is returned when a verified token's JSON payload
	// does not satisfy the License schema (missing/malformed fields).
	ErrInvalidPayload = errors.New("license: invalid payload")

	// ErrExpired is returned by FromToken when the license's exp has
	// already passed. The caller-facing message carries the timestamp;
	// this sentinel is for errors.Is checks.
	ErrExpired = errors.New("license: expired")
)

// Re-exported so callers of this package never need to import
// internal/common directly.
var (
	ErrSignatureInvalid = common.ErrSignatureInvalid
	ErrAuthFailed       = common.ErrAuthFailed
	ErrBadEncoding      = common.ErrBadEncoding
	ErrBadVersion       = common.ErrBadVersion
	ErrFooterMismatch   = common.ErrFooterMismatch
	ErrDisposed         = common.ErrDisposed
)
