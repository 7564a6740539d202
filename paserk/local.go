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
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

// LocalToPASERK encodes a v4.local symmetric key as a k4.local string.
func LocalToPASERK(key *v4.LocalKey) (string, error) {
	if key == nil {
		return "", fmt.Errorf("paserk: key is nil")
	}
	return LocalPrefix + base64.RawURLEncoding.EncodeToString(key[:]), nil
}

// LocalFromPASERK decodes a k4.local string into a symmetric key.
func LocalFromPASERK(s string) (*v4.LocalKey, error) {
	if !strings.HasPrefix(s, LocalPrefix) {
		return nil, fmt.Errorf("%w: expected %s prefix", common.ErrBadEncoding, LocalPrefix)
	}

	body, err := base64.RawURLEncoding.DecodeString(s[len(LocalPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadEncoding, err)
	}
	if len(body) != v4.KeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", common.ErrTruncated, v4.KeyLength, len(body))
	}

	var key v4.LocalKey
	copy(key[:], body)
	return &key, nil
}
