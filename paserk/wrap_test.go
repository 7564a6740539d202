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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

func Test_LocalPieWrap_RoundTrip(t *testing.T) {
	key, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)
	wrappingKey, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	s, err := LocalPieWrap(key, wrappingKey)
	require.NoError(t, err)

	got, err := LocalPieUnwrap(s, wrappingKey)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func Test_LocalPieWrap_WrongWrappingKey(t *testing.T) {
	key, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)
	wrappingKey, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)
	otherKey, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	s, err := LocalPieWrap(key, wrappingKey)
	require.NoError(t, err)

	_, err = LocalPieUnwrap(s, otherKey)
	assert.ErrorIs(t, err, common.ErrAuthFailed)
}

func Test_SecretPieWrap_RoundTrip(t *testing.T) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	wrappingKey, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	s, err := SecretPieWrap(sk, wrappingKey)
	require.NoError(t, err)

	got, err := SecretPieUnwrap(s, wrappingKey)
	require.NoError(t, err)
	assert.Equal(t, sk, got)
}
