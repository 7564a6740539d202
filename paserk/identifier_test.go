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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v4 "github.com/licensify/licensify/paseto/v4"
)

func Test_LocalID_Deterministic(t *testing.T) {
	key, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	id1, err := LocalID(key)
	require.NoError(t, err)
	id2, err := LocalID(key)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, LocalIDPrefix))
}

func Test_LocalID_DiffersPerKey(t *testing.T) {
	k1, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)
	k2, err := v4.GenerateLocalKey(rand.Reader)
	require.NoError(t, err)

	id1, err := LocalID(k1)
	require.NoError(t, err)
	id2, err := LocalID(k2)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func Test_PublicID_And_SecretID(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	pid, err := PublicID(pk)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pid, PublicIDPrefix))

	sid, err := SecretID(sk)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sid, SecretIDPrefix))

	assert.NotEqual(t, pid, sid)
}
