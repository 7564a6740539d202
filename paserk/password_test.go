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
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensify/licensify/internal/common"
	v4 "github.com/licensify/licensify/paseto/v4"
)

func testPasswordParams() PasswordParams {
	return PasswordParams{
		MemoryCost:  65536,
		TimeCost:    2,
		Parallelism: 1,
		Salt:        bytes.Repeat([]byte{0x01}, 16),
	}
}

// S5 in the property table: a zeroed key wrapped and unwrapped under a
// fixed password/salt must return bit-for-bit the same key bytes.
func Test_LocalPasswordWrap_RoundTrip(t *testing.T) {
	var key v4.LocalKey // all-zero

	s, err := LocalPasswordWrap(&key, "pw", testPasswordParams())
	require.NoError(t, err)

	got, err := LocalPasswordUnwrap(s, "pw")
	require.NoError(t, err)
	assert.Equal(t, &key, got)
}

func Test_LocalPasswordWrap_WrongPassword(t *testing.T) {
	var key v4.LocalKey
	s, err := LocalPasswordWrap(&key, "pw", testPasswordParams())
	require.NoError(t, err)

	_, err = LocalPasswordUnwrap(s, "PW")
	assert.ErrorIs(t, err, common.ErrBadPassword)
}

func Test_LocalPasswordWrap_BadParameters(t *testing.T) {
	var key v4.LocalKey
	p := testPasswordParams()
	p.Salt = []byte("short")

	_, err := LocalPasswordWrap(&key, "pw", p)
	assert.ErrorIs(t, err, common.ErrBadParameters)
}

func Test_SecretPasswordWrap_RoundTrip(t *testing.T) {
	_, sk, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	s, err := SecretPasswordWrap(sk, "correct horse battery staple", testPasswordParams())
	require.NoError(t, err)

	got, err := SecretPasswordUnwrap(s, "correct horse battery staple")
	require.NoError(t, err)
	assert.Equal(t, sk, got)
}
