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

package keys

import (
	"bytes"
	"context"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licensify/licensify/paserk"
)

func Test_SymmetricKey_PASERKRoundTrip(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	s, err := key.ToPASERK()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, paserk.LocalPrefix))

	got, err := SymmetricKeyFromPASERK(s)
	require.NoError(t, err)
	assert.Equal(t, key.buf, got.buf)
}

func Test_SymmetricKey_ExecuteWithKeyBytes_DefensiveCopy(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	var captured []byte
	err = key.ExecuteWithKeyBytes(func(b []byte) error {
		captured = append([]byte{}, b...)
		b[0] ^= 0xFF // mutating the yielded copy must not affect the handle
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, captured, key.buf[:])
}

// Disposal invariant (property 10): after dispose every operation
// errors with ErrDisposed, and the backing buffer is all zero.
func Test_SymmetricKey_Disposal(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	key.Dispose()

	assert.True(t, key.IsDisposed())
	assert.Equal(t, make([]byte, len(key.buf)), key.buf[:])

	err = key.ExecuteWithKeyBytes(func([]byte) error { return nil })
	assert.ErrorIs(t, err, ErrDisposed)

	_, err = key.ToPASERK()
	assert.ErrorIs(t, err, ErrDisposed)
}

func Test_SymmetricKey_ExecuteWithKeyBytesAsync(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	ch := key.ExecuteWithKeyBytesAsync(context.Background(), func(b []byte) error {
		if len(b) != 32 {
			return assert.AnError
		}
		return nil
	})
	assert.NoError(t, <-ch)
}

func Test_SymmetricKey_PieWrapRoundTrip(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)
	wrappingKey, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	s, err := key.Wrap(wrappingKey)
	require.NoError(t, err)

	got, err := SymmetricKeyFromWrap(s, wrappingKey)
	require.NoError(t, err)
	assert.Equal(t, key.buf, got.buf)
}

func Test_SymmetricKey_PasswordWrapRoundTrip(t *testing.T) {
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	params := paserk.PasswordParams{
		MemoryCost:  DefaultMemoryCost,
		TimeCost:    DefaultTimeCost,
		Parallelism: DefaultParallelism,
		Salt:        bytes.Repeat([]byte{0x02}, DefaultSaltLength),
	}

	s, err := key.PasswordWrap("hunter2", params)
	require.NoError(t, err)

	got, err := SymmetricKeyFromPasswordWrap(s, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, key.buf, got.buf)

	_, err = SymmetricKeyFromPasswordWrap(s, "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)
}

func Test_SymmetricKey_SealRoundTrip(t *testing.T) {
	pair, err := GenerateSigningKeys(rand.Reader)
	require.NoError(t, err)
	key, err := GenerateEncryptionKey(rand.Reader)
	require.NoError(t, err)

	s, err := key.Seal(pair.Public())
	require.NoError(t, err)

	got, err := SymmetricKeyFromSeal(s, pair)
	require.NoError(t, err)
	assert.Equal(t, key.buf, got.buf)
}
