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
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateSalt_TooShort(t *testing.T) {
	_, err := GenerateSalt(rand.Reader, 8)
	assert.ErrorIs(t, err, ErrBadParameters)
}

func Test_Salt_Disposal(t *testing.T) {
	s, err := GenerateSalt(rand.Reader, 16)
	require.NoError(t, err)

	var captured []byte
	err = s.ExecuteWithKeyBytes(func(b []byte) error {
		captured = append([]byte{}, b...)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, captured, 16)

	s.Dispose()
	assert.True(t, s.IsDisposed())

	err = s.ExecuteWithKeyBytes(func([]byte) error { return nil })
	assert.ErrorIs(t, err, ErrDisposed)
}
