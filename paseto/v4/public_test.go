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

package v4

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// https://github.com/paseto-standard/test-vectors/blob/master/v4.json
func Test_Paseto_PublicVector(t *testing.T) {
	testCases := []struct {
		name              string
		publicKey         string
		secretKeySeed     string
		token             string
		payload           []byte
		footer            []byte
		implicitAssertion []byte
	}{
		{
			name:          "4-S-1",
			publicKey:     "1eb9dbbbbc047c03fd70604e0071f0987e16b28b757225c11f00415d0e20b1a2",
			secretKeySeed: "b4cbfb43df4ce210727d953e4a713307fa19bb7d9f85041438d9e11b942a3774",
			token:         "v4.public.eyJkYXRhIjoidGhpcyBpcyBhIHNpZ25lZCBtZXNzYWdlIiwiZXhwIjoiMjAyMi0wMS0wMVQwMDowMDowMCswMDowMCJ9bg_XBBzds8lTZShVlwwKSgeKpLT3yukTw6JUz3W4h_ExsQV-P0V54zemZDcAxFaSeef1QlXEFtkqxT1ciiQEDA",
			payload:       []byte("{\"data\":\"this is a signed message\",\"exp\":\"2022-01-01T00:00:00+00:00\"}"),
		},
		{
			name:          "4-S-2",
			publicKey:     "1eb9dbbbbc047c03fd70604e0071f0987e16b28b757225c11f00415d0e20b1a2",
			secretKeySeed: "b4cbfb43df4ce210727d953e4a713307fa19bb7d9f85041438d9e11b942a3774",
			token:         "v4.public.eyJkYXRhIjoidGhpcyBpcyBhIHNpZ25lZCBtZXNzYWdlIiwiZXhwIjoiMjAyMi0wMS0wMVQwMDowMDowMCswMDowMCJ9v3Jt8mx_TdM2ceTGoqwrh4yDFn0XsHvvV_D0DtwQxVrJEBMl0F2caAdgnpKlt4p7xBnx1HcO-SPo8FPp214HDw.eyJraWQiOiJ6VmhNaVBCUDlmUmYyc25FY1Q3Z0ZUaW9lQTlDT2NOeTlEZmdMMVc2MGhhTiJ9",
			payload:       []byte("{\"data\":\"this is a signed message\",\"exp\":\"2022-01-01T00:00:00+00:00\"}"),
			footer:        []byte("{\"kid\":\"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN\"}"),
		},
		{
			name:              "4-S-3",
			publicKey:         "1eb9dbbbbc047c03fd70604e0071f0987e16b28b757225c11f00415d0e20b1a2",
			secretKeySeed:     "b4cbfb43df4ce210727d953e4a713307fa19bb7d9f85041438d9e11b942a3774",
			token:             "v4.public.eyJkYXRhIjoidGhpcyBpcyBhIHNpZ25lZCBtZXNzYWdlIiwiZXhwIjoiMjAyMi0wMS0wMVQwMDowMDowMCswMDowMCJ9NPWciuD3d0o5eXJXG5pJy-DiVEoyPYWs1YSTwWHNJq6DZD3je5gf-0M4JR9ipdUSJbIovzmBECeaWmaqcaP0DQ.eyJraWQiOiJ6VmhNaVBCUDlmUmYyc25FY1Q3Z0ZUaW9lQTlDT2NOeTlEZmdMMVc2MGhhTiJ9",
			payload:           []byte("{\"data\":\"this is a signed message\",\"exp\":\"2022-01-01T00:00:00+00:00\"}"),
			footer:            []byte("{\"kid\":\"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN\"}"),
			implicitAssertion: []byte("{\"test-vector\":\"4-S-3\"}"),
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			publicKey, err := hex.DecodeString(tc.publicKey)
			require.NoError(t, err)
			secretKeySeed, err := hex.DecodeString(tc.secretKeySeed)
			require.NoError(t, err)

			sk := ed25519.NewKeyFromSeed(secretKeySeed)
			pk := sk.Public().(ed25519.PublicKey)
			assert.Equal(t, publicKey, []byte(pk))

			token, err := Sign(tc.payload, sk, tc.footer, tc.implicitAssertion)
			require.NoError(t, err)
			assert.Equal(t, tc.token, token)

			message, err := Verify(tc.token, pk, tc.footer, tc.implicitAssertion)
			require.NoError(t, err)
			assert.Equal(t, tc.payload, message)
		})
	}
}

func Test_Paseto_Public_TamperDetection(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	token, err := Sign([]byte("hello"), sk, nil, nil)
	require.NoError(t, err)

	tampered := []byte(token)
	tampered[len(tampered)-1] = tampered[len(tampered)-1] ^ 0x01

	_, err = Verify(string(tampered), pk, nil, nil)
	assert.Error(t, err)
}

func Test_Paseto_Public_FooterMismatch(t *testing.T) {
	pk, sk, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	token, err := Sign([]byte("hello"), sk, []byte("footer-a"), nil)
	require.NoError(t, err)

	_, err = Verify(token, pk, []byte("footer-b"), nil)
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------

func benchmarkSign(m []byte, sk ed25519.PrivateKey, f, i []byte, b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := Sign(m, sk, f, i); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Paseto_Sign(b *testing.B) {
	secretKeySeed, err := hex.DecodeString("b4cbfb43df4ce210727d953e4a713307fa19bb7d9f85041438d9e11b942a3774")
	require.NoError(b, err)
	sk := ed25519.NewKeyFromSeed(secretKeySeed)

	m := []byte("{\"data\":\"this is a signed message\",\"exp\":\"2022-01-01T00:00:00+00:00\"}")
	f := []byte("{\"kid\":\"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN\"}")
	i := []byte("{\"test-vector\":\"4-S-3\"}")

	b.ReportAllocs()
	b.ResetTimer()
	benchmarkSign(m, sk, f, i, b)
}

func benchmarkVerify(token string, pk ed25519.PublicKey, f, i []byte, b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := Verify(token, pk, f, i); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Paseto_Verify(b *testing.B) {
	publicKey, err := hex.DecodeString("1eb9dbbbbc047c03fd70604e0071f0987e16b28b757225c11f00415d0e20b1a2")
	require.NoError(b, err)
	pk := ed25519.PublicKey(publicKey)

	token := "v4.public.eyJkYXRhIjoidGhpcyBpcyBhIHNpZ25lZCBtZXNzYWdlIiwiZXhwIjoiMjAyMi0wMS0wMVQwMDowMDowMCswMDowMCJ9NPWciuD3d0o5eXJXG5pJy-DiVEoyPYWs1YSTwWHNJq6DZD3je5gf-0M4JR9ipdUSJbIovzmBECeaWmaqcaP0DQ.eyJraWQiOiJ6VmhNaVBCUDlmUmYyc25FY1Q3Z0ZUaW9lQTlDT2NOeTlEZmdMMVc2MGhhTiJ9"
	f := []byte("{\"kid\":\"zVhMiPBP9fRf2snEcT7gFTioeA9COcNy9DfgL1W60haN\"}")
	i := []byte("{\"test-vector\":\"4-S-3\"}")

	b.ReportAllocs()
	b.ResetTimer()
	benchmarkVerify(token, pk, f, i, b)
}
