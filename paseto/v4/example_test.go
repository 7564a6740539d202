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

package v4_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	v4 "github.com/licensify/licensify/paseto/v4"
)

func ExampleEncrypt_withoutFooter() {
	localKey, err := v4.GenerateLocalKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	m := []byte("my super secret message")

	token, err := v4.Encrypt(rand.Reader, localKey, m, nil, nil)
	if err != nil {
		panic(err)
	}

	recovered, err := v4.Decrypt(localKey, token, nil, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", recovered)
	// Output: my super secret message
}

func ExampleEncrypt_withFooter() {
	localKey, err := v4.GenerateLocalKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	m := []byte("my super secret message")

	// The footer is public and not encrypted, but protected by the integrity check.
	footer := []byte(`{"kid":"1234567890"}`)

	token, err := v4.Encrypt(rand.Reader, localKey, m, footer, nil)
	if err != nil {
		panic(err)
	}

	recovered, err := v4.Decrypt(localKey, token, footer, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", recovered)
	// Output: my super secret message
}

func ExampleEncrypt_withFooterAndImplicitAssertions() {
	localKey, err := v4.GenerateLocalKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	m := []byte("my super secret message")
	footer := []byte(`{"kid":"1234567890"}`)

	// Assertions are not published in the token but are bound into the
	// integrity check; the verifier must supply the same value.
	assertions := []byte(`{"user_id":"1234567890"}`)

	token, err := v4.Encrypt(rand.Reader, localKey, m, footer, assertions)
	if err != nil {
		panic(err)
	}

	recovered, err := v4.Decrypt(localKey, token, footer, assertions)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", recovered)
	// Output: my super secret message
}

func ExampleDecrypt() {
	localKey, err := v4.GenerateLocalKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	footer := []byte(`{"kid":"1234567890"}`)
	assertions := []byte(`{"user_id":"1234567890"}`)

	token, err := v4.Encrypt(rand.Reader, localKey, []byte("my super secret message"), footer, assertions)
	if err != nil {
		panic(err)
	}

	m, err := v4.Decrypt(localKey, token, footer, assertions)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", m)
	// Output: my super secret message
}

// -----------------------------------------------------------------------------

func ExampleSign() {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	m := []byte("my super secret message")
	footer := []byte(`{"kid":"1234567890"}`)
	assertions := []byte(`{"user_id":"1234567890"}`)

	token, err := v4.Sign(m, sk, footer, assertions)
	if err != nil {
		panic(err)
	}

	recovered, err := v4.Verify(token, pk, footer, assertions)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", recovered)
	// Output: my super secret message
}

func ExampleVerify() {
	pk, sk, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	footer := []byte(`{"kid":"1234567890"}`)
	assertions := []byte(`{"user_id":"1234567890"}`)

	token, err := v4.Sign([]byte("my super secret message"), sk, footer, assertions)
	if err != nil {
		panic(err)
	}

	m, err := v4.Verify(token, pk, footer, assertions)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", m)
	// Output: my super secret message
}
