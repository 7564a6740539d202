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

import "context"

// KeyType tags the kind of key material a Handle carries.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeEd25519Public
	KeyTypeEd25519Secret
	KeyTypeXChaCha20Local
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeEd25519Public:
		return "ed25519Public"
	case KeyTypeEd25519Secret:
		return "ed25519Secret"
	case KeyTypeXChaCha20Local:
		return "xchacha20Local"
	default:
		return "unknown"
	}
}

// Handle is implemented only by the five key-handle types in this
// package (SymmetricKey, SigningPrivateKey, VerifyingPublicKey, KeyPair,
// Salt). The unexported method seals the interface against external
// implementations, reproducing the closed-sum-type requirement without
// reflection-based registration.
type Handle interface {
	Type() KeyType
	IsDisposed() bool
	Dispose()

	sealed()
}

// zeroBytes overwrites b with zeros in place.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// executeWithCopy hands fn a defensive copy of buf and zeroes that copy
// on every exit path. It is the synchronous half of executeWithKeyBytes
// for every handle type in this package.
func executeWithCopy(buf []byte, disposed bool, fn func([]byte) error) error {
	if disposed {
		return ErrDisposed
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	defer zeroBytes(cp)
	return fn(cp)
}

// executeWithCopyAsync takes the defensive copy synchronously — before
// any goroutine is scheduled — so that a concurrent dispose() on the
// handle (which zeroes buf, not cp) can never affect the copy already
// handed to fn. Only the execution of fn itself runs off the calling
// goroutine.
func executeWithCopyAsync(ctx context.Context, buf []byte, disposed bool, fn func([]byte) error) <-chan error {
	out := make(chan error, 1)
	if disposed {
		out <- ErrDisposed
		return out
	}

	cp := make([]byte, len(buf))
	copy(cp, buf)

	go func() {
		defer zeroBytes(cp)
		select {
		case <-ctx.Done():
			out <- ctx.Err()
		default:
			out <- fn(cp)
		}
	}()

	return out
}
