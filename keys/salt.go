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
	"context"
	"fmt"
	"io"
)

// Salt owns variable-length random bytes used as Argon2id input. The
// spec's default minimum length is DefaultSaltLength (16 bytes).
type Salt struct {
	buf      []byte
	disposed bool
}

var _ Handle = (*Salt)(nil)

func (s *Salt) sealed() {}

// GenerateSalt produces length bytes of random salt, reading from r.
// length must be at least DefaultSaltLength.
func GenerateSalt(r io.Reader, length int) (*Salt, error) {
	if length < DefaultSaltLength {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", ErrBadParameters, DefaultSaltLength)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("keys: unable to generate salt: %w", err)
	}
	return &Salt{buf: buf}, nil
}

// NewSalt wraps existing salt bytes in a handle. The caller's slice is
// copied.
func NewSalt(raw []byte) (*Salt, error) {
	if len(raw) < DefaultSaltLength {
		return nil, fmt.Errorf("%w: salt must be at least %d bytes", ErrBadParameters, DefaultSaltLength)
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return &Salt{buf: buf}, nil
}

func (s *Salt) Type() KeyType    { return KeyTypeUnknown }
func (s *Salt) IsDisposed() bool { return s.disposed }

func (s *Salt) Dispose() {
	zeroBytes(s.buf)
	s.disposed = true
}

// ExecuteWithKeyBytes yields a defensive copy of the salt bytes.
func (s *Salt) ExecuteWithKeyBytes(fn func([]byte) error) error {
	return executeWithCopy(s.buf, s.disposed, fn)
}

// ExecuteWithKeyBytesAsync is the task-returning variant of
// ExecuteWithKeyBytes.
func (s *Salt) ExecuteWithKeyBytesAsync(ctx context.Context, fn func([]byte) error) <-chan error {
	return executeWithCopyAsync(ctx, s.buf, s.disposed, fn)
}
