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

// Package keys implements the key-handle lifecycle: owning buffers with
// defensive copies, scoped access, and explicit zeroization on
// disposal, over the PASETO v4 / PASERK k4 primitives in paseto/v4 and
// paserk.
package keys

// Default Argon2id cost factors and salt length for password-based key
// derivation. Passed explicitly rather than held in a process-wide
// singleton; callers (the CLI layer in particular) may override any of
// them.
const (
	DefaultMemoryCost  uint32 = 65536
	DefaultTimeCost    uint32 = 3
	DefaultParallelism uint8  = 4
	DefaultSaltLength  int    = 16
)
