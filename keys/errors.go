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

import "github.com/licensify/licensify/internal/common"

// Re-exported so callers of package keys never need to import
// internal/common directly. errors.Is works across the re-export since
// these are the same underlying sentinel values.
var (
	ErrDisposed        = common.ErrDisposed
	ErrKeyTypeMismatch = common.ErrKeyTypeMismatch
	ErrBadParameters   = common.ErrBadParameters
	ErrBadPassword     = common.ErrBadPassword
	ErrAuthFailed      = common.ErrAuthFailed
	ErrBadEncoding     = common.ErrBadEncoding
	ErrTruncated       = common.ErrTruncated
)
