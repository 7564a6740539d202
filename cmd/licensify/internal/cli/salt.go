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

package cli

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/spf13/cobra"

	"github.com/licensify/licensify/keys"
)

func saltCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Generate random salt material for Argon2id.",
	}
	cmd.AddCommand(saltGenerateCommand())
	return cmd
}

func saltGenerateCommand() *cobra.Command {
	var length int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random salt bytes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := keys.GenerateSalt(rand.Reader, length)
			if err != nil {
				return wrapDomainError(err)
			}
			defer s.Dispose()

			var encoded string
			err = s.ExecuteWithKeyBytes(func(b []byte) error {
				encoded = base64.RawURLEncoding.EncodeToString(b)
				return nil
			})
			if err != nil {
				return wrapDomainError(err)
			}
			return printJSON("-", map[string]string{"salt": encoded})
		},
	}
	cmd.Flags().IntVar(&length, "length", keys.DefaultSaltLength, "salt length in bytes")
	return cmd
}
