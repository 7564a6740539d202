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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/licensify/licensify/keys"
	"github.com/licensify/licensify/paserk"
)

func keypairCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keypair",
		Short: "Generate or inspect Ed25519 signing key pairs.",
	}
	cmd.AddCommand(keypairGenerateCommand())
	cmd.AddCommand(keypairInfoCommand())
	return cmd
}

func keypairGenerateCommand() *cobra.Command {
	var (
		password string
		wrapWith string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new Ed25519 signing key pair.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password != "" && wrapWith != "" {
				return fmt.Errorf("cli: --password and --wrap are mutually exclusive")
			}

			pair, err := keys.GenerateSigningKeys(rand.Reader)
			if err != nil {
				return wrapDomainError(err)
			}
			defer pair.Dispose()

			id, err := pair.Identifier()
			if err != nil {
				return wrapDomainError(err)
			}

			var secret string
			switch {
			case password != "":
				pw, err := readPassword(password)
				if err != nil {
					return err
				}
				salt, err := generateSaltBytes()
				if err != nil {
					return wrapDomainError(err)
				}
				secret, err = pair.PasswordWrap(pw, paserk.PasswordParams{
					MemoryCost:  keys.DefaultMemoryCost,
					TimeCost:    keys.DefaultTimeCost,
					Parallelism: keys.DefaultParallelism,
					Salt:        salt,
				})
				if err != nil {
					return wrapDomainError(err)
				}
			case wrapWith != "":
				wrappingKey, err := keys.SymmetricKeyFromPASERK(wrapWith)
				if err != nil {
					return wrapDomainError(err)
				}
				defer wrappingKey.Dispose()
				secret, err = pair.Wrap(wrappingKey)
				if err != nil {
					return wrapDomainError(err)
				}
			default:
				secret, err = pair.ToPASERK()
				if err != nil {
					return wrapDomainError(err)
				}
			}

			public, err := pair.Public().ToPASERK()
			if err != nil {
				return wrapDomainError(err)
			}

			log.Debug().Str("id", id).Msg("keypair generated")
			return printJSON(out, map[string]string{
				"id":     id,
				"secret": secret,
				"public": public,
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "wrap the secret with this password (or - for stdin)")
	cmd.Flags().StringVar(&wrapWith, "wrap", "", "wrap the secret with this k4.local key")
	cmd.Flags().StringVar(&out, "out", "-", "output file, or - for stdout")
	return cmd
}

func keypairInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <k4.secret...|k4.public...>",
		Short: "Print the identifier and PASERK form of a key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]

			if pub, err := keys.VerifyingPublicKeyFromPASERK(s); err == nil {
				defer pub.Dispose()
				id, err := pub.Identifier()
				if err != nil {
					return wrapDomainError(err)
				}
				return printJSON("-", map[string]string{"type": "public", "id": id})
			}

			pair, err := keys.KeyPairFromPASERK(s)
			if err != nil {
				return wrapDomainError(fmt.Errorf("cli: not a recognized k4.secret or k4.public key: %w", err))
			}
			defer pair.Dispose()
			id, err := pair.Identifier()
			if err != nil {
				return wrapDomainError(err)
			}
			return printJSON("-", map[string]string{"type": "secret", "id": id})
		},
	}
	return cmd
}

// generateSaltBytes produces fresh random Argon2id salt material for
// commands that wrap a key under a freshly generated password salt
// rather than a caller-supplied one.
func generateSaltBytes() ([]byte, error) {
	salt, err := keys.GenerateSalt(rand.Reader, keys.DefaultSaltLength)
	if err != nil {
		return nil, err
	}
	defer salt.Dispose()

	var raw []byte
	err = salt.ExecuteWithKeyBytes(func(b []byte) error {
		raw = append([]byte{}, b...)
		return nil
	})
	return raw, err
}
