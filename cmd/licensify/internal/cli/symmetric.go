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

func symmetricCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symmetric",
		Short: "Generate or inspect XChaCha20 local keys.",
	}
	cmd.AddCommand(symmetricGenerateCommand())
	cmd.AddCommand(symmetricInfoCommand())
	cmd.AddCommand(symmetricDeriveCommand())
	return cmd
}

func symmetricGenerateCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new random k4.local key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.GenerateEncryptionKey(rand.Reader)
			if err != nil {
				return wrapDomainError(err)
			}
			defer key.Dispose()

			s, err := key.ToPASERK()
			if err != nil {
				return wrapDomainError(err)
			}
			id, err := key.Identifier()
			if err != nil {
				return wrapDomainError(err)
			}
			log.Debug().Str("id", id).Msg("symmetric key generated")
			return printJSON(out, map[string]string{"id": id, "key": s})
		},
	}
	cmd.Flags().StringVar(&out, "out", "-", "output file, or - for stdout")
	return cmd
}

func symmetricInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <k4.local...>",
		Short: "Print the identifier of a k4.local key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.SymmetricKeyFromPASERK(args[0])
			if err != nil {
				return wrapDomainError(err)
			}
			defer key.Dispose()
			id, err := key.Identifier()
			if err != nil {
				return wrapDomainError(err)
			}
			return printJSON("-", map[string]string{"id": id})
		},
	}
	return cmd
}

func symmetricDeriveCommand() *cobra.Command {
	var (
		password    string
		memoryCost  uint32
		timeCost    uint32
		parallelism uint8
		salt        string
		sealWith    string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Generate a random k4.local key and output it wrapped as k4.local-pw under an Argon2id password key; the key itself is not derived from the password.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(password)
			if err != nil {
				return err
			}
			if salt == "" {
				return fmt.Errorf("cli: --salt is required")
			}

			params := paserk.PasswordParams{
				MemoryCost:  memoryCost,
				TimeCost:    timeCost,
				Parallelism: parallelism,
				Salt:        []byte(salt),
			}

			key, err := keys.GenerateEncryptionKey(rand.Reader)
			if err != nil {
				return wrapDomainError(err)
			}
			defer key.Dispose()

			wrapped, err := key.PasswordWrap(pw, params)
			if err != nil {
				return wrapDomainError(err)
			}

			result := map[string]string{"local-pw": wrapped}

			if sealWith != "" {
				recipient, err := keys.VerifyingPublicKeyFromPASERK(sealWith)
				if err != nil {
					return wrapDomainError(err)
				}
				defer recipient.Dispose()
				sealed, err := key.Seal(recipient)
				if err != nil {
					return wrapDomainError(err)
				}
				result["seal"] = sealed
			}

			return printJSON("-", result)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password to wrap the generated key with (or - for stdin)")
	cmd.Flags().Uint32Var(&memoryCost, "memory-cost", keys.DefaultMemoryCost, "Argon2id memory cost in KiB")
	cmd.Flags().Uint32Var(&timeCost, "time-cost", keys.DefaultTimeCost, "Argon2id time cost")
	cmd.Flags().Uint8Var(&parallelism, "parallelism", keys.DefaultParallelism, "Argon2id parallelism")
	cmd.Flags().StringVar(&salt, "salt", "", "salt bytes (raw string, at least 16 bytes)")
	cmd.Flags().StringVar(&sealWith, "seal-with", "", "also seal the derived key to this k4.public recipient")
	return cmd
}
