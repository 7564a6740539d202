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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/licensify/licensify/keys"
	"github.com/licensify/licensify/license"
)

func licenseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "license",
		Short: "Create, verify, and encrypt data with PASETO v4 licenses.",
	}
	cmd.AddCommand(licenseCreateCommand())
	cmd.AddCommand(licenseVerifyCommand())
	cmd.AddCommand(licenseEncryptCommand())
	cmd.AddCommand(licenseDecryptCommand())
	return cmd
}

// licensePlan is the JSON shape read from --plan: a catalog entry the
// CLI expands into a signed License. Plan catalog management itself is
// an external collaborator (spec §1); this struct is only the minimal
// shape the CLI needs to drive create_license.
type licensePlan struct {
	AppID    string         `json:"app_id" yaml:"app_id"`
	Type     string         `json:"type" yaml:"type"`
	Expiry   time.Time      `json:"exp" yaml:"exp"`
	Features map[string]any `json:"features" yaml:"features"`
	Metadata map[string]any `json:"metadata" yaml:"metadata"`
	Trial    bool           `json:"trial" yaml:"trial"`
}

// parsePlan decodes a plan document as YAML when path ends in .yaml or
// .yml, JSON otherwise — the license-plan catalog format itself is an
// external collaborator (spec §1); this is just enough parsing for the
// CLI to hand a License off to create_license.
func parsePlan(path string, raw []byte) (licensePlan, error) {
	var plan licensePlan
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(raw, &plan); err != nil {
			return licensePlan{}, fmt.Errorf("cli: invalid plan YAML: %w", err)
		}
		return plan, nil
	}
	if err := json.Unmarshal(raw, &plan); err != nil {
		return licensePlan{}, fmt.Errorf("cli: invalid plan JSON: %w", err)
	}
	return plan, nil
}

func licenseCreateCommand() *cobra.Command {
	var (
		privPASERK string
		planPath   string
		out        string
		footer     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Sign a new license from a plan description.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if privPASERK == "" || planPath == "" {
				return fmt.Errorf("cli: --priv and --plan are required")
			}

			planBytes, err := readInput(planPath)
			if err != nil {
				return fmt.Errorf("cli: unable to read plan: %w", err)
			}
			plan, err := parsePlan(planPath, planBytes)
			if err != nil {
				return err
			}

			pair, err := keys.KeyPairFromPASERK(privPASERK)
			if err != nil {
				return wrapDomainError(err)
			}
			defer pair.Dispose()

			lic, err := license.CreateLicense(pair.Private(), plan.AppID, plan.Expiry, plan.Type,
				plan.Features, plan.Metadata, plan.Trial, []byte(footer))
			if err != nil {
				return wrapDomainError(err)
			}

			log.Debug().Str("sub", lic.Sub).Msg("license created")
			return printJSON(out, map[string]string{"token": lic.Token()})
		},
	}

	cmd.Flags().StringVar(&privPASERK, "priv", "", "k4.secret signing key")
	cmd.Flags().StringVar(&planPath, "plan", "", "path to a plan JSON file, or - for stdin")
	cmd.Flags().StringVar(&out, "out", "-", "output file, or - for stdout")
	cmd.Flags().StringVar(&footer, "footer", "", "optional footer to bind into the token")
	return cmd
}

func licenseVerifyCommand() *cobra.Command {
	var pubPASERK string
	cmd := &cobra.Command{
		Use:   "verify <token>",
		Short: "Verify a license token and print its validated payload.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pubPASERK == "" {
				return fmt.Errorf("cli: --pub is required")
			}
			pub, err := keys.VerifyingPublicKeyFromPASERK(pubPASERK)
			if err != nil {
				return wrapDomainError(err)
			}
			defer pub.Dispose()

			lic, err := license.FromToken(args[0], pub, nil)
			if err != nil {
				return wrapDomainError(err)
			}

			return printJSON("-", map[string]any{
				"sub":      lic.Sub,
				"iss":      lic.Issuer,
				"app_id":   lic.AppID,
				"type":     string(lic.Type),
				"iat":      lic.IssuedAt,
				"exp":      lic.Expiry,
				"features": lic.Features,
				"metadata": lic.Metadata,
				"trial":    lic.Trial,
			})
		},
	}
	cmd.Flags().StringVar(&pubPASERK, "pub", "", "k4.public verifying key")
	return cmd
}

func licenseEncryptCommand() *cobra.Command {
	var (
		keyPASERK string
		dataPath  string
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a JSON document as a v4.local token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.SymmetricKeyFromPASERK(keyPASERK)
			if err != nil {
				return wrapDomainError(err)
			}
			defer key.Dispose()

			raw, err := readInput(dataPath)
			if err != nil {
				return fmt.Errorf("cli: unable to read data: %w", err)
			}
			var data map[string]any
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("cli: invalid data JSON: %w", err)
			}

			token, err := license.EncryptData(data, key, nil)
			if err != nil {
				return wrapDomainError(err)
			}
			return printJSON("-", map[string]string{"token": token})
		},
	}
	cmd.Flags().StringVar(&keyPASERK, "key", "", "k4.local encryption key")
	cmd.Flags().StringVar(&dataPath, "data", "-", "path to JSON data, or - for stdin")
	return cmd
}

func licenseDecryptCommand() *cobra.Command {
	var keyPASERK string
	cmd := &cobra.Command{
		Use:   "decrypt <token>",
		Short: "Decrypt a v4.local token back to its JSON document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keys.SymmetricKeyFromPASERK(keyPASERK)
			if err != nil {
				return wrapDomainError(err)
			}
			defer key.Dispose()

			data, err := license.DecryptData(args[0], key, nil)
			if err != nil {
				return wrapDomainError(err)
			}
			return printJSON("-", data)
		},
	}
	cmd.Flags().StringVar(&keyPASERK, "key", "", "k4.local encryption key")
	return cmd
}
