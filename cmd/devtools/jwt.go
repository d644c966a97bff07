package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devtoolhub/devtools/internal/config"
	"github.com/devtoolhub/devtools/internal/model"
	"github.com/devtoolhub/devtools/internal/token"
)

// ErrSignatureInvalid is returned by jwt verify when the signature does
// not match, so the process exits non-zero.
var ErrSignatureInvalid = errors.New("signature verification failed")

// NewJWTCmd creates the jwt command group.
func NewJWTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Decode, encode and verify JSON Web Tokens (HMAC only)",
		Long: `JWT tools for HS256, HS384 and HS512 tokens.

decode inspects a token structurally without checking the signature.
encode builds and signs a token from raw JSON segments. verify checks
an existing token's signature against a shared secret.`,
	}

	cmd.AddCommand(newJWTDecodeCmd())
	cmd.AddCommand(newJWTEncodeCmd())
	cmd.AddCommand(newJWTVerifyCmd())
	return cmd
}

func newJWTDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token]",
		Short: "Decode a token's header and payload without verification",
		Long: `Decode splits a compact token into its header, payload and signature
segments and pretty-prints the JSON parts. The signature is NOT checked;
use "jwt verify" for that.

Examples:
  devtools jwt decode eyJhbGciOi...
  cat token.txt | devtools jwt decode`,
		Args: cobra.MaximumNArgs(1),
		RunE: runJWTDecodeCmd,
	}

	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	return cmd
}

func runJWTDecodeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	raw, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	decoded, err := token.Decode(raw)
	if err != nil {
		return err
	}

	rep := model.NewReport("jwt", input)
	if alg, err := decoded.Algorithm(); err == nil {
		rep.AddField("algorithm", string(alg))
	}
	rep.AddField("header", indentJSON(decoded.Header))
	rep.AddField("payload", indentJSON(decoded.Payload))
	rep.AddField("signature", decoded.Signature)
	if reg, err := decoded.Registered(); err == nil {
		if reg.Subject != "" {
			rep.AddField("subject", reg.Subject)
		}
		if reg.Issuer != "" {
			rep.AddField("issuer", reg.Issuer)
		}
		if reg.IssuedAt != nil {
			rep.AddField("issued_at", reg.IssuedAt.UTC().Format(time.RFC3339))
		}
		if reg.ExpiresAt != nil {
			rep.AddField("expires_at", reg.ExpiresAt.UTC().Format(time.RFC3339))
		}
	}
	rep.AddField("expired", fmt.Sprintf("%t", decoded.Expired(time.Now())))

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "jwt", "decode "+input, string(decoded.Payload))
	return nil
}

func newJWTEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build and sign a token from raw JSON segments",
		Long: `Encode signs a payload with an HMAC secret and prints the compact
token. The header is generated from --alg unless given explicitly.

Examples:
  devtools jwt encode --payload '{"sub":"1234","name":"Jane"}' --secret s3cret
  devtools jwt encode --payload @claims.json --secret s3cret --alg HS512`,
		RunE: runJWTEncodeCmd,
	}

	cmd.Flags().String("payload", "", "Claims JSON (required)")
	cmd.Flags().String("header", "", "JOSE header JSON (default: generated from --alg)")
	cmd.Flags().StringP("secret", "s", "", "HMAC secret (required)")
	cmd.Flags().String("alg", "", "Signing algorithm: HS256, HS384 or HS512 (default HS256)")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	cmd.Flags().StringP("config", "c", "", "Configuration file path")
	_ = cmd.MarkFlagRequired("payload")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func runJWTEncodeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	payload, _ := cmd.Flags().GetString("payload")
	header, _ := cmd.Flags().GetString("header")
	secret, _ := cmd.Flags().GetString("secret")
	algName, _ := cmd.Flags().GetString("alg")

	if algName == "" {
		algName = cfg.File.JWT.Algorithm
	}
	if algName == "" {
		algName = config.DefaultJWTAlgorithm
	}
	alg, err := token.ParseAlgorithm(algName)
	if err != nil {
		return err
	}

	var headerJSON json.RawMessage
	if header != "" {
		headerJSON = json.RawMessage(header)
	}

	signed, err := token.Encode(headerJSON, json.RawMessage(payload), []byte(secret), alg)
	if err != nil {
		return err
	}

	rep := model.NewReport("jwt", "encode")
	rep.AddField("algorithm", string(alg))
	rep.AddField("token", signed)

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "jwt", "encode "+string(alg), signed)
	return nil
}

func newJWTVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [token]",
		Short: "Verify a token's HMAC signature",
		Long: `Verify recomputes the token's signature with the given secret and
compares it in constant time. The command exits non-zero when the
signature does not match.

Examples:
  devtools jwt verify eyJhbGciOi... --secret s3cret`,
		Args: cobra.MaximumNArgs(1),
		RunE: runJWTVerifyCmd,
	}

	cmd.Flags().StringP("secret", "s", "", "HMAC secret (required)")
	cmd.Flags().StringP("format", "f", "text", "Report format: text, json, markdown, csv or sql")
	cmd.Flags().StringP("output", "o", "", "Write the report to the given file instead of stdout")
	_ = cmd.MarkFlagRequired("secret")
	return cmd
}

func runJWTVerifyCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := setupLogger(cmd, cfg)

	raw, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	secret, _ := cmd.Flags().GetString("secret")

	valid, err := token.Verify(raw, []byte(secret))
	if err != nil {
		return err
	}

	rep := model.NewReport("jwt", input)
	rep.AddField("valid", fmt.Sprintf("%t", valid))
	if decoded, err := token.Decode(raw); err == nil {
		rep.AddField("expired", fmt.Sprintf("%t", decoded.Expired(time.Now())))
	}

	if err := writeReport(cmd, cfg, rep); err != nil {
		return err
	}

	recordHistory(cmd, cfg, logger, "jwt", "verify "+input, fmt.Sprintf("valid=%t", valid))

	if !valid {
		return ErrSignatureInvalid
	}
	return nil
}

// indentJSON pretty-prints compact JSON for display. Invalid input is
// returned as-is.
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
