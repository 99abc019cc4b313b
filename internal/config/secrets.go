package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ResolveDBCredentials fills cfg.DB from the configured secrets source. Order
// matches the original deployment: Secrets Manager when DB_SECRET_ID is set,
// otherwise a local credentials file for development, otherwise whatever the
// plain env vars already provided.
func ResolveDBCredentials(ctx context.Context, cfg *Config) error {
	if cfg.DBSecretID != "" {
		return resolveFromSecretsManager(ctx, cfg)
	}
	if _, err := os.Stat(cfg.DBCredentialsFile); err == nil {
		return resolveFromFile(cfg)
	}
	return nil
}

func resolveFromSecretsManager(ctx context.Context, cfg *Config) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return fmt.Errorf("load AWS SDK config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.DBSecretID),
	})
	if err != nil {
		return fmt.Errorf("fetch secret %q: %w", cfg.DBSecretID, err)
	}
	if out.SecretString == nil {
		return fmt.Errorf("secret %q has no string payload", cfg.DBSecretID)
	}

	if err := unmarshalCredentials([]byte(*out.SecretString), cfg); err != nil {
		return fmt.Errorf("decode secret %q: %w", cfg.DBSecretID, err)
	}
	return nil
}

func resolveFromFile(cfg *Config) error {
	data, err := os.ReadFile(cfg.DBCredentialsFile)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", cfg.DBCredentialsFile, err)
	}
	if err := unmarshalCredentials(data, cfg); err != nil {
		return fmt.Errorf("decode credentials file %q: %w", cfg.DBCredentialsFile, err)
	}
	return nil
}

// unmarshalCredentials overlays only the fields present in the blob, so a
// secret carrying just user/password keeps host and port from the env.
func unmarshalCredentials(data []byte, cfg *Config) error {
	creds := cfg.DB
	if err := json.Unmarshal(data, &creds); err != nil {
		return err
	}
	cfg.DB = creds
	return nil
}
