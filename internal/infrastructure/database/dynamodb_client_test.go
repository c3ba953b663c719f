package database

import (
	"context"
	"testing"

	"suprimentos/internal/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Run("defaults region", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{AccessKeyID: "local", SecretAccessKey: "local"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if cfg.Region != "us-east-1" {
			t.Fatalf("expected us-east-1, got %s", cfg.Region)
		}
	})

	t.Run("static credentials", func(t *testing.T) {
		cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
			Region:           "sa-east-1",
			AccessKeyID:      "key",
			SecretAccessKey:  "secret",
			DynamoDBEndpoint: "http://localhost:8000",
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		creds, err := cfg.Credentials.Retrieve(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if creds.AccessKeyID != "key" || creds.SecretAccessKey != "secret" {
			t.Fatalf("unexpected credentials %+v", creds)
		}
		if cfg.Region != "sa-east-1" {
			t.Fatalf("unexpected region %s", cfg.Region)
		}
	})
}
