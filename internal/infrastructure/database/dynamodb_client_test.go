package database

import (
	"context"
	"testing"

	"sales_engine/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfig(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), config.AWSConfig{
		Region:           "sa-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	})
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}
