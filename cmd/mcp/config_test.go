package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "ap-south-1")
	t.Setenv("AWS_PROFILE", "audit")

	cfg := LoadConfig()

	assert.Equal(t, "ap-south-1", cfg.AWSRegion)
	assert.Equal(t, "audit", cfg.AWSProfile)
}

func TestLoadConfig_Unset(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.AWSRegion)
	assert.Empty(t, cfg.AWSProfile)
}
