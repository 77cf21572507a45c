package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	// Empty values leave resolution to the AWS SDK
	AWSRegion  string
	AWSProfile string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWSRegion:  os.Getenv("AWS_REGION"),
		AWSProfile: os.Getenv("AWS_PROFILE"),
	}
}
