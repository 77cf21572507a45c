package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/eni-doctor/cmd/mcp/tools"
	"github.com/elC0mpa/eni-doctor/service/logger"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	// stdout carries the MCP protocol, so logs go to stderr
	log, logOpts, err := logger.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	s := server.NewMCPServer(
		"eni-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAWSTools(s, tools.Options{
		Region:  cfg.AWSRegion,
		Profile: cfg.AWSProfile,
		Logger:  log.WithName("mcp"),
		Trace:   logOpts.Trace,
	})

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
