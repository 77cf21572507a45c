package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go/logging"
	"github.com/go-logr/logr"
)

// NewService returns a config loader. With trace set, the SDK logs every
// request, response and retry through logger at V(2).
func NewService(logger logr.Logger, trace bool) *service {
	return &service{
		logger: logger.WithName("aws-sdk"),
		trace:  trace,
	}
}

func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, s.loadOptions(region, profile)...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading AWS config: %w", err)
	}

	s.logger.V(1).Info("Loaded AWS config", "region", cfg.Region, "profile", profile)
	return cfg, nil
}

// loadOptions only overrides region and profile when they were given, leaving
// the SDK's env/shared-config resolution in charge otherwise.
func (s *service) loadOptions(region, profile string) []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{
		config.WithLogger(sdkLogger{log: s.logger}),
	}

	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	if s.trace {
		opts = append(opts, config.WithClientLogMode(aws.LogRequest|aws.LogResponse|aws.LogRetries))
	}

	return opts
}

// sdkLogger routes smithy log lines into logr
type sdkLogger struct {
	log logr.Logger
}

func (l sdkLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if classification == logging.Warn {
		l.log.Info(msg)
		return
	}
	l.log.V(2).Info(msg)
}
