package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tonylturner/catview/internal/config"
	"github.com/tonylturner/catview/internal/logging"
	"github.com/tonylturner/catview/internal/source/drivers"
)

// NewFromConfig creates a source based on the provided configuration
func NewFromConfig(ctx context.Context, cfg config.SourceConfig, logger *logging.Logger) (Source, error) {
	switch cfg.Type {
	case config.SourceHTTP, "":
		logger.Verbose("Initializing HTTP source %s", cfg.BaseURL)
		client := &http.Client{}
		if cfg.TimeoutMs > 0 {
			client.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
		}
		return drivers.NewHTTPSource(client, cfg.BaseURL, cfg.SheetParam)
	case config.SourceFile:
		logger.Verbose("Initializing local source %s", cfg.Dir)
		return drivers.NewLocalFSSource(cfg.Dir)
	case config.SourceS3:
		logger.Verbose("Initializing S3 source bucket=%s endpoint=%s", cfg.Bucket, cfg.Endpoint)
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return drivers.NewS3Source(client, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", cfg.Type)
	}
}

func newS3Client(ctx context.Context, cfg config.SourceConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
