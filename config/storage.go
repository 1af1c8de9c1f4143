package config

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client used to fetch s3:// brand assets.
type S3Config struct {
	Client *s3.Client
}

// NewS3Config initializes the S3 client from the environment or shared AWS
// config. Only needed when asset URLs use the s3:// scheme.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{Client: s3.NewFromConfig(awsCfg)}, nil
}

// NeedsS3 reports whether any configured asset URL requires the S3 client.
func (c *Config) NeedsS3() bool {
	return hasS3Scheme(c.CoverImageURL) || hasS3Scheme(c.LogoImageURL)
}

func hasS3Scheme(url string) bool {
	return len(url) > 5 && url[:5] == "s3://"
}
