package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	AWSConfig
	BucketName string `env:"S3_MEDIA_BUCKET" envDefault:"business-feed-media"`
	// Endpoint overrides the AWS endpoint, e.g. LocalStack or MinIO. It also
	// switches the client to path-style addressing.
	Endpoint string `env:"AWS_S3_ENDPOINT"`
}

func LoadS3Config() (*S3Config, error) {
	return parse[S3Config]()
}

func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
