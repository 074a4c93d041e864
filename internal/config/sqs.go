package config

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSConfig struct {
	AWSConfig
	Endpoint     string        `env:"AWS_SQS_ENDPOINT"`
	MailQueueURL string        `env:"AWS_SQS_MAIL_QUEUE_URL,required,notEmpty"`
	WorkerCount  int           `env:"MAIL_WORKER_COUNT"         envDefault:"2"`
	PollInterval time.Duration `env:"MAIL_WORKER_POLL_INTERVAL" envDefault:"1s"`
}

func LoadSQSConfig() (*SQSConfig, error) {
	return parse[SQSConfig]()
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}
