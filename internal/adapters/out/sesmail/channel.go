// Package sesmail delivers notifications through AWS SES using the SDK v2.
package sesmail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Config holds the credentials and sender identity for the SES channel.
type Config struct {
	AccessKey string
	SecretKey string
	Region    string
	From      string
}

// Channel implements ports.NotificationChannel on top of the SES v2 API.
type Channel struct {
	client *sesv2.Client
	from   string
}

// NewChannel creates an SES channel. When access keys are empty the SDK
// falls back to its default credential chain (environment, instance role).
func NewChannel(ctx context.Context, cfg Config) (*Channel, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Channel{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.From,
	}, nil
}

// Send delivers one HTML message to one recipient.
func (c *Channel) Send(ctx context.Context, to, subject, body string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := c.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("sending mail via SES: %w", err)
	}

	return nil
}
