package emailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Nazarious-ucu/newsletter-manager/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

const utf8Charset = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESService sends mail through AWS SES v2.
type SESService struct {
	client sesAPI
	from   string
	logger *zap.Logger
}

// NewSESService loads static AWS credentials; httpClient may carry a logging transport.
func NewSESService(ctx context.Context, cfg config.Email, httpClient *http.Client, logger *zap.Logger) (*SESService, error) {
	if cfg.SESAccessKey == "" || cfg.SESSecretKey == "" {
		return nil, errors.New("ses access key and secret key must be set")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.SESRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKey, cfg.SESSecretKey, ""),
		),
	}
	if httpClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(httpClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return newSESService(sesv2.NewFromConfig(awsCfg), cfg.From, logger), nil
}

func newSESService(client sesAPI, from string, logger *zap.Logger) *SESService {
	return &SESService{
		client: client,
		from:   from,
		logger: logger.With(zap.String("component", "SESService")),
	}
}

func (s *SESService) Send(ctx context.Context, to, subject, additionalHeaders, body string) error {
	content := &types.Content{Data: aws.String(body), Charset: aws.String(utf8Charset)}

	msgBody := &types.Body{Text: content}
	if strings.Contains(strings.ToLower(additionalHeaders), "text/html") {
		msgBody = &types.Body{Html: content}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(utf8Charset)},
				Body:    msgBody,
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		s.logger.Error("email send failed", zap.String("to", to), zap.Error(err))
		return err
	}

	s.logger.Info("email sent successfully",
		zap.String("to", to),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
