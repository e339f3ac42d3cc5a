package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the subset of the SES client used by SESTransport.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
	GetSendQuota(ctx context.Context, params *ses.GetSendQuotaInput, optFns ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error)
}

// SESTransport delivers through Amazon SES using the default AWS
// credential chain.
type SESTransport struct {
	client sesAPI
}

func NewSESTransport(ctx context.Context, region string) (*SESTransport, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESTransport{client: ses.NewFromConfig(cfg)}, nil
}

func (t *SESTransport) Name() string {
	return "ses"
}

// Verify reads the account send quota, which fails on bad credentials.
func (t *SESTransport) Verify(ctx context.Context) error {
	if _, err := t.client.GetSendQuota(ctx, &ses.GetSendQuotaInput{}); err != nil {
		if isAuthError(err) {
			return authFailure(err)
		}
		return connFailure(err)
	}
	return nil
}

func (t *SESTransport) Send(ctx context.Context, msg *Message) (string, error) {
	input := &ses.SendEmailInput{
		Source:      aws.String(msg.Sender()),
		Destination: &types.Destination{ToAddresses: []string{msg.To}},
		Message: &types.Message{
			Subject: content(msg.Subject),
			Body: &types.Body{
				Text: content(msg.Text),
				Html: content(msg.HTML),
			},
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	out, err := t.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to send email via SES: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

func content(data string) *types.Content {
	return &types.Content{Data: aws.String(data), Charset: aws.String(charsetUTF8)}
}

var authErrorCodes = map[string]bool{
	"AccessDenied":                true,
	"AccessDeniedException":       true,
	"ExpiredToken":                true,
	"IncompleteSignature":         true,
	"InvalidClientTokenId":        true,
	"MissingAuthenticationToken":  true,
	"SignatureDoesNotMatch":       true,
	"UnrecognizedClientException": true,
}

func isAuthError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return authErrorCodes[apiErr.ErrorCode()]
	}
	return false
}
