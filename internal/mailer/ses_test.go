package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	quotaErr error
	sendErr  error
	input    *ses.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &ses.SendEmailOutput{MessageId: aws.String("0100018c-ses-id")}, nil
}

func (f *fakeSES) GetSendQuota(context.Context, *ses.GetSendQuotaInput, ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error) {
	if f.quotaErr != nil {
		return nil, f.quotaErr
	}
	return &ses.GetSendQuotaOutput{Max24HourSend: 200}, nil
}

func TestSESTransport_Verify(t *testing.T) {
	tests := []struct {
		name     string
		quotaErr error
		wantKind FailureKind
	}{
		{"invalid token", &smithy.GenericAPIError{Code: "InvalidClientTokenId", Message: "bad token"}, KindAuthentication},
		{"bad signature", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}, KindAuthentication},
		{"throttled", &smithy.GenericAPIError{Code: "Throttling"}, KindConnectivity},
		{"network", errors.New("dial tcp: i/o timeout"), KindConnectivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &SESTransport{client: &fakeSES{quotaErr: tt.quotaErr}}
			err := transport.Verify(context.Background())
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.ErrorIs(t, err, tt.quotaErr)
		})
	}

	assert.NoError(t, (&SESTransport{client: &fakeSES{}}).Verify(context.Background()))
}

func TestSESTransport_Send(t *testing.T) {
	fake := &fakeSES{}
	transport := &SESTransport{client: fake}

	id, err := transport.Send(context.Background(), &Message{
		From:     "sales@example.com",
		FromName: "Cecola Development Website",
		To:       "tips@example.com",
		ReplyTo:  "jane@acme.com",
		Subject:  "New Contact Form Submission - Acme (Jane)",
		Text:     "text body",
		HTML:     "<p>html body</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "0100018c-ses-id", id)

	in := fake.input
	require.NotNil(t, in)
	assert.Equal(t, `"Cecola Development Website" <sales@example.com>`, aws.ToString(in.Source))
	assert.Equal(t, []string{"tips@example.com"}, in.Destination.ToAddresses)
	assert.Equal(t, []string{"jane@acme.com"}, in.ReplyToAddresses)
	assert.Equal(t, "New Contact Form Submission - Acme (Jane)", aws.ToString(in.Message.Subject.Data))
	assert.Equal(t, "text body", aws.ToString(in.Message.Body.Text.Data))
	assert.Equal(t, "<p>html body</p>", aws.ToString(in.Message.Body.Html.Data))
	assert.Equal(t, charsetUTF8, aws.ToString(in.Message.Body.Html.Charset))
}

func TestSESTransport_SendFailure(t *testing.T) {
	sendErr := &smithy.GenericAPIError{Code: "MessageRejected", Message: "Email address is not verified."}
	transport := &SESTransport{client: &fakeSES{sendErr: sendErr}}

	id, err := transport.Send(context.Background(), &Message{From: "a@example.com", To: "b@example.com"})
	assert.Empty(t, id)
	assert.ErrorIs(t, err, sendErr)
}
