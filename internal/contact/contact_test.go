package contact

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecoladevelopment/site-backend/internal/config"
	"github.com/cecoladevelopment/site-backend/internal/errors"
	"github.com/cecoladevelopment/site-backend/internal/logger/loggertest"
	"github.com/cecoladevelopment/site-backend/internal/mailer"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

type stubTransport struct {
	verifyErr error
	sendErr   error
	verified  int
	sent      []*mailer.Message
}

func (s *stubTransport) Verify(context.Context) error {
	s.verified++
	return s.verifyErr
}

func (s *stubTransport) Send(_ context.Context, msg *mailer.Message) (string, error) {
	s.sent = append(s.sent, msg)
	if s.sendErr != nil {
		return "", s.sendErr
	}
	return "<abc-123@example.com>", nil
}

func (s *stubTransport) Name() string { return "stub" }

var testContactConfig = config.ContactConfig{
	To:       "tips@example.com",
	From:     "sales@example.com",
	FromName: "Cecola Development Website",
	Site:     "cecoladevelopment.com",
}

func validSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		Name:    "Jane Doe",
		Company: "Acme Builders",
		Email:   "jane@acme.com",
		Problem: "Our PMs won't use Procore",
	}
}

func newTestRelay(t *testing.T, transport mailer.Transport) *Relay {
	t.Helper()
	relay := NewRelay(transport, testContactConfig, loggertest.New(t))
	relay.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	return relay
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.ContactSubmission)
		wantFields []string
		wantTitle  string
	}{
		{"valid", func(*models.ContactSubmission) {}, nil, ""},
		{"missing email", func(s *models.ContactSubmission) { s.Email = "" }, []string{"email"}, "Missing required fields"},
		{"blank name and problem", func(s *models.ContactSubmission) { s.Name = "  "; s.Problem = "\n" }, []string{"name", "problem"}, "Missing required fields"},
		{"all missing", func(s *models.ContactSubmission) { *s = models.ContactSubmission{} }, []string{"name", "company", "email", "problem"}, "Missing required fields"},
		{"no at sign", func(s *models.ContactSubmission) { s.Email = "nope" }, nil, "Invalid email format"},
		{"no dot", func(s *models.ContactSubmission) { s.Email = "a@b" }, nil, "Invalid email format"},
		{"inner space", func(s *models.ContactSubmission) { s.Email = "jane doe@acme.com" }, nil, "Invalid email format"},
		{"short", func(s *models.ContactSubmission) { s.Email = "a@b.com" }, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := Validate(sub)
			if tt.wantTitle == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			stdErr := errors.Normalize(err)
			assert.Equal(t, errors.ErrCodeInvalidInput, stdErr.Code)
			assert.Equal(t, tt.wantTitle, stdErr.Title)
			assert.Equal(t, tt.wantFields, stdErr.Fields)
		})
	}
}

func TestValidatePayload(t *testing.T) {
	assert.NoError(t, ValidatePayload([]byte(`{"name":"Jane","company":"Acme","email":"jane@acme.com","problem":"help"}`)))
	assert.NoError(t, ValidatePayload([]byte(`{"name":"Jane"}`)), "presence is checked later")
	assert.NoError(t, ValidatePayload([]byte(`{"name":"Jane","email":null}`)), "null is reported as missing later")
	assert.NoError(t, ValidatePayload([]byte(`{"company":"`+strings.Repeat("x", 500)+`","problem":"`+strings.Repeat("x", 20000)+`"}`)), "length is not limited")

	for _, raw := range []string{
		`{"name": 42}`,
		`["name"]`,
		`"just a string"`,
		`{"email": true}`,
		`{not json`,
	} {
		err := ValidatePayload([]byte(raw))
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidInput), "payload %.40s", raw)
	}
}

func TestCompose(t *testing.T) {
	sub := validSubmission()
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	msg, err := Compose(sub, testContactConfig, at)
	require.NoError(t, err)

	assert.Equal(t, "sales@example.com", msg.From)
	assert.Equal(t, "Cecola Development Website", msg.FromName)
	assert.Equal(t, "tips@example.com", msg.To)
	assert.Equal(t, "jane@acme.com", msg.ReplyTo)
	assert.Equal(t, "New Contact Form Submission - Acme Builders (Jane Doe)", msg.Subject)

	for _, body := range []string{msg.Text, msg.HTML} {
		assert.Contains(t, body, "Jane Doe")
		assert.Contains(t, body, "Acme Builders")
		assert.Contains(t, body, "jane@acme.com")
		assert.Contains(t, body, "cecoladevelopment.com")
		assert.Contains(t, body, at.Format(time.RFC1123))
	}
	assert.Contains(t, msg.Text, "Problem/Question: Our PMs won't use Procore")
	assert.Contains(t, msg.HTML, "Our PMs won&#39;t use Procore")
}

func TestCompose_EscapesHTML(t *testing.T) {
	sub := validSubmission()
	sub.Company = `<script>alert("x")</script>`

	msg, err := Compose(sub, testContactConfig, time.Now())
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.Text, sub.Company)
}

func TestSubmit_Success(t *testing.T) {
	transport := &stubTransport{}
	sub := models.ContactSubmission{
		Name:    "Pat Lee",
		Company: "Lee Construction",
		Email:   "pat@leeconstruction.com",
		Problem: "Job cost reports are always late",
	}

	resp, err := newTestRelay(t, transport).Submit(context.Background(), sub)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "Email sent successfully", resp.Message)
	assert.Equal(t, "<abc-123@example.com>", resp.MessageID)

	assert.Equal(t, 1, transport.verified)
	require.Len(t, transport.sent, 1)
	msg := transport.sent[0]
	for _, value := range []string{sub.Name, sub.Company, sub.Email, sub.Problem} {
		assert.Contains(t, msg.Text, value)
		assert.Contains(t, msg.HTML, value)
	}
	assert.Equal(t, sub.Email, msg.ReplyTo)
}

func TestSubmit_TrimsFields(t *testing.T) {
	transport := &stubTransport{}
	sub := validSubmission()
	sub.Email = "  jane@acme.com \n"

	_, err := newTestRelay(t, transport).Submit(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "jane@acme.com", transport.sent[0].ReplyTo)
}

func TestSubmit_MissingEmail(t *testing.T) {
	transport := &stubTransport{}
	sub := validSubmission()
	sub.Email = ""

	resp, err := newTestRelay(t, transport).Submit(context.Background(), sub)

	assert.Nil(t, resp)
	stdErr := errors.Normalize(err)
	assert.Equal(t, 400, stdErr.HTTPStatus())
	assert.Equal(t, []string{"email"}, stdErr.Fields)
	assert.Zero(t, transport.verified)
	assert.Empty(t, transport.sent)
}

func TestSubmit_NoTransport(t *testing.T) {
	resp, err := newTestRelay(t, nil).Submit(context.Background(), validSubmission())

	assert.Nil(t, resp)
	assert.True(t, errors.IsCode(err, errors.ErrCodeServiceUnavailable))
}

func TestSubmit_VerifyFailure(t *testing.T) {
	tests := []struct {
		name      string
		verifyErr error
		wantHint  string
	}{
		{"authentication", &mailer.VerifyError{Kind: mailer.KindAuthentication, Err: stderrors.New("535 bad credentials")}, errors.HintAuthentication},
		{"connectivity", &mailer.VerifyError{Kind: mailer.KindConnectivity, Err: stderrors.New("connection refused")}, errors.HintConnectivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &stubTransport{verifyErr: tt.verifyErr}
			_, err := newTestRelay(t, transport).Submit(context.Background(), validSubmission())

			stdErr := errors.Normalize(err)
			assert.Equal(t, errors.ErrCodeServiceUnavailable, stdErr.Code)
			assert.Equal(t, "Email service configuration error", stdErr.Title)
			assert.Equal(t, tt.wantHint, stdErr.Hint)
			assert.Contains(t, stdErr.Details, tt.verifyErr.Error())
			assert.Empty(t, transport.sent)
		})
	}
}

func TestSubmit_SendFailure(t *testing.T) {
	transport := &stubTransport{sendErr: stderrors.New("554 message rejected")}

	_, err := newTestRelay(t, transport).Submit(context.Background(), validSubmission())

	stdErr := errors.Normalize(err)
	assert.Equal(t, errors.ErrCodeDeliveryFailed, stdErr.Code)
	assert.Equal(t, "Failed to send email", stdErr.Title)
	assert.Equal(t, "554 message rejected", stdErr.Details)
	assert.Equal(t, 1, transport.verified)
}
