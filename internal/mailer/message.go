package mailer

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newMessageID returns a unique Message-ID header value scoped to the
// sender's domain.
func newMessageID(from, fallbackDomain string) string {
	domain := fallbackDomain
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// buildMIME renders msg as a multipart/alternative RFC 5322 message.
func buildMIME(msg *Message, messageID string, date time.Time) ([]byte, error) {
	var buf bytes.Buffer

	body := multipart.NewWriter(&buf)

	headers := []struct{ key, value string }{
		{"From", msg.Sender()},
		{"To", msg.To},
		{"Reply-To", msg.ReplyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", date.Format(time.RFC1123Z)},
		{"Message-ID", messageID},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + body.Boundary()},
	}
	for _, h := range headers {
		if h.value == "" {
			continue
		}
		fmt.Fprintf(&buf, "%s: %s\r\n", h.key, h.value)
	}
	buf.WriteString("\r\n")

	if err := writePart(body, "text/plain", msg.Text); err != nil {
		return nil, err
	}
	if err := writePart(body, "text/html", msg.HTML); err != nil {
		return nil, err
	}
	if err := body.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return buf.Bytes(), nil
}

func writePart(w *multipart.Writer, contentType, content string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType + "; charset=UTF-8"},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", contentType, err)
	}

	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(content)); err != nil {
		return fmt.Errorf("failed to write %s part: %w", contentType, err)
	}
	return qp.Close()
}
