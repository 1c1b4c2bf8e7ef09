// Package email delivers verification codes over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/dayboard/dayboard-server/internal/model"
)

var _ model.CodeSender = (*Sender)(nil)

const codeTemplate = `
<table width="100%" border="0" cellspacing="0" cellpadding="0">
    <tr>
        <td style="text-align: center;">
            <div style="font-family: Arial;">
                <h1>Your {{.Flow}} Verification Code is</h1>
                <h1 style="font-size: 5rem">{{.Code}}</h1>
            </div>
        </td>
    </tr>
</table>
<p style="font-family: Arial;">This verification code will expire in about 5 minutes. Do not share this code.</p>
`

var bodyTemplate = template.Must(template.New("code").Parse(codeTemplate))

// Sender sends verification code emails through an SMTP relay.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender creates a Sender for the given SMTP endpoint and sender address.
func NewSender(host string, port int, username, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendCode emails the verification code for the given flow to the recipient.
func (s *Sender) SendCode(ctx context.Context, to string, kind model.VerificationKind, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := Body(kind, code)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Verification Code")
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	return nil
}

// Body renders the HTML body for a verification code email.
func Body(kind model.VerificationKind, code string) (string, error) {
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Flow string
		Code string
	}{Flow: flowLabel(kind), Code: code})
	if err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return buf.String(), nil
}

func flowLabel(kind model.VerificationKind) string {
	switch kind {
	case model.KindSignup:
		return "Signup"
	case model.KindLogin:
		return "Login"
	case model.KindDeleteAccount:
		return "Account Deletion"
	default:
		return string(kind)
	}
}
