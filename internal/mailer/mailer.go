// Package mailer builds and delivers the transactional emails the API sends:
// email verification, password reset and business invitations.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type MessageType string

const (
	MessageTypeVerification  MessageType = "VERIFICATION"
	MessageTypePasswordReset MessageType = "PASSWORD_RESET"
	MessageTypeInvitation    MessageType = "INVITATION"
)

var ErrNoRecipient = errors.New("message has no recipient")

// Message is a plain-text email addressed to a single recipient.
type Message struct {
	Type      MessageType `json:"type"`
	To        string      `json:"to"`
	Subject   string      `json:"subject"`
	PlainText string      `json:"plain_text"`
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return ErrNoRecipient
	}
	return nil
}

//go:generate mockery --name Sender --output ../mocks
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Composer renders the outgoing messages and the links they carry.
type Composer struct {
	appName    string
	serverName string
}

func NewComposer(appName, serverName string) *Composer {
	return &Composer{appName: appName, serverName: serverName}
}

func (c *Composer) link(path, token string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     c.serverName,
		Path:     path,
		RawQuery: url.Values{"token": {token}}.Encode(),
	}
	return u.String()
}

func (c *Composer) VerificationLink(token string) string {
	return c.link("/v1/auth/verify-email", token)
}

func (c *Composer) PasswordResetLink(token string) string {
	return c.link("/v1/auth/password-reset", token)
}

// Verification is sent at sign-up (welcome=true) and on every resend.
func (c *Composer) Verification(to, token string, welcome bool) Message {
	body := "Please verify your email by clicking the following link (expires in 24 hours):\n" + c.VerificationLink(token)
	if welcome {
		body = fmt.Sprintf("Welcome to %s! %s", c.appName, body)
	}
	return Message{
		Type:      MessageTypeVerification,
		To:        to,
		Subject:   "Email Verification",
		PlainText: body,
	}
}

func (c *Composer) PasswordReset(to, token string) Message {
	return Message{
		Type:      MessageTypePasswordReset,
		To:        to,
		Subject:   "Password Reset Request",
		PlainText: "Click the link to reset your password (Expires in 30 minutes): \n " + c.PasswordResetLink(token),
	}
}

func (c *Composer) Invitation(to, businessName string) Message {
	return Message{
		Type:      MessageTypeInvitation,
		To:        to,
		Subject:   fmt.Sprintf("You have been invited to join %s : %s", c.appName, businessName),
		PlainText: "You have been invited to join. Please log in with your email on the app.",
	}
}
