// Package push delivers notifications to driver devices through Firebase Cloud Messaging.
package push

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("push provider is not configured")

type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender returns the provider's message id on success.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

type Config struct {
	// Credentials is a service account JSON document, raw or base64-encoded.
	Credentials string
	ProjectID   string
}

type fcmSender struct {
	client *messaging.Client
}

func NewFCM(ctx context.Context, cfg Config) (Sender, error) {
	creds, err := DecodeCredentials(cfg.Credentials)
	if err != nil {
		return nil, err
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}

	return &fcmSender{client: client}, nil
}

func (s *fcmSender) Send(ctx context.Context, msg Message) (string, error) {
	return s.client.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
}

// DecodeCredentials accepts either the JSON document itself or its base64 encoding.
func DecodeCredentials(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrNotConfigured
	}
	if strings.HasPrefix(raw, "{") {
		return []byte(raw), nil
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}
	decoded = bytes.TrimSpace(decoded)
	if !bytes.HasPrefix(decoded, []byte("{")) {
		return nil, errors.New("decode firebase credentials: not a JSON document")
	}
	return decoded, nil
}

type disabled struct{}

// Disabled returns a Sender that fails every send with ErrNotConfigured.
func Disabled() Sender {
	return disabled{}
}

func (disabled) Send(context.Context, Message) (string, error) {
	return "", ErrNotConfigured
}
