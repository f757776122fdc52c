package push

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
)

const serviceAccount = `{"type":"service_account","project_id":"demo"}`

func TestDecodeCredentials(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "raw json", raw: serviceAccount, want: serviceAccount},
		{name: "raw json with padding", raw: "  " + serviceAccount + "\n", want: serviceAccount},
		{name: "base64", raw: base64.StdEncoding.EncodeToString([]byte(serviceAccount)), want: serviceAccount},
		{name: "base64 of non json", raw: base64.StdEncoding.EncodeToString([]byte("hello")), wantErr: true},
		{name: "garbage", raw: "%%%not-base64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCredentials(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCredentialsEmpty(t *testing.T) {
	if _, err := DecodeCredentials("   "); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDisabledSender(t *testing.T) {
	_, err := Disabled().Send(context.Background(), Message{Token: "t", Title: "hi"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
