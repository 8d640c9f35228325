package slack

import (
	"errors"
	"testing"
)

func TestResolvePrefersBotToken(t *testing.T) {
	creds := Credentials{BotToken: "xoxb-A", UserToken: "xoxp-B"}
	auth, err := creds.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if auth.Authorization != "Bearer xoxb-A" {
		t.Errorf("Authorization = %q, want %q", auth.Authorization, "Bearer xoxb-A")
	}
	if auth.ContentType != "application/json; charset=utf-8" {
		t.Errorf("ContentType = %q", auth.ContentType)
	}
}

func TestResolveFallsBackToUserToken(t *testing.T) {
	auth, err := Credentials{UserToken: "xoxp-B"}.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if auth.Authorization != "Bearer xoxp-B" {
		t.Errorf("Authorization = %q, want %q", auth.Authorization, "Bearer xoxp-B")
	}
}

func TestResolveMissingCredentials(t *testing.T) {
	_, err := Credentials{}.Resolve()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("Resolve() error = %v, want ErrMissingCredentials", err)
	}
}
