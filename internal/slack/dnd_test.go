package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetSnooze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dnd.setSnooze" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(t, w, map[string]any{
			"ok":               true,
			"snooze_enabled":   true,
			"snooze_endtime":   1700001200,
			"snooze_remaining": 1200,
		})
	}))
	defer srv.Close()

	status, err := testClient(srv).SetSnooze(context.Background(), 20)
	if err != nil {
		t.Fatalf("SetSnooze() error: %v", err)
	}
	if !status.SnoozeEnabled || status.SnoozeRemaining != 1200 {
		t.Errorf("got %+v", status)
	}
}

func TestLegacySnoozePairDiscardsBody(t *testing.T) {
	paths := []string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		writeJSON(t, w, map[string]any{"ok": true, "snooze_enabled": true})
	}))
	defer srv.Close()

	c := testClient(srv)
	if err := c.SnoozeOn(context.Background(), 15); err != nil {
		t.Fatalf("SnoozeOn() error: %v", err)
	}
	if err := c.SnoozeOff(context.Background()); err != nil {
		t.Fatalf("SnoozeOff() error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/dnd.setSnooze" || paths[1] != "/dnd.endSnooze" {
		t.Errorf("paths = %v", paths)
	}
}

func TestGetDNDTeamInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok": true,
			"users": map[string]any{
				"U1": map[string]any{"dnd_enabled": true},
				"U2": map[string]any{"dnd_enabled": false},
			},
		})
	}))
	defer srv.Close()

	users, err := testClient(srv).GetDNDTeamInfo(context.Background(), "U1,U2")
	if err != nil {
		t.Fatalf("GetDNDTeamInfo() error: %v", err)
	}
	if !users["U1"].DNDEnabled || users["U2"].DNDEnabled {
		t.Errorf("users = %+v", users)
	}
}
