package slack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUploadFile(t *testing.T) {
	var mux http.ServeMux
	var uploadedBody []byte

	mux.HandleFunc("/files.getUploadURLExternal", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Filename string `json:"filename"`
			Length   int    `json:"length"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal slot request: %v", err)
		}
		if req.Length != 10 {
			t.Errorf("length = %d, want exact byte length 10", req.Length)
		}
		if req.Filename != "notes.txt" {
			t.Errorf("filename = %q", req.Filename)
		}
		writeJSON(t, w, map[string]any{
			"ok":         true,
			"upload_url": "http://" + r.Host + "/upload/slot-1",
			"file_id":    "F123",
		})
	})
	mux.HandleFunc("/upload/slot-1", func(w http.ResponseWriter, r *http.Request) {
		// Step two is a plain POST: no bearer auth on the one-time URL.
		if r.Header.Get("Authorization") != "" {
			t.Error("upload POST carried an Authorization header")
		}
		uploadedBody, _ = io.ReadAll(r.Body)
	})
	mux.HandleFunc("/files.completeUploadExternal", func(w http.ResponseWriter, r *http.Request) {
		if uploadedBody == nil {
			t.Error("finalize ran before the byte push")
		}
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Files []struct {
				ID string `json:"id"`
			} `json:"files"`
			ChannelID string `json:"channel_id"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal complete request: %v", err)
		}
		if len(req.Files) != 1 || req.Files[0].ID != "F123" {
			t.Errorf("files = %+v, want the provisional F123", req.Files)
		}
		if req.ChannelID != "C1" {
			t.Errorf("channel_id = %q", req.ChannelID)
		}
		writeJSON(t, w, map[string]any{
			"ok":    true,
			"files": []map[string]any{{"id": "F123", "name": "notes.txt", "size": 10}},
		})
	})

	srv := httptest.NewServer(&mux)
	defer srv.Close()

	file, err := testClient(srv).UploadFile(context.Background(), UploadFileRequest{
		Filename:  "notes.txt",
		Content:   []byte("0123456789"),
		ChannelID: "C1",
	})
	if err != nil {
		t.Fatalf("UploadFile() error: %v", err)
	}
	if file.ID != "F123" {
		t.Errorf("ID = %q, want F123", file.ID)
	}
	if string(uploadedBody) != "0123456789" {
		t.Errorf("uploaded bytes = %q", uploadedBody)
	}
}

func TestUploadFileZeroFilesOnFinalize(t *testing.T) {
	var mux http.ServeMux
	mux.HandleFunc("/files.getUploadURLExternal", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":         true,
			"upload_url": "http://" + r.Host + "/upload/slot-1",
			"file_id":    "F123",
		})
	})
	mux.HandleFunc("/upload/slot-1", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/files.completeUploadExternal", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"ok": true, "files": []any{}})
	})

	srv := httptest.NewServer(&mux)
	defer srv.Close()

	_, err := testClient(srv).UploadFile(context.Background(), UploadFileRequest{
		Filename: "x", Content: []byte("abc"),
	})
	if err == nil {
		t.Fatal("expected failure when finalize returns zero files")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Kind != KindGeneric {
		t.Errorf("Kind = %q, want %q", apiErr.Kind, KindGeneric)
	}
}

func TestUploadFileFailedBytePush(t *testing.T) {
	var mux http.ServeMux
	finalized := false
	mux.HandleFunc("/files.getUploadURLExternal", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":         true,
			"upload_url": "http://" + r.Host + "/upload/slot-1",
			"file_id":    "F123",
		})
	})
	mux.HandleFunc("/upload/slot-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/files.completeUploadExternal", func(w http.ResponseWriter, r *http.Request) {
		finalized = true
	})

	srv := httptest.NewServer(&mux)
	defer srv.Close()

	_, err := testClient(srv).UploadFile(context.Background(), UploadFileRequest{
		Filename: "x", Content: []byte("abc"),
	})
	if err == nil {
		t.Fatal("expected failure from the byte push")
	}
	if finalized {
		t.Error("finalize was called after a failed byte push")
	}
}

func TestListFilesLegacyPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{
			"ok":     true,
			"files":  []map[string]any{{"id": "F1"}, {"id": "F2"}},
			"paging": map[string]any{"count": 2, "total": 5, "page": 1, "pages": 3},
		})
	}))
	defer srv.Close()

	page, paging, err := testClient(srv).ListFiles(context.Background(), ListFilesRequest{Count: 2})
	if err != nil {
		t.Fatalf("ListFiles() error: %v", err)
	}
	if !page.HasMore {
		t.Error("HasMore = false, want true from page counters")
	}
	if page.NextCursor != "" {
		t.Errorf("NextCursor = %q, legacy endpoints never produce one", page.NextCursor)
	}
	if paging.Pages != 3 {
		t.Errorf("Pages = %d, want 3", paging.Pages)
	}
}
