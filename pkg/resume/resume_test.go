package resume

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")

	content := "Jane Doe\nSenior Engineer\n10 years of Go experience"

	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("failed to write resume file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got != content {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")

	err := os.WriteFile(path, []byte(""), 0600)
	if err != nil {
		t.Fatalf("failed to write resume file: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/resume.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><head><style>body{}</style></head><body><p>Jane Doe, Engineer</p><script>alert(1)</script></body></html>"))
	}))
	defer server.Close()

	got, err := Load(server.URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !strings.Contains(got, "Jane Doe, Engineer") {
		t.Errorf("expected stripped text content, got %q", got)
	}

	if strings.Contains(got, "<") || strings.Contains(got, "alert") || strings.Contains(got, "body{}") {
		t.Errorf("expected HTML, scripts and styles removed, got %q", got)
	}
}

func TestLoadFromURLNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Load(server.URL)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}

	if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status code in error, got %v", err)
	}
}
