package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(serverURL string) *Client {
	return &Client{
		token:   "test-token",
		apiURL:  serverURL,
		httpCli: http.DefaultClient,
	}
}

func TestGetPR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", r.Header.Get("Authorization"))
		}
		if r.URL.Path != "/repos/owner/repo/pulls/42" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(PR{
			Number:  42,
			Title:   "Add barrier support",
			HTMLURL: "https://github.com/owner/repo/pull/42",
			State:   "open",
		})
	}))
	defer server.Close()

	pr, err := testClient(server.URL).GetPR(context.Background(), "owner", "repo", 42)
	if err != nil {
		t.Fatalf("GetPR error: %v", err)
	}
	if pr.Title != "Add barrier support" {
		t.Errorf("Title = %q", pr.Title)
	}
	if pr.HTMLURL != "https://github.com/owner/repo/pull/42" {
		t.Errorf("HTMLURL = %q", pr.HTMLURL)
	}
}

func TestGetPRFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/pulls/42/files" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]PRFile{
			{Filename: "runtime.c", Status: "modified", Additions: 3, Deletions: 1, Patch: "@@ -1 +1,3 @@\n+#pragma omp barrier"},
			{Filename: "image.png", Status: "added"}, // binary: no patch
		})
	}))
	defer server.Close()

	files, err := testClient(server.URL).GetPRFiles(context.Background(), "owner", "repo", 42)
	if err != nil {
		t.Fatalf("GetPRFiles error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if files[0].Filename != "runtime.c" || files[0].Patch == "" {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[1].Patch != "" {
		t.Errorf("binary file should have empty patch, got %q", files[1].Patch)
	}
}

func TestGetPRFiles_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	if _, err := testClient(server.URL).GetPRFiles(context.Background(), "o", "r", 99); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestPostComment(t *testing.T) {
	var posted map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/repos/owner/repo/issues/42/comments" {
			t.Errorf("Path = %q", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&posted)
		w.WriteHeader(201)
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	err := testClient(server.URL).PostComment(context.Background(), "owner", "repo", 42, "# PR Review")
	if err != nil {
		t.Fatalf("PostComment error: %v", err)
	}
	if posted["body"] != "# PR Review" {
		t.Errorf("posted body = %q", posted["body"])
	}
}

func TestPostComment_RequiresToken(t *testing.T) {
	c := &Client{apiURL: "http://unused", httpCli: http.DefaultClient}
	if err := c.PostComment(context.Background(), "o", "r", 1, "x"); err == nil {
		t.Fatal("expected error without token")
	}
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		url       string
		owner     string
		repo      string
		expectErr bool
	}{
		{"https://github.com/octo/hello.git", "octo", "hello", false},
		{"https://github.com/octo/hello", "octo", "hello", false},
		{"git@github.com:octo/hello.git", "octo", "hello", false},
		{"not a url", "", "", true},
	}
	for _, tt := range tests {
		owner, repo, err := ParseRemoteURL(tt.url)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseRemoteURL(%q): expected error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRemoteURL(%q) error: %v", tt.url, err)
			continue
		}
		if owner != tt.owner || repo != tt.repo {
			t.Errorf("ParseRemoteURL(%q) = %q/%q, want %q/%q", tt.url, owner, repo, tt.owner, tt.repo)
		}
	}
}
