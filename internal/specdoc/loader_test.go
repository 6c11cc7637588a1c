package specdoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(path string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestLoad_CacheHitSkipsExtraction(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "spec.txt")
	if err := os.WriteFile(cachePath, []byte("X"), 0o644); err != nil {
		t.Fatal(err)
	}

	ex := &fakeExtractor{text: "should not be used"}
	got, err := Load(filepath.Join(dir, "missing.pdf"), cachePath, ex)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "X" {
		t.Errorf("Load = %q, want %q", got, "X")
	}
	if ex.calls != 0 {
		t.Errorf("extractor called %d times on cache hit, want 0", ex.calls)
	}
}

func TestLoad_CacheMissExtractsAndWritesCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "spec.txt")

	ex := &fakeExtractor{text: "1 Intro\nbody\n"}
	got, err := Load("source.pdf", cachePath, ex)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != ex.text {
		t.Errorf("Load = %q, want extracted text", got)
	}
	if ex.calls != 1 {
		t.Errorf("extractor calls = %d, want 1", ex.calls)
	}

	data, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if string(data) != ex.text {
		t.Errorf("cache = %q, want extracted text verbatim", data)
	}

	// Second load must take the fast path.
	got, err = Load("source.pdf", cachePath, ex)
	if err != nil {
		t.Fatalf("second Load error: %v", err)
	}
	if got != ex.text || ex.calls != 1 {
		t.Errorf("second Load re-extracted (calls=%d)", ex.calls)
	}
}

func TestLoad_ExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	ex := &fakeExtractor{err: errors.New("corrupt pdf")}

	_, err := Load("source.pdf", filepath.Join(dir, "spec.txt"), ex)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrDocumentUnavailable) {
		t.Errorf("error %v does not wrap ErrDocumentUnavailable", err)
	}
}

func TestLoad_NoFreshnessCheck(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "spec.txt")
	if err := os.WriteFile(cachePath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Even with a working extractor, the existing cache wins.
	ex := &fakeExtractor{text: "fresh"}
	got, err := Load(cachePath, cachePath, ex)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != "stale" {
		t.Errorf("Load = %q, want cached %q", got, "stale")
	}
	if ex.calls != 0 {
		t.Errorf("extractor calls = %d, want 0", ex.calls)
	}
}
