package wolter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewUploader(t *testing.T) {
	if _, err := NewUploader(S3Cfg{}); err == nil {
		t.Fatalf("missing bucket must fail")
	}
	u, err := NewUploader(S3Cfg{Bucket: "psf", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000", AccessKey: "k", SecretKey: "s", Prefix: "runs"})
	if err != nil {
		t.Fatalf("NewUploader: %v", err)
	}
	if got := u.Key("abc/psf_000.png"); got != "runs/abc/psf_000.png" {
		t.Fatalf("Key = %q", got)
	}
	u.prefix = ""
	if got := u.Key("x.gif"); got != "x.gif" {
		t.Fatalf("Key without prefix = %q", got)
	}
}

func TestContentType(t *testing.T) {
	if ct := contentType("out/psf_000.png"); ct != "image/png" {
		t.Fatalf("png content type = %q", ct)
	}
	if ct := contentType("out/psf_000.wolterbin"); ct != "application/octet-stream" {
		t.Fatalf("unknown content type = %q", ct)
	}
}

func TestUpload_MissingFile(t *testing.T) {
	u, err := NewUploader(S3Cfg{Bucket: "psf", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000"})
	if err != nil {
		t.Fatalf("NewUploader: %v", err)
	}
	missing := filepath.Join(t.TempDir(), "nope.png")
	if err := u.Upload(context.Background(), missing, "nope.png"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
