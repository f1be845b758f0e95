package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "amd64", "joule_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "joule_Darwin_all.tar.gz", false},
		{"linux", "amd64", "joule_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "joule_Linux_arm64.tar.gz", false},
		{"linux", "386", "joule_Linux_i386.tar.gz", false},
		{"windows", "amd64", "joule_Windows_x86_64.zip", false},
		{"windows", "arm64", "joule_Windows_arm64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumTable(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		manifest := "abc123  joule_Darwin_all.tar.gz\ndef456  joule_Linux_x86_64.tar.gz\n"
		assert.Equal(t, map[string]string{
			"joule_Darwin_all.tar.gz":    "abc123",
			"joule_Linux_x86_64.tar.gz": "def456",
		}, checksumTable([]byte(manifest)))
	})

	t.Run("empty manifest", func(t *testing.T) {
		assert.Empty(t, checksumTable(nil))
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		manifest := "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n"
		assert.Equal(t, map[string]string{
			"file.tar.gz":  "abc123",
			"other.tar.gz": "ghi789",
		}, checksumTable([]byte(manifest)))
	})
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("antenna gain in a box")
	h := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(h[:])))

	err := verifyChecksum(data, hex.EncodeToString(make([]byte, 32)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	content := []byte("#!/bin/sh\necho joule")

	t.Run("tar.gz", func(t *testing.T) {
		archive := tarGzWith(t, "joule", content)
		got, err := extractBinary(archive, "joule_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		archive := tarGzWith(t, "README.md", content)
		_, err := extractBinary(archive, "joule_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "joule")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	replacement := []byte("new-binary-content")
	h := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "file mode must survive the swap")
}

// releaseServer serves a fake GitHub release: the latest-release API
// response plus the archive and checksum manifest for v2.0.0.
func releaseServer(t *testing.T, asset string, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/npradeep/joule/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/npradeep/joule/releases/download/v2.0.0/" + asset:
			if archive == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		case "/npradeep/joule/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	asset := "joule_Darwin_all.tar.gz"
	binaryContent := []byte("new-joule-binary")
	archive := tarGzWith(t, "joule", binaryContent)
	archiveHash := sha256.Sum256(archive)
	goodChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	t.Run("full flow replaces the binary", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "joule")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, asset, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch aborts before apply", func(t *testing.T) {
		badChecksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(make([]byte, 32)), asset)
		server := releaseServer(t, asset, archive, badChecksums)

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("archive download failure", func(t *testing.T) {
		server := releaseServer(t, asset, nil, goodChecksums)

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// tarGzWith builds a tar.gz archive holding one file.
func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
