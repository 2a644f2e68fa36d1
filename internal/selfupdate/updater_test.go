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

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name        string
		goos        string
		goarch      string
		wantArchive string
		wantBinary  string
		wantErr     bool
	}{
		{"darwin amd64", "darwin", "amd64", "numbond_Darwin_all.tar.gz", "numbond", false},
		{"darwin arm64", "darwin", "arm64", "numbond_Darwin_all.tar.gz", "numbond", false},
		{"linux amd64", "linux", "amd64", "numbond_Linux_x86_64.tar.gz", "numbond", false},
		{"linux arm64", "linux", "arm64", "numbond_Linux_arm64.tar.gz", "numbond", false},
		{"linux 386", "linux", "386", "numbond_Linux_i386.tar.gz", "numbond", false},
		{"windows amd64", "windows", "amd64", "numbond_Windows_x86_64.zip", "numbond.exe", false},
		{"windows arm64", "windows", "arm64", "numbond_Windows_arm64.zip", "numbond.exe", false},
		{"unsupported os", "freebsd", "amd64", "", "", true},
		{"unsupported arch", "linux", "mips", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArchive, got.archive)
			assert.Equal(t, tt.wantBinary, got.binary)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  numbond_Darwin_all.tar.gz\ndef456  numbond_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"numbond_Darwin_all.tar.gz":   "abc123",
				"numbond_Linux_x86_64.tar.gz": "def456",
			},
		},
		{name: "empty", input: "", want: map[string]string{}},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChecksums([]byte(tt.input)))
		})
	}
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho numbond")
	darwin := releaseAsset{archive: "numbond_Darwin_all.tar.gz", binary: "numbond"}

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "numbond", binaryContent)
		got, err := extractBinary(archive, darwin)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, darwin)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "numbond")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	require.NoError(t, swapBinary(newData, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode of the old binary carries over")
}

func TestUpdate(t *testing.T) {
	if os.PathSeparator != '/' {
		t.Skip("fake release serves a darwin/linux archive")
	}

	binaryContent := []byte("new-numbond-binary")
	archive := buildTarGz(t, "numbond", binaryContent)
	archiveHash := sha256.Sum256(archive)
	goodSums := fmt.Sprintf("%s  numbond_Darwin_all.tar.gz\n%s  numbond_Linux_x86_64.tar.gz\n%s  numbond_Linux_arm64.tar.gz\n",
		hex.EncodeToString(archiveHash[:]), hex.EncodeToString(archiveHash[:]), hex.EncodeToString(archiveHash[:]))

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "numbond")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServerAllAssets(t, archive, goodSums)
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

	t.Run("dev build", func(t *testing.T) {
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

	t.Run("checksum mismatch", func(t *testing.T) {
		zeros := "0000000000000000000000000000000000000000000000000000000000000000"
		badSums := fmt.Sprintf("%s  numbond_Darwin_all.tar.gz\n%s  numbond_Linux_x86_64.tar.gz\n%s  numbond_Linux_arm64.tar.gz\n",
			zeros, zeros, zeros)

		server := releaseServerAllAssets(t, archive, badSums)
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := releaseServerAllAssets(t, nil, goodSums)
		err := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// releaseServerAllAssets serves every tar.gz asset name from the same
// archive bytes, so the test passes regardless of host platform.
func releaseServerAllAssets(t *testing.T, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/repos/abhisek/numbond/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case r.URL.Path == "/abhisek/numbond/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(checksums))
		case filepath.Ext(r.URL.Path) == ".gz":
			if archive == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
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
