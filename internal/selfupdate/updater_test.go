package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "quizdev_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "quizdev_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "quizdev_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "quizdev_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "quizdev_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "quizdev_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "quizdev_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadChecksums(t *testing.T) {
	manifest := "abc123  quizdev_Darwin_all.tar.gz\ndef456  quizdev_Linux_x86_64.tar.gz\n\nnot-a-valid-line\n"
	sums := readChecksums([]byte(manifest))

	assert.Equal(t, "abc123", sums["quizdev_Darwin_all.tar.gz"])
	assert.Equal(t, "def456", sums["quizdev_Linux_x86_64.tar.gz"])
	assert.Len(t, sums, 2)
}

func TestVerifySHA256(t *testing.T) {
	data := []byte("release archive bytes")
	sum := sha256.Sum256(data)

	require.NoError(t, verifySHA256(data, hex.EncodeToString(sum[:])))

	err := verifySHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho quizdev")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractBinary(buildTarGz(t, "quizdev", binary), "quizdev_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := extractBinary(buildTarGz(t, "other-file", binary), "quizdev_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "quizdev")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	replacement := []byte("new-binary-content")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	// Original executable bit carries over.
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release v2.0.0 for the darwin
// asset. Empty archive disables the download endpoints.
func releaseServer(t *testing.T, archive []byte, checksums string) *httptest.Server {
	t.Helper()
	const prefix = "/mujeeb/quizdev/releases/download/v2.0.0/"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/mujeeb/quizdev/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case prefix + "quizdev_Darwin_all.tar.gz":
			if len(archive) == 0 {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(archive)
		case prefix + "checksums.txt":
			if checksums == "" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(checksums))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	binary := []byte("new-quizdev-binary")
	archive := buildTarGz(t, "quizdev", binary)
	archiveSum := sha256.Sum256(archive)
	goodChecksums := hex.EncodeToString(archiveSum[:]) + "  quizdev_Darwin_all.tar.gz\n"
	badChecksums := "0000000000000000000000000000000000000000000000000000000000000000  quizdev_Darwin_all.tar.gz\n"

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "quizdev")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		srv := releaseServer(t, archive, goodChecksums)
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, nil, "")
		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		srv := releaseServer(t, archive, badChecksums)
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := releaseServer(t, nil, "")
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz builds a tar.gz holding one file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0o755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
