package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/service"
	"github.com/MKhiriev/upload-sink/internal/store"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	fs       afero.Fs
	services *service.Services
}

func newTestServer(t *testing.T, upload config.Upload) *testServer {
	t.Helper()

	fs := afero.NewMemMapFs()
	cfg := config.StructuredConfig{
		App:     config.App{Version: "test-version"},
		Storage: config.Storage{Files: config.Files{UploadsDir: "/uploads", FileMode: 0o644}},
		Upload:  upload,
	}

	storages, err := store.NewStoragesOnFs(fs, cfg.Storage, logger.Nop())
	require.NoError(t, err)
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(func() {
		services.UploadService.Close()
		srv.Close()
	})

	return &testServer{Server: srv, fs: fs, services: services}
}

func fastUpload() config.Upload {
	return config.Upload{
		RateLimit:       -1,
		CompletionDelay: 20 * time.Millisecond,
		FailThreshold:   0.25,
		ChunkSize:       100,
	}
}

func (s *testServer) uploadedFiles(t *testing.T) map[string][]byte {
	t.Helper()
	entries, err := afero.ReadDir(s.fs, "/uploads")
	require.NoError(t, err)

	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := afero.ReadFile(s.fs, filepath.Join("/uploads", e.Name()))
		require.NoError(t, err)
		files[e.Name()] = data
	}
	return files
}

// rawRequest writes req on a fresh connection and reads until the server
// closes it.
func rawRequest(t *testing.T, addr, req string) string {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))
	_, err = io.WriteString(conn, req)
	require.NoError(t, err)

	resp, err := io.ReadAll(conn)
	require.NoError(t, err, "server must close the connection")
	return string(resp)
}

func TestRoutes_SuccessfulUpload(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	body := bytes.Repeat([]byte("A"), 1000)

	resp, err := resty.New().R().
		SetHeader("File-Name", "report.pdf").
		SetBody(body).
		Put(srv.URL + "/some/path")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "200 Done!", resp.Status())
	assert.Equal(t, "Upload complete!", resp.String())
	assert.Equal(t, "text/plain", resp.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", resp.Header().Get(serverVersionHeader))
	assert.NotEmpty(t, resp.Header().Get(traceIDHeader))

	files := srv.uploadedFiles(t)
	require.Len(t, files, 1)
	for name, data := range files {
		assert.True(t, strings.HasPrefix(name, "upload-"))
		assert.True(t, strings.HasSuffix(name, "-report.pdf"))
		assert.Equal(t, body, data)
	}
}

func TestRoutes_AnyMethodAndPathIsUpload(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	client := resty.New()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
		resp, err := client.R().SetBody("data").Execute(method, srv.URL+"/"+strings.ToLower(method))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode(), method)
	}

	assert.Len(t, srv.uploadedFiles(t), 3)
}

func TestRoutes_CompletionDelayIsObserved(t *testing.T) {
	upload := fastUpload()
	upload.CompletionDelay = 200 * time.Millisecond
	srv := newTestServer(t, upload)

	start := time.Now()
	resp, err := resty.New().R().SetBody("abc").Post(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestRoutes_InjectedFailure(t *testing.T) {
	srv := newTestServer(t, fastUpload())

	resp, err := resty.New().R().
		SetHeader("File-Name", "doomed.bin").
		SetHeader("Should-Fail", "1").
		SetBody(bytes.Repeat([]byte("B"), 1000)).
		Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode())
	assert.Equal(t, "408 Die!", resp.Status())
	assert.Equal(t, "Denied!", resp.String())

	files := srv.uploadedFiles(t)
	require.Len(t, files, 1)
	for _, data := range files {
		assert.Less(t, len(data), 1000, "partial file is kept")
	}
}

func TestRoutes_SuccessWritesDoneReason(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	addr := srv.Listener.Addr().String()

	req := fmt.Sprintf("PUT /done HTTP/1.1\r\nHost: %s\r\nFile-Name: d.txt\r\nContent-Length: 4\r\n\r\nabcd", addr)

	resp := rawRequest(t, addr, req)

	assert.True(t, strings.HasPrefix(resp, "HTTP/1.1 200 Done!\r\n"), resp)
	assert.Contains(t, resp, "Content-Type: text/plain\r\n")
	assert.Contains(t, resp, "Content-Length: 16\r\n")
	assert.Contains(t, resp, "X-Server-Version: test-version\r\n")
	assert.Contains(t, resp, "Connection: close\r\n")
	assert.True(t, strings.HasSuffix(resp, "\r\n\r\nUpload complete!"), resp)

	files := srv.uploadedFiles(t)
	require.Len(t, files, 1)
	for _, data := range files {
		assert.Equal(t, "abcd", string(data))
	}
}

func TestRoutes_InjectedFailureClosesConnection(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	addr := srv.Listener.Addr().String()

	body := strings.Repeat("C", 1000)
	req := fmt.Sprintf("PUT /x HTTP/1.1\r\nHost: %s\r\nFile-Name: c.bin\r\nShould-Fail: true\r\nContent-Length: %d\r\n\r\n%s", addr, len(body), body)

	resp := rawRequest(t, addr, req)

	assert.True(t, strings.HasPrefix(resp, "HTTP/1.1 408 Die!\r\n"), resp)
	assert.Contains(t, resp, "Content-Type: text/plain\r\n")
	assert.Contains(t, resp, "Content-Length: 7\r\n")
	assert.Contains(t, resp, "Connection: close\r\n")
	assert.True(t, strings.HasSuffix(resp, "\r\n\r\nDenied!"), resp)
}

func TestRoutes_UnknownLengthNeverFails(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	addr := srv.Listener.Addr().String()

	chunk := strings.Repeat("D", 500)
	req := fmt.Sprintf("POST / HTTP/1.1\r\nHost: %s\r\nShould-Fail: 1\r\nTransfer-Encoding: chunked\r\nConnection: close\r\n\r\n%x\r\n%s\r\n0\r\n\r\n", addr, len(chunk), chunk)

	raw := rawRequest(t, addr, req)

	resp, err := http.ReadResponse(bufio.NewReader(strings.NewReader(raw)), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Upload complete!", string(data))

	files := srv.uploadedFiles(t)
	require.Len(t, files, 1)
	for name, data := range files {
		assert.Contains(t, name, "-unnamed-")
		assert.Len(t, data, 500)
	}
}

func TestRoutes_ShouldFailHeaderValues(t *testing.T) {
	upload := fastUpload()
	upload.ChunkSize = 1000
	upload.FailThreshold = 0.99
	srv := newTestServer(t, upload)

	resp, err := resty.New().R().
		SetHeader("Should-Fail", "1").
		SetBody(bytes.Repeat([]byte("E"), 100)).
		Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode(), "the single chunk reaches 100%")

	resp, err = resty.New().R().
		SetHeader("Should-Fail", "false").
		SetBody(bytes.Repeat([]byte("E"), 100)).
		Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusRequestTimeout, resp.StatusCode(), "any value counts as present")

	resp, err = resty.New().R().
		SetBody(bytes.Repeat([]byte("E"), 100)).
		Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode(), "no header, no injection")
}

func TestRoutes_ConcurrentIdenticalNames(t *testing.T) {
	srv := newTestServer(t, fastUpload())
	client := resty.New()

	const n = 10
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.R().
				SetHeader("File-Name", "same.bin").
				SetBody(bytes.Repeat([]byte{byte('a' + i)}, 300)).
				Post(srv.URL)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode())
		}()
	}
	wg.Wait()

	files := srv.uploadedFiles(t)
	require.Len(t, files, n)
	seen := make(map[byte]bool)
	for _, data := range files {
		require.Len(t, data, 300)
		assert.Equal(t, bytes.Repeat(data[:1], 300), data, "bodies must not interleave")
		seen[data[0]] = true
	}
	assert.Len(t, seen, n)
}

func TestRoutes_StorageErrorOnReadOnlyFs(t *testing.T) {
	cfg := config.StructuredConfig{
		App:     config.App{Version: "ro"},
		Storage: config.Storage{Files: config.Files{UploadsDir: "/uploads", FileMode: 0o644}},
		Upload:  fastUpload(),
	}
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/uploads", 0o755))

	storages := &store.Storages{
		UploadFileStorage: store.NewUploadFileStorage(afero.NewReadOnlyFs(base), cfg.Storage.Files, logger.Nop()),
	}
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	defer srv.Close()

	resp, err := resty.New().R().SetBody("abc").Put(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, "Storage error!", resp.String())
	assert.True(t, resp.RawResponse.Close)
}

func TestRoutes_ShutdownReleasesDelayedUploads(t *testing.T) {
	upload := fastUpload()
	upload.CompletionDelay = time.Hour
	srv := newTestServer(t, upload)

	errs := make(chan error, 1)
	go func() {
		_, err := resty.New().R().SetBody("abc").Put(srv.URL)
		errs <- err
	}()

	require.Eventually(t, func() bool {
		return len(srv.services.UploadService.ActiveSessions()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	srv.services.UploadService.Close()

	select {
	case err := <-errs:
		assert.Error(t, err, "aborted exchange has no response")
	case <-time.After(2 * time.Second):
		t.Fatal("upload was not released")
	}
}

func TestRoutes_UploadDirIsOnOsFs(t *testing.T) {
	dir := t.TempDir()
	cfg := config.StructuredConfig{
		App:     config.App{Version: "os"},
		Storage: config.Storage{Files: config.Files{UploadsDir: filepath.Join(dir, "uploads"), FileMode: 0o600}},
		Upload:  fastUpload(),
	}

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	defer srv.Close()

	resp, err := resty.New().R().SetHeader("File-Name", "disk.txt").SetBody("on disk").Post(srv.URL)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	matches, err := filepath.Glob(filepath.Join(dir, "uploads", "upload-*-disk.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	info, err := os.Stat(matches[0])
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
