package fetch

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSizeUsesHeadOnly(t *testing.T) {
	var gets int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets++
		}
		w.Header().Set("Content-Length", "1234")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()))
	size, err := c.Size(context.Background(), srv.URL+"/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), size)
	assert.Zero(t, gets)
}

func TestHTTPFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("SIRET : 732 829 320 00074"))
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()))
	text, err := c.FetchText(context.Background(), srv.URL+"/doc.txt")
	require.NoError(t, err)
	assert.Equal(t, "SIRET : 732 829 320 00074", text)
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithHTTPClient(srv.Client()))
	_, err := c.FetchText(context.Background(), srv.URL+"/doc.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	_, err = c.Size(context.Background(), srv.URL+"/doc.txt")
	require.Error(t, err)
}

func TestDataURLSizeWithoutDecode(t *testing.T) {
	content := "Denumire: FERMA AGRO SRL"
	u := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte(content))

	c := New()
	size, err := c.Size(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	text, err := c.FetchText(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestPlainDataURL(t *testing.T) {
	c := New()
	text, err := c.FetchText(context.Background(), "data:text/plain,hello%20world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	size, err := c.Size(context.Background(), "data:text/plain,hello%20world")
	require.NoError(t, err)
	assert.Equal(t, int64(len("hello world")), size)
}

func TestMalformedDataURL(t *testing.T) {
	c := New()
	_, err := c.FetchText(context.Background(), "data:text/plain")
	assert.Error(t, err)
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extract.txt")
	require.NoError(t, os.WriteFile(path, []byte("CUI: RO14399840"), 0o600))

	c := New()
	size, err := c.Size(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(len("CUI: RO14399840")), size)

	text, err := c.FetchText(context.Background(), "file://"+path)
	require.NoError(t, err)
	assert.Equal(t, "CUI: RO14399840", text)
}
