package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yearPageHTML = `<html><body>
<a href="/uploads/mythology_2015.pdf">Mythology</a>
<a href="/uploads/mythology_key_2015.pdf">Mythology Answer Key</a>
<a href="/uploads/derivatives_i_2015.pdf">Derivatives I</a>
<a href="/about.html">About us</a>
</body></html>`

func TestTestLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".html") {
			_, _ = w.Write([]byte(yearPageHTML))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewCrawler(srv.URL)
	doc, err := c.YearPage(context.Background(), 2015)
	require.NoError(t, err)

	links := c.TestLinks(doc, []string{"Mythology", "Derivatives_I", "Vocabulary_I"})

	assert.Contains(t, links["Mythology"].Test, "mythology_2015.pdf")
	assert.Contains(t, links["Mythology"].Key, "mythology_key_2015.pdf")
	assert.Contains(t, links["Derivatives_I"].Test, "derivatives_i_2015.pdf")
	assert.Empty(t, links["Derivatives_I"].Key)
	assert.Empty(t, links["Vocabulary_I"].Test)
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	c := NewCrawler(srv.URL)
	c.Delay = 0

	dest := filepath.Join(t.TempDir(), "state_2015", "mythology.pdf")
	require.NoError(t, c.Download(context.Background(), srv.URL+"/x.pdf", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestYearPageNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := NewCrawler(srv.URL)
	_, err := c.YearPage(context.Background(), 1999)
	assert.Error(t, err)
}
