package imagecache_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"marketflow/internal/infrastructure/imagecache"
)

func TestLoad_FetchesAndCaches(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c, err := imagecache.New(1<<20, srv.Client())
	require.NoError(t, err)
	defer c.Close()

	data, err := c.Load(context.Background(), srv.URL+"/270.png")
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
	require.Equal(t, int64(1), hits.Load())

	c.Wait()

	data, err = c.Load(context.Background(), srv.URL+"/270.png")
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), data)
	require.Equal(t, int64(1), hits.Load())
}

func TestLoad_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := imagecache.New(1<<20, srv.Client())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Load(context.Background(), srv.URL+"/missing.png")
	require.Error(t, err)
}
