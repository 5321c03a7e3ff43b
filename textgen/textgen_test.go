package textgen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pingcap/errors"
	"github.com/qw4990/SynthDataGen/textgen"
	"github.com/stretchr/testify/require"
)

func TestTGIClient(t *testing.T) {
	var got map[string]interface{}
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`[{"generated_text": "Robin"}]`))
	}))
	defer srv.Close()

	c := textgen.NewTGIClient(srv.URL, 0)
	out, err := c.Generate(context.Background(), "name a bird")
	require.NoError(t, err)
	require.Equal(t, "Robin", out)
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "name a bird", got["inputs"])
	params := got["parameters"].(map[string]interface{})
	require.Equal(t, float64(textgen.DefaultMaxNewTokens), params["max_new_tokens"])
}

func TestTGIClientObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text": "Sparrow"}`))
	}))
	defer srv.Close()

	out, err := textgen.NewTGIClient(srv.URL, 8).Generate(context.Background(), "name a bird")
	require.NoError(t, err)
	require.Equal(t, "Sparrow", out)
}

func TestTGIClientErrors(t *testing.T) {
	for _, c := range []struct {
		status int
		body   string
	}{
		{http.StatusServiceUnavailable, `{"error": "loading"}`},
		{http.StatusOK, `not json`},
		{http.StatusOK, `[]`},
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(c.status)
			w.Write([]byte(c.body))
		}))
		_, err := textgen.NewTGIClient(srv.URL, 8).Generate(context.Background(), "p")
		require.Error(t, err, c.body)
		srv.Close()
	}
}

func TestRetryBoundsAttempts(t *testing.T) {
	calls := 0
	g := textgen.Func(func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})

	r := textgen.WithRetry(g, textgen.RetryOption{Attempts: 3})
	out, err := r.Generate(context.Background(), "p")
	require.NoError(t, err)
	require.Equal(t, "ok", out)
	require.Equal(t, uint64(3), r.Calls())
	require.Equal(t, uint64(2), r.Failures())

	calls = -10
	r = textgen.WithRetry(g, textgen.RetryOption{Attempts: 2, Backoff: time.Millisecond})
	_, err = r.Generate(context.Background(), "p")
	require.Error(t, err)
	require.Contains(t, err.Error(), "flaky")
	require.Equal(t, uint64(2), r.Calls())
}

func TestRetryTimeout(t *testing.T) {
	g := textgen.Func(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	r := textgen.WithRetry(g, textgen.RetryOption{Timeout: 10 * time.Millisecond, Attempts: 2})
	begin := time.Now()
	_, err := r.Generate(context.Background(), "p")
	require.Error(t, err)
	require.Equal(t, uint64(2), r.Calls())
	require.Less(t, time.Since(begin), 5*time.Second)
}
