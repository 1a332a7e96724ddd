package oeis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PeterLuschny/tablInspector/pkg/tabl"
)

func seqData(seq tabl.Seq) string {
	terms := make([]string, len(seq))
	for i, v := range seq {
		terms[i] = v.String()
	}
	return strings.Join(terms, ",")
}

func corpusServer(t *testing.T, resp searchResponse) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint:  endpoint,
		Retries:   2,
		Backoff:   time.Millisecond,
		RateLimit: 1000,
	})
}

func TestQueryFound(t *testing.T) {
	seq := natSeq(1, 30)
	resp := searchResponse{Count: 2}
	resp.Results = []struct {
		Number int64  `json:"number"`
		Data   string `json:"data"`
	}{
		{Number: 99, Data: "1,garbage,3"},
		{Number: 12345, Data: "700,701," + seqData(seq)},
	}

	srv := corpusServer(t, resp)
	got, err := testClient(srv.URL).Query(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got.Anum)
	assert.Equal(t, 2, got.Offset)
	assert.Equal(t, 30, got.Length)
	assert.True(t, got.Found())
}

func TestQueryMissing(t *testing.T) {
	seq := natSeq(1, 30)
	resp := searchResponse{Count: 1}
	resp.Results = []struct {
		Number int64  `json:"number"`
		Data   string `json:"data"`
	}{
		{Number: 7, Data: seqData(natSeq(500, 40))},
	}

	srv := corpusServer(t, resp)
	got, err := testClient(srv.URL).Query(context.Background(), seq)
	require.NoError(t, err)
	assert.Equal(t, AnumMissing, got.Anum)
	assert.False(t, got.Found())
	assert.False(t, got.Unreachable())
}

func TestQueryUnreachable(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	got, err := testClient(srv.URL).Query(context.Background(), natSeq(1, 30))
	require.NoError(t, err)
	assert.True(t, got.Unreachable())
	assert.Equal(t, int64(2), calls.Load(), "retry budget")
}

func TestQueryContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := NewClient(Config{Endpoint: srv.URL, Backoff: time.Hour}).
		Query(ctx, natSeq(1, 30))
	require.NoError(t, err)
	assert.True(t, got.Unreachable())
}

func TestQueryTooShort(t *testing.T) {
	_, err := testClient("http://unused.invalid").
		Query(context.Background(), natSeq(1, tabl.MinTerms-1))
	require.ErrorIs(t, err, tabl.ErrInsufficientTerms)
}

func TestAnumFormatting(t *testing.T) {
	assert.Equal(t, "A000045", Anum(45))
	assert.Equal(t, "A141056", Anum(141056))
	assert.Equal(t, "missing", Anum(AnumMissing))
	assert.Equal(t, "missing", Anum(AnumUnreachable))
}

func TestClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, DefaultMaxResults, c.maxResults)
	assert.Equal(t, DefaultRetries, c.retries)
	assert.Equal(t, DefaultBackoff, c.backoff)
}
