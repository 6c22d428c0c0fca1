package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoogleTranslateResponse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "single segment",
			body: `[[["joy","기쁨",null,null,10]],null,"ko"]`,
			want: "joy",
		},
		{
			name: "multiple segments concatenated",
			body: `[[["The economy grew. ","경제가 성장했다. ",null,null,10],["Markets rallied.","시장이 랠리했다.",null,null,10]],null,"ko"]`,
			want: "The economy grew. Markets rallied.",
		},
		{
			name: "skips malformed segments",
			body: `[[[1,"x"],["ok","원본"]],null,"ko"]`,
			want: "ok",
		},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "empty array", body: `[]`, wantErr: true},
		{name: "first element not a list", body: `[null]`, wantErr: true},
		{name: "no segments", body: `[[]]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGoogleTranslateResponse([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoogleTranslateClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "en", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))
		assert.Equal(t, "기쁨", q.Get("q"))
		assert.Equal(t, USER_AGENT, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[[["joy","기쁨",null,null,10]],null,"ko"]`))
	}))
	defer srv.Close()

	c := NewGoogleTranslateClient(HTTPOptions{})
	c.BaseURL = srv.URL

	got, err := c.Translate(context.Background(), "기쁨")
	require.NoError(t, err)
	assert.Equal(t, "joy", got)
	assert.Equal(t, "google", c.Name())
}

func TestGoogleTranslateClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGoogleTranslateClient(HTTPOptions{})
	c.BaseURL = srv.URL

	_, err := c.Translate(context.Background(), "기쁨")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient("test", HTTPOptions{})
	assert.Equal(t, DEFAULT_TIMEOUT, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.True(t, tr.TLSClientConfig == nil || !tr.TLSClientConfig.InsecureSkipVerify)

	insecure := NewHTTPClient("test", HTTPOptions{InsecureSkipVerify: true, Timeout: 3})
	assert.EqualValues(t, 3, insecure.Timeout)
	tr = insecure.Transport.(*http.Transport)
	require.NotNil(t, tr.TLSClientConfig)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)

	assert.NotSame(t, http.DefaultTransport, insecure.Transport, "default transport must stay untouched")
}
