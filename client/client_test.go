package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/error404/rfid-client/rfidtest"
)

func newStub(t *testing.T, records ...rfidtest.Record) *rfidtest.Server {
	t.Helper()
	srv := rfidtest.NewServer(records)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	c := New(baseURL, opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// unreachableURL returns the address of a server that has already shut down.
func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url + "/rfid_api"
}

func TestNew(t *testing.T) {
	c := newClient(t, DefaultBaseURL)
	assert.Equal(t, "http://localhost/rfid_api", c.BaseURL())

	c = newClient(t, "http://example.com/rfid_api/")
	assert.Equal(t, "http://example.com/rfid_api", c.BaseURL())

	assert.Panics(t, func() { New("") })
}

func TestFetchData_ReturnsDataSet(t *testing.T) {
	srv := newStub(t, rfidtest.Record{ID: 1, RFID: "A1"})
	c := newClient(t, srv.BaseURL())

	resp, err := c.FetchData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, resp.JSON(&got))
	assert.Equal(t, []map[string]any{{"id": float64(1), "rfid": "A1"}}, got)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/rfid_api/get_data.php", reqs[0].Path)
	assert.Empty(t, reqs[0].RawQuery)
	assert.Empty(t, reqs[0].Body)
}

func TestToggleRFID_EchoesForm(t *testing.T) {
	srv := newStub(t, rfidtest.Record{ID: 1, RFID: "A1"})
	c := newClient(t, srv.BaseURL())

	resp, err := c.ToggleRFID(context.Background(), "A1")
	require.NoError(t, err)

	var echo map[string]string
	require.NoError(t, resp.JSON(&echo))
	assert.Equal(t, map[string]string{"rfid": "A1"}, echo)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/rfid_api/update_status.php", reqs[0].Path)
	assert.Equal(t, "application/x-www-form-urlencoded", reqs[0].ContentType)
	assert.Equal(t, 1, srv.Records()[0].Status)
}

func TestToggleRFID_ForwardsValueUnchanged(t *testing.T) {
	srv := newStub(t)
	c := newClient(t, srv.BaseURL())

	values := []string{"", "A1", "not an id", "x&rfid=y", "%41", "ü+é/?#"}
	for _, v := range values {
		_, err := c.ToggleRFID(context.Background(), v)
		require.NoError(t, err, "rfid %q", v)
	}

	reqs := srv.Requests()
	require.Len(t, reqs, len(values))
	for i, v := range values {
		assert.Len(t, reqs[i].Form, 1)
		assert.Equal(t, []string{v}, reqs[i].Form["rfid"], "rfid %q", v)
	}
	assert.Equal(t, "rfid=", string(reqs[0].Body))
}

func TestFetchData_NonOKStatus(t *testing.T) {
	srv := rfidtest.NewServer(nil, rfidtest.WithStatus(http.StatusServiceUnavailable))
	defer srv.Close()
	c := newClient(t, srv.BaseURL())

	resp, err := c.FetchData(context.Background())
	require.Error(t, err)
	assert.Nil(t, resp)

	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, IsIrrecoverable(err))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, Recoverable, te.Category)
	assert.Contains(t, string(te.Body), "Service Unavailable")
}

func TestToggleRFID_Rejected(t *testing.T) {
	srv := rfidtest.NewServer(nil, rfidtest.WithStatus(http.StatusBadRequest))
	defer srv.Close()
	c := newClient(t, srv.BaseURL())

	_, err := c.ToggleRFID(context.Background(), "A1")
	require.Error(t, err)
	assert.True(t, IsIrrecoverable(err))
}

func TestFetchData_Unreachable(t *testing.T) {
	c := newClient(t, unreachableURL(t))

	var (
		resp *Response
		err  error
	)
	require.NotPanics(t, func() { resp, err = c.FetchData(context.Background()) })
	require.Error(t, err)
	assert.Nil(t, resp)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Zero(t, te.StatusCode)
	_, ok := StatusCode(err)
	assert.False(t, ok)
}

func TestFetchData_ContextDeadline(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)
	c := newClient(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.FetchData(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	srv := newStub(t, rfidtest.Record{ID: 1, RFID: "A1"})
	c := newClient(t, srv.BaseURL())

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := c.FetchData(context.Background())
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := c.ToggleRFID(context.Background(), "A1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, srv.Requests(), 2*n)
}
