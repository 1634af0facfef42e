package customerapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customerweb/internal/core/apperror"
	appctx "customerweb/internal/core/context"
	"customerweb/internal/domain/customer"
)

func sampleCustomers() []customer.Customer {
	return []customer.Customer{
		{ID: 1, Name: "Harshani", Email: "harshani@email.com", Address: "aaa"},
		{ID: 2, Name: "Viraj", Email: "viraj@email.com", Address: "bbb"},
		{ID: 3, Name: "saman", Email: "saman@email.com", Address: "ddd"},
	}
}

// recordedRequest captures what the fake API received.
type recordedRequest struct {
	Method    string
	Path      string
	Query     string
	Body      string
	RequestID string
}

func newAPI(t *testing.T, status int, body string) (*Client, *recordedRequest, *atomic.Int32) {
	t.Helper()
	rec := &recordedRequest{}
	calls := &atomic.Int32{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		data, _ := io.ReadAll(r.Body)
		*rec = recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			Body:      string(data),
			RequestID: r.Header.Get(HeaderRequestID),
		}
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return New(Config{BaseURL: srv.URL + "/api/Customer"}), rec, calls
}

func TestList_Success(t *testing.T) {
	client, rec, _ := newAPI(t, http.StatusOK,
		`[{"id":1,"name":"Harshani","email":"harshani@email.com","address":"aaa"},
		  {"Id":2,"Name":"Viraj","Email":"viraj@email.com","Address":"bbb"},
		  {"id":3,"name":"saman","email":"saman@email.com","address":"ddd"}]`)

	res, err := client.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, sampleCustomers(), res.Customers)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/api/Customer", rec.Path)
}

func TestList_NonSuccessHasNoPayload(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			body := ""
			if status != http.StatusNoContent {
				body = `{"title":"problem"}`
			}
			client, _, _ := newAPI(t, status, body)

			res, err := client.List(context.Background())
			require.NoError(t, err)
			assert.Equal(t, status, res.Status)
			assert.Nil(t, res.Customers)
		})
	}
}

func TestList_UndecodableBodyIsUpstreamError(t *testing.T) {
	client, _, _ := newAPI(t, http.StatusOK, `{not json`)

	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeUpstream))
}

func TestGet_Success(t *testing.T) {
	client, rec, _ := newAPI(t, http.StatusOK, `{"id":7,"name":"Viraj","email":"viraj@email.com","address":"bbb"}`)

	res, err := client.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	require.NotNil(t, res.Customer)
	assert.Equal(t, customer.Customer{ID: 7, Name: "Viraj", Email: "viraj@email.com", Address: "bbb"}, *res.Customer)
	assert.Equal(t, "/api/Customer/7", rec.Path)
}

func TestGet_NotFound(t *testing.T) {
	client, _, _ := newAPI(t, http.StatusNotFound, "")

	res, err := client.Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Nil(t, res.Customer)
}

func TestZeroID_RejectedWithoutNetworkCall(t *testing.T) {
	client, _, calls := newAPI(t, http.StatusOK, `true`)
	ctx := context.Background()

	get, err := client.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, get.Status)
	assert.Nil(t, get.Customer)

	upd, err := client.Update(ctx, 0, sampleCustomers()[0])
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, upd.Status)
	assert.False(t, upd.OK)

	del, err := client.Delete(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, del.Status)
	assert.False(t, del.OK)

	assert.Equal(t, int32(0), calls.Load())
}

func TestCreate_PostsJSONAndDecodesCreated(t *testing.T) {
	client, rec, _ := newAPI(t, http.StatusCreated, `{"id":4,"name":"Nimal","email":"nimal@email.com","address":"eee"}`)

	in := customer.Customer{Name: "Nimal", Email: "nimal@email.com", Address: "eee"}
	res, err := client.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, res.Status)
	require.NotNil(t, res.Customer)
	assert.Equal(t, 4, res.Customer.ID)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/Customer", rec.Path)
	assert.JSONEq(t, `{"id":0,"name":"Nimal","email":"nimal@email.com","address":"eee"}`, rec.Body)
}

func TestCreate_InvalidModelNeverSent(t *testing.T) {
	client, _, calls := newAPI(t, http.StatusCreated, `{}`)

	res, err := client.Create(context.Background(), customer.Customer{Name: "x", Email: "bad", Address: "y"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Nil(t, res.Customer)
	assert.Equal(t, int32(0), calls.Load())
}

func TestUpdate_PutsWithQueryID(t *testing.T) {
	client, rec, _ := newAPI(t, http.StatusOK, `true`)

	res, err := client.Update(context.Background(), 2, sampleCustomers()[1])
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.True(t, res.OK)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/api/Customer", rec.Path)
	assert.Equal(t, "id=2", rec.Query)

	var sent CustomerDTO
	require.NoError(t, json.Unmarshal([]byte(rec.Body), &sent))
	assert.Equal(t, FromModel(sampleCustomers()[1]), sent)
}

func TestUpdate_FalseAndFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		wantOK bool
	}{
		{"api says false", http.StatusOK, `false`, false},
		{"empty success body", http.StatusNoContent, ``, false},
		{"not found", http.StatusNotFound, ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, _ := newAPI(t, tt.status, tt.body)

			res, err := client.Update(context.Background(), 3, sampleCustomers()[2])
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.wantOK, res.OK)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name   string
		status int
		wantOK bool
	}{
		{"ok", http.StatusOK, true},
		{"no content", http.StatusNoContent, true},
		{"not found", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec, _ := newAPI(t, tt.status, "")

			res, err := client.Delete(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, http.MethodDelete, rec.Method)
			assert.Equal(t, "/api/Customer/5", rec.Path)
		})
	}
}

func TestUnconfiguredEndpointFailsFast(t *testing.T) {
	client := New(Config{})
	ctx := context.Background()

	_, err := client.List(ctx)
	assert.True(t, apperror.HasCode(err, apperror.CodeConfiguration))

	_, err = client.Get(ctx, 1)
	assert.True(t, apperror.HasCode(err, apperror.CodeConfiguration))

	_, err = client.Create(ctx, sampleCustomers()[0])
	assert.True(t, apperror.HasCode(err, apperror.CodeConfiguration))

	_, err = client.Update(ctx, 1, sampleCustomers()[0])
	assert.True(t, apperror.HasCode(err, apperror.CodeConfiguration))

	_, err = client.Delete(ctx, 1)
	assert.True(t, apperror.HasCode(err, apperror.CodeConfiguration))
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := New(Config{BaseURL: base})
	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeUpstream))
}

func TestRequestIDIsForwarded(t *testing.T) {
	client, rec, _ := newAPI(t, http.StatusOK, `[]`)
	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})

	res, err := client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r-1", rec.RequestID)
	assert.NotNil(t, res.Customers)
	assert.Empty(t, res.Customers)
}

func TestBaseURLTrailingSlashIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Customer/1", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":1,"name":"a","email":"a@b.co","address":"c"}`)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL + "/api/Customer/"})
	res, err := client.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
}
