package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/require"

	"customerweb/internal/domain/customer"
	"customerweb/internal/infrastructure/http/web/dto"
	"customerweb/internal/infrastructure/http/web/middleware"
	"customerweb/pkg/logger"
)

// fakeClient is a scripted customer.APIClient.
type fakeClient struct {
	list   customer.ListResult
	get    customer.Result
	create customer.Result
	update customer.BoolResult
	del    customer.BoolResult
	err    error
	panic  bool

	calls     []string
	lastID    int
	submitted *customer.Customer
}

var _ customer.APIClient = (*fakeClient)(nil)

func (f *fakeClient) record(op string) {
	f.calls = append(f.calls, op)
	if f.panic {
		panic("client exploded")
	}
}

func (f *fakeClient) List(ctx context.Context) (customer.ListResult, error) {
	f.record("list")
	return f.list, f.err
}

func (f *fakeClient) Get(ctx context.Context, id int) (customer.Result, error) {
	f.record("get")
	f.lastID = id
	return f.get, f.err
}

func (f *fakeClient) Create(ctx context.Context, c customer.Customer) (customer.Result, error) {
	f.record("create")
	f.submitted = &c
	return f.create, f.err
}

func (f *fakeClient) Update(ctx context.Context, id int, c customer.Customer) (customer.BoolResult, error) {
	f.record("update")
	f.lastID = id
	f.submitted = &c
	return f.update, f.err
}

func (f *fakeClient) Delete(ctx context.Context, id int) (customer.BoolResult, error) {
	f.record("delete")
	f.lastID = id
	return f.del, f.err
}

// renderedView is one c.HTML call captured by recordingRender.
type renderedView struct {
	Name string
	Page dto.Page
}

// recordingRender captures the view name and page instead of executing templates.
type recordingRender struct {
	views []renderedView
}

func (r *recordingRender) Instance(name string, data any) render.Render {
	page, _ := data.(dto.Page)
	r.views = append(r.views, renderedView{Name: name, Page: page})
	return render.Data{ContentType: "text/html; charset=utf-8", Data: []byte(name)}
}

func (r *recordingRender) last(t *testing.T) renderedView {
	t.Helper()
	require.NotEmpty(t, r.views, "no view rendered")
	return r.views[len(r.views)-1]
}

func newTestRouter(client customer.APIClient) (*gin.Engine, *recordingRender) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	rec := &recordingRender{}
	router.HTMLRender = rec

	router.Use(middleware.Trace())
	router.Use(middleware.Logger(logger.NewNop()))
	router.Use(middleware.Exception(ErrorPath))

	base := NewBaseHandler()
	NewHomeHandler(base).RegisterRoutes(&router.RouterGroup)
	NewCustomerHandler(base, client).RegisterRoutes(router.Group("/Customer"))

	return router, rec
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func customerForm(c customer.Customer) url.Values {
	v := url.Values{}
	v.Set("Id", strconv.Itoa(c.ID))
	v.Set("Name", c.Name)
	v.Set("Email", c.Email)
	v.Set("Address", c.Address)
	return v
}
