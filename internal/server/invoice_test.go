package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmelabs/facture/internal/config"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
	"github.com/acmelabs/facture/internal/pagecache"
	"github.com/acmelabs/facture/pkg/db/pagination"
)

func newTestServer(t *testing.T, invoiceSvc *fakeInvoiceService) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := &Server{
		cfg:          config.Config{},
		authsvc:      &fakeAuthService{},
		invoiceSvc:   invoiceSvc,
		customerSvc:  &fakeCustomerService{},
		dashboardSvc: &fakeDashboardService{},
		pageCache:    pagecache.NewMemoryCache(time.Minute),
	}

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	srv.engine = router
	srv.registerDashboardRoutes()

	return srv, router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "session-token"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func validInvoiceForm() url.Values {
	form := url.Values{}
	form.Set(invoicedomain.FieldCustomerID, "cust-1")
	form.Set(invoicedomain.FieldAmount, "45.50")
	form.Set(invoicedomain.FieldStatus, "pending")
	return form
}

func TestCreateInvoiceRedirectsOnSuccess(t *testing.T) {
	svc := &fakeInvoiceService{}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices", validInvoiceForm())

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, invoicedomain.ListingPath, resp.Header().Get("Location"))
	assert.Equal(t, 1, svc.createCalls)
	assert.Equal(t, "cust-1", svc.lastInput.CustomerID)
	assert.Equal(t, 45.50, svc.lastInput.Amount)
}

func TestCreateInvoiceMissingCustomerReturnsActionMessage(t *testing.T) {
	svc := &fakeInvoiceService{}
	_, router := newTestServer(t, svc)

	form := validInvoiceForm()
	form.Del(invoicedomain.FieldCustomerID)
	resp := postForm(router, "/v1/dashboard/invoices", form)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Create Invoice."}`, resp.Body.String())
	assert.Equal(t, 0, svc.createCalls, "service must not be reached on invalid input")
}

func TestCreateInvoiceServiceErrorReturnsActionMessage(t *testing.T) {
	svc := &fakeInvoiceService{err: assert.AnError}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices", validInvoiceForm())

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Create Invoice."}`, resp.Body.String())
}

func TestUpdateInvoiceRedirectsOnSuccess(t *testing.T) {
	svc := &fakeInvoiceService{}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices/inv-42", validInvoiceForm())

	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, invoicedomain.ListingPath, resp.Header().Get("Location"))
	assert.Equal(t, 1, svc.updateCalls)
	assert.Equal(t, "inv-42", svc.lastID)
}

func TestUpdateInvoiceServiceErrorReturnsActionMessage(t *testing.T) {
	svc := &fakeInvoiceService{err: assert.AnError}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices/inv-42", validInvoiceForm())

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Update Invoice."}`, resp.Body.String())
}

func TestDeleteInvoice(t *testing.T) {
	svc := &fakeInvoiceService{}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices/inv-42/delete", url.Values{})

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, 1, svc.deleteCalls)
	assert.Equal(t, "inv-42", svc.lastID)
}

func TestDeleteInvoiceServiceErrorReturnsActionMessage(t *testing.T) {
	svc := &fakeInvoiceService{err: assert.AnError}
	_, router := newTestServer(t, svc)

	resp := postForm(router, "/v1/dashboard/invoices/inv-42/delete", url.Values{})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Database Error: Failed to Delete Invoice."}`, resp.Body.String())
}

func TestListInvoicesServesDefaultViewFromCache(t *testing.T) {
	svc := &fakeInvoiceService{
		listResp: invoicedomain.ListInvoicesResponse{
			PageInfo: pagination.PageInfo{Page: 1, PageSize: 6, TotalItems: 1, TotalPages: 1},
			Invoices: []invoicedomain.InvoiceRow{{ID: "inv-1", CustomerName: "Ada Lovelace"}},
		},
	}
	_, router := newTestServer(t, svc)

	first := getPath(router, "/v1/dashboard/invoices")
	require.Equal(t, http.StatusOK, first.Code)

	second := getPath(router, "/v1/dashboard/invoices")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, svc.listCalls, "default view should be served from cache on repeat")

	// Filtered and paged variants bypass the cache.
	filtered := getPath(router, "/v1/dashboard/invoices?query=ada")
	require.Equal(t, http.StatusOK, filtered.Code)
	paged := getPath(router, "/v1/dashboard/invoices?page=2")
	require.Equal(t, http.StatusOK, paged.Code)
	assert.Equal(t, 3, svc.listCalls)
}

func TestGetInvoiceByIDNotFound(t *testing.T) {
	svc := &fakeInvoiceService{getErr: invoicedomain.ErrNotFound}
	_, router := newTestServer(t, svc)

	resp := getPath(router, "/v1/dashboard/invoices/no-such-id")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "not_found")
}
