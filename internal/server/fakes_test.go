package server

import (
	"context"
	"time"

	authdomain "github.com/acmelabs/facture/internal/auth/domain"
	customerdomain "github.com/acmelabs/facture/internal/customer/domain"
	dashboarddomain "github.com/acmelabs/facture/internal/dashboard/domain"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
)

type fakeInvoiceService struct {
	createCalls int
	updateCalls int
	deleteCalls int
	listCalls   int
	lastInput   invoicedomain.InvoiceInput
	lastID      string
	err         error

	listResp invoicedomain.ListInvoicesResponse
	detail   invoicedomain.InvoiceDetail
	getErr   error
}

func (f *fakeInvoiceService) Create(ctx context.Context, input invoicedomain.InvoiceInput) error {
	f.createCalls++
	f.lastInput = input
	_ = ctx
	return f.err
}

func (f *fakeInvoiceService) Update(ctx context.Context, id string, input invoicedomain.InvoiceInput) error {
	f.updateCalls++
	f.lastID = id
	f.lastInput = input
	_ = ctx
	return f.err
}

func (f *fakeInvoiceService) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	f.lastID = id
	_ = ctx
	return f.err
}

func (f *fakeInvoiceService) List(ctx context.Context, req invoicedomain.ListInvoicesRequest) (invoicedomain.ListInvoicesResponse, error) {
	f.listCalls++
	_ = ctx
	_ = req
	return f.listResp, f.err
}

func (f *fakeInvoiceService) TotalPages(ctx context.Context, query string) (int, error) {
	_ = ctx
	_ = query
	return f.listResp.TotalPages, f.err
}

func (f *fakeInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.InvoiceDetail, error) {
	f.lastID = id
	_ = ctx
	if f.getErr != nil {
		return invoicedomain.InvoiceDetail{}, f.getErr
	}
	return f.detail, nil
}

type fakeCustomerService struct {
	fields []customerdomain.CustomerField
	rows   []customerdomain.CustomerRow
	err    error
}

func (f *fakeCustomerService) ListFields(ctx context.Context) ([]customerdomain.CustomerField, error) {
	_ = ctx
	return f.fields, f.err
}

func (f *fakeCustomerService) ListFiltered(ctx context.Context, query string) ([]customerdomain.CustomerRow, error) {
	_ = ctx
	_ = query
	return f.rows, f.err
}

type fakeDashboardService struct {
	overview dashboarddomain.Overview
	err      error
}

func (f *fakeDashboardService) Overview(ctx context.Context) (dashboarddomain.Overview, error) {
	_ = ctx
	return f.overview, f.err
}

type fakeAuthService struct {
	loginCalls int
	loginErr   error
	authErr    error
	user       authdomain.UserView
}

func (f *fakeAuthService) CreateUser(ctx context.Context, req authdomain.CreateUserRequest) (authdomain.UserView, error) {
	_ = ctx
	_ = req
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (authdomain.LoginResult, error) {
	f.loginCalls++
	_ = ctx
	_ = req
	if f.loginErr != nil {
		return authdomain.LoginResult{}, f.loginErr
	}
	return authdomain.LoginResult{
		User:     f.user,
		RawToken: "session-token",
		ExpireAt: time.Now().Add(time.Hour),
	}, nil
}

func (f *fakeAuthService) Authenticate(ctx context.Context, rawToken string) (authdomain.UserView, error) {
	_ = ctx
	_ = rawToken
	if f.authErr != nil {
		return authdomain.UserView{}, f.authErr
	}
	return f.user, nil
}
