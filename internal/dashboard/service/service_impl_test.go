package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	customerdomain "github.com/acmelabs/facture/internal/customer/domain"
	"github.com/acmelabs/facture/internal/dashboard/domain"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
)

func setupDashboard(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&invoicedomain.Invoice{},
		&customerdomain.Customer{},
		&domain.Revenue{},
	))

	svc := New(Params{DB: db, Log: zap.NewNop()}).(*Service)
	return svc, db
}

func TestOverview(t *testing.T) {
	svc, db := setupDashboard(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&customerdomain.Customer{ID: "cust-1", Name: "Ada Lovelace", Email: "ada@example.com"}).Error)
	require.NoError(t, db.Create(&customerdomain.Customer{ID: "cust-2", Name: "Grace Hopper", Email: "grace@example.com"}).Error)

	seed := []invoicedomain.Invoice{
		{ID: "inv-1", CustomerID: "cust-1", Amount: 1000, Status: invoicedomain.InvoiceStatusPaid, Date: "2024-05-01"},
		{ID: "inv-2", CustomerID: "cust-1", Amount: 2500, Status: invoicedomain.InvoiceStatusPending, Date: "2024-05-02"},
		{ID: "inv-3", CustomerID: "cust-2", Amount: 500, Status: invoicedomain.InvoiceStatusPaid, Date: "2024-05-03"},
		{ID: "inv-4", CustomerID: "cust-2", Amount: 750, Status: invoicedomain.InvoiceStatusPending, Date: "2024-05-04"},
		{ID: "inv-5", CustomerID: "cust-1", Amount: 125, Status: invoicedomain.InvoiceStatusPaid, Date: "2024-05-05"},
		{ID: "inv-6", CustomerID: "cust-2", Amount: 200, Status: invoicedomain.InvoiceStatusPaid, Date: "2024-05-06"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	require.NoError(t, db.Create(&domain.Revenue{Month: "Jan", Revenue: 2000}).Error)
	require.NoError(t, db.Create(&domain.Revenue{Month: "Feb", Revenue: 1800}).Error)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(6), overview.Cards.InvoiceCount)
	assert.Equal(t, int64(2), overview.Cards.CustomerCount)
	assert.Equal(t, int64(1825), overview.Cards.TotalCollected)
	assert.Equal(t, int64(3250), overview.Cards.TotalPending)

	require.Len(t, overview.LatestInvoices, 5)
	assert.Equal(t, "inv-6", overview.LatestInvoices[0].ID)
	assert.Equal(t, "Grace Hopper", overview.LatestInvoices[0].Name)

	assert.Len(t, overview.Revenue, 2)
}

func TestOverviewEmptyDatabase(t *testing.T) {
	svc, _ := setupDashboard(t)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), overview.Cards.InvoiceCount)
	assert.Equal(t, int64(0), overview.Cards.TotalCollected)
	assert.Empty(t, overview.LatestInvoices)
	assert.Empty(t, overview.Revenue)
}
