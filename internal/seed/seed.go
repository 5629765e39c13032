package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authdomain "github.com/acmelabs/facture/internal/auth/domain"
	customerdomain "github.com/acmelabs/facture/internal/customer/domain"
	dashboarddomain "github.com/acmelabs/facture/internal/dashboard/domain"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
)

const (
	demoUserName     = "Demo User"
	demoUserEmail    = "demo@facture.dev"
	demoUserPassword = "123456"
)

type seedCustomer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type seedInvoice struct {
	CustomerID string
	Amount     int64
	Status     invoicedomain.InvoiceStatus
	Date       string
}

var customers = []seedCustomer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{CustomerID: customers[0].ID, Amount: 15795, Status: invoicedomain.InvoiceStatusPending, Date: "2022-12-06"},
	{CustomerID: customers[1].ID, Amount: 20348, Status: invoicedomain.InvoiceStatusPending, Date: "2022-11-14"},
	{CustomerID: customers[4].ID, Amount: 3040, Status: invoicedomain.InvoiceStatusPaid, Date: "2022-10-29"},
	{CustomerID: customers[3].ID, Amount: 44800, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-09-10"},
	{CustomerID: customers[5].ID, Amount: 34577, Status: invoicedomain.InvoiceStatusPending, Date: "2023-08-05"},
	{CustomerID: customers[2].ID, Amount: 54246, Status: invoicedomain.InvoiceStatusPending, Date: "2023-07-16"},
	{CustomerID: customers[0].ID, Amount: 666, Status: invoicedomain.InvoiceStatusPending, Date: "2023-06-27"},
	{CustomerID: customers[3].ID, Amount: 32545, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-06-09"},
	{CustomerID: customers[4].ID, Amount: 1250, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-06-17"},
	{CustomerID: customers[5].ID, Amount: 8546, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-06-07"},
	{CustomerID: customers[1].ID, Amount: 500, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-08-19"},
	{CustomerID: customers[5].ID, Amount: 8945, Status: invoicedomain.InvoiceStatusPaid, Date: "2023-06-03"},
	{CustomerID: customers[2].ID, Amount: 1000, Status: invoicedomain.InvoiceStatusPaid, Date: "2022-06-05"},
}

var revenue = []dashboarddomain.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}

// Run loads the demo dataset used by local development environments. It is
// idempotent: rows that already exist are left untouched.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDemoUser(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureCustomers(ctx, tx); err != nil {
			return err
		}
		if err := ensureInvoices(ctx, tx); err != nil {
			return err
		}
		return ensureRevenue(ctx, tx)
	})
}

func ensureDemoUser(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var existing authdomain.User
	err := tx.WithContext(ctx).Where("email = ?", demoUserEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := authdomain.User{
		ID:           node.Generate(),
		Name:         demoUserName,
		Email:        demoUserEmail,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return tx.WithContext(ctx).Create(&user).Error
}

func ensureCustomers(ctx context.Context, tx *gorm.DB) error {
	for _, c := range customers {
		var count int64
		if err := tx.WithContext(ctx).
			Model(&customerdomain.Customer{}).
			Where("id = ?", c.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		record := customerdomain.Customer{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			ImageURL: c.ImageURL,
		}
		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureInvoices(ctx context.Context, tx *gorm.DB) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&invoicedomain.Invoice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, in := range invoices {
		record := invoicedomain.Invoice{
			CustomerID: in.CustomerID,
			Amount:     in.Amount,
			Status:     in.Status,
			Date:       in.Date,
		}
		record.ID = uuid.NewString()
		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureRevenue(ctx context.Context, tx *gorm.DB) error {
	for _, r := range revenue {
		var count int64
		if err := tx.WithContext(ctx).
			Model(&dashboarddomain.Revenue{}).
			Where("month = ?", r.Month).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := tx.WithContext(ctx).Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}
