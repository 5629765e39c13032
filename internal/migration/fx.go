package migration

import (
	authdomain "github.com/acmelabs/facture/internal/auth/domain"
	"github.com/acmelabs/facture/internal/config"
	customerdomain "github.com/acmelabs/facture/internal/customer/domain"
	dashboarddomain "github.com/acmelabs/facture/internal/dashboard/domain"
	invoicedomain "github.com/acmelabs/facture/internal/invoice/domain"
	"github.com/acmelabs/facture/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// SQLite and MySQL are dev conveniences; let gorm build the schema.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&customerdomain.Customer{},
				&invoicedomain.Invoice{},
				&dashboarddomain.Revenue{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedOnStart && !cfg.IsProduction() {
			return seed.Run(conn)
		}
		return nil
	}),
)
