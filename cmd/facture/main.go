package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/acmelabs/facture/internal/clock"
	"github.com/acmelabs/facture/internal/config"
	"github.com/acmelabs/facture/internal/migration"
	"github.com/acmelabs/facture/internal/observability"
	"github.com/acmelabs/facture/internal/pagecache"
	"github.com/acmelabs/facture/internal/server"
	"github.com/acmelabs/facture/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		pagecache.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
