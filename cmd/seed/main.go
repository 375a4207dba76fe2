package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"sales-dashboard/internal/core/config"
	"sales-dashboard/internal/core/database"
	"sales-dashboard/internal/core/logger"
	"sales-dashboard/internal/features/reports/adapters"
	"sales-dashboard/internal/features/reports/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var demoProducts = []string{
	"Canvas Tote Bag",
	"Ceramic Mug",
	"Linen Throw Pillow",
	"Walnut Desk Organizer",
	"Wool Blanket",
	"Brass Table Lamp",
}

// Populates the order store with demo products and randomized paid orders
// across a trailing window, for local development of the dashboard.
func main() {
	days := flag.Int("days", 90, "trailing window to spread orders across")
	orders := flag.Int("orders", 200, "number of orders to create")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()
	l := logger.Get()

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		l.Fatal("Order store open failed", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	repo := adapters.NewSQLiteSalesRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		l.Fatal("Order store migration failed", zap.Error(err))
	}

	seeder := adapters.NewSeeder(db)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	products := make([]domain.Product, 0, len(demoProducts))
	for _, title := range demoProducts {
		p, err := seeder.InsertProduct(ctx, domain.Product{Title: title})
		if err != nil {
			l.Fatal("Seed product failed", zap.String("title", title), zap.Error(err))
		}
		products = append(products, p)
	}

	now := time.Now().UTC()
	for i := 0; i < *orders; i++ {
		placed := now.Add(-time.Duration(rnd.Intn(*days*24)) * time.Hour)

		itemCount := rnd.Intn(3) + 1
		items := make([]domain.OrderItem, 0, itemCount)
		total := decimal.Zero
		for j := 0; j < itemCount; j++ {
			product := products[rnd.Intn(len(products))]
			qty := rnd.Intn(3) + 1
			unit := decimal.New(int64(rnd.Intn(9000)+1000), -2)
			line := unit.Mul(decimal.NewFromInt(int64(qty)))
			items = append(items, domain.OrderItem{
				ProductID: product.ID,
				Qty:       qty,
				UnitPrice: unit,
				Total:     line,
			})
			total = total.Add(line)
		}

		payment := domain.PaymentStatusPaid
		if rnd.Intn(10) == 0 {
			payment = domain.PaymentStatusPending
		}

		_, err := seeder.InsertOrder(ctx, domain.Order{
			BuyerName:     "Demo Buyer",
			BuyerEmail:    "buyer@example.com",
			Total:         total,
			PaymentStatus: payment,
			Status:        domain.OrderStatusFulfilled,
			PlacedAt:      placed,
		}, items)
		if err != nil {
			l.Fatal("Seed order failed", zap.Error(err))
		}
	}

	l.Info("Seed complete",
		zap.Int("products", len(products)),
		zap.Int("orders", *orders),
		zap.Int("days", *days),
	)
}
