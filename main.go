package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AreveiHQ/jenii-Admin/catalog"
	"github.com/AreveiHQ/jenii-Admin/configs"
	adminControllers "github.com/AreveiHQ/jenii-Admin/controllers/admins"
	categoryControllers "github.com/AreveiHQ/jenii-Admin/controllers/categories"
	couponControllers "github.com/AreveiHQ/jenii-Admin/controllers/coupons"
	dashboardControllers "github.com/AreveiHQ/jenii-Admin/controllers/dashboard"
	orderControllers "github.com/AreveiHQ/jenii-Admin/controllers/orders"
	productControllers "github.com/AreveiHQ/jenii-Admin/controllers/products"
	slideControllers "github.com/AreveiHQ/jenii-Admin/controllers/slides"
	"github.com/AreveiHQ/jenii-Admin/coupons"
	"github.com/AreveiHQ/jenii-Admin/events"
	"github.com/AreveiHQ/jenii-Admin/orders"
	"github.com/AreveiHQ/jenii-Admin/payments"
	"github.com/AreveiHQ/jenii-Admin/repositories"
	"github.com/AreveiHQ/jenii-Admin/routes"
	"github.com/AreveiHQ/jenii-Admin/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	ctx := context.Background()

	if err := configs.InitDB(ctx); err != nil {
		log.Fatal(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := configs.CloseDB(shutdownCtx); err != nil {
			log.Println("close db:", err)
		}
	}()
	log.Println("Connected to MongoDB")

	db := configs.DB()

	uploader, err := newUploader(ctx)
	if err != nil {
		log.Fatal(err)
	}

	var publisher orders.Publisher = events.NopPublisher{}
	if brokers := configs.EnvKafkaBrokers(); brokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(strings.Split(brokers, ","))
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	var gateway orders.PaymentGateway = payments.NopGateway{}
	if keyID := configs.EnvRazorpayKeyId(); keyID != "" {
		gateway = payments.NewRazorpayGateway(keyID, configs.EnvRazorpayKeySecret())
	}

	catalogService := catalog.NewService(
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewSlideRepository(db),
		uploader,
	)
	couponService := coupons.NewService(repositories.NewCouponRepository(db))
	orderService := orders.NewService(repositories.NewOrderRepository(db), publisher, gateway)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // multipart uploads with several images
	})
	app.Use(recover.New())
	app.Use(logger.New())

	routes.AdminsRoute(app, adminControllers.NewAdminController(db))
	routes.CategoriesRoute(app, categoryControllers.NewCategoryController(catalogService))
	routes.ProductsRoute(app, productControllers.NewProductController(catalogService))
	routes.SlidesRoute(app, slideControllers.NewSlideController(catalogService))
	routes.CouponsRoute(app, couponControllers.NewCouponController(couponService))
	routes.OrdersRoute(app, orderControllers.NewOrderController(orderService))
	routes.DashboardRoute(app, dashboardControllers.NewDashboardController(db))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	if err := app.Listen(configs.EnvListenAddr()); err != nil {
		log.Fatal(err)
	}
}

// newUploader picks the media store from env: Cloudinary by default, S3
// when STORAGE_PROVIDER=s3.
func newUploader(ctx context.Context) (storage.Uploader, error) {
	if configs.EnvStorageProvider() == "s3" {
		return storage.NewS3Uploader(ctx, configs.EnvAWSS3Bucket(), configs.EnvAWSRegion())
	}
	return storage.NewCloudinaryUploader(configs.EnvCloudinaryURL())
}
