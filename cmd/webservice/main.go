package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/curavet/clinic-admin-service/config"
	"github.com/curavet/clinic-admin-service/internal/controller"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/blobstore/cloudinary"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/database/mongodb"
	"github.com/curavet/clinic-admin-service/internal/infrastructure/identity"
	kafkamq "github.com/curavet/clinic-admin-service/internal/infrastructure/message-queue/kafka"
	"github.com/curavet/clinic-admin-service/internal/middleware"
	"github.com/curavet/clinic-admin-service/internal/repository"
	"github.com/curavet/clinic-admin-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()
	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	var blobStore blobstore.BlobStore
	if config.CloudinaryConfig.CloudName != "" {
		blobStore, err = cloudinary.CreateNewBlobStore(config.CloudinaryConfig.CloudName, config.CloudinaryConfig.APIKey, config.CloudinaryConfig.APISecret)
		if err != nil {
			panic(err)
		}
	} else {
		log.Warn().Msg("cloudinary credentials missing, image uploads disabled")
	}

	var messageWriter service.MessageWriter
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer := kafkamq.CreateKafkaProducer(config)
		messageWriter = kafkamq.CreateEventWriter(kafkaProducer)
	}

	verifier := identity.CreateNewGoogleVerifier(config.IdentityConfig.ProjectID, config.IdentityConfig.JWKSURL)

	e := echo.New()
	e.Use(middleware.Logger)

	g := e.Group("/api")

	sessionAuth := middleware.SessionAuth(config.JWTSecret)

	productRepo := repository.CreateNewProductRepository(db)
	bookingRepo := repository.CreateNewBookingRepository(db)
	featuredImageRepo := repository.CreateNewFeaturedImageRepository(db)

	authSvc := service.CreateAuthService(verifier, config.JWTSecret)
	productSvc := service.CreateProductService(productRepo, blobStore, messageWriter)
	bookingSvc := service.CreateBookingService(bookingRepo, config.SMTPConfig)
	featuredImageSvc := service.CreateFeaturedImageService(featuredImageRepo, blobStore)

	controller.CreateAuthController(g, authSvc, config.Environment)
	controller.CreateProductController(g, productSvc, sessionAuth)
	controller.CreateBookingController(g, bookingSvc, sessionAuth)
	controller.CreateFeaturedImageController(g, featuredImageSvc)
	controller.CreatePageController(e, authSvc)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g.GET("/v1/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
