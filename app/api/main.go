package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/rafflehouse/goapi/base/ctx"
	"github.com/rafflehouse/goapi/base/database/mongoclient"
	"github.com/rafflehouse/goapi/base/database/redisclient"
	"github.com/rafflehouse/goapi/base/log"
	"github.com/rafflehouse/goapi/base/metrics"
	bValidator "github.com/rafflehouse/goapi/base/validator"
	"github.com/rafflehouse/goapi/domain"
	"github.com/rafflehouse/goapi/domain/keys"
	mmiddleware "github.com/rafflehouse/goapi/middleware"
	"github.com/rafflehouse/goapi/service/cache"
	"github.com/rafflehouse/goapi/service/cache/provider"
	"github.com/rafflehouse/goapi/service/cache/provider/compound"
	"github.com/rafflehouse/goapi/service/cache/provider/primitive"
	redisCache "github.com/rafflehouse/goapi/service/cache/provider/redis"
	"github.com/rafflehouse/goapi/service/custody"
	"github.com/rafflehouse/goapi/service/oracle"
	"github.com/rafflehouse/goapi/service/query"
	"github.com/rafflehouse/goapi/service/redis"
	"github.com/rafflehouse/goapi/service/royalty"
	"github.com/rafflehouse/goapi/service/swap"
	"github.com/rafflehouse/goapi/service/wallet"
	auth_delivery "github.com/rafflehouse/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/rafflehouse/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/rafflehouse/goapi/stores/auth/usecase"
	event_delivery "github.com/rafflehouse/goapi/stores/event/delivery/http"
	event_repository "github.com/rafflehouse/goapi/stores/event/repository"
	hc_delivery "github.com/rafflehouse/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/rafflehouse/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/rafflehouse/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/rafflehouse/goapi/stores/listing/delivery/http"
	listing_repository "github.com/rafflehouse/goapi/stores/listing/repository"
	listing_usecase "github.com/rafflehouse/goapi/stores/listing/usecase"
	settings_delivery "github.com/rafflehouse/goapi/stores/settings/delivery/http"
	settings_repository "github.com/rafflehouse/goapi/stores/settings/repository"
	settings_usecase "github.com/rafflehouse/goapi/stores/settings/usecase"
	wallet_delivery "github.com/rafflehouse/goapi/stores/wallet/delivery/http"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCacheMaxActive := viper.GetInt("redis_cache.maxActive")
	redisClient := redisclient.MustConnectRedis(redisCacheName, redisCacheURI, redisCachePwd, redisCacheMaxActive)
	redisService := redis.New(redisCacheName, metrics.New(redisCacheName), redisClient.Pool)

	settingsCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("cache.settingsTtl"),
		Pfx: "cached",
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive(keys.PfxSettings, 8),
			redisCache.NewRedis(redisService),
		}),
	})

	// marketplace accounting parties
	currency := domain.Address(viper.GetString("marketplace.currency")).ToLower()
	escrow := domain.Address(viper.GetString("marketplace.escrow")).ToLower()

	// init collaborator services
	walletService := wallet.New(q)
	custodyService := custody.New(q)
	royaltyService := royalty.New(q)
	swapService := swap.New(walletService, viper.GetInt64("swap.rateNum"), viper.GetInt64("swap.rateDen"))
	oracleService := oracle.New(viper.GetDuration("oracle.fulfillDelay"))

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisService)
	listingRepo := listing_repository.NewListing(q)
	pendingRequestRepo := listing_repository.NewPendingRequest(q)
	settingsRepo := settings_repository.NewSettings(q)
	eventRepo := event_repository.NewEvent(q)

	hc := hc_usecase.New(hcRepo)
	settings := settings_usecase.NewSettings(&settings_usecase.SettingsUseCaseCfg{
		Settings: settingsRepo,
		Event:    eventRepo,
		Cache:    settingsCache,
	})
	listing := listing_usecase.NewListing(&listing_usecase.ListingUseCaseCfg{
		Listing:        listingRepo,
		PendingRequest: pendingRequestRepo,
		Settings:       settings,
		Event:          eventRepo,
		Wallet:         walletService,
		Custody:        custodyService,
		Royalty:        royaltyService,
		Swapper:        swapService,
		Oracle:         oracleService,
		Q:              q,
		Currency:       currency,
		Escrow:         escrow,
	})
	oracleService.Subscribe(listing)

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"))

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMiddleware := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	listing_delivery.New(e, listing, authMiddleware)
	settings_delivery.New(e, settings, authMiddleware)
	event_delivery.New(e, eventRepo)
	wallet_delivery.New(e, walletService, currency, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
