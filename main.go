package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Genocadio/nitifier/awsx"
	"github.com/Genocadio/nitifier/consumer"
	"github.com/Genocadio/nitifier/controllers"
	"github.com/Genocadio/nitifier/routes"
	"github.com/Genocadio/nitifier/sender"
	"github.com/Genocadio/nitifier/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// CloudWatch (non-fatal)
	metricsClient, err := awsx.NewMetricsClient(context.Background())
	if err != nil {
		logger.Warn("CloudWatch metrics client init failed (non-fatal)", zap.Error(err))
	}

	// Senders
	emailSender, err := sender.NewSMTPSender(cfg.SMTP)
	if err != nil {
		logger.Fatal("Failed to init SMTP sender", zap.Error(err))
	}

	var smsSender sender.SMSSender
	switch cfg.SMSProvider {
	case "sns":
		awsCfg, err := awsx.LoadConfig(context.Background())
		if err != nil {
			logger.Fatal("Failed to load AWS config for SNS sender", zap.Error(err))
		}
		smsSender = sender.NewSNSSender(awsCfg)
	default:
		smsSender, err = sender.NewTwilioSender(cfg.Twilio)
		if err != nil {
			logger.Fatal("Failed to init Twilio sender", zap.Error(err))
		}
	}

	// Dependency injection
	dispatchService := services.NewDispatchService(emailSender, smsSender, cfg.Dispatch, logger)
	dispatchController := controllers.NewDispatchController(dispatchService, logger)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())

	// CloudWatch middleware
	r.Use(func(c *gin.Context) {
		if metricsClient == nil || !metricsClient.IsEnabled() {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		dur := time.Since(start)
		go func() {
			mctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			dims := map[string]string{
				"Service": "nitifier",
				"Method":  c.Request.Method,
				"Path":    c.FullPath(),
			}
			_ = metricsClient.RecordCount(mctx, awsx.MetricHTTPRequests, dims)
			_ = metricsClient.RecordLatency(mctx, awsx.MetricHTTPLatency, dur, dims)
			if c.Writer.Status() >= 400 {
				_ = metricsClient.RecordCount(mctx, awsx.MetricHTTPErrors, dims)
			}
		}()
	})

	// Request logging
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	})

	// Request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, dispatchController, cfg.APIKey)

	// SQS consumer (optional)
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()
	if cfg.QueueURL != "" {
		awsCfg, err := awsx.LoadConfig(context.Background())
		if err != nil {
			logger.Fatal("Failed to load AWS config for SQS consumer", zap.Error(err))
		}
		sqsConsumer := consumer.NewSQSConsumer(awsCfg, cfg.QueueURL, dispatchService, logger)
		go sqsConsumer.Start(consumerCtx)
	}

	// HTTP server
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Dispatch service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	consumerCancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Dispatch service stopped gracefully")
}
