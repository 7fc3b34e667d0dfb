package main

import (
	"context"
	"errors"
	"fmt"
	"hoteldisplay/cli"
	"hoteldisplay/config"
	"hoteldisplay/database"
	"hoteldisplay/handlers"
	"hoteldisplay/service"
	"hoteldisplay/version"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()
	cfg := config.Settings

	logFile, err := setupLogging(cfg.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.Printf("Hotel display %s starting up...", version.GetFullVersion())

	// Open and prepare the store
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Init(db); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	svcs := service.New(db, cfg.ImagesDir)
	if err := svcs.Upload.EnsureDir(); err != nil {
		log.Fatalf("Failed to prepare images directory: %v", err)
	}

	// Set Gin mode
	if !cfg.IsDebug() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Route Gin logs through the standard logger
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	gin.DisableConsoleColor()

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	handlers.New(svcs, handlers.Options{
		PublicDir:    cfg.PublicDir,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}).Register(r)

	// Bind first so a busy port is reported before the banner
	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Addr(), err)
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	printStartupBanner(svcs, cfg.Port)
	log.Printf("Server listening on %s", ln.Addr())

	// Wait for OS interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("System shutting down...")

	// Gracefully shut down HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Close database connection
	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited")
}

func printStartupBanner(svcs *service.Services, port int) {
	title := "Hotel Info Display"
	if settings, err := svcs.Settings.Typed(); err == nil && settings.HotelName != "" {
		title = settings.HotelName
	} else if err != nil {
		log.Printf("Warning: failed to read settings for banner: %v", err)
	}

	base := fmt.Sprintf("http://localhost:%d", port)
	cli.PrintBanner(os.Stdout, title,
		"TV display: "+base+"/display",
		"Admin:      "+base+"/admin",
		"API:        "+base+"/api",
	)
}
