package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Furqanhalari/travel-goals/applications/assistant"
	"github.com/Furqanhalari/travel-goals/applications/auth"
	"github.com/Furqanhalari/travel-goals/applications/payment"
	"github.com/Furqanhalari/travel-goals/controllers"
	"github.com/Furqanhalari/travel-goals/db"
	"github.com/Furqanhalari/travel-goals/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Continuing...")
	}

	e := echo.New()

	// --- INITIAL STARTUP LOGGING ---
	logger.Log.Info("[main] program started")
	logger.Log.Info("[main] Configuring global middleware and database connection.")

	// Global Middleware: Logger and CORS (CRITICAL for frontend connection)
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5000"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres password=postgres dbname=travelgoals sslmode=disable"
	}

	// --- DATABASE CONNECTION LOGGING ---
	logger.Log.Info("[main] Attempting to connect to PostgreSQL...")
	if err := db.InitDB(connStr); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database connection failed: %v", err))
		log.Fatalf("Database initialization failed: %v", err)
	}
	logger.Log.Info("[main] Database connection successful.")
	defer db.DB.Close()

	// --- MIGRATION LOGGING ---
	logger.Log.Info("[main] Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database migration failed: %v", err))
		log.Fatalf("Database migration failed: %v", err)
	}
	logger.Log.Info("[main] Database migrations completed successfully.")

	// Shared controller dependencies.
	paymentCtl := &controllers.PaymentController{Provider: payment.NewSimulator()}
	assistantCtl := &controllers.AssistantController{Client: assistant.New()}

	// --- 1. PUBLIC ROUTES (No Auth Required) ---
	logger.Log.Info("[router] Registering public authentication and catalog routes.")

	e.POST("/api/register", controllers.RegisterController)
	e.POST("/api/login", controllers.LoginController)
	e.POST("/api/logout", controllers.LogoutController)

	e.GET("/api/destinations", controllers.DestinationsController)
	e.GET("/api/destinations/highlights", controllers.HighlightsController)
	e.GET("/api/packages", controllers.PackagesController)
	e.GET("/api/packages/:packageID", controllers.PackageController)
	e.GET("/api/vendors", controllers.VendorsController)

	// Reviews are readable and writable without a session.
	e.GET("/api/packages/:packageID/reviews", controllers.ReviewsController)
	e.POST("/api/packages/:packageID/reviews", controllers.SubmitReviewController)

	// Assistant endpoints degrade gracefully, so they stay public.
	e.POST("/api/chatbot/chat", assistantCtl.Chat)
	e.GET("/api/chatbot/quick-replies", assistantCtl.QuickReplies)
	e.POST("/api/ai/recommend", assistantCtl.Recommend)
	e.POST("/api/ai/search", assistantCtl.Search)
	e.GET("/api/packages/:packageID/review-summary", assistantCtl.ReviewSummary)

	// --- 2. PROTECTED GROUP (Requires Valid Session) ---
	logger.Log.Info("[router] Configuring protected group (session required).")

	r := e.Group("/api")
	r.Use(auth.LoginRequired)

	r.GET("/session", controllers.SessionController)
	r.GET("/user/profile", controllers.ProfileController)
	r.POST("/bookings", controllers.CreateBookingController)
	r.GET("/bookings", controllers.MyBookingsController)
	r.GET("/bookings/:bookingID/payment-info", paymentCtl.Info)
	r.POST("/payments", paymentCtl.Pay)
	r.GET("/bookings/:bookingID/receipt", paymentCtl.Receipt)
	r.GET("/bookings/:bookingID/receipt/pdf", paymentCtl.ReceiptPDF)

	// --- 3. VENDOR GROUP (Vendor or Admin Role) ---
	logger.Log.Info("[router] Configuring vendor group (vendor role required).")

	v := r.Group("/vendor")
	v.Use(auth.VendorRequired)

	v.POST("/destinations", controllers.SubmitDestinationController)
	v.GET("/destinations", controllers.MyDestinationsController)
	v.POST("/packages", controllers.SubmitPackageController)
	v.GET("/packages/pending", controllers.MyPendingPackagesController)
	v.GET("/packages", controllers.MyPackagesController)
	v.PUT("/packages/:packageID", controllers.UpdatePackageController)
	v.DELETE("/packages/:packageID", controllers.DeletePackageController)
	v.PATCH("/packages/:packageID/toggle", controllers.TogglePackageController)
	v.GET("/bookings", controllers.VendorBookingsController)
	v.PATCH("/bookings/:bookingID", controllers.VendorUpdateBookingController)
	v.POST("/ai/describe", assistantCtl.Describe)

	// --- 4. ADMIN-ONLY GROUP (Admin Role Required) ---
	logger.Log.Warn("[router] Configuring admin group (admin role required).")

	admin := r.Group("/admin")
	admin.Use(auth.AdminRequired)

	admin.GET("/vendors/pending", controllers.PendingVendorsController)
	admin.POST("/vendors/:vendorID/approve", controllers.ApproveVendorController)
	admin.POST("/vendors/:vendorID/reject", controllers.RejectVendorController)
	admin.GET("/destinations/pending", controllers.PendingDestinationsController)
	admin.POST("/destinations/:pendingID/approve", controllers.ApproveDestinationController)
	admin.POST("/destinations/:pendingID/reject", controllers.RejectDestinationController)
	admin.GET("/packages/pending", controllers.PendingPackagesController)
	admin.POST("/packages/:pendingID/approve", controllers.ApprovePackageController)
	admin.POST("/packages/:pendingID/reject", controllers.RejectPackageController)
	admin.GET("/bookings", controllers.AllBookingsController)
	admin.PATCH("/bookings/:bookingID", controllers.AdminUpdateBookingController)

	// 5. Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Echo server on http://localhost:%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
