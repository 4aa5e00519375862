package main

import (
	"log"

	"github.com/gfmartins/curva-abc-export/config"
	"github.com/gfmartins/curva-abc-export/handler"
	"github.com/gfmartins/curva-abc-export/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	reportService := service.NewReportService(pdfProcessor, cfg.RawPreviewChars, cfg.DefaultSector)
	exportService := service.NewExportService()

	// Initialize handler layer
	reportHandler := handler.NewReportHandler(reportService, exportService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Curva ABC Export",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		reports := api.Group("/reports")
		{
			reports.POST("/parse", reportHandler.ParseReport)
			reports.POST("/export", reportHandler.ExportReport)
		}
	}

	// Start server
	log.Printf("Starting Curva ABC Export Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
