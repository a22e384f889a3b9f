package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/pawhootz/storefront-backend/internal/catalog"
	"github.com/pawhootz/storefront-backend/internal/errors"
	"github.com/pawhootz/storefront-backend/internal/models"
	"github.com/pawhootz/storefront-backend/internal/services"
	"github.com/pawhootz/storefront-backend/internal/store"
)

var (
	catalogService   *services.CatalogService
	assistantService *services.AssistantService
	sessionStore     *store.Store
	logger           *log.Logger
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger = log.New(os.Stdout, "[PAWHOOTZ] ", log.LstdFlags)

	// Initialize services
	client := services.NewGHLClient(
		os.Getenv("GHL_API_TOKEN"),
		os.Getenv("GHL_LOCATION_ID"),
		logger,
	)
	if base := os.Getenv("GHL_BASE_URL"); base != "" {
		client.BaseURL = base
	}
	if version := os.Getenv("GHL_API_VERSION"); version != "" {
		client.Version = version
	}
	if relay := os.Getenv("CORS_RELAY_URL"); relay != "" {
		client.RelayURL = relay
	}

	prices := catalog.NewPriceSource(rand.New(rand.NewSource(time.Now().UnixNano())))
	catalogService = services.NewCatalogService(client, catalog.NewNormalizer(prices), logger)

	var err error
	assistantService, err = services.NewAssistantService(
		context.Background(),
		os.Getenv("GEMINI_API_KEY"),
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize assistant service: %v", err)
	}

	sessionStore = store.New(os.Getenv("STATE_FILE"), logger)
}

func handleError(c *gin.Context, err error) {
	if apiErr, ok := err.(*errors.APIError); ok {
		switch apiErr.Type {
		case errors.ErrorTypeValidation:
			c.JSON(http.StatusBadRequest, apiErr)
		case errors.ErrorTypeNotFound:
			c.JSON(http.StatusNotFound, apiErr)
		case errors.ErrorTypeExternal:
			c.JSON(http.StatusServiceUnavailable, apiErr)
		case errors.ErrorTypeUnauthorized:
			c.JSON(http.StatusUnauthorized, apiErr)
		default:
			c.JSON(http.StatusInternalServerError, apiErr)
		}
		return
	}

	// Handle unknown errors
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(err))
}

const sessionCookie = "ph_session"

// sessionID resolves the caller's session: an explicit X-Session-ID
// header wins, then the session cookie, otherwise a new session is minted
// and set on the response.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}

	sid := uuid.NewString()
	c.SetCookie(sessionCookie, sid, 60*60*24*30, "/", "", false, true)
	return sid
}

func setupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.GET("/api/products", func(c *gin.Context) {
		products, demo := catalogService.Products(c.Request.Context())
		filtered := services.FilterProducts(products, c.Query("category"), c.Query("q"))

		resp := gin.H{"products": filtered, "demo": demo}
		if demo {
			resp["message"] = "Unable to connect to live inventory. Showing sample products."
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/api/products/:id", func(c *gin.Context) {
		product, err := catalogService.ProductByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	})

	r.POST("/api/products/:id/reviews", func(c *gin.Context) {
		var request struct {
			Author  string `json:"author" binding:"required"`
			Rating  int    `json:"rating" binding:"required"`
			Comment string `json:"comment" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		review, err := catalogService.AddReview(c.Request.Context(), c.Param("id"), request.Author, request.Rating, request.Comment)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, review)
	})

	r.GET("/api/categories", func(c *gin.Context) {
		categories := make([]gin.H, 0, len(models.AllCategories))
		for _, cat := range models.AllCategories {
			categories = append(categories, gin.H{"key": cat, "label": models.CategoryLabels[cat]})
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	})

	r.GET("/api/cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": sessionStore.Cart(sessionID(c))})
	})

	r.POST("/api/cart/items", func(c *gin.Context) {
		var request struct {
			ProductID string `json:"productId" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		product, err := catalogService.ProductByID(c.Request.Context(), request.ProductID)
		if err != nil {
			handleError(c, err)
			return
		}

		items := sessionStore.AddToCart(sessionID(c), product)
		c.JSON(http.StatusOK, gin.H{"items": items})
	})

	r.PATCH("/api/cart/items/:id", func(c *gin.Context) {
		var request struct {
			Delta int `json:"delta" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		items := sessionStore.UpdateQuantity(sessionID(c), c.Param("id"), request.Delta)
		c.JSON(http.StatusOK, gin.H{"items": items})
	})

	r.DELETE("/api/cart/items/:id", func(c *gin.Context) {
		items := sessionStore.RemoveItem(sessionID(c), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"items": items})
	})

	r.POST("/api/cart/checkout", func(c *gin.Context) {
		items, total := sessionStore.Checkout(sessionID(c))
		if items == 0 {
			handleError(c, errors.NewValidationError("cart is empty"))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed! We'll have your items ready for pickup at your next visit.",
			"items":   items,
			"total":   total,
		})
	})

	r.POST("/api/auth/login", func(c *gin.Context) {
		var request struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		// Simulated login: the password is accepted, never verified.
		user := sessionStore.Login(sessionID(c), request.Email)
		c.JSON(http.StatusOK, gin.H{"user": user})
	})

	r.POST("/api/auth/logout", func(c *gin.Context) {
		sessionStore.Logout(sessionID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	})

	r.GET("/api/auth/me", func(c *gin.Context) {
		user, ok := sessionStore.User(sessionID(c))
		if !ok {
			handleError(c, errors.NewNotFoundError("user"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	})

	r.POST("/api/assistant/chat", func(c *gin.Context) {
		var request struct {
			Message string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		products, _ := catalogService.Products(c.Request.Context())
		reply := assistantService.Send(c.Request.Context(), request.Message, products)
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	})

	return r
}

func main() {
	defer assistantService.Close()

	r := setupRouter()
	r.Run()
}
