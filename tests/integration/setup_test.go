package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentfolio/internal/handlers"
	"rentfolio/internal/logger"
	"rentfolio/internal/middleware"
	"rentfolio/internal/models"
	"rentfolio/internal/services"
	"rentfolio/internal/validator"
)

// testSweepKey authenticates sweep triggers against the test router.
const testSweepKey = "test-sweep-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Obligation{},
		&models.SweepRun{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	store := services.NewObligationStore(db)
	auditService := services.NewAuditService(db)
	obligationService := services.NewObligationService(db, store)
	seriesService := services.NewSeriesService(store)
	sweepService := services.NewSweepService(db, store)
	deductionService := services.NewDeductionService(db)

	// Handlers
	obligationHandler := handlers.NewObligationHandler(obligationService, seriesService, auditService)
	reportHandler := handlers.NewReportHandler(deductionService)
	sweepHandler := handlers.NewSweepHandler(sweepService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// The sweep trigger is for the host's cron, keyed rather than bearer-authed
	v1.POST("/sweep", middleware.SweepAuthMiddleware(testSweepKey), sweepHandler.TriggerSweep)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.ServiceAuth())

	obligations := protected.Group("/obligations")
	obligations.POST("", obligationHandler.CreateObligation)
	obligations.GET("", obligationHandler.GetObligations)
	obligations.GET("/:id", obligationHandler.GetObligation)
	obligations.PUT("/:id", obligationHandler.UpdateObligation)
	obligations.DELETE("/:id", obligationHandler.DeleteObligation)
	obligations.GET("/:id/instances", obligationHandler.GetObligationInstances)
	obligations.GET("/:id/schedule", obligationHandler.GetObligationSchedule)
	obligations.GET("/:id/amortization", reportHandler.GetAmortizationStatus)

	reports := protected.Group("/reports")
	reports.GET("/deductions", reportHandler.GetDeductionReport)

	protected.GET("/sweep/runs", sweepHandler.GetSweepRuns)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// triggerSweep calls the sweep endpoint with the given API key.
func (app *testApp) triggerSweep(apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/v1/sweep", nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// serviceToken mints a bearer token the way the host back office does.
func serviceToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.SignServiceToken("integration-tests")
	if err != nil {
		t.Fatalf("failed to sign service token: %v", err)
	}
	return token
}

// createObligation creates an obligation over the API and returns the parsed
// create result (obligation plus backfill counters).
func (app *testApp) createObligation(t *testing.T, token, body string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", "/api/v1/obligations", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create obligation failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// errorCode digs the error code out of an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

// firstOfMonthsAgo returns the first day of the month n months back, using
// the same wall-clock calendar the engine reads from time.Now.
func firstOfMonthsAgo(n int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -n, 0)
}
