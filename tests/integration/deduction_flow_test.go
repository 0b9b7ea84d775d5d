package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestDeductionFlow_YearReport(t *testing.T) {
	app := setupApp(t)
	token := serviceToken(t)

	// Report on a closed year so amortization math is stable over time
	currentYear := time.Now().Year()
	reportYear := currentYear - 2

	// A directly deductible repair inside the report year
	direct := app.createObligation(t, token, fmt.Sprintf(
		`{"kind":"expense","title":"Water heater repair","category":"repairs","amount":500,"date":"%d-06-15","tax_deductible":true}`,
		reportYear))
	directID := direct["obligation"].(map[string]interface{})["id"].(string)

	// A 2-year amortization starting the year before, so the report year
	// carries a full 12-month share of 2400/24 per month
	amortized := app.createObligation(t, token, fmt.Sprintf(
		`{"kind":"expense","title":"Roof replacement","amount":2400,"date":"%d-01-10","tax_deductible":true,"is_amortized":true,"amortization_years":2,"amortization_start":"%d-01-01"}`,
		currentYear-3, currentYear-3))
	amortizedID := amortized["obligation"].(map[string]interface{})["id"].(string)

	// Noise the report must ignore
	app.createObligation(t, token, fmt.Sprintf(
		`{"kind":"expense","title":"Snacks","amount":20,"date":"%d-03-03"}`, reportYear))
	app.createObligation(t, token, fmt.Sprintf(
		`{"kind":"income","title":"Rent received","amount":1900,"date":"%d-06-01"}`, reportYear))

	// Step 1: the year report splits direct and amortized totals
	rec := app.request("GET", fmt.Sprintf("/api/v1/reports/deductions?year=%d", reportYear), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)
	if report["year"].(float64) != float64(reportYear) {
		t.Errorf("expected year %d, got %v", reportYear, report["year"])
	}
	if report["direct_total"] != "500" {
		t.Errorf("expected direct total 500, got %v", report["direct_total"])
	}
	if report["amortized_total"] != "1200" {
		t.Errorf("expected amortized total 1200, got %v", report["amortized_total"])
	}
	if report["total"] != "1700" {
		t.Errorf("expected total 1700, got %v", report["total"])
	}

	items := report["items"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("expected 2 report items, got %d", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["amortized"] != true || first["amount"] != "1200" {
		t.Errorf("expected the older amortized item first with its year share, got %v", first)
	}
	second := items[1].(map[string]interface{})
	if second["amortized"] == true || second["amount"] != "500" {
		t.Errorf("expected the direct item second at face value, got %v", second)
	}
	if second["obligation_id"] != directID {
		t.Errorf("expected item to reference the repair, got %v", second["obligation_id"])
	}

	// Step 2: the amortization schedule has fully run off by now
	rec = app.request("GET", "/api/v1/obligations/"+amortizedID+"/amortization", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	status := parseJSON(t, rec)["amortization"].(map[string]interface{})
	if status["months_total"].(float64) != 24 {
		t.Errorf("expected 24 months, got %v", status["months_total"])
	}
	if status["monthly_amount"] != "100" {
		t.Errorf("expected monthly amount 100, got %v", status["monthly_amount"])
	}
	if status["completed"] != true {
		t.Error("expected the schedule to be completed")
	}
	if status["deducted_to_date"] != "2400" {
		t.Errorf("expected everything deducted, got %v", status["deducted_to_date"])
	}
	if status["remaining"] != "0" {
		t.Errorf("expected nothing remaining, got %v", status["remaining"])
	}

	// Step 3: a plain deductible has no amortization schedule
	rec = app.request("GET", "/api/v1/obligations/"+directID+"/amortization", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_AMORTIZED" {
		t.Errorf("expected NOT_AMORTIZED, got %s", code)
	}
}

func TestDeductionFlow_RejectsBadYears(t *testing.T) {
	app := setupApp(t)
	token := serviceToken(t)

	for _, path := range []string{
		"/api/v1/reports/deductions?year=99",
		"/api/v1/reports/deductions",
	} {
		rec := app.request("GET", path, "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_YEAR" {
			t.Errorf("%s: expected INVALID_YEAR, got %s", path, code)
		}
	}
}
