package api

import (
	"net/http"
	"testing"

	"github.com/jobinkurian/parishdesk/internal/services"
)

type planningResponse struct {
	Total  int64                      `json:"total"`
	Shares []services.CategoryShare   `json:"shares"`
	Plan   *services.ContributionPlan `json:"plan"`
}

func newMemberWithDues(t *testing.T) (*testApp, *http.Cookie) {
	t.Helper()
	ta, adminCookie := newAdminSession(t)

	response := ta.request(t, http.MethodPost, "/api/users", map[string]any{
		"name":              "A",
		"username":          "a1",
		"password":          "p",
		"monthlyCollection": 100,
		"cleaning":          50,
		"commonWork":        75,
		"funeralFund":       25,
	}, adminCookie)
	response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	return ta, ta.login(t, "a1", "p")
}

func TestPlanningRequiresSession(t *testing.T) {
	ta := newTestApp(t)

	response := ta.request(t, http.MethodGet, "/api/planning", nil, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestPlanningReturnsSharesAndDefaultPlan(t *testing.T) {
	ta, cookie := newMemberWithDues(t)

	response := ta.request(t, http.MethodGet, "/api/planning", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var body planningResponse
	decodeJSONBody(t, response, &body)
	if body.Total != 250 {
		t.Fatalf("expected total 250, got %d", body.Total)
	}
	if len(body.Shares) != 4 {
		t.Fatalf("expected 4 shares, got %d", len(body.Shares))
	}
	if body.Plan == nil {
		t.Fatal("expected a default contribution plan")
	}
	if body.Plan.AnnualTarget != 3000 {
		t.Fatalf("expected default annual target 3000, got %d", body.Plan.AnnualTarget)
	}
}

func TestPlanningHonorsExplicitTarget(t *testing.T) {
	ta, cookie := newMemberWithDues(t)

	response := ta.request(t, http.MethodGet, "/api/planning?annualTarget=1000", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var body planningResponse
	decodeJSONBody(t, response, &body)
	if body.Plan == nil || body.Plan.MonthlyAmount != 84 {
		t.Fatalf("expected monthly amount 84 for target 1000, got %+v", body.Plan)
	}
}

func TestPlanningRejectsBadTarget(t *testing.T) {
	ta, cookie := newMemberWithDues(t)

	for _, target := range []string{"0", "-500", "lots"} {
		response := ta.request(t, http.MethodGet, "/api/planning?annualTarget="+target, nil, cookie)
		response.Body.Close()
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("target %q: expected status 400, got %d", target, response.StatusCode)
		}
	}
}
