package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gullyscore/gully/config"
	"github.com/gullyscore/gully/internal/roster"
)

// newTestServer wires the scoring handlers onto a bare engine, skipping the
// auth middleware so the tests exercise scoring behavior only.
func newTestServer(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewGormScoringRepository(db)
	rosterRepo := roster.NewGormRosterRepository(db)
	controller := NewScoringController(repo, rosterRepo, &config.Config{})

	r := gin.New()
	r.POST("/matches", controller.CreateMatch)
	r.GET("/matches/:id", controller.GetMatchByID)
	r.GET("/matches/:id/scorecard", controller.GetScorecard)
	r.POST("/matches/:id/toss", controller.RecordToss)
	r.POST("/matches/:id/deliveries", controller.RecordDelivery)
	r.DELETE("/matches/:id/deliveries/last", controller.UndoLastDelivery)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScoringHandlersStatusMapping(t *testing.T) {
	db := openTestDB(t)
	teamA, teamB := seedTeams(t, db, 3)
	r := newTestServer(t, db)

	w := doJSON(t, r, http.MethodPost, "/matches", CreateMatchRequest{
		Format:  FormatLimited,
		TeamAID: teamA.ID,
		TeamBID: teamB.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create match: %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			Match Match `json:"match"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	matchID := created.Data.Match.ID
	base := fmt.Sprintf("/matches/%d", matchID)

	// Deliveries before the toss hit the lifecycle guard.
	striker := teamA.Players[0].ID
	nonStriker := teamA.Players[1].ID
	bowler := teamB.Players[0].ID
	delivery := RecordDeliveryRequest{StrikerID: striker, NonStrikerID: &nonStriker, BowlerID: bowler, RunsOffBat: 4}

	if w := doJSON(t, r, http.MethodPost, base+"/deliveries", delivery); w.Code != http.StatusConflict {
		t.Fatalf("delivery before toss: %d, want 409", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, base+"/toss", TossRequest{WinnerTeamID: teamA.ID, Decision: DecisionBat}); w.Code != http.StatusOK {
		t.Fatalf("toss: %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, base+"/toss", TossRequest{WinnerTeamID: teamA.ID, Decision: DecisionBat}); w.Code != http.StatusConflict {
		t.Fatalf("second toss: %d, want 409", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, base+"/deliveries", delivery); w.Code != http.StatusOK {
		t.Fatalf("delivery: %d, body %s", w.Code, w.Body.String())
	}

	// A bowler from the batting side is a reference error.
	bad := delivery
	bad.BowlerID = teamA.Players[2].ID
	if w := doJSON(t, r, http.MethodPost, base+"/deliveries", bad); w.Code != http.StatusBadRequest {
		t.Fatalf("bad bowler: %d, want 400", w.Code)
	}

	// Extras without a type break a playing rule.
	bad = delivery
	bad.Extras = 1
	if w := doJSON(t, r, http.MethodPost, base+"/deliveries", bad); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("extras without type: %d, want 422", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, base+"/deliveries/last", nil); w.Code != http.StatusOK {
		t.Fatalf("undo: %d, body %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodDelete, base+"/deliveries/last", nil); w.Code != http.StatusNotFound {
		t.Fatalf("undo on empty ledger: %d, want 404", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, "/matches/4242/toss", TossRequest{WinnerTeamID: teamA.ID, Decision: DecisionBat}); w.Code != http.StatusNotFound {
		t.Fatalf("toss on missing match: %d, want 404", w.Code)
	}

	if w := doJSON(t, r, http.MethodGet, base+"/scorecard", nil); w.Code != http.StatusOK {
		t.Fatalf("scorecard: %d, body %s", w.Code, w.Body.String())
	}
}

func TestCreateMatchRejectsBadTeams(t *testing.T) {
	db := openTestDB(t)
	teamA, _ := seedTeams(t, db, 3)
	r := newTestServer(t, db)

	w := doJSON(t, r, http.MethodPost, "/matches", CreateMatchRequest{
		Format:  FormatLimited,
		TeamAID: teamA.ID,
		TeamBID: teamA.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("same team twice: %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/matches", CreateMatchRequest{
		Format:  FormatLimited,
		TeamAID: teamA.ID,
		TeamBID: 4242,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing team: %d, want 400", w.Code)
	}
}
