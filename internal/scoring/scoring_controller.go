package scoring

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gullyscore/gully/config"
	"github.com/gullyscore/gully/internal/roster"
	"github.com/gullyscore/gully/pkg/responses"
)

// ScoringController handles match and ball-by-ball scoring HTTP requests
type ScoringController struct {
	repo       ScoringRepository
	rosterRepo roster.RosterRepository
	appConfig  *config.Config
	locker     *matchLocker
}

// NewScoringController creates a new scoring controller
func NewScoringController(repo ScoringRepository, rosterRepo roster.RosterRepository, appConfig *config.Config) *ScoringController {
	return &ScoringController{
		repo:       repo,
		rosterRepo: rosterRepo,
		appConfig:  appConfig,
		locker:     newMatchLocker(),
	}
}

// --- DTOs for requests ---

// CreateMatchRequest defines the request payload for creating a match
type CreateMatchRequest struct {
	Format          MatchFormat `json:"format" binding:"required,oneof=limited multi_day"`
	OversPerInnings *int        `json:"overs_per_innings,omitempty" binding:"omitempty,min=1"`
	LastManStanding bool        `json:"last_man_standing"`
	TeamAID         uint        `json:"team_a_id" binding:"required"`
	TeamBID         uint        `json:"team_b_id" binding:"required"`
}

// TossRequest defines the request payload for recording the toss
type TossRequest struct {
	WinnerTeamID uint         `json:"winner_team_id" binding:"required"`
	Decision     TossDecision `json:"decision" binding:"required,oneof=bat bowl"`
}

// RecordDeliveryRequest defines the request payload for recording one delivery.
// Over and ball positions are assigned server-side from the ledger.
type RecordDeliveryRequest struct {
	StrikerID    uint       `json:"striker_id" binding:"required"`
	NonStrikerID *uint      `json:"non_striker_id,omitempty"`
	BowlerID     uint       `json:"bowler_id" binding:"required"`
	RunsOffBat   int        `json:"runs_off_bat" binding:"min=0"`
	Extras       int        `json:"extras" binding:"min=0"`
	ExtraType    ExtraType  `json:"extra_type,omitempty" binding:"omitempty,oneof=wide no_ball bye leg_bye"`
	IsWicket     bool       `json:"is_wicket"`
	WicketType   WicketType `json:"wicket_type,omitempty" binding:"omitempty,oneof=bowled caught lbw run_out stumped hit_wicket"`
	PlayerOutID  *uint      `json:"player_out_id,omitempty"`
	FielderID    *uint      `json:"fielder_id,omitempty"`
	Declare      bool       `json:"declare"`
}

// --- Controller Methods ---

// CreateMatch godoc
// @Summary Create a match
// @Description Creates a match in setup state between two existing teams
// @Tags matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches [post]
func (sc *ScoringController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if req.TeamAID == req.TeamBID {
		responses.ErrorResponse(c, http.StatusBadRequest, "A team cannot play against itself")
		return
	}
	if req.Format == FormatMultiDay && req.OversPerInnings != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Multi-day matches have no overs limit")
		return
	}

	for _, teamID := range []uint{req.TeamAID, req.TeamBID} {
		team, err := sc.rosterRepo.GetTeamByID(teamID)
		if err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to look up team: "+err.Error())
			return
		}
		if team == nil {
			responses.ErrorResponse(c, http.StatusBadRequest, "Team with ID "+strconv.Itoa(int(teamID))+" not found")
			return
		}
		if len(team.Players) < 2 {
			responses.ErrorResponse(c, http.StatusBadRequest, "Team "+team.Name+" needs at least 2 players")
			return
		}
	}

	match := Match{
		Format:          req.Format,
		OversPerInnings: req.OversPerInnings,
		LastManStanding: req.LastManStanding,
		TeamAID:         req.TeamAID,
		TeamBID:         req.TeamBID,
		Status:          StatusSetup,
	}

	if err := sc.repo.CreateMatch(&match); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create match: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Match created successfully",
		"match":   match,
	})
}

// GetMatches godoc
// @Summary List matches
// @Tags matches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (sc *ScoringController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	matches, total, err := sc.repo.GetMatches(page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch matches: "+err.Error())
		return
	}

	responses.PaginatedResponse(c, http.StatusOK, gin.H{"matches": matches}, page, pageSize, total)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id} [get]
func (sc *ScoringController) GetMatchByID(c *gin.Context) {
	match, ok := sc.loadMatch(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"match": match})
}

// GetScorecard godoc
// @Summary Get the match scorecard
// @Description Returns innings summaries with per-player batting and bowling lines
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /matches/{id}/scorecard [get]
func (sc *ScoringController) GetScorecard(c *gin.Context) {
	match, ok := sc.loadMatch(c)
	if !ok {
		return
	}
	responses.SuccessResponse(c, http.StatusOK, gin.H{"scorecard": BuildScorecard(match)})
}

// RecordToss godoc
// @Summary Record the toss
// @Description Records the toss result and opens the first innings
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param toss body TossRequest true "Toss result"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches/{id}/toss [post]
func (sc *ScoringController) RecordToss(c *gin.Context) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	var req TossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	unlock := sc.locker.Lock(matchID)
	defer unlock()

	var match *Match
	err := sc.repo.WithTransaction(func(repo ScoringRepository) error {
		var err error
		match, err = repo.GetMatchByID(matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return errMatchNotFound(matchID)
		}
		if err := RecordToss(match, req.WinnerTeamID, req.Decision); err != nil {
			return err
		}
		return repo.SaveMatch(match)
	})
	if err != nil {
		respondScoringError(c, err)
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Toss recorded successfully",
		"match":   match,
	})
}

// RecordDelivery godoc
// @Summary Record a delivery
// @Description Appends one ball to the live innings and applies its effects, including innings and match completion
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param delivery body RecordDeliveryRequest true "Delivery details"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches/{id}/deliveries [post]
func (sc *ScoringController) RecordDelivery(c *gin.Context) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	var req RecordDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	input := DeliveryInput{
		StrikerID:    req.StrikerID,
		NonStrikerID: req.NonStrikerID,
		BowlerID:     req.BowlerID,
		RunsOffBat:   req.RunsOffBat,
		Extras:       req.Extras,
		ExtraType:    req.ExtraType,
		IsWicket:     req.IsWicket,
		WicketType:   req.WicketType,
		PlayerOutID:  req.PlayerOutID,
		FielderID:    req.FielderID,
		Declare:      req.Declare,
	}
	if input.ExtraType == "" {
		input.ExtraType = ExtraNone
	}
	if input.WicketType == "" {
		input.WicketType = WicketNone
	}

	unlock := sc.locker.Lock(matchID)
	defer unlock()

	var match *Match
	err := sc.repo.WithTransaction(func(repo ScoringRepository) error {
		var err error
		match, err = repo.GetMatchByID(matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return errMatchNotFound(matchID)
		}
		if err := RecordDelivery(match, input); err != nil {
			return err
		}
		return repo.SaveMatch(match)
	})
	if err != nil {
		respondScoringError(c, err)
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Delivery recorded successfully",
		"match":   match,
	})
}

// UndoLastDelivery godoc
// @Summary Undo the last delivery
// @Description Removes the most recent delivery and reverses all of its effects
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches/{id}/deliveries/last [delete]
func (sc *ScoringController) UndoLastDelivery(c *gin.Context) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return
	}

	unlock := sc.locker.Lock(matchID)
	defer unlock()

	var match *Match
	var result *UndoResult
	err := sc.repo.WithTransaction(func(repo ScoringRepository) error {
		var err error
		match, err = repo.GetMatchByID(matchID)
		if err != nil {
			return err
		}
		if match == nil {
			return errMatchNotFound(matchID)
		}
		result, err = UndoLastDelivery(match)
		if err != nil {
			return err
		}
		if err := repo.DeleteDelivery(result.Removed.ID); err != nil {
			return err
		}
		if result.DroppedInnings != nil {
			if err := repo.DeleteInnings(result.DroppedInnings.ID); err != nil {
				return err
			}
		}
		return repo.SaveMatch(match)
	})
	if err != nil {
		respondScoringError(c, err)
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Delivery undone successfully",
		"undone":  result.Removed,
		"match":   match,
	})
}

// --- Helpers ---

func parseMatchID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

func (sc *ScoringController) loadMatch(c *gin.Context) (*Match, bool) {
	matchID, ok := parseMatchID(c)
	if !ok {
		return nil, false
	}
	match, err := sc.repo.GetMatchByID(matchID)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch match: "+err.Error())
		return nil, false
	}
	if match == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Match not found")
		return nil, false
	}
	return match, true
}

func errMatchNotFound(id uint) error {
	return fmt.Errorf("%w: match %d not found", ErrNotFound, id)
}

// respondScoringError maps the engine's error classes onto HTTP statuses.
func respondScoringError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidReference):
		responses.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidState):
		responses.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrRuleViolation):
		responses.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		responses.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}
