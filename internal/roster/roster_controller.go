package roster

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gullyscore/gully/pkg/responses"
)

// RosterController handles team and player management requests.
type RosterController struct {
	repo RosterRepository
}

func NewRosterController(repo RosterRepository) *RosterController {
	return &RosterController{repo: repo}
}

// --- DTOs for requests ---

type CreatePlayerInput struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	IsCaptain bool   `json:"is_captain"`
}

type CreateTeamRequest struct {
	Name    string              `json:"name" binding:"required,min=1,max=100"`
	Players []CreatePlayerInput `json:"players" binding:"required,min=2,dive"`
}

type AddPlayerRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	IsCaptain bool   `json:"is_captain"`
}

// CreateTeam creates a team with its full roster.
// @Summary Create a team with players
// @Tags roster
// @Accept json
// @Produce json
// @Param request body CreateTeamRequest true "team and roster"
// @Success 201 {object} Team
// @Router /teams [post]
func (rc *RosterController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	team := Team{Name: req.Name}
	for i, p := range req.Players {
		team.Players = append(team.Players, Player{
			Name:         p.Name,
			IsCaptain:    p.IsCaptain,
			BattingOrder: i + 1,
		})
	}

	if err := rc.repo.CreateTeam(&team); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Team created successfully",
		"team":    team,
	})
}

// GetTeams lists teams with pagination.
// @Summary List teams
// @Tags roster
// @Produce json
// @Success 200 {array} Team
// @Router /teams [get]
func (rc *RosterController) GetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	teams, total, err := rc.repo.GetTeams(page, pageSize)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch teams: "+err.Error())
		return
	}

	responses.PaginatedResponse(c, http.StatusOK, teams, page, pageSize, total)
}

// GetTeamByID retrieves a specific team and its roster.
// @Summary Get a team by ID
// @Tags roster
// @Produce json
// @Param id path int true "team ID"
// @Success 200 {object} Team
// @Router /teams/{id} [get]
func (rc *RosterController) GetTeamByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := rc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	responses.SuccessResponse(c, http.StatusOK, team)
}

// AddPlayer appends a player to the end of a team's batting card.
// @Summary Add a player to a team
// @Tags roster
// @Accept json
// @Produce json
// @Param id path int true "team ID"
// @Param request body AddPlayerRequest true "player"
// @Success 201 {object} Player
// @Router /teams/{id}/players [post]
func (rc *RosterController) AddPlayer(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := rc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	var req AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	player := Player{
		Name:         req.Name,
		TeamID:       team.ID,
		IsCaptain:    req.IsCaptain,
		BattingOrder: len(team.Players) + 1,
	}
	if err := rc.repo.AddPlayer(&player); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to add player: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Player added successfully",
		"player":  player,
	})
}

// DeleteTeam removes a team and its roster.
// @Summary Delete a team
// @Tags roster
// @Produce json
// @Param id path int true "team ID"
// @Success 200 {object} map[string]interface{}
// @Router /teams/{id} [delete]
func (rc *RosterController) DeleteTeam(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		responses.ErrorResponse(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := rc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	if team == nil {
		responses.ErrorResponse(c, http.StatusNotFound, "Team not found")
		return
	}

	if err := rc.repo.DeleteTeam(uint(id)); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete team: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Team deleted successfully",
	})
}
