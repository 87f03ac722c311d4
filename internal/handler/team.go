package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/service"
	"github.com/Priyank118/fdanalytics/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.POST("", h.create)
		// Use a stable wildcard name (team_id) so nested routes (matches, dashboard) can reuse it without Gin conflicts.
		g.GET("/:team_id", h.getByID)
		g.PUT("/:team_id/roster", h.replaceRoster)
	}
}

type rosterEntry struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type createTeamRequest struct {
	Name    string        `json:"name"`
	Players []rosterEntry `json:"players"`
}

type replaceRosterRequest struct {
	Players []rosterEntry `json:"players"`
}

func toPlayers(entries []rosterEntry) []model.Player {
	out := make([]model.Player, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.Player{Name: e.Name, Role: model.Role(e.Role)})
	}
	return out
}

func (h *TeamHandler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name, toPlayers(req.Players))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	team, err := h.svc.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) replaceRoster(c *gin.Context) {
	var req replaceRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.ReplaceRoster(c.Request.Context(), c.Param("team_id"), toPlayers(req.Players))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}
