package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Priyank118/fdanalytics/internal/model"
	"github.com/Priyank118/fdanalytics/internal/repository"
	"github.com/Priyank118/fdanalytics/internal/service"
	"github.com/Priyank118/fdanalytics/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	teams := r.Group("/teams/:team_id/matches")
	{
		teams.POST("", h.save)
		teams.GET("", h.list)
	}
	matches := r.Group("/matches")
	{
		matches.GET("/:match_id", h.getByID)
		matches.DELETE("/:match_id", h.delete)
	}
}

type statLineRequest struct {
	Name         string `json:"name"`
	Kills        int    `json:"kills"`
	Assists      int    `json:"assists"`
	Damage       int    `json:"damage"`
	SurvivalTime string `json:"survivalTime"`
	Revives      int    `json:"revives"`
}

type saveMatchRequest struct {
	Map             string            `json:"map"`
	Placement       int               `json:"placement"`
	TotalTeamKills  int               `json:"totalTeamKills"`
	TotalTeamDamage int               `json:"totalTeamDamage"`
	Players         []statLineRequest `json:"players"`
}

func (h *MatchHandler) save(c *gin.Context) {
	var req saveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}

	in := model.MatchSummary{
		Map:             req.Map,
		Placement:       req.Placement,
		TotalTeamKills:  req.TotalTeamKills,
		TotalTeamDamage: req.TotalTeamDamage,
	}
	for _, p := range req.Players {
		in.Players = append(in.Players, model.PlayerStat{
			Name:         p.Name,
			Kills:        p.Kills,
			Assists:      p.Assists,
			Damage:       p.Damage,
			SurvivalTime: p.SurvivalTime,
			Revives:      p.Revives,
		})
	}

	match, err := h.svc.SaveMatch(c.Request.Context(), c.Param("team_id"), in)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	page := repository.Page{Limit: limit, Offset: offset}
	res, err := h.svc.ListMatches(c.Request.Context(), c.Param("team_id"), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	match, err := h.svc.GetMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) delete(c *gin.Context) {
	if err := h.svc.DeleteMatch(c.Request.Context(), c.Param("match_id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
