package httpapi

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/campusmap/campus"
)

var (
	errMissingParam = errors.New("missing required parameter")
	errBadSpeed     = errors.New("speed must be a positive number")
)

type distanceResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Meters float64 `json:"meters"`
	Known  bool    `json:"known"`
}

type routeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	campus.Route
}

type itineraryRequest struct {
	Stops []string `json:"stops" binding:"required"`
	Speed float64  `json:"speed"`
}

type edgeRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Meters *float64 `json:"meters" binding:"required"`
}

func (h *Handlers) handleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.graph.Locations()})
}

func (h *Handlers) handleNeighbors(c *gin.Context) {
	loc := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"location": loc, "neighbors": h.graph.Neighbors(loc)})
}

func (h *Handlers) handleDistance(c *gin.Context) {
	from, to, err := endpoints(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, distanceResponse{
		From:   from,
		To:     to,
		Meters: h.graph.Distance(from, to),
		Known:  from == to || h.graph.HasEdge(from, to),
	})
}

func (h *Handlers) handleRoute(c *gin.Context) {
	from, to, err := endpoints(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	speed, err := h.querySpeed(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	route := h.graph.ShortestPath(from, to, campus.WithSpeed(speed))
	if !route.Found {
		h.logger.Debug("no route", "from", from, "to", to)
	}
	c.JSON(http.StatusOK, routeResponse{From: from, To: to, Route: route})
}

func (h *Handlers) handleReachable(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		badRequest(c, fmt.Errorf("%w: from", errMissingParam))
		return
	}
	minutes, err := strconv.ParseFloat(c.Query("minutes"), 64)
	if err != nil || minutes < 0 || math.IsNaN(minutes) {
		badRequest(c, fmt.Errorf("minutes must be a non-negative number"))
		return
	}
	speed, err := h.querySpeed(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":  from,
		"reach": h.graph.WithinWalk(from, minutes, campus.WithSpeed(speed)),
	})
}

func (h *Handlers) handleItinerary(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	speed := h.speed
	if req.Speed != 0 {
		if !validSpeed(req.Speed) {
			badRequest(c, errBadSpeed)
			return
		}
		speed = req.Speed
	}

	c.JSON(http.StatusOK, h.graph.Itinerary(req.Stops, campus.WithSpeed(speed)))
}

func (h *Handlers) handleAddEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.graph.AddEdge(req.From, req.To, *req.Meters); err != nil {
		badRequest(c, err)
		return
	}

	h.logger.Info("edge stored", "from", req.From, "to", req.To, "meters", *req.Meters)
	c.Status(http.StatusNoContent)
}

// endpoints reads the required from/to query parameters.
func endpoints(c *gin.Context) (string, string, error) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" {
		return "", "", fmt.Errorf("%w: from", errMissingParam)
	}
	if to == "" {
		return "", "", fmt.Errorf("%w: to", errMissingParam)
	}
	return from, to, nil
}

// querySpeed reads the optional speed parameter, defaulting to the handler speed.
func (h *Handlers) querySpeed(c *gin.Context) (float64, error) {
	raw := c.Query("speed")
	if raw == "" {
		return h.speed, nil
	}
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil || !validSpeed(speed) {
		return 0, errBadSpeed
	}
	return speed, nil
}

func validSpeed(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
