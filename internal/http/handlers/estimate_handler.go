// README: JSON API for quotes and tips.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mftnb/internal/modules/estimate"
	"mftnb/internal/modules/tips"
)

type EstimateHandler struct {
	estimate *estimate.Service
}

func NewEstimateHandler(svc *estimate.Service) *EstimateHandler {
	return &EstimateHandler{estimate: svc}
}

type estimateReq struct {
	Bedrooms          int     `json:"bedrooms" binding:"min=0"`
	StairsOrigin      int     `json:"stairs_origin" binding:"min=0"`
	StairsDestination int     `json:"stairs_destination" binding:"min=0"`
	HeavyItems        int     `json:"heavy_items" binding:"min=0"`
	DistanceKm        float64 `json:"distance_km" binding:"min=0,max=20000"`
	PeakSeason        *bool   `json:"peak_season"`
	MoveDate          string  `json:"move_date"`
}

type estimateResp struct {
	Quote     estimate.Quote     `json:"quote"`
	Breakdown estimate.Breakdown `json:"breakdown"`
}

// Create prices a move. peak_season wins over move_date when both are sent.
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	move := estimate.MoveRequest{
		Bedrooms:          req.Bedrooms,
		StairsOrigin:      req.StairsOrigin,
		StairsDestination: req.StairsDestination,
		HeavyItems:        req.HeavyItems,
		DistanceKm:        req.DistanceKm,
		PeakSeason:        estimate.IsPeakSeason(req.MoveDate),
	}
	if req.PeakSeason != nil {
		move.PeakSeason = *req.PeakSeason
	}
	writeJSON(c, http.StatusOK, estimateResp{
		Quote:     h.estimate.Quote(c.Request.Context(), move),
		Breakdown: estimate.Explain(move),
	})
}

type TipsHandler struct {
	tips *tips.Service
}

func NewTipsHandler(svc *tips.Service) *TipsHandler {
	return &TipsHandler{tips: svc}
}

func (h *TipsHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"tips": h.tips.List(c.Request.Context())})
}
