package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/nandanugg/geofence-events/module/core/domain"
)

type locationService interface {
	Ingest(ctx context.Context, sample domain.LocationSample) (domain.SampleResult, error)
	GetStatus(ctx context.Context, vehicleID string) (domain.VehicleState, error)
	ListZones(ctx context.Context) []domain.Zone
}

type locationRequest struct {
	VehicleID string     `json:"vehicle_id" binding:"required"`
	Latitude  *float64   `json:"latitude" binding:"required"`
	Longitude *float64   `json:"longitude" binding:"required"`
	Timestamp *time.Time `json:"timestamp" binding:"required"`
}

type zoneEventResponse struct {
	EventType domain.ZoneEventType `json:"event_type"`
	ZoneID    string               `json:"zone_id"`
	Timestamp time.Time            `json:"timestamp"`
}

type locationResponse struct {
	VehicleID     string              `json:"vehicle_id"`
	CurrentZoneID *string             `json:"current_zone_id"`
	Events        []zoneEventResponse `json:"events"`
}

type zoneStatusResponse struct {
	VehicleID     string    `json:"vehicle_id"`
	CurrentZoneID *string   `json:"current_zone_id"`
	LastLat       float64   `json:"last_lat"`
	LastLon       float64   `json:"last_lon"`
	LastTimestamp time.Time `json:"last_timestamp"`
}

type VehicleHandler struct {
	locationSvc locationService
}

func NewVehicleHandler(locationSvc locationService) *VehicleHandler {
	return &VehicleHandler{locationSvc: locationSvc}
}

func (h *VehicleHandler) Register(r *gin.RouterGroup) {
	r.POST("/events/location", h.PostLocation)
	r.GET("/vehicles/:vehicle_id/zone-status", h.GetZoneStatus)
	r.GET("/zones", h.GetZones)
}

func (h *VehicleHandler) PostLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.locationSvc.Ingest(c.Request.Context(), domain.LocationSample{
		VehicleID: req.VehicleID,
		Lat:       *req.Latitude,
		Lon:       *req.Longitude,
		Timestamp: *req.Timestamp,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		log.WithField("vehicle_id", req.VehicleID).Errorf("ingest location: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record location"})
		return
	}

	events := make([]zoneEventResponse, len(result.Events))
	for i, ev := range result.Events {
		events[i] = zoneEventResponse{EventType: ev.Type, ZoneID: ev.ZoneID, Timestamp: ev.Timestamp}
	}

	c.JSON(http.StatusOK, locationResponse{
		VehicleID:     result.VehicleID,
		CurrentZoneID: result.CurrentZoneID,
		Events:        events,
	})
}

func (h *VehicleHandler) GetZoneStatus(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	st, err := h.locationSvc.GetStatus(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicle status"})
		return
	}

	c.JSON(http.StatusOK, zoneStatusResponse{
		VehicleID:     st.VehicleID,
		CurrentZoneID: st.CurrentZoneID,
		LastLat:       st.LastLat,
		LastLon:       st.LastLon,
		LastTimestamp: st.LastTimestamp,
	})
}

func (h *VehicleHandler) GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.locationSvc.ListZones(c.Request.Context()))
}
