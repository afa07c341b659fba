package handler

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// APIHandler serves the endpoint manifest at GET /api.
type APIHandler struct {
	manifest map[string]any
}

func NewAPIHandler() (*APIHandler, error) {
	var manifest map[string]any
	if err := json.Unmarshal(endpointsJSON, &manifest); err != nil {
		return nil, fmt.Errorf("parse endpoint manifest: %w", err)
	}
	return &APIHandler{manifest: manifest}, nil
}

func (h *APIHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Endpoints)
}

func (h *APIHandler) Endpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.manifest})
}
