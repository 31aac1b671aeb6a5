package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Health check
// @Tags home
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHome(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
