package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness of the console process.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
