package handlers

import (
	"hoteldisplay/core"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes the {"error": message} envelope. Server-side failures
// are also logged since clients only see the message.
func respondError(c *gin.Context, status int, err error) {
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// respondServiceError maps err to a status via core.StatusCode.
func respondServiceError(c *gin.Context, err error) {
	respondError(c, core.StatusCode(err), err)
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
