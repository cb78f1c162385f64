package handlers

import "github.com/gin-gonic/gin"

// Response is the uniform envelope every /api endpoint returns. The
// storefront depends on this exact shape.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(201, Response{Success: true, Message: message, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

func respondStoreError(c *gin.Context, message string, err error) {
	c.JSON(500, Response{Success: false, Message: message, Error: err.Error()})
}
