package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope every endpoint returns.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status": status,
		"error":  message,
	})
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request format")
		return err
	}
	return nil
}

// idParam parses the numeric :id (or other named) path parameter.
type idParam struct {
	ID int `uri:"id" binding:"required"`
}

func bindIDParam(c *gin.Context) (int, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return p.ID, true
}
