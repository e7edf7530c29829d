package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// Error writes an error body and aborts the request. Messages are the
// client-facing taxonomy text, never internal error detail.
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, NewError(code, message))
}

// Unauthenticated writes the uniform 401 used for every authentication
// failure, with the challenge header the original token flow carries.
func Unauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, "could not validate credentials")
}
