package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.UnknownItemError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.DuplicateItemError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.OutOfStockError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InsufficientBalanceError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.UnauthorizedError{}):
		c.JSON(http.StatusForbidden, gin.H{"errors": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
