package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

const TargetUserKey = "id"

type AdminService interface {
	CreditUser(ctx context.Context, actorID string, targetID string, amount uint32) (uint32, error)
	CreateItem(ctx context.Context, actorID string, name string, price uint32, stock int) error
	DeleteItem(ctx context.Context, actorID string, name string) error
	AdjustStock(ctx context.Context, actorID string, name string, stock int) error
	AdjustPrice(ctx context.Context, actorID string, name string, price uint32) error
	AddSecrets(ctx context.Context, actorID string, name string, entries []domain.SecretEntry) (added int, total int, err error)
}

type creditRequestBody struct {
	Amount uint32 `json:"amount" binding:"required,gt=0"`
}

type createItemRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Price uint32 `json:"price" binding:"required,gt=0"`
	Stock *int   `json:"stock" binding:"omitempty,gte=0"`
}

type adjustItemRequestBody struct {
	Price *uint32 `json:"price" binding:"omitempty,gt=0"`
	Stock *int    `json:"stock" binding:"omitempty,gte=0"`
}

type addSecretsRequestBody struct {
	Entries []string `json:"entries" binding:"required"`
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

func (h *AdminHandler) CreditUser(c *gin.Context) {
	var body creditRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	balance, err := h.service.CreditUser(c, userIDFromContext(c), c.Param(TargetUserKey), body.Amount)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

func (h *AdminHandler) CreateItem(c *gin.Context) {
	var body createItemRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	stock := domain.DefaultStock
	if body.Stock != nil {
		stock = *body.Stock
	}

	err := h.service.CreateItem(c, userIDFromContext(c), body.Name, body.Price, stock)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, itemView{Name: body.Name, Price: body.Price, Stock: stock})
}

func (h *AdminHandler) DeleteItem(c *gin.Context) {
	err := h.service.DeleteItem(c, userIDFromContext(c), c.Param(ItemNameKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) AdjustItem(c *gin.Context) {
	var body adjustItemRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	if body.Price == nil && body.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "nothing to adjust"})
		return
	}

	actorID := userIDFromContext(c)
	itemName := c.Param(ItemNameKey)

	if body.Price != nil {
		if err := h.service.AdjustPrice(c, actorID, itemName, *body.Price); err != nil {
			handleDomainError(c, err)
			return
		}
	}

	if body.Stock != nil {
		if err := h.service.AdjustStock(c, actorID, itemName, *body.Stock); err != nil {
			handleDomainError(c, err)
			return
		}
	}

	c.Status(http.StatusOK)
}

func (h *AdminHandler) AddSecrets(c *gin.Context) {
	var body addSecretsRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	entries := parseSecretEntries(body.Entries)

	added, total, err := h.service.AddSecrets(c, userIDFromContext(c), c.Param(ItemNameKey), entries)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added, "total": total})
}

// parseSecretEntries splits "tag:content" submissions. The tag is accepted
// and dropped, entries without a separator are ignored; empty contents are
// weeded out further down by the vault.
func parseSecretEntries(raw []string) []domain.SecretEntry {
	entries := make([]domain.SecretEntry, 0, len(raw))
	for _, line := range raw {
		tag, content, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		entries = append(entries, domain.SecretEntry{Tag: tag, Content: content})
	}

	return entries
}
