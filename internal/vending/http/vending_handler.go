package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mumeireplit/vending/internal/vending/domain"
)

const ItemNameKey = "item"

type PurchaseService interface {
	BuyItem(ctx context.Context, userID string, itemName string) (domain.Receipt, error)
}

type InfoService interface {
	GetBalance(ctx context.Context, userID string) (uint32, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}

type itemView struct {
	Name  string `json:"name"`
	Price uint32 `json:"price"`
	Stock int    `json:"stock"`
}

type receiptView struct {
	ReceiptID      string `json:"receiptId"`
	Item           string `json:"item"`
	PricePaid      uint32 `json:"pricePaid"`
	NewBalance     uint32 `json:"newBalance"`
	RemainingStock int    `json:"remainingStock"`
	SecretIssued   bool   `json:"secretIssued"`
}

type VendingHandler struct {
	purchases PurchaseService
	info      InfoService
}

func NewVendingHandler(purchases PurchaseService, info InfoService) *VendingHandler {
	return &VendingHandler{
		purchases: purchases,
		info:      info,
	}
}

func (h *VendingHandler) Keepalive(c *gin.Context) {
	c.String(http.StatusOK, "Bot is running!")
}

func (h *VendingHandler) ListItems(c *gin.Context) {
	items, err := h.info.ListItems(c)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{Name: item.Name, Price: item.Price, Stock: item.Stock})
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}

func (h *VendingHandler) GetBalance(c *gin.Context) {
	balance, err := h.info.GetBalance(c, userIDFromContext(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// BuyItem returns the receipt without the secret itself; the secret travels
// through the courier so it only ever reaches the buyer privately.
func (h *VendingHandler) BuyItem(c *gin.Context) {
	itemName := c.Param(ItemNameKey)

	receipt, err := h.purchases.BuyItem(c, userIDFromContext(c), itemName)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, receiptView{
		ReceiptID:      receipt.ID,
		Item:           receipt.ItemName,
		PricePaid:      receipt.PricePaid,
		NewBalance:     receipt.NewBalance,
		RemainingStock: receipt.RemainingStock,
		SecretIssued:   receipt.SecretIssued,
	})
}
