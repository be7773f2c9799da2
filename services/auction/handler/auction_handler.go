package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	auction "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/auctionService"
	model "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/services/auction/helpers"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

type AuctionServiceInterface interface {
	ListAuctions(ctx context.Context, filter auction.Filter) ([]model.AuctionItem, error)
	GetAuctionByID(ctx context.Context, auctionID string) (*model.AuctionItem, error)
	PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (model.AuctionItem, error)
	UpdateAuctionStatus(ctx context.Context, auctionID string, status model.AuctionStatus) (model.AuctionItem, error)
	CreateAuction(ctx context.Context, input auction.NewAuction) (model.AuctionItem, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid query parameter")
		utils.Warn("ListAuctionsHandler: invalid query parameter", map[string]any{"error": err.Error()})
		return
	}

	items, err := h.service.ListAuctions(c.Request.Context(), filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	now := time.Now()
	resp := make([]helpers.AuctionResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, helpers.NewAuctionResponse(item, now))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"count": len(resp),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	item, err := h.service.GetAuctionByID(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}
	if item == nil {
		utils.JSONError(c, http.StatusNotFound, fmt.Errorf("auction %s not found", auctionID), "auction not found")
		utils.Info("GetAuctionHandler: auction not found", map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(*item, time.Now()), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": item.AuctionID,
		"bid_count":  len(item.Bids),
	})
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	item, err := h.service.PlaceBid(c.Request.Context(), auctionID, req.UserID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": auctionID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(item, time.Now()), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":    item.AuctionID,
		"user_id":       req.UserID,
		"amount":        req.Amount.String(),
		"current_price": item.CurrentPrice.String(),
	})
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	item, err := h.service.CreateAuction(c.Request.Context(), auction.NewAuction{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Condition:     req.Condition,
		Featured:      req.Featured,
		Images:        req.Images,
		StartingPrice: req.StartingPrice,
		EndDate:       req.EndDate,
		SellerID:      req.SellerID,
		Status:        model.AuctionStatus(req.Status),
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"seller_id": req.SellerID,
			"title":     req.Title,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionResponse(item, time.Now()), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": item.AuctionID,
		"seller_id":  item.SellerID,
	})
}

// UpdateStatusHandler handles PATCH /auctions/:auction_id/status
func (h *AuctionHandler) UpdateStatusHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	item, err := h.service.UpdateAuctionStatus(c.Request.Context(), auctionID, model.AuctionStatus(req.Status))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateStatusHandler: failed to update status", map[string]any{
			"auction_id": auctionID,
			"status":     req.Status,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(item, time.Now()), "auction status updated successfully")
	helpers.LogSuccess("UpdateStatusHandler", "auction status updated successfully", map[string]any{
		"auction_id": item.AuctionID,
		"status":     string(item.Status),
	})
}

// parseFilter builds a ledger filter from list query parameters
func parseFilter(c *gin.Context) (auction.Filter, error) {
	var filter auction.Filter

	filter.Category = c.Query("category")
	filter.SellerID = c.Query("seller")
	filter.Search = c.Query("search")

	if v := c.Query("status"); v != "" {
		status := model.AuctionStatus(v)
		if !status.Valid() {
			return auction.Filter{}, fmt.Errorf("unknown status %q", v)
		}
		filter.Status = status
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return auction.Filter{}, fmt.Errorf("featured must be a boolean, got %q", v)
		}
		filter.Featured = &b
	}
	if v := c.Query("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return auction.Filter{}, fmt.Errorf("min_price must be a number, got %q", v)
		}
		filter.MinPrice = &d
	}
	if v := c.Query("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return auction.Filter{}, fmt.Errorf("max_price must be a number, got %q", v)
		}
		filter.MaxPrice = &d
	}

	return filter, nil
}
