package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bistro/internal/domain"
	apperrors "bistro/internal/errors"
	"bistro/internal/restaurant/service"
)

type RestaurantService interface {
	RegisterRestaurant(ctx context.Context, restaurant domain.Restaurant) (*domain.Restaurant, error)
	GetRestaurantDetails(ctx context.Context, restaurantID int64) (*domain.Restaurant, error)
	GetAllRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	UpdateRestaurantDetails(ctx context.Context, restaurantID int64, patch service.RestaurantPatch) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID int64) error
	GetRestaurantMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error)
	AddMenuItemToRestaurant(ctx context.Context, restaurantID int64, item domain.MenuItem) (*domain.MenuItem, error)
	GetMenuItem(ctx context.Context, restaurantID, menuItemID int64) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, restaurantID, menuItemID int64, updated domain.MenuItem) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, restaurantID, menuItemID int64) error
}

type RestaurantController struct {
	service RestaurantService
	logger  *zap.Logger
}

func NewRestaurantController(service RestaurantService, logger *zap.Logger) *RestaurantController {
	return &RestaurantController{
		service: service,
		logger:  logger,
	}
}

type createRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type updateRestaurantRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

type restaurantResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

type menuItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type menuItemResponse struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

func newRestaurantResponse(restaurant domain.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Address:     restaurant.Address,
		PhoneNumber: restaurant.PhoneNumber,
		CreatedAt:   restaurant.CreatedAt,
	}
}

func newMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:           item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
	}
}

func (c *RestaurantController) Register(w http.ResponseWriter, r *http.Request) {
	var req createRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	restaurant, err := c.service.RegisterRestaurant(r.Context(), domain.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, newRestaurantResponse(*restaurant))
}

func (c *RestaurantController) Get(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantDetails(r.Context(), restaurantID)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, newRestaurantResponse(*restaurant))
}

func (c *RestaurantController) List(w http.ResponseWriter, r *http.Request) {
	restaurants, err := c.service.GetAllRestaurants(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	responses := make([]restaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, newRestaurantResponse(restaurant))
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *RestaurantController) Update(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}

	var req updateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	restaurant, err := c.service.UpdateRestaurantDetails(r.Context(), restaurantID, service.RestaurantPatch{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, newRestaurantResponse(*restaurant))
}

func (c *RestaurantController) Delete(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(r.Context(), restaurantID); err != nil {
		c.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *RestaurantController) GetMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}

	items, err := c.service.GetRestaurantMenu(r.Context(), restaurantID)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	responses := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, newMenuItemResponse(item))
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *RestaurantController) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	item, err := c.service.AddMenuItemToRestaurant(r.Context(), restaurantID, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, newMenuItemResponse(*item))
}

func (c *RestaurantController) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}
	menuItemID, ok := c.parsePathID(w, r, "itemID")
	if !ok {
		return
	}

	item, err := c.service.GetMenuItem(r.Context(), restaurantID, menuItemID)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, newMenuItemResponse(*item))
}

func (c *RestaurantController) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}
	menuItemID, ok := c.parsePathID(w, r, "itemID")
	if !ok {
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	item, err := c.service.UpdateMenuItem(r.Context(), restaurantID, menuItemID, domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, newMenuItemResponse(*item))
}

func (c *RestaurantController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := c.parsePathID(w, r, "restaurantID")
	if !ok {
		return
	}
	menuItemID, ok := c.parsePathID(w, r, "itemID")
	if !ok {
		return
	}

	if err := c.service.DeleteMenuItem(r.Context(), restaurantID, menuItemID); err != nil {
		c.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *RestaurantController) parsePathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.writeValidationError(w, "invalid "+param, apperrors.ValidationDetail{
			Field:   param,
			Message: param + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *RestaurantController) handleServiceError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsBadRequestError(err); ok {
		c.writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	if _, ok := apperrors.IsForbiddenError(err); ok {
		c.writeError(w, http.StatusForbidden, "FORBIDDEN", err.Error())
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *RestaurantController) writeError(w http.ResponseWriter, status int, code, message string) {
	c.writeJSON(w, status, errorResponse{
		Error:   code,
		Message: message,
	})
}

func (c *RestaurantController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *RestaurantController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
