// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Service handles cart business logic. Carts live in Redis keyed by
// session id, one cart per storefront session.
type Service struct {
	redisClient *redis.Client
	catalog     catalog.Provider
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, provider catalog.Provider, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		catalog:     provider,
		config:      cfg,
	}
}

// AddItemRequest represents an add-to-cart request. Selections maps a
// customization group id to the selected option ids within that group.
type AddItemRequest struct {
	ProductID  string              `json:"product_id" binding:"required"`
	Quantity   int                 `json:"quantity" binding:"required,min=1"`
	Selections map[string][]string `json:"selections,omitempty"`
}

// UpdateItemRequest represents a quantity update for a cart entry
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// CartResponse represents a cart with items and computed totals
type CartResponse struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Totals    Totals    `json:"totals"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetCart retrieves the cart for a session, creating an empty one if
// none exists yet
func (s *Service) GetCart(ctx context.Context, sessionID string) (*SessionCart, error) {
	key := s.cartKey(sessionID)

	data, err := s.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(s.config.Session.CartTTL),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var sessionCart SessionCart
	if err := json.Unmarshal([]byte(data), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &sessionCart, nil
}

// AddItem snapshots the product with the requested selections and
// appends it to the cart. Two adds of the same product create two
// independent entries.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*SessionCart, error) {
	product, ok := s.catalog.Product(req.ProductID)
	if !ok {
		return nil, fmt.Errorf("product not found: %s", req.ProductID)
	}

	selections, err := resolveSelections(product, req.Selections)
	if err != nil {
		return nil, err
	}

	sessionCart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionCart.Add(Item{
		ProductID:      product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Category:       product.Category,
		IsPopular:      product.IsPopular,
		Customizations: selections,
		Quantity:       req.Quantity,
		AddedAt:        time.Now().UTC(),
	})

	if err := s.saveCart(ctx, sessionCart); err != nil {
		return nil, err
	}
	return sessionCart, nil
}

// UpdateItem updates the quantity of the cart entry at index; a
// quantity of zero removes it
func (s *Service) UpdateItem(ctx context.Context, sessionID string, index, quantity int) (*SessionCart, error) {
	sessionCart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sessionCart.Items) {
		return nil, fmt.Errorf("cart item index out of range: %d", index)
	}

	sessionCart.UpdateQuantity(index, quantity)

	if err := s.saveCart(ctx, sessionCart); err != nil {
		return nil, err
	}
	return sessionCart, nil
}

// RemoveItem removes the cart entry at index
func (s *Service) RemoveItem(ctx context.Context, sessionID string, index int) (*SessionCart, error) {
	sessionCart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(sessionCart.Items) {
		return nil, fmt.Errorf("cart item index out of range: %d", index)
	}

	sessionCart.Remove(index)

	if err := s.saveCart(ctx, sessionCart); err != nil {
		return nil, err
	}
	return sessionCart, nil
}

// ClearCart deletes the session's cart. Clearing an already-empty cart
// is a no-op.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, s.cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Response builds the API representation of a cart
func (s *Service) Response(sessionCart *SessionCart) *CartResponse {
	items := sessionCart.Items
	if items == nil {
		items = []Item{}
	}
	return &CartResponse{
		SessionID: sessionCart.SessionID,
		Items:     items,
		Totals:    sessionCart.Totals(),
		UpdatedAt: sessionCart.UpdatedAt,
	}
}

func (s *Service) saveCart(ctx context.Context, sessionCart *SessionCart) error {
	sessionCart.UpdatedAt = time.Now().UTC()
	sessionCart.ExpiresAt = sessionCart.UpdatedAt.Add(s.config.Session.CartTTL)

	data, err := json.Marshal(sessionCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	key := s.cartKey(sessionCart.SessionID)
	if err := s.redisClient.Set(ctx, key, data, s.config.Session.CartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *Service) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// resolveSelections validates the requested option ids against the
// product's customization groups and snapshots the matching options.
// Required groups are not enforced here; the engine sums whatever
// selections it is given. Single-select groups reject more than one
// option.
func resolveSelections(product catalog.Product, selections map[string][]string) (map[string][]catalog.Option, error) {
	if len(selections) == 0 {
		return nil, nil
	}

	resolved := make(map[string][]catalog.Option)
	for groupID, optionIDs := range selections {
		if len(optionIDs) == 0 {
			continue
		}

		group, ok := product.Customization(groupID)
		if !ok {
			return nil, fmt.Errorf("unknown customization group: %s", groupID)
		}
		if group.Type.SingleSelect() && len(optionIDs) > 1 {
			return nil, fmt.Errorf("customization %s allows a single option", groupID)
		}

		options := make([]catalog.Option, 0, len(optionIDs))
		for _, optionID := range optionIDs {
			opt, ok := group.Option(optionID)
			if !ok {
				return nil, fmt.Errorf("unknown option %s in customization %s", optionID, groupID)
			}
			options = append(options, opt)
		}
		resolved[groupID] = options
	}
	return resolved, nil
}
