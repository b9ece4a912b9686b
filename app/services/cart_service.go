package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/repositories"
)

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

func (s *CartService) GetCartForUser(ctx context.Context, userID string) (*models.ShoppingCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

// AddItem adds the product to the user's cart; an existing line for the same
// product has its quantity incremented instead of a second line appearing.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.ShoppingCart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d: %w", quantity, ErrInvalidArguments)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, ErrProductNotFound)
	}

	existing, err := s.cartItemRepo.GetByCartAndProduct(ctx, cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		item := &models.CartItem{
			ID:             uuid.New().String(),
			ShoppingCartID: cart.ID,
			ProductID:      productID,
			Quantity:       quantity,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
		if err := s.cartItemRepo.Add(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

// UpdateItemQuantity sets the line quantity; zero or less removes the line.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.ShoppingCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	item, err := s.cartItemRepo.GetByCartAndProduct(ctx, cart.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("product %s not in cart: %w", productID, ErrProductNotFound)
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.ShoppingCart, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if err := s.cartItemRepo.Delete(ctx, cart.ID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) ItemCount(ctx context.Context, cartID string) (int, error) {
	return s.cartRepo.GetCartItemCount(ctx, cartID)
}
