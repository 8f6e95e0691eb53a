package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// View types are the JSON shapes the API returns. They flatten the derived
// entity attributes (sale state, stock state, rating aggregates) so clients
// never recompute them.

// CategoryView is the JSON representation of a category.
type CategoryView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VariantView is the JSON representation of a product variant.
type VariantView struct {
	ID                 uuid.UUID        `json:"id"`
	ProductID          uuid.UUID        `json:"product_id"`
	SKU                string           `json:"sku"`
	Size               string           `json:"size,omitempty"`
	Color              string           `json:"color,omitempty"`
	Price              decimal.Decimal  `json:"price"`
	CompareAtPrice     *decimal.Decimal `json:"compare_at_price,omitempty"`
	IsOnSale           bool             `json:"is_on_sale"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	InventoryQuantity  int              `json:"inventory_quantity"`
	IsInStock          bool             `json:"is_in_stock"`
	IsLowStock         bool             `json:"is_low_stock"`
}

// ImageView is the JSON representation of a product image.
type ImageView struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text,omitempty"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order"`
}

// ReviewView is the JSON representation of a product review.
type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductView is the JSON representation of a product, including its derived
// aggregates. Variants, images and reviews are present only when preloaded.
type ProductView struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Description   string               `json:"description,omitempty"`
	CategoryID    uuid.UUID            `json:"category_id"`
	CategoryName  string               `json:"category_name,omitempty"`
	Status        entity.ProductStatus `json:"status"`
	IsInStock     bool                 `json:"is_in_stock"`
	AverageRating float64              `json:"average_rating"`
	ReviewCount   int                  `json:"review_count"`
	MainImageURL  string               `json:"main_image_url,omitempty"`
	Variants      []*VariantView       `json:"variants,omitempty"`
	Images        []*ImageView         `json:"images,omitempty"`
	Reviews       []*ReviewView        `json:"reviews,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ProductPageView is a page of products plus pagination metadata.
type ProductPageView struct {
	Items    []*ProductView `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// CartItemView is the JSON representation of a cart line, priced live from
// the variant's current price.
type CartItemView struct {
	ID          uuid.UUID       `json:"id"`
	VariantID   uuid.UUID       `json:"variant_id"`
	ProductName string          `json:"product_name,omitempty"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// CartView is the JSON representation of a cart with its derived totals.
type CartView struct {
	ID          uuid.UUID       `json:"id"`
	Items       []*CartItemView `json:"items"`
	TotalItems  int             `json:"total_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItemView is the JSON representation of an order line with its frozen
// unit price.
type OrderItemView struct {
	ID          uuid.UUID       `json:"id"`
	VariantID   uuid.UUID       `json:"variant_id"`
	ProductName string          `json:"product_name,omitempty"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderView is the JSON representation of an order.
type OrderView struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	Status          entity.OrderStatus `json:"status"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	ShippingAddress string             `json:"shipping_address"`
	Phone           string             `json:"phone"`
	Items           []*OrderItemView   `json:"items,omitempty"`
	Payment         *PaymentView       `json:"payment,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// OrderPageView is a page of orders plus pagination metadata.
type OrderPageView struct {
	Items    []*OrderView `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// PaymentView is the JSON representation of a payment.
type PaymentView struct {
	ID            uuid.UUID            `json:"id"`
	OrderID       uuid.UUID            `json:"order_id"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	Amount        decimal.Decimal      `json:"amount"`
	TransactionID string               `json:"transaction_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// WishlistView is the JSON representation of a wishlist entry.
type WishlistView struct {
	ID        uuid.UUID    `json:"id"`
	ProductID uuid.UUID    `json:"product_id"`
	Product   *ProductView `json:"product,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func toCategoryView(c *entity.Category) *CategoryView {
	return &CategoryView{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func toVariantView(v *entity.ProductVariant) *VariantView {
	return &VariantView{
		ID:                 v.ID,
		ProductID:          v.ProductID,
		SKU:                v.SKU,
		Size:               v.Size,
		Color:              v.Color,
		Price:              v.Price,
		CompareAtPrice:     v.CompareAtPrice,
		IsOnSale:           v.IsOnSale(),
		DiscountPercentage: v.DiscountPercentage(),
		InventoryQuantity:  v.InventoryQuantity,
		IsInStock:          v.IsInStock(),
		IsLowStock:         v.IsLowStock(),
	}
}

func toImageView(img *entity.ProductImage) *ImageView {
	return &ImageView{
		ID:        img.ID,
		URL:       img.URL,
		AltText:   img.AltText,
		IsMain:    img.IsMain,
		SortOrder: img.SortOrder,
	}
}

func toReviewView(r *entity.ProductReview) *ReviewView {
	return &ReviewView{
		ID:        r.ID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func toProductView(p *entity.Product) *ProductView {
	view := &ProductView{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		Status:        p.Status,
		IsInStock:     p.IsInStock(),
		AverageRating: p.AverageRating(),
		ReviewCount:   p.ReviewCount(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	for _, v := range p.Variants {
		view.Variants = append(view.Variants, toVariantView(v))
	}

	for _, img := range p.Images {
		view.Images = append(view.Images, toImageView(img))
		if img.IsMain {
			view.MainImageURL = img.URL
		}
	}

	// Fall back to the first image when none is flagged as main.
	if view.MainImageURL == "" && len(p.Images) > 0 {
		view.MainImageURL = p.Images[0].URL
	}

	for _, r := range p.Reviews {
		view.Reviews = append(view.Reviews, toReviewView(r))
	}

	return view
}

func toProductPageView(page *usecase.ProductPage) *ProductPageView {
	view := &ProductPageView{
		Items:    make([]*ProductView, 0, len(page.Items)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	for _, p := range page.Items {
		view.Items = append(view.Items, toProductView(p))
	}

	return view
}

func toCartItemView(item *entity.CartItem) *CartItemView {
	view := &CartItemView{
		ID:         item.ID,
		VariantID:  item.VariantID,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}

	if item.Variant != nil {
		view.ProductName = item.Variant.ProductName()
		view.Size = item.Variant.Size
		view.UnitPrice = item.Variant.Price
	}

	return view
}

func toCartView(cart *entity.Cart) *CartView {
	view := &CartView{
		ID:          cart.ID,
		Items:       make([]*CartItemView, 0, len(cart.Items)),
		TotalItems:  cart.TotalItems(),
		TotalAmount: cart.TotalAmount(),
		UpdatedAt:   cart.UpdatedAt,
	}

	for _, item := range cart.Items {
		view.Items = append(view.Items, toCartItemView(item))
	}

	return view
}

func toOrderItemView(item *entity.OrderItem) *OrderItemView {
	view := &OrderItemView{
		ID:         item.ID,
		VariantID:  item.VariantID,
		Quantity:   item.Quantity,
		Price:      item.Price,
		TotalPrice: item.TotalPrice(),
	}

	if item.Variant != nil {
		view.ProductName = item.Variant.ProductName()
		view.Size = item.Variant.Size
	}

	return view
}

func toOrderView(order *entity.Order) *OrderView {
	view := &OrderView{
		ID:              order.ID,
		UserID:          order.UserID,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		Phone:           order.Phone,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, toOrderItemView(item))
	}

	if order.Payment != nil {
		view.Payment = toPaymentView(order.Payment)
	}

	return view
}

func toOrderPageView(page *usecase.OrderPage) *OrderPageView {
	view := &OrderPageView{
		Items:    make([]*OrderView, 0, len(page.Items)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}

	for _, o := range page.Items {
		view.Items = append(view.Items, toOrderView(o))
	}

	return view
}

func toPaymentView(p *entity.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Method:        p.Method,
		Status:        p.Status,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toWishlistView(w *entity.Wishlist) *WishlistView {
	view := &WishlistView{
		ID:        w.ID,
		ProductID: w.ProductID,
		CreatedAt: w.CreatedAt,
	}

	if w.Product != nil {
		view.Product = toProductView(w.Product)
	}

	return view
}
