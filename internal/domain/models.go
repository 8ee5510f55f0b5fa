package domain

import "time"

type Category string

const (
	CategoryBurgers  Category = "Burgers"
	CategoryPizzas   Category = "Pizzas"
	CategoryDrinks   Category = "Drinks"
	CategoryDesserts Category = "Desserts"
)

// Categories lists every valid menu category in display order.
var Categories = []Category{CategoryBurgers, CategoryPizzas, CategoryDrinks, CategoryDesserts}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivered:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentOnline         PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentOnline
}

type Audience string

const (
	AudienceAll    Audience = "all"
	AudienceOnline Audience = "online"
)

func (a Audience) Valid() bool {
	return a == AudienceAll || a == AudienceOnline
}

type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Password string    `json:"-"`
	IsAdmin  bool      `json:"is_admin"`
	IsOnline bool      `json:"is_online"`
	LastSeen time.Time `json:"last_seen"`
}

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// CartLine is a value copy of a MenuItem plus a quantity. Quantity is
// always >= 1 while the line exists; a decrement to zero removes it.
type CartLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

func (l CartLine) Extension() float64 {
	return l.Price * float64(l.Quantity)
}

// Customer is the point-in-time copy of the ordering user's contact
// details. It never references the live User record.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderLine is the checkout-time snapshot of a CartLine. Editing or
// deleting the catalog item afterwards must not change it.
type OrderLine struct {
	ItemID      string   `json:"item_id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Quantity    int      `json:"quantity"`
}

func (l OrderLine) Extension() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	ID            string        `json:"id"`
	Customer      Customer      `json:"customer"`
	Address       string        `json:"address"`
	Items         []OrderLine   `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	PlacedAt      time.Time     `json:"placed_at"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Audience  Audience  `json:"audience"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderStatusAudit records an admin status change on an order.
type OrderStatusAudit struct {
	OrderID   string      `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
}

// Session is the single browsing session of the storefront. Identity is
// cleared on logout; page, category filter and admin tab persist.
type Session struct {
	CurrentUser      *User    `json:"current_user,omitempty"`
	Page             string   `json:"page"`
	SelectedCategory Category `json:"selected_category"`
	AdminTab         string   `json:"admin_tab"`
}

func (s Session) Authenticated() bool {
	return s.CurrentUser != nil
}

func (s Session) IsAdmin() bool {
	return s.CurrentUser != nil && s.CurrentUser.IsAdmin
}

type SiteConfig struct {
	Name           string  `json:"name"`
	Logo           string  `json:"logo"`
	Tagline        string  `json:"tagline"`
	DeliveryFee    float64 `json:"delivery_fee"`
	WhatsAppNumber string  `json:"whatsapp_number"`
}
