// Package bootstrap fills the store with synthetic data before first
// render: one admin account, a starter catalog and a handful of
// historical orders. Everything is generated in memory at startup.
package bootstrap

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
	"github.com/shadow1264/freshbite-delivery/internal/store/memory"
)

const (
	AdminEmail    = "admin@freshbite.local"
	AdminPassword = "admin123"

	itemsPerCategory = 6
	seedOrderCount   = 5
)

var namePrefix = map[domain.Category]string{
	domain.CategoryBurgers:  "Premium",
	domain.CategoryPizzas:   "Special",
	domain.CategoryDrinks:   "Fresh",
	domain.CategoryDesserts: "Delicious",
}

var categoryImages = map[domain.Category][]string{
	domain.CategoryBurgers: {
		"https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1550547660-d9450f859349?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1561758033-d89a9ad46330?w=500&h=400&fit=crop",
	},
	domain.CategoryPizzas: {
		"https://images.unsplash.com/photo-1513104890138-7c749659a591?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=500&h=400&fit=crop",
	},
	domain.CategoryDrinks: {
		"https://images.unsplash.com/photo-1546173159-315724a31696?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1437418747212-8d9709afab22?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1560512823-829485b8bf24?w=500&h=400&fit=crop",
	},
	domain.CategoryDesserts: {
		"https://images.unsplash.com/photo-1551024506-0bccd828d307?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=500&h=400&fit=crop",
		"https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=500&h=400&fit=crop",
	},
}

var sampleDescriptions = []string{
	"Char-grilled to order with our signature house sauce.",
	"Made fresh daily from locally sourced ingredients.",
	"A customer favorite since day one.",
	"Generously portioned and ready in minutes.",
	"The kitchen's own recipe, available nowhere else.",
	"Perfectly balanced flavors in every bite.",
}

var sampleCustomers = []domain.Customer{
	{Name: "Nadia Rahman", Phone: "01711-445566"},
	{Name: "Omar Faruk", Phone: "01819-223344"},
	{Name: "Sabrina Chowdhury", Phone: "01915-667788"},
	{Name: "Tanvir Ahmed", Phone: "01612-990011"},
	{Name: "Farhana Islam", Phone: "01733-112233"},
}

var sampleAddresses = []string{
	"House 12, Road 5, Dhanmondi, Dhaka",
	"Flat B3, 44 Gulshan Avenue, Dhaka",
	"221 Agrabad C/A, Chattogram",
	"17 Zindabazar Main Road, Sylhet",
	"House 8, Sector 11, Uttara, Dhaka",
}

// Seed populates the store. The store ends non-empty: one admin user, a
// full catalog and a few historical orders with item snapshots.
func Seed(store *memory.Store) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	seedAdmin(store)
	seedCatalog(store, rng)
	seedOrders(store, rng)
}

func seedAdmin(store *memory.Store) {
	store.AddUser(domain.User{
		ID:       "admin-user",
		Name:     "FreshBite Admin",
		Email:    AdminEmail,
		Phone:    "01234567890",
		Password: AdminPassword,
		IsAdmin:  true,
		IsOnline: true,
		LastSeen: time.Now(),
	})
	store.RecomputeOnlineUsers()
}

func seedCatalog(store *memory.Store, rng *rand.Rand) {
	for _, category := range domain.Categories {
		singular := string(category[:len(category)-1])
		images := categoryImages[category]
		for i := 0; i < itemsPerCategory; i++ {
			store.Catalog = append(store.Catalog, domain.MenuItem{
				ID:          uuid.NewString(),
				Name:        fmt.Sprintf("%s %s %d", namePrefix[category], singular, i+1),
				Category:    category,
				Price:       float64(250 + rng.Intn(551)),
				Description: sampleDescriptions[rng.Intn(len(sampleDescriptions))],
				Image:       images[i%len(images)],
			})
		}
	}
}

func seedOrders(store *memory.Store, rng *rand.Rand) {
	statuses := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusDelivered,
	}
	methods := []domain.PaymentMethod{domain.PaymentCashOnDelivery, domain.PaymentOnline}

	for i := 0; i < seedOrderCount; i++ {
		start := rng.Intn(len(store.Catalog) - 2)
		count := 1 + rng.Intn(2)

		var items []domain.OrderLine
		var subtotal float64
		for _, item := range store.Catalog[start : start+count] {
			line := domain.OrderLine{
				ItemID:      item.ID,
				Name:        item.Name,
				Category:    item.Category,
				Price:       item.Price,
				Description: item.Description,
				Image:       item.Image,
				Quantity:    1 + rng.Intn(3),
			}
			items = append(items, line)
			subtotal += line.Extension()
		}

		store.PrependOrder(domain.Order{
			ID:            uuid.NewString(),
			Customer:      sampleCustomers[i%len(sampleCustomers)],
			Address:       sampleAddresses[i%len(sampleAddresses)],
			Items:         items,
			Total:         subtotal + store.Config.DeliveryFee,
			PaymentMethod: methods[rng.Intn(len(methods))],
			Status:        statuses[rng.Intn(len(statuses))],
			PlacedAt:      time.Now().Add(-time.Duration(rng.Intn(72)) * time.Hour),
		})
	}
}
