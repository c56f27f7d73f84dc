package services

import (
	"fmt"
	"strings"
	"time"

	"truestate/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// ProductInfo is one catalog entry the generator sells
type ProductInfo struct {
	Name     string
	Brand    string
	Category string
	Tags     string
	MinPrice float64
	MaxPrice float64
}

var (
	generatorRegions        = []string{"North", "South", "East", "West", "Central"}
	generatorGenders        = []string{"Male", "Female"}
	generatorCustomerTypes  = []string{"New", "Returning", "Loyal"}
	generatorPaymentMethods = []string{"UPI", "Credit Card", "Debit Card", "Cash", "Net Banking", "Wallet"}
	generatorOrderStatuses  = []string{"Completed", "Completed", "Completed", "Pending", "Cancelled", "Returned"}
	generatorDeliveryTypes  = []string{"Standard", "Express", "Store Pickup"}
	generatorDiscounts      = []int64{0, 0, 0, 5, 10, 15, 20, 25}
)

// initializeProductCatalog returns the products the generator draws from
func initializeProductCatalog() []ProductInfo {
	return []ProductInfo{
		// Clothing
		{"Cotton Kurta", "FabIndia", "Clothing", "cotton", 499, 2499},
		{"Denim Jacket", "Levi's", "Clothing", "casual", 1999, 5999},
		{"Linen Shirt", "Raymond", "Clothing", "formal", 999, 3499},
		{"Organic Tee", "Bewakoof", "Clothing", "organic", 299, 999},
		{"Running Shorts", "Puma", "Clothing", "sportswear", 599, 1799},

		// Electronics
		{"Wireless Earbuds", "boAt", "Electronics", "gadgets", 999, 4999},
		{"Smartphone", "Samsung", "Electronics", "gadgets", 9999, 79999},
		{"Bluetooth Speaker", "JBL", "Electronics", "wireless", 1499, 14999},
		{"Smart Watch", "Noise", "Electronics", "wearables", 1999, 9999},
		{"Laptop Sleeve", "Dell", "Electronics", "accessories", 499, 1999},

		// Beauty
		{"Face Serum", "Minimalist", "Beauty", "skincare", 399, 1299},
		{"Matte Lipstick", "Lakme", "Beauty", "makeup", 299, 899},
		{"Herbal Shampoo", "Himalaya", "Beauty", "haircare", 149, 599},
		{"Sunscreen SPF 50", "Neutrogena", "Beauty", "skincare", 349, 999},
		{"Eau de Parfum", "Titan Skinn", "Beauty", "fragrance", 999, 3999},

		// Home
		{"Ceramic Dinner Set", "Corelle", "Home", "kitchen", 1999, 8999},
		{"Bedsheet Set", "Bombay Dyeing", "Home", "cotton", 799, 2999},
		{"Table Lamp", "Philips", "Home", "lighting", 699, 2499},

		// Sports
		{"Yoga Mat", "Decathlon", "Sports", "fitness", 499, 1999},
		{"Cricket Bat", "SG", "Sports", "outdoor", 1499, 7999},
		{"Running Shoes", "Nike", "Sports", "sportswear", 2999, 11999},
	}
}

type transactionGenerator struct {
	catalog  []ProductInfo
	faker    *gofakeit.Faker
	start    time.Time
	end      time.Time
	stores   []string
	sequence int
}

// NewTransactionGenerator creates a generator whose output is fully determined
// by seed. Dates fall in [start, end) and are stored in UTC.
func NewTransactionGenerator(seed uint64, start, end time.Time) TransactionGeneratorInterface {
	if !end.After(start) {
		end = start.Add(24 * time.Hour)
	}

	faker := gofakeit.New(seed)
	stores := make([]string, 8)
	for i := range stores {
		stores[i] = faker.City()
	}

	return &transactionGenerator{
		catalog: initializeProductCatalog(),
		faker:   faker,
		start:   start.UTC(),
		end:     end.UTC(),
		stores:  stores,
	}
}

// Generate returns count new transactions with unique, increasing ids
func (g *transactionGenerator) Generate(count int) []models.Transaction {
	if count < 1 {
		return []models.Transaction{}
	}

	out := make([]models.Transaction, 0, count)
	for range count {
		g.sequence++
		out = append(out, g.generateOne(g.sequence))
	}
	return out
}

// GetProductCatalog returns the catalog the generator draws from
func (g *transactionGenerator) GetProductCatalog() []ProductInfo {
	return g.catalog
}

func (g *transactionGenerator) generateOne(seq int) models.Transaction {
	product := g.catalog[g.faker.IntRange(0, len(g.catalog)-1)]
	storeIndex := g.faker.IntRange(0, len(g.stores)-1)

	age := g.faker.IntRange(18, 70)
	ageRange, _ := models.BucketForAge(age)

	quantity := g.faker.IntRange(1, 10)
	price := g.GeneratePrice(product)
	discount := decimal.NewFromInt(generatorDiscounts[g.faker.IntRange(0, len(generatorDiscounts)-1)])
	total, final := computeAmounts(price, quantity, discount)

	return models.Transaction{
		TransactionID:      fmt.Sprintf("TXN-%06d", seq),
		Date:               g.GenerateDate(),
		CustomerID:         fmt.Sprintf("CUST-%s", g.faker.Numerify("#####")),
		CustomerName:       g.faker.Name(),
		PhoneNumber:        g.faker.Phone(),
		Gender:             g.faker.RandomString(generatorGenders),
		Age:                age,
		AgeRange:           ageRange,
		CustomerRegion:     g.faker.RandomString(generatorRegions),
		CustomerType:       g.faker.RandomString(generatorCustomerTypes),
		ProductID:          productID(product),
		ProductName:        product.Name,
		Brand:              product.Brand,
		ProductCategory:    product.Category,
		Tags:               product.Tags,
		Quantity:           quantity,
		PricePerUnit:       price,
		DiscountPercentage: discount,
		TotalAmount:        total,
		FinalAmount:        final,
		PaymentMethod:      g.faker.RandomString(generatorPaymentMethods),
		OrderStatus:        g.faker.RandomString(generatorOrderStatuses),
		DeliveryType:       g.faker.RandomString(generatorDeliveryTypes),
		StoreID:            fmt.Sprintf("ST-%03d", storeIndex+1),
		StoreLocation:      g.stores[storeIndex],
		SalespersonID:      fmt.Sprintf("EMP-%s", g.faker.Numerify("####")),
		EmployeeName:       g.faker.Name(),
	}
}

// GeneratePrice returns a unit price within the product range, in whole cents
func (g *transactionGenerator) GeneratePrice(product ProductInfo) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Float64Range(product.MinPrice, product.MaxPrice)).Round(2)
}

// GenerateDate returns a UTC timestamp in [start, end) truncated to the second
func (g *transactionGenerator) GenerateDate() time.Time {
	return g.faker.DateRange(g.start, g.end).UTC().Truncate(time.Second)
}

// computeAmounts returns quantity*price and the total after the percentage discount
func computeAmounts(price decimal.Decimal, quantity int, discount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	total := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	factor := decimal.NewFromInt(1).Sub(discount.Div(decimal.NewFromInt(100)))
	return total, total.Mul(factor).Round(2)
}

func productID(p ProductInfo) string {
	slug := strings.ToUpper(strings.ReplaceAll(p.Brand+"-"+p.Name, " ", "-"))
	return "PROD-" + slug
}
