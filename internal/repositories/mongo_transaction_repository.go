package repositories

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"time"

	"truestate/internal/models"
	"truestate/internal/query"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/errgroup"
)

const nameSortKey = "_customerNameLower"

// transactionDocument is the stored shape of a transaction in the document store
type transactionDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	TransactionID      string             `bson:"transactionId"`
	Date               time.Time          `bson:"date"`
	CustomerID         string             `bson:"customerId,omitempty"`
	CustomerName       string             `bson:"customerName,omitempty"`
	PhoneNumber        string             `bson:"phoneNumber,omitempty"`
	Gender             string             `bson:"gender,omitempty"`
	Age                int                `bson:"age"`
	AgeRange           string             `bson:"ageRange,omitempty"`
	CustomerRegion     string             `bson:"customerRegion,omitempty"`
	CustomerType       string             `bson:"customerType,omitempty"`
	ProductID          string             `bson:"productId,omitempty"`
	ProductName        string             `bson:"productName,omitempty"`
	Brand              string             `bson:"brand,omitempty"`
	ProductCategory    string             `bson:"productCategory,omitempty"`
	Tags               string             `bson:"tags,omitempty"`
	Quantity           int                `bson:"quantity"`
	PricePerUnit       float64            `bson:"pricePerUnit"`
	DiscountPercentage float64            `bson:"discountPercentage"`
	TotalAmount        float64            `bson:"totalAmount"`
	FinalAmount        float64            `bson:"finalAmount"`
	PaymentMethod      string             `bson:"paymentMethod,omitempty"`
	OrderStatus        string             `bson:"orderStatus,omitempty"`
	DeliveryType       string             `bson:"deliveryType,omitempty"`
	StoreID            string             `bson:"storeId,omitempty"`
	StoreLocation      string             `bson:"storeLocation,omitempty"`
	SalespersonID      string             `bson:"salespersonId,omitempty"`
	EmployeeName       string             `bson:"employeeName,omitempty"`
}

func newTransactionDocument(t *models.Transaction) transactionDocument {
	return transactionDocument{
		TransactionID:      t.TransactionID,
		Date:               t.Date.UTC(),
		CustomerID:         t.CustomerID,
		CustomerName:       t.CustomerName,
		PhoneNumber:        t.PhoneNumber,
		Gender:             t.Gender,
		Age:                t.Age,
		AgeRange:           t.AgeRange,
		CustomerRegion:     t.CustomerRegion,
		CustomerType:       t.CustomerType,
		ProductID:          t.ProductID,
		ProductName:        t.ProductName,
		Brand:              t.Brand,
		ProductCategory:    t.ProductCategory,
		Tags:               t.Tags,
		Quantity:           t.Quantity,
		PricePerUnit:       t.PricePerUnit.InexactFloat64(),
		DiscountPercentage: t.DiscountPercentage.InexactFloat64(),
		TotalAmount:        t.TotalAmount.InexactFloat64(),
		FinalAmount:        t.FinalAmount.InexactFloat64(),
		PaymentMethod:      t.PaymentMethod,
		OrderStatus:        t.OrderStatus,
		DeliveryType:       t.DeliveryType,
		StoreID:            t.StoreID,
		StoreLocation:      t.StoreLocation,
		SalespersonID:      t.SalespersonID,
		EmployeeName:       t.EmployeeName,
	}
}

func (d *transactionDocument) toModel() models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		Date:               d.Date.UTC(),
		CustomerID:         d.CustomerID,
		CustomerName:       d.CustomerName,
		PhoneNumber:        d.PhoneNumber,
		Gender:             d.Gender,
		Age:                d.Age,
		AgeRange:           d.AgeRange,
		CustomerRegion:     d.CustomerRegion,
		CustomerType:       d.CustomerType,
		ProductID:          d.ProductID,
		ProductName:        d.ProductName,
		Brand:              d.Brand,
		ProductCategory:    d.ProductCategory,
		Tags:               d.Tags,
		Quantity:           d.Quantity,
		PricePerUnit:       decimal.NewFromFloat(d.PricePerUnit),
		DiscountPercentage: decimal.NewFromFloat(d.DiscountPercentage),
		TotalAmount:        decimal.NewFromFloat(d.TotalAmount),
		FinalAmount:        decimal.NewFromFloat(d.FinalAmount),
		PaymentMethod:      d.PaymentMethod,
		OrderStatus:        d.OrderStatus,
		DeliveryType:       d.DeliveryType,
		StoreID:            d.StoreID,
		StoreLocation:      d.StoreLocation,
		SalespersonID:      d.SalespersonID,
		EmployeeName:       d.EmployeeName,
	}
}

// mongoTransactionRepository implements TransactionRepositoryInterface on a MongoDB collection
type mongoTransactionRepository struct {
	collection *mongo.Collection
}

// NewMongoTransactionRepository creates a transaction repository backed by a MongoDB collection
func NewMongoTransactionRepository(collection *mongo.Collection) TransactionRepositoryInterface {
	return &mongoTransactionRepository{
		collection: collection,
	}
}

// List runs the page query and the count concurrently against the same filter
func (r *mongoTransactionRepository) List(ctx context.Context, predicate query.Predicate, ordering query.Ordering, window models.PageWindow) ([]models.Transaction, int64, error) {
	if err := checkWindow(window); err != nil {
		return nil, 0, err
	}

	filter := buildMongoFilter(predicate)

	var docs []transactionDocument
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cursor, err := r.openCursor(gctx, filter, ordering, window)
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		defer cursor.Close(gctx)
		if err := cursor.All(gctx, &docs); err != nil {
			return fmt.Errorf("failed to decode transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		n, err := r.collection.CountDocuments(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count transactions: %w", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	transactions := make([]models.Transaction, 0, len(docs))
	for i := range docs {
		transactions = append(transactions, docs[i].toModel())
	}
	return transactions, total, nil
}

// openCursor uses find for plain keys and an aggregation for the
// case-insensitive name sort, which needs a lower-cased sort key.
func (r *mongoTransactionRepository) openCursor(ctx context.Context, filter bson.M, ordering query.Ordering, window models.PageWindow) (*mongo.Cursor, error) {
	if ordering.Field == models.SortByCustomerName {
		return r.collection.Aggregate(ctx, buildNamePipeline(filter, ordering, window))
	}

	opts := options.Find().
		SetSort(buildMongoSort(ordering)).
		SetSkip(int64(window.Offset())).
		SetLimit(int64(window.Limit))
	return r.collection.Find(ctx, filter, opts)
}

// DistinctValues returns the sorted, non-empty distinct values of a filter key
func (r *mongoTransactionRepository) DistinctValues(ctx context.Context, field models.FilterField) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	raw, err := r.collection.Distinct(ctx, field.DocumentKey(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

// CreateBatch inserts unordered so duplicate transaction ids are skipped
func (r *mongoTransactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(transactions))
	for i := range transactions {
		docs[i] = newTransactionDocument(&transactions[i])
	}

	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && result != nil {
			return int64(len(result.InsertedIDs)), nil
		}
		return 0, fmt.Errorf("failed to create batch transactions: %w", err)
	}
	return int64(len(result.InsertedIDs)), nil
}

// DeleteAll removes every transaction document
func (r *mongoTransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}
	return result.DeletedCount, nil
}

// Count returns the number of stored transaction documents
func (r *mongoTransactionRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// Ping checks that the primary is reachable
func (r *mongoTransactionRepository) Ping(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// EnsureTransactionIndexes creates the indexes the listing and filter queries rely on
func EnsureTransactionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "quantity", Value: 1}}},
		{Keys: bson.D{{Key: "customerName", Value: 1}, {Key: "phoneNumber", Value: 1}}},
		{Keys: bson.D{{Key: "customerRegion", Value: 1}, {Key: "gender", Value: 1}, {Key: "ageRange", Value: 1}}},
		{Keys: bson.D{{Key: "productCategory", Value: 1}, {Key: "tags", Value: 1}, {Key: "paymentMethod", Value: 1}}},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}

// buildMongoFilter encodes a predicate as a query document
func buildMongoFilter(p query.Predicate) bson.M {
	filter := bson.M{}

	if p.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"customerName": pattern},
			bson.M{"phoneNumber": pattern},
		}
	}

	for _, c := range p.Conditions {
		filter[c.Field.DocumentKey()] = bson.M{"$in": c.Values}
	}

	if p.From != nil || p.To != nil {
		dateRange := bson.M{}
		if p.From != nil {
			dateRange["$gte"] = p.From.UTC()
		}
		if p.To != nil {
			dateRange["$lte"] = p.To.UTC()
		}
		filter["date"] = dateRange
	}

	return filter
}

func direction(descending bool) int {
	if descending {
		return -1
	}
	return 1
}

// buildMongoSort encodes an ordering as a sort document with a transactionId tiebreak
func buildMongoSort(o query.Ordering) bson.D {
	return bson.D{
		{Key: o.Field.DocumentKey(), Value: direction(o.Descending)},
		{Key: "transactionId", Value: 1},
	}
}

func buildNamePipeline(filter bson.M, o query.Ordering, window models.PageWindow) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$addFields", Value: bson.M{nameSortKey: bson.M{"$toLower": "$customerName"}}}},
		{{Key: "$sort", Value: bson.D{
			{Key: nameSortKey, Value: direction(o.Descending)},
			{Key: "transactionId", Value: 1},
		}}},
		{{Key: "$skip", Value: int64(window.Offset())}},
		{{Key: "$limit", Value: int64(window.Limit)}},
		{{Key: "$project", Value: bson.M{nameSortKey: 0}}},
	}
}
