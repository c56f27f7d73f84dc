package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"truestate/internal/models"
	"truestate/internal/query"
	"truestate/internal/repositories"
	"truestate/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const csvHeader = "Transaction ID,Date,Customer ID,Customer Name,Phone Number,Gender,Age,Customer Region,Customer Type," +
	"Product ID,Product Name,Brand,Product Category,Tags,Quantity,Price per Unit,Discount Percentage," +
	"Total Amount,Final Amount,Payment Method,Order Status,Delivery Type,Store ID,Store Location,Salesperson ID,Employee Name\n"

const csvRowNeha = "T1,2023-01-05,C1,Neha Yadav,9876543210,Female,29,North,Returning," +
	"P1,Cotton Kurta,FabIndia,Clothing,organic,3,499.50,10,1498.50,1348.65,UPI,Completed,Standard,ST-001,Pune,EMP-1,Asha\n"

const csvRowRahul = "T2,2023-02-10 14:30:00,C2,Rahul Sharma,9123456780,Male,41,South,New," +
	"P2,Smartphone,Samsung,Electronics,gadgets,1,19999,0,19999,19999,Credit Card,Completed,Express,ST-002,Chennai,EMP-2,Ravi\n"

type CSVImporterTestSuite struct {
	suite.Suite
	repo     *repositories.MemoryTransactionRepository
	importer *CSVImporter
	ctx      context.Context
}

func TestCSVImporterSuite(t *testing.T) {
	suite.Run(t, new(CSVImporterTestSuite))
}

func (s *CSVImporterTestSuite) SetupTest() {
	s.repo = repositories.NewMemoryTransactionRepository()
	logger := NewQueryLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.importer = NewCSVImporter(s.repo, 2, nil, logger)
	s.ctx = context.Background()
}

func (s *CSVImporterTestSuite) all() []models.Transaction {
	records, _, err := s.repo.List(s.ctx, query.Predicate{},
		query.ResolveOrdering(models.SortSpec{Field: models.SortByDate, Order: models.SortAscending}),
		models.PageWindow{Page: 1, Limit: models.MaxPageLimit})
	s.Require().NoError(err)
	return records
}

func (s *CSVImporterTestSuite) TestImport_ParsesEveryColumn() {
	report, err := s.importer.Import(s.ctx, strings.NewReader(csvHeader+csvRowNeha))

	s.Require().NoError(err)
	s.Equal(1, report.RowsRead)
	s.Equal(int64(1), report.Inserted)

	records := s.all()
	s.Require().Len(records, 1)
	t := records[0]
	s.Equal("T1", t.TransactionID)
	s.Equal(time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), t.Date)
	s.Equal("Neha Yadav", t.CustomerName)
	s.Equal("9876543210", t.PhoneNumber)
	s.Equal(29, t.Age)
	s.Equal("26-35", t.AgeRange)
	s.Equal("North", t.CustomerRegion)
	s.Equal("Clothing", t.ProductCategory)
	s.Equal("organic", t.Tags)
	s.Equal(3, t.Quantity)
	s.Equal("499.5", t.PricePerUnit.String())
	s.Equal("10", t.DiscountPercentage.String())
	s.Equal("1348.65", t.FinalAmount.String())
	s.Equal("UPI", t.PaymentMethod)
	s.Equal("Asha", t.EmployeeName)
}

func (s *CSVImporterTestSuite) TestImport_BatchesAndSkipsDuplicates() {
	input := csvHeader + csvRowNeha + csvRowRahul + csvRowNeha

	report, err := s.importer.Import(s.ctx, strings.NewReader(input))

	s.Require().NoError(err)
	s.Equal(3, report.RowsRead)
	s.Equal(2, report.Batches)
	s.Equal(int64(2), report.Inserted)
	s.Equal(int64(1), report.Skipped)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), count)
}

func (s *CSVImporterTestSuite) TestImport_RejectsRowsWithoutIDOrDate() {
	input := csvHeader +
		",2023-01-01,C9,No Id,1,Male,30,North,New,P,Prod,B,Home,kitchen,1,1,0,1,1,Cash,Completed,Standard,S,L,E,N\n" +
		"T9,yesterday,C9,Bad Date,1,Male,30,North,New,P,Prod,B,Home,kitchen,1,1,0,1,1,Cash,Completed,Standard,S,L,E,N\n" +
		csvRowRahul

	report, err := s.importer.Import(s.ctx, strings.NewReader(input))

	s.Require().NoError(err)
	s.Equal(3, report.RowsRead)
	s.Equal(2, report.Rejected)
	s.Equal(int64(1), report.Inserted)
}

func (s *CSVImporterTestSuite) TestImport_LenientNumericFields() {
	input := csvHeader +
		"T5,2023-05-01,C5,Loose Numbers,1,Female,abc,East,New,P,Prod,B,Beauty,skincare,2 units,n/a,,5,5,Cash,Completed,Standard,S,L,E,N\n"

	_, err := s.importer.Import(s.ctx, strings.NewReader(input))
	s.Require().NoError(err)

	records := s.all()
	s.Require().Len(records, 1)
	s.Equal(0, records[0].Age)
	s.Equal("", records[0].AgeRange)
	s.Equal(2, records[0].Quantity)
	s.True(records[0].PricePerUnit.IsZero())
	s.True(records[0].DiscountPercentage.IsZero())
}

func (s *CSVImporterTestSuite) TestImport_HeaderWithBOMAndReorderedColumns() {
	input := "\ufeffDate, Transaction ID ,Customer Name\n2023-07-01,T7,Reordered\n"

	report, err := s.importer.Import(s.ctx, strings.NewReader(input))

	s.Require().NoError(err)
	s.Equal(int64(1), report.Inserted)
	s.Equal("Reordered", s.all()[0].CustomerName)
}

func (s *CSVImporterTestSuite) TestImport_MissingRequiredColumn() {
	_, err := s.importer.Import(s.ctx, strings.NewReader("Transaction ID,Customer Name\nT1,Neha\n"))

	s.ErrorIs(err, ErrMissingColumn)
}

func (s *CSVImporterTestSuite) TestImport_RejectsOverlappingAgeBuckets() {
	original := models.AgeBuckets
	defer func() { models.AgeBuckets = original }()
	models.AgeBuckets = []models.AgeBucket{
		{Label: "18-30", Min: 18, Max: 30},
		{Label: "25-40", Min: 25, Max: 40},
	}

	report, err := s.importer.Import(s.ctx, strings.NewReader(csvHeader+csvRowNeha))

	s.Nil(report)
	s.ErrorContains(err, "overlaps")
	s.Empty(s.all())
}

func (s *CSVImporterTestSuite) TestImport_EmptyInput() {
	_, err := s.importer.Import(s.ctx, strings.NewReader(""))

	s.Error(err)
}

func (s *CSVImporterTestSuite) TestImport_MalformedLineFails() {
	input := csvHeader + "T1,\"unterminated\n"

	_, err := s.importer.Import(s.ctx, strings.NewReader(input))

	s.Error(err)
}

func (s *CSVImporterTestSuite) TestImport_StoreFailureAborts() {
	ctrl := gomock.NewController(s.T())
	repo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))

	importer := NewCSVImporter(repo, 1, nil, nil)
	_, err := importer.Import(s.ctx, strings.NewReader(csvHeader+csvRowNeha+csvRowRahul+csvRowNeha))

	s.ErrorContains(err, "disk full")
}

func (s *CSVImporterTestSuite) TestLoad_WritesGeneratedTransactions() {
	generator := NewTransactionGenerator(1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))

	report, err := s.importer.Load(s.ctx, generator.Generate(5))

	s.Require().NoError(err)
	s.Equal(3, report.Batches)
	s.Equal(int64(5), report.Inserted)
	s.Equal(int64(0), report.Skipped)
}

func (s *CSVImporterTestSuite) TestNewCSVImporter_DefaultBatchSize() {
	importer := NewCSVImporter(s.repo, 0, nil, nil)

	s.Equal(DefaultImportBatchSize, importer.batchSize)
}
