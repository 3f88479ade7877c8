// Package dashboard implements the dashboard use cases over the invoice,
// customer and revenue stores: card aggregates, filtered/paginated lists,
// and the invoice create/update/delete actions.
package dashboard

import (
	"context"
	"time"

	"finance-dashboard-backend/internal/apperr"
	"finance-dashboard-backend/internal/models"
	"finance-dashboard-backend/internal/money"
	"finance-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// InvoicesViewPath is the cached list view invalidated by every invoice
// mutation.
const InvoicesViewPath = "/dashboard/invoices"

type InvoiceStore interface {
	Latest(ctx context.Context, n int) ([]models.Invoice, error)
	FetchFiltered(ctx context.Context, query string, page int) ([]models.Invoice, error)
	CountFiltered(ctx context.Context, query string) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id, customerID uuid.UUID, amount int64, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	SumAmountByStatus(ctx context.Context, status string) (int64, error)
}

type CustomerStore interface {
	All(ctx context.Context) ([]models.CustomerField, error)
	FilteredWithTotals(ctx context.Context, query string) ([]models.CustomerTotals, error)
	Count(ctx context.Context) (int64, error)
}

type RevenueStore interface {
	All(ctx context.Context) ([]models.Revenue, error)
	Months(ctx context.Context) ([]string, error)
}

// ViewInvalidator marks cached view paths stale after a mutation and fresh
// again once re-rendered.
type ViewInvalidator interface {
	Invalidate(path string)
	Revalidate(path string)
}

type Service struct {
	invoices  InvoiceStore
	customers CustomerStore
	revenues  RevenueStore
	views     ViewInvalidator
}

func NewService(invoices InvoiceStore, customers CustomerStore, revenues RevenueStore, views ViewInvalidator) *Service {
	return &Service{
		invoices:  invoices,
		customers: customers,
		revenues:  revenues,
		views:     views,
	}
}

func (s *Service) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	return s.revenues.All(ctx)
}

func (s *Service) FetchRevenueMonths(ctx context.Context) ([]string, error) {
	return s.revenues.Months(ctx)
}

// LatestInvoice is an invoice joined with its customer's summary fields,
// amount already formatted for display.
type LatestInvoice struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
	Amount   string    `json:"amount"`
}

func (s *Service) FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	invoices, err := s.invoices.Latest(ctx, 5)
	if err != nil {
		return nil, err
	}

	latest := make([]LatestInvoice, 0, len(invoices))
	for _, inv := range invoices {
		latest = append(latest, LatestInvoice{
			ID:       inv.ID,
			Name:     inv.Customer.Name,
			Email:    inv.Customer.Email,
			ImageURL: inv.Customer.ImageURL,
			Amount:   money.FormatCents(inv.Amount),
		})
	}
	return latest, nil
}

type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

// FetchCardData evaluates the four dashboard aggregates concurrently; none
// depends on another's result, so the fan-out is purely for latency.
func (s *Service) FetchCardData(ctx context.Context) (*CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidSum       int64
		pendingSum    int64
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		paidSum, err = s.invoices.SumAmountByStatus(ctx, models.StatusPaid)
		return err
	})
	g.Go(func() error {
		var err error
		pendingSum, err = s.invoices.SumAmountByStatus(ctx, models.StatusPending)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    money.FormatCents(paidSum),
		TotalPendingInvoices: money.FormatCents(pendingSum),
	}, nil
}

// FilteredInvoice is one row of the invoices table.
type FilteredInvoice struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
	Date       string    `json:"date"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
}

func (s *Service) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]FilteredInvoice, error) {
	if currentPage < 1 {
		currentPage = 1
	}

	invoices, err := s.invoices.FetchFiltered(ctx, query, currentPage)
	if err != nil {
		return nil, err
	}

	rows := make([]FilteredInvoice, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, FilteredInvoice{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Name:       inv.Customer.Name,
			Email:      inv.Customer.Email,
			ImageURL:   inv.Customer.ImageURL,
			Date:       time.Time(inv.Date).Format("2006-01-02"),
			Amount:     inv.Amount,
			Status:     inv.Status,
		})
	}

	// The list view is fresh again once re-read.
	s.views.Revalidate(InvoicesViewPath)

	return rows, nil
}

// FetchInvoicesPages counts rows matching the same filter as the paged
// fetch and returns the total number of pages.
func (s *Service) FetchInvoicesPages(ctx context.Context, query string) (int64, error) {
	count, err := s.invoices.CountFiltered(ctx, query)
	if err != nil {
		return 0, err
	}
	return (count + repository.InvoicesPerPage - 1) / repository.InvoicesPerPage, nil
}

// InvoiceForm is the single-invoice projection used to populate the edit
// form, amount converted back to major units.
type InvoiceForm struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
}

func (s *Service) FetchInvoiceByID(ctx context.Context, id uuid.UUID) (*InvoiceForm, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &InvoiceForm{
		ID:         invoice.ID,
		CustomerID: invoice.CustomerID,
		Amount:     money.ToMajorUnits(invoice.Amount),
		Status:     invoice.Status,
	}, nil
}

func (s *Service) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	return s.customers.All(ctx)
}

// FilteredCustomer is one row of the customers table, amount sums formatted
// for display.
type FilteredCustomer struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  string    `json:"total_pending"`
	TotalPaid     string    `json:"total_paid"`
}

func (s *Service) FetchFilteredCustomers(ctx context.Context, query string) ([]FilteredCustomer, error) {
	totals, err := s.customers.FilteredWithTotals(ctx, query)
	if err != nil {
		return nil, err
	}

	customers := make([]FilteredCustomer, 0, len(totals))
	for _, t := range totals {
		customers = append(customers, FilteredCustomer{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			ImageURL:      t.ImageURL,
			TotalInvoices: t.TotalInvoices,
			TotalPending:  money.FormatCents(t.TotalPending),
			TotalPaid:     money.FormatCents(t.TotalPaid),
		})
	}
	return customers, nil
}

// InvoiceInput carries the raw form fields of the create/update actions.
type InvoiceInput struct {
	CustomerID string `form:"customerId" json:"customerId" binding:"required"`
	Amount     string `form:"amount" json:"amount" binding:"required"`
	Status     string `form:"status" json:"status" binding:"required"`
}

// parseInvoiceInput validates the form fields and returns the typed values.
// All fields are checked so the caller gets every failure at once.
func parseInvoiceInput(in InvoiceInput) (uuid.UUID, int64, string, error) {
	fields := make(map[string]string)

	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		fields["customerId"] = "must be a valid customer id"
	}

	cents, err := money.ParseCents(in.Amount)
	if err != nil {
		fields["amount"] = "must be a number"
	} else if cents <= 0 {
		fields["amount"] = "must be greater than zero"
	}

	if in.Status != models.StatusPending && in.Status != models.StatusPaid {
		fields["status"] = "must be either pending or paid"
	}

	if len(fields) > 0 {
		return uuid.Nil, 0, "", &apperr.ValidationError{Fields: fields}
	}
	return customerID, cents, in.Status, nil
}

// CreateInvoice validates the input, persists a new invoice dated now, and
// invalidates the cached invoices list view. Validation failures are
// reported before any database write.
func (s *Service) CreateInvoice(ctx context.Context, in InvoiceInput) (*models.Invoice, error) {
	customerID, cents, status, err := parseInvoiceInput(in)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     cents,
		Status:     status,
		Date:       datatypes.Date(time.Now()),
	}
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.views.Invalidate(InvoicesViewPath)
	return invoice, nil
}

// UpdateInvoice applies a full replace of customer, amount and status on
// the matching invoice.
func (s *Service) UpdateInvoice(ctx context.Context, id uuid.UUID, in InvoiceInput) error {
	customerID, cents, status, err := parseInvoiceInput(in)
	if err != nil {
		return err
	}

	if err := s.invoices.Update(ctx, id, customerID, cents, status); err != nil {
		return err
	}

	s.views.Invalidate(InvoicesViewPath)
	return nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}

	s.views.Invalidate(InvoicesViewPath)
	return nil
}
