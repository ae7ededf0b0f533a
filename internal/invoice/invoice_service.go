package invoice

import (
	"context"
	"errors"
	"fmt"
	"math"

	invoiceerrors "go-hrms/internal/invoice/errors"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// invoiceCounter is the counters table key behind the LT### sequence.
const invoiceCounter = "invoice"

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateInvoiceRequest) (CreateInvoiceResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]InvoiceResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, id string) (InvoiceResponse, error)
}

type service struct {
	repo     Repository
	counters counter.Repository
	mailer   notification.Mailer
	logger   *zap.Logger
}

func NewService(repo Repository, counters counter.Repository, mailer notification.Mailer, logger ...*zap.Logger) Service {
	l := zap.L().Named("invoice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invoice.service")
	}
	return &service{repo: repo, counters: counters, mailer: mailer, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (CreateInvoiceResponse, error) {
	if len(req.Items) == 0 {
		return CreateInvoiceResponse{}, invoiceerrors.ErrItemsRequired
	}

	seq, err := s.counters.GetNextValue(ctx, invoiceCounter)
	if err != nil {
		return CreateInvoiceResponse{}, err
	}

	inv := &Invoice{
		ID:         uuid.New(),
		InvoiceNo:  fmt.Sprintf("LT%03d", seq),
		ClientName: req.ClientName,
		Email:      req.Email,
		GSTPercent: DefaultGSTPercent,
	}

	var subtotal float64
	for _, item := range req.Items {
		amount := round2(float64(item.Quantity) * item.Rate)
		subtotal += amount
		inv.Items = append(inv.Items, InvoiceItem{
			ID:        uuid.New(),
			InvoiceID: inv.ID,
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			Rate:      item.Rate,
			Amount:    amount,
		})
	}

	inv.Subtotal = round2(subtotal)
	inv.GSTAmount = round2(inv.Subtotal * DefaultGSTPercent / 100)
	inv.GrandTotal = round2(inv.Subtotal + inv.GSTAmount)

	if err := s.repo.Create(ctx, inv); err != nil {
		s.logger.Error("invoice persist failed",
			zap.String("invoice_no", inv.InvoiceNo),
			zap.Error(err),
		)
		return CreateInvoiceResponse{}, err
	}

	message := "Invoice created"
	if inv.Email != "" {
		s.sendEmail(inv)
		message = "Invoice created & email sent"
	}

	s.logger.Info("invoice created",
		zap.String("invoice_no", inv.InvoiceNo),
		zap.Float64("grand_total", inv.GrandTotal),
	)

	return CreateInvoiceResponse{
		Message: message,
		Invoice: mapToResponse(*inv),
	}, nil
}

// sendEmail is best-effort: a delivery failure is logged, the invoice
// still stands.
func (s *service) sendEmail(inv *Invoice) {
	summary := notification.InvoiceSummary{
		InvoiceNo:  inv.InvoiceNo,
		ClientName: inv.ClientName,
		Email:      inv.Email,
		Subtotal:   inv.Subtotal,
		GSTPercent: inv.GSTPercent,
		GSTAmount:  inv.GSTAmount,
		GrandTotal: inv.GrandTotal,
	}
	for _, item := range inv.Items {
		summary.Items = append(summary.Items, notification.InvoiceLine{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		})
	}

	if err := s.mailer.Send(inv.Email, notification.InvoiceEmailSubject(summary), notification.InvoiceEmailBody(summary)); err != nil {
		s.logger.Warn("invoice email failed",
			zap.String("invoice_no", inv.InvoiceNo),
			zap.String("email", inv.Email),
			zap.Error(err),
		)
	}
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]InvoiceResponse, response.PaginationMeta, error) {
	filter := ListFilter{
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	rows, total, err := s.repo.FindPaged(ctx, filter)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	res := make([]InvoiceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, response.NewPaginationMeta(total, filter.Page, filter.Limit), nil
}

func (s *service) GetByID(ctx context.Context, id string) (InvoiceResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
		}
		return InvoiceResponse{}, err
	}
	return mapToResponse(*inv), nil
}

func mapToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:         inv.ID.String(),
		InvoiceNo:  inv.InvoiceNo,
		ClientName: inv.ClientName,
		Email:      inv.Email,
		Items:      make([]InvoiceItemResponse, len(inv.Items)),
		Subtotal:   inv.Subtotal,
		GSTPercent: inv.GSTPercent,
		GSTAmount:  inv.GSTAmount,
		GrandTotal: inv.GrandTotal,
		CreatedAt:  inv.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for i, item := range inv.Items {
		resp.Items[i] = InvoiceItemResponse{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Rate:     item.Rate,
			Amount:   item.Amount,
		}
	}
	return resp
}

// round2 rounds half-up to two decimals, matching the payroll math.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
