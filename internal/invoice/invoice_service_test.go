package invoice

import (
	"context"
	"errors"
	"strings"
	"testing"

	invoiceerrors "go-hrms/internal/invoice/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInvoiceRepo struct {
	createFn    func(ctx context.Context, inv *Invoice) error
	findByIDFn  func(ctx context.Context, id string) (*Invoice, error)
	findPagedFn func(ctx context.Context, filter ListFilter) ([]Invoice, int64, error)
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *Invoice) error {
	return f.createFn(ctx, inv)
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id string) (*Invoice, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeInvoiceRepo) FindPaged(ctx context.Context, filter ListFilter) ([]Invoice, int64, error) {
	return f.findPagedFn(ctx, filter)
}

type fakeCounter struct {
	next int64
	err  error
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.next, nil
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	sends   int
	err     error
}

func (f *fakeMailer) Send(to, subject, htmlBody string) error {
	f.sends++
	f.to = to
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func validRequest() CreateInvoiceRequest {
	return CreateInvoiceRequest{
		ClientName: "Acme Corp",
		Email:      "billing@acme.test",
		Items: []InvoiceItemRequest{
			{ItemName: "Consulting", Quantity: 2, Rate: 1500.50},
			{ItemName: "Support", Quantity: 1, Rate: 999},
		},
	}
}

func TestCreate(t *testing.T) {
	t.Run("computes totals and sends email", func(t *testing.T) {
		var stored *Invoice
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error {
				stored = inv
				return nil
			},
		}
		mailer := &fakeMailer{}
		svc := NewService(repo, &fakeCounter{next: 1}, mailer)

		resp, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)

		assert.Equal(t, "Invoice created & email sent", resp.Message)
		assert.Equal(t, "LT001", resp.Invoice.InvoiceNo)
		assert.InDelta(t, 4000.00, resp.Invoice.Subtotal, 0.001)
		assert.InDelta(t, 720.00, resp.Invoice.GSTAmount, 0.001)
		assert.InDelta(t, 4720.00, resp.Invoice.GrandTotal, 0.001)
		require.Len(t, resp.Invoice.Items, 2)
		assert.InDelta(t, 3001.00, resp.Invoice.Items[0].Amount, 0.001)
		assert.InDelta(t, 999.00, resp.Invoice.Items[1].Amount, 0.001)

		require.NotNil(t, stored)
		assert.Equal(t, DefaultGSTPercent, stored.GSTPercent)
		require.Len(t, stored.Items, 2)

		assert.Equal(t, 1, mailer.sends)
		assert.Equal(t, "billing@acme.test", mailer.to)
		assert.Equal(t, "Your Invoice LT001", mailer.subject)
		assert.True(t, strings.Contains(mailer.body, "LT001"))
		assert.True(t, strings.Contains(mailer.body, "Consulting"))
		assert.True(t, strings.Contains(mailer.body, "4720.00"))
	})

	t.Run("pads the sequence to three digits", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error { return nil },
		}
		svc := NewService(repo, &fakeCounter{next: 42}, &fakeMailer{})

		resp, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "LT042", resp.Invoice.InvoiceNo)
	})

	t.Run("grows past three digits without truncation", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error { return nil },
		}
		svc := NewService(repo, &fakeCounter{next: 1234}, &fakeMailer{})

		resp, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "LT1234", resp.Invoice.InvoiceNo)
	})

	t.Run("skips email when none given", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error { return nil },
		}
		mailer := &fakeMailer{}
		svc := NewService(repo, &fakeCounter{next: 1}, mailer)

		req := validRequest()
		req.Email = ""

		resp, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Invoice created", resp.Message)
		assert.Equal(t, 0, mailer.sends)
	})

	t.Run("email failure does not fail the invoice", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error { return nil },
		}
		mailer := &fakeMailer{err: errors.New("smtp down")}
		svc := NewService(repo, &fakeCounter{next: 1}, mailer)

		resp, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Invoice created & email sent", resp.Message)
		assert.Equal(t, 1, mailer.sends)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		svc := NewService(&fakeInvoiceRepo{}, &fakeCounter{next: 1}, &fakeMailer{})

		_, err := svc.Create(context.Background(), CreateInvoiceRequest{ClientName: "Acme Corp"})
		assert.ErrorIs(t, err, invoiceerrors.ErrItemsRequired)
	})

	t.Run("counter failure aborts before persisting", func(t *testing.T) {
		created := 0
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error {
				created++
				return nil
			},
		}
		svc := NewService(repo, &fakeCounter{err: errors.New("db down")}, &fakeMailer{})

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, 0, created)
	})

	t.Run("persist failure skips the email", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			createFn: func(ctx context.Context, inv *Invoice) error {
				return errors.New("insert failed")
			},
		}
		mailer := &fakeMailer{}
		svc := NewService(repo, &fakeCounter{next: 1}, mailer)

		_, err := svc.Create(context.Background(), validRequest())
		require.Error(t, err)
		assert.Equal(t, 0, mailer.sends)
	})
}

func TestGetAll(t *testing.T) {
	var gotFilter ListFilter
	repo := &fakeInvoiceRepo{
		findPagedFn: func(ctx context.Context, filter ListFilter) ([]Invoice, int64, error) {
			gotFilter = filter
			return []Invoice{{InvoiceNo: "LT001", ClientName: "Acme Corp"}}, 1, nil
		},
	}
	svc := NewService(repo, &fakeCounter{}, &fakeMailer{})

	rows, meta, err := svc.GetAll(context.Background(), ListQuery{Search: "LT0", Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Equal(t, "LT0", gotFilter.Search)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 5, gotFilter.Limit)
	require.Len(t, rows, 1)
	assert.Equal(t, "LT001", rows[0].InvoiceNo)
	assert.Equal(t, int64(1), meta.TotalItems)
}

func TestGetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			findByIDFn: func(ctx context.Context, id string) (*Invoice, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(repo, &fakeCounter{}, &fakeMailer{})

		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, invoiceerrors.ErrInvoiceNotFound)
	})

	t.Run("maps items", func(t *testing.T) {
		repo := &fakeInvoiceRepo{
			findByIDFn: func(ctx context.Context, id string) (*Invoice, error) {
				return &Invoice{
					InvoiceNo:  "LT007",
					ClientName: "Acme Corp",
					Items: []InvoiceItem{
						{ItemName: "Consulting", Quantity: 2, Rate: 100, Amount: 200},
					},
					Subtotal:   200,
					GSTPercent: DefaultGSTPercent,
					GSTAmount:  36,
					GrandTotal: 236,
				}, nil
			},
		}
		svc := NewService(repo, &fakeCounter{}, &fakeMailer{})

		resp, err := svc.GetByID(context.Background(), "id")
		require.NoError(t, err)
		assert.Equal(t, "LT007", resp.InvoiceNo)
		require.Len(t, resp.Items, 1)
		assert.InDelta(t, 200.0, resp.Items[0].Amount, 0.001)
		assert.InDelta(t, 236.0, resp.GrandTotal, 0.001)
	})
}
