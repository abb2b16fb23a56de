package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/test"
	. "github.com/baspana/backend/internal/usecase"
)

func validNewOrder() repository.NewOrder {
	return repository.NewOrder{
		UserID:      1,
		ObjectID:    10,
		ObjectKind:  model.ObjectKindApartment,
		OrderKind:   model.OrderKindBooking,
		TotalPrice:  decimal.NewFromInt(25_000_000),
		PaymentKind: model.PaymentMortgage,
	}
}

func TestBookingCreateOrderDefaultsToPending(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := NewBookingUseCase(orders)

	if _, err := uc.CreateOrder(context.Background(), validNewOrder()); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if len(orders.Created) != 1 {
		t.Fatalf("created = %d, want 1", len(orders.Created))
	}
	if got := orders.Created[0].Status; got != model.OrderStatusPending {
		t.Fatalf("status = %q, want Pending", got)
	}
}

func TestBookingCreateOrderRejectsUnbookableKind(t *testing.T) {
	uc := NewBookingUseCase(&test.OrderRepositoryStub{})

	for _, kind := range []model.ObjectKind{model.ObjectKindBuilding, model.ObjectKindComplex, "Garage"} {
		in := validNewOrder()
		in.ObjectKind = kind
		if _, err := uc.CreateOrder(context.Background(), in); !errors.Is(err, domainErrors.ErrPropertyUnavailable) {
			t.Fatalf("kind %q: err = %v, want ErrPropertyUnavailable", kind, err)
		}
	}
}

func TestBookingCreateOrderRejectsBadAmounts(t *testing.T) {
	uc := NewBookingUseCase(&test.OrderRepositoryStub{})

	in := validNewOrder()
	in.TotalPrice = decimal.Zero
	if _, err := uc.CreateOrder(context.Background(), in); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("zero price err = %v, want ErrInvalidAmount", err)
	}

	in = validNewOrder()
	in.BookingDeposit = decimal.NewFromInt(-1)
	if _, err := uc.CreateOrder(context.Background(), in); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("negative deposit err = %v, want ErrInvalidAmount", err)
	}
}

func TestBookingCreateOrderRejectsUnknownStatus(t *testing.T) {
	uc := NewBookingUseCase(&test.OrderRepositoryStub{})

	in := validNewOrder()
	in.Status = "Frozen"
	if _, err := uc.CreateOrder(context.Background(), in); !errors.Is(err, domainErrors.ErrInvalidOrderStatus) {
		t.Fatalf("err = %v, want ErrInvalidOrderStatus", err)
	}
}

func TestBookingUpdateOrderValidation(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := NewBookingUseCase(orders)

	badKind := model.ObjectKindComplex
	if _, err := uc.UpdateOrder(context.Background(), 1, model.OrderUpdate{ObjectKind: &badKind}); !errors.Is(err, domainErrors.ErrPropertyUnavailable) {
		t.Fatalf("unbookable kind err = %v, want ErrPropertyUnavailable", err)
	}

	zero := decimal.Zero
	if _, err := uc.UpdateOrder(context.Background(), 1, model.OrderUpdate{TotalPrice: &zero}); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("zero price err = %v, want ErrInvalidAmount", err)
	}

	badStatus := model.OrderStatus("Frozen")
	if _, err := uc.UpdateOrder(context.Background(), 1, model.OrderUpdate{Status: &badStatus}); !errors.Is(err, domainErrors.ErrInvalidOrderStatus) {
		t.Fatalf("bad status err = %v, want ErrInvalidOrderStatus", err)
	}

	if len(orders.UpdateCalls) != 0 {
		t.Fatalf("repository reached on invalid input: %d calls", len(orders.UpdateCalls))
	}
}

func TestBookingUpdateOrderPassesThrough(t *testing.T) {
	orders := &test.OrderRepositoryStub{}
	uc := NewBookingUseCase(orders)

	status := model.OrderStatusOffering
	if _, err := uc.UpdateOrder(context.Background(), 7, model.OrderUpdate{Status: &status}); err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if len(orders.UpdateCalls) != 1 || orders.UpdateCalls[0].OrderID != 7 {
		t.Fatalf("unexpected update calls: %+v", orders.UpdateCalls)
	}
}

func TestBookingExpireBookings(t *testing.T) {
	orders := &test.OrderRepositoryStub{
		ExpireBookingsFn: func(ctx context.Context, asOf time.Time) (int, error) {
			return 3, nil
		},
	}
	uc := NewBookingUseCase(orders)

	n, err := uc.ExpireBookings(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ExpireBookings: %v", err)
	}
	if n != 3 {
		t.Fatalf("expired = %d, want 3", n)
	}
}
