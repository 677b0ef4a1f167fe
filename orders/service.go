package orders

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/AreveiHQ/jenii-Admin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusConfirmed  = "Confirmed"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCanceled   = "Canceled"
)

var (
	ErrInvalidStatus = errors.New("status is not one of Confirmed, Processing, Shipped, Delivered, Canceled")
	ErrOrderNotFound = errors.New("order not found")
)

// Store lists parent orders and updates one sub-order's status by its
// identifier. SetSubOrderStatus returns ErrOrderNotFound when no
// sub-order matches, and the updated parent document otherwise.
type Store interface {
	List(ctx context.Context, page, limit int64, status string) ([]models.Order, int64, error)
	SetSubOrderStatus(ctx context.Context, subOrderID primitive.ObjectID, status string) (*models.Order, error)
}

// StatusChange is the event emitted after a successful status update.
type StatusChange struct {
	OrderID    string    `json:"orderId"`
	SubOrderID string    `json:"subOrderId"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

// Publisher fans a status change out to downstream consumers.
type Publisher interface {
	PublishOrderStatus(ctx context.Context, change StatusChange) error
}

// PaymentGateway refunds a captured payment when an order is canceled.
type PaymentGateway interface {
	Refund(ctx context.Context, paymentID string, amountPaise int64) error
}

type Service struct {
	store     Store
	publisher Publisher
	gateway   PaymentGateway
}

func NewService(store Store, publisher Publisher, gateway PaymentGateway) *Service {
	return &Service{store: store, publisher: publisher, gateway: gateway}
}

func (s *Service) List(ctx context.Context, page, limit int64, status string) ([]models.Order, int64, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.store.List(ctx, page, limit, status)
}

// SetStatus overwrites one sub-order's status. Any member of the status
// set may replace any other; only membership is enforced. A cancel of a
// captured payment triggers a refund through the gateway, and every
// successful update is published as an event. Refund and publish
// failures are logged, not propagated: the status write already
// happened and the caller must see it as such.
func (s *Service) SetStatus(ctx context.Context, subOrderID primitive.ObjectID, status string) (*models.Order, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.store.SetSubOrderStatus(ctx, subOrderID, status)
	if err != nil {
		return nil, err
	}

	if status == StatusCanceled {
		s.refundIfCaptured(ctx, order, subOrderID)
	}

	change := StatusChange{
		OrderID:    order.ID.Hex(),
		SubOrderID: subOrderID.Hex(),
		Status:     status,
		At:         time.Now(),
	}
	if err := s.publisher.PublishOrderStatus(ctx, change); err != nil {
		log.Println("publish order status change:", err)
	}
	return order, nil
}

func (s *Service) refundIfCaptured(ctx context.Context, order *models.Order, subOrderID primitive.ObjectID) {
	for _, sub := range order.Orders {
		if sub.ID != subOrderID {
			continue
		}
		if sub.Payment.Status != "completed" || sub.Payment.TransactionID == "" {
			return
		}
		amountPaise := int64(sub.TotalAmount * 100)
		if err := s.gateway.Refund(ctx, sub.Payment.TransactionID, amountPaise); err != nil {
			log.Println("refund for canceled order:", err)
		}
		return
	}
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}
