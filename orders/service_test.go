package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/AreveiHQ/jenii-Admin/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memOrderStore struct {
	orders []models.Order
}

func (s *memOrderStore) List(_ context.Context, _, _ int64, status string) ([]models.Order, int64, error) {
	if status == "" {
		return s.orders, int64(len(s.orders)), nil
	}
	var matched []models.Order
	for _, order := range s.orders {
		for _, sub := range order.Orders {
			if sub.OrderStatus == status {
				matched = append(matched, order)
				break
			}
		}
	}
	return matched, int64(len(matched)), nil
}

func (s *memOrderStore) SetSubOrderStatus(_ context.Context, subOrderID primitive.ObjectID, status string) (*models.Order, error) {
	for i := range s.orders {
		for j := range s.orders[i].Orders {
			if s.orders[i].Orders[j].ID == subOrderID {
				s.orders[i].Orders[j].OrderStatus = status
				clone := s.orders[i]
				return &clone, nil
			}
		}
	}
	return nil, orders.ErrOrderNotFound
}

type recordingPublisher struct {
	changes []orders.StatusChange
}

func (p *recordingPublisher) PublishOrderStatus(_ context.Context, change orders.StatusChange) error {
	p.changes = append(p.changes, change)
	return nil
}

type recordingGateway struct {
	refunds []string
}

func (g *recordingGateway) Refund(_ context.Context, paymentID string, _ int64) error {
	g.refunds = append(g.refunds, paymentID)
	return nil
}

func seedOrder(store *memOrderStore, payment models.Payment) primitive.ObjectID {
	subID := primitive.NewObjectID()
	store.orders = append(store.orders, models.Order{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Orders: []models.SubOrder{{
			ID:          subID,
			OrderStatus: orders.StatusConfirmed,
			Payment:     payment,
			TotalAmount: 1500,
			CreatedAt:   time.Now(),
		}},
		CreatedAt: time.Now(),
	})
	return subID
}

func newFixture() (*orders.Service, *memOrderStore, *recordingPublisher, *recordingGateway) {
	store := &memOrderStore{}
	publisher := &recordingPublisher{}
	gateway := &recordingGateway{}
	return orders.NewService(store, publisher, gateway), store, publisher, gateway
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc, store, publisher, _ := newFixture()
	subID := seedOrder(store, models.Payment{Status: "pending"})

	_, err := svc.SetStatus(context.Background(), subID, "shipped") // wrong case
	assert.ErrorIs(t, err, orders.ErrInvalidStatus)
	assert.Equal(t, orders.StatusConfirmed, store.orders[0].Orders[0].OrderStatus)
	assert.Empty(t, publisher.changes)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.SetStatus(context.Background(), primitive.NewObjectID(), orders.StatusShipped)
	assert.ErrorIs(t, err, orders.ErrOrderNotFound)
}

// Status updates are pure overwrites: the last write wins and no
// history is kept.
func TestSetStatus_Overwrite(t *testing.T) {
	svc, store, publisher, _ := newFixture()
	subID := seedOrder(store, models.Payment{Status: "pending"})

	_, err := svc.SetStatus(context.Background(), subID, orders.StatusShipped)
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), subID, orders.StatusCanceled)
	require.NoError(t, err)

	assert.Equal(t, orders.StatusCanceled, store.orders[0].Orders[0].OrderStatus)
	require.Len(t, publisher.changes, 2)
	assert.Equal(t, orders.StatusShipped, publisher.changes[0].Status)
	assert.Equal(t, orders.StatusCanceled, publisher.changes[1].Status)
	assert.Equal(t, subID.Hex(), publisher.changes[1].SubOrderID)
}

func TestSetStatus_CancelRefundsCapturedPayment(t *testing.T) {
	svc, store, _, gateway := newFixture()
	subID := seedOrder(store, models.Payment{Status: "completed", TransactionID: "pay_123"})

	_, err := svc.SetStatus(context.Background(), subID, orders.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, []string{"pay_123"}, gateway.refunds)
}

func TestSetStatus_CancelSkipsRefundWithoutCapture(t *testing.T) {
	svc, store, _, gateway := newFixture()
	subID := seedOrder(store, models.Payment{Status: "pending"})

	_, err := svc.SetStatus(context.Background(), subID, orders.StatusCanceled)
	require.NoError(t, err)
	assert.Empty(t, gateway.refunds)
}

func TestSetStatus_NonCancelNeverRefunds(t *testing.T) {
	svc, store, _, gateway := newFixture()
	subID := seedOrder(store, models.Payment{Status: "completed", TransactionID: "pay_123"})

	_, err := svc.SetStatus(context.Background(), subID, orders.StatusDelivered)
	require.NoError(t, err)
	assert.Empty(t, gateway.refunds)
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, _, err := svc.List(context.Background(), 1, 10, "Returned")
	assert.ErrorIs(t, err, orders.ErrInvalidStatus)
}

func TestList_FiltersByStatus(t *testing.T) {
	svc, store, _, _ := newFixture()
	seedOrder(store, models.Payment{Status: "pending"})
	subID := seedOrder(store, models.Payment{Status: "pending"})
	_, err := svc.SetStatus(context.Background(), subID, orders.StatusShipped)
	require.NoError(t, err)

	matched, total, err := svc.List(context.Background(), 1, 10, orders.StatusShipped)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, matched, 1)
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		orders.StatusConfirmed, orders.StatusProcessing, orders.StatusShipped,
		orders.StatusDelivered, orders.StatusCanceled,
	} {
		assert.True(t, orders.IsValidStatus(status), status)
	}
	assert.False(t, orders.IsValidStatus("Returned"))
	assert.False(t, orders.IsValidStatus(""))
	assert.False(t, orders.IsValidStatus("delivered"))
}
