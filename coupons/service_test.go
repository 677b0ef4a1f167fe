package coupons_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/AreveiHQ/jenii-Admin/coupons"
	"github.com/AreveiHQ/jenii-Admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mirrors the repository contract: RedeemOne is one atomic
// conditional check-and-increment.
type memStore struct {
	mu      sync.Mutex
	coupons map[string]*models.Coupon
}

func newMemStore() *memStore {
	return &memStore{coupons: make(map[string]*models.Coupon)}
}

func (s *memStore) Create(_ context.Context, coupon *models.Coupon) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coupons[coupon.Code]; ok {
		return primitive.NilObjectID, coupons.ErrDuplicateCoupon
	}
	id := primitive.NewObjectID()
	coupon.ID = id
	clone := *coupon
	s.coupons[coupon.Code] = &clone
	return id, nil
}

func (s *memStore) FindByCode(_ context.Context, code string) (*models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coupon, ok := s.coupons[code]
	if !ok {
		return nil, nil
	}
	clone := *coupon
	return &clone, nil
}

func (s *memStore) RedeemOne(_ context.Context, code string, now time.Time) (*models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coupon, ok := s.coupons[code]
	if !ok {
		return nil, nil
	}
	if !coupon.ValidUntil.After(now) {
		return nil, nil
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, nil
	}
	coupon.UsedCount++
	clone := *coupon
	return &clone, nil
}

func (s *memStore) List(_ context.Context) ([]models.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []models.Coupon
	for _, coupon := range s.coupons {
		all = append(all, *coupon)
	}
	return all, nil
}

func validInput() coupons.CreateInput {
	return coupons.CreateInput{
		Code:          "festive10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ValidUntil:    time.Now().Add(24 * time.Hour),
		UsageLimit:    5,
	}
}

func TestCreate_NormalizesCode(t *testing.T) {
	svc := coupons.NewService(newMemStore())

	coupon, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "FESTIVE10", coupon.Code)
	assert.Zero(t, coupon.UsedCount)
	assert.False(t, coupon.ID.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc := coupons.NewService(newMemStore())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*coupons.CreateInput)
	}{
		{"empty code", func(in *coupons.CreateInput) { in.Code = " " }},
		{"bad discount type", func(in *coupons.CreateInput) { in.DiscountType = "bogus" }},
		{"zero value", func(in *coupons.CreateInput) { in.DiscountValue = 0 }},
		{"negative minimum", func(in *coupons.CreateInput) { in.MinimumOrderValue = -1 }},
		{"negative limit", func(in *coupons.CreateInput) { in.UsageLimit = -1 }},
		{"no expiry", func(in *coupons.CreateInput) { in.ValidUntil = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, coupons.ErrInvalidCoupon)
		})
	}
}

func TestRedeem_NotFound(t *testing.T) {
	svc := coupons.NewService(newMemStore())

	_, err := svc.Redeem(context.Background(), "NOPE")
	assert.ErrorIs(t, err, coupons.ErrCouponNotFound)
}

func TestRedeem_Expired(t *testing.T) {
	store := newMemStore()
	svc := coupons.NewService(store)
	in := validInput()
	in.ValidUntil = time.Now().Add(time.Nanosecond)
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = svc.Redeem(context.Background(), "FESTIVE10")
	assert.ErrorIs(t, err, coupons.ErrCouponExpired)
}

func TestRedeem_CountsUses(t *testing.T) {
	store := newMemStore()
	svc := coupons.NewService(store)
	in := validInput()
	in.UsageLimit = 2
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	coupon, err := svc.Redeem(context.Background(), "festive10")
	require.NoError(t, err)
	assert.Equal(t, 1, coupon.UsedCount)

	coupon, err = svc.Redeem(context.Background(), "FESTIVE10")
	require.NoError(t, err)
	assert.Equal(t, 2, coupon.UsedCount)

	_, err = svc.Redeem(context.Background(), "FESTIVE10")
	assert.ErrorIs(t, err, coupons.ErrCouponExhausted)
}

func TestRedeem_UnlimitedWhenNoLimitSet(t *testing.T) {
	store := newMemStore()
	svc := coupons.NewService(store)
	in := validInput()
	in.UsageLimit = 0
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := svc.Redeem(context.Background(), "FESTIVE10")
		require.NoError(t, err)
	}
}

// Under N concurrent redeemers against a limit of k, exactly k succeed
// and the rest see the exhausted error; usedCount never passes the
// limit.
func TestRedeem_ConcurrentNeverOverRedeems(t *testing.T) {
	store := newMemStore()
	svc := coupons.NewService(store)
	in := validInput()
	in.UsageLimit = 5
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Redeem(context.Background(), "FESTIVE10")
		}(i)
	}
	wg.Wait()

	succeeded, exhausted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, coupons.ErrCouponExhausted):
			exhausted++
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, attempts-5, exhausted)

	final, err := store.FindByCode(context.Background(), "FESTIVE10")
	require.NoError(t, err)
	assert.Equal(t, 5, final.UsedCount)
}
