package coupons

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AreveiHQ/jenii-Admin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidCoupon   = errors.New("invalid coupon fields")
	ErrDuplicateCoupon = errors.New("coupon code already exists")
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponExpired   = errors.New("coupon is past its validity date")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

// Store is the coupon persistence surface. RedeemOne must perform the
// whole "still redeemable, so count one use" step as a single atomic
// conditional update; it returns (nil, nil) when no redeemable coupon
// matched, and the post-increment document otherwise.
type Store interface {
	Create(ctx context.Context, coupon *models.Coupon) (primitive.ObjectID, error)
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	RedeemOne(ctx context.Context, code string, now time.Time) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
}

type CreateInput struct {
	Code              string    `json:"code"`
	DiscountType      string    `json:"discountType"`
	DiscountValue     float64   `json:"discountValue"`
	ValidUntil        time.Time `json:"validUntil"`
	MinimumOrderValue float64   `json:"minimumOrderValue"`
	UsageLimit        int       `json:"usageLimit"`
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Coupon, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if in.Code == "" || in.ValidUntil.IsZero() {
		return nil, ErrInvalidCoupon
	}
	if in.DiscountType != "percentage" && in.DiscountType != "flat" {
		return nil, ErrInvalidCoupon
	}
	if in.DiscountValue <= 0 || in.MinimumOrderValue < 0 || in.UsageLimit < 0 {
		return nil, ErrInvalidCoupon
	}

	coupon := &models.Coupon{
		Code:              in.Code,
		DiscountType:      in.DiscountType,
		DiscountValue:     in.DiscountValue,
		ValidUntil:        in.ValidUntil,
		MinimumOrderValue: in.MinimumOrderValue,
		UsageLimit:        in.UsageLimit,
		UsedCount:         0,
		CreatedAt:         s.now(),
	}
	id, err := s.store.Create(ctx, coupon)
	if err != nil {
		return nil, err
	}
	coupon.ID = id
	return coupon, nil
}

// Redeem consumes one use of the coupon. At most usageLimit redemptions
// ever succeed, no matter how many callers race: the decision and the
// increment happen in one conditional store operation, and this method
// only classifies the failure afterwards.
func (s *Service) Redeem(ctx context.Context, code string) (*models.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCouponNotFound
	}

	coupon, err := s.store.RedeemOne(ctx, code, s.now())
	if err != nil {
		return nil, err
	}
	if coupon != nil {
		return coupon, nil
	}

	// Nothing matched: figure out which rule the caller tripped over.
	existing, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	switch {
	case existing == nil:
		return nil, ErrCouponNotFound
	case !existing.ValidUntil.After(s.now()):
		return nil, ErrCouponExpired
	default:
		return nil, ErrCouponExhausted
	}
}

func (s *Service) List(ctx context.Context) ([]models.Coupon, error) {
	return s.store.List(ctx)
}
