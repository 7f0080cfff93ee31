package service

import (
	"context"
	"sync"
	"time"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/yoco"
	"gorm.io/gorm"
)

type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[uint64]*model.HousePlan
}

func newFakePlanRepo(plans ...*model.HousePlan) *fakePlanRepo {
	r := &fakePlanRepo{plans: make(map[uint64]*model.HousePlan)}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakePlanRepo) FindByID(_ context.Context, id uint64) (*model.HousePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePlanRepo) List(_ context.Context, loc model.DisplayLocation) ([]model.HousePlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.HousePlan
	for _, p := range r.plans {
		if loc == "" || p.DisplayLocation == loc {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) AddImage(_ context.Context, img *model.HousePlanImage) error {
	img.ID = 1
	return nil
}

func (r *fakePlanRepo) SetDB(*gorm.DB) {}

type fakePurchaseRepo struct {
	mu        sync.Mutex
	seq       uint64
	purchases map[uint64]*model.Purchase
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[uint64]*model.Purchase)}
}

func (r *fakePurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) FindByID(_ context.Context, id uint64) (*model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) ListByPlan(_ context.Context, planID uint64) ([]model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Purchase
	for _, p := range r.purchases {
		if p.HousePlanID == planID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) MarkCompletedIfPending(_ context.Context, id uint64, reference, token string, paidAt time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.purchases[id]
	if !ok || p.PaymentStatus != model.PaymentStatusPending {
		return 0, nil
	}
	p.PaymentStatus = model.PaymentStatusCompleted
	p.PaymentReference = &reference
	p.PaymentToken = &token
	p.PaymentDate = &paidAt
	p.UpdatedAt = time.Now()
	return 1, nil
}

func (r *fakePurchaseRepo) MarkFailedIfPending(_ context.Context, id uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.purchases[id]
	if !ok || p.PaymentStatus != model.PaymentStatusPending {
		return 0, nil
	}
	p.PaymentStatus = model.PaymentStatusFailed
	p.UpdatedAt = time.Now()
	return 1, nil
}

func (r *fakePurchaseRepo) SetDB(*gorm.DB) {}

func (r *fakePurchaseRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.purchases)
}

type fakeYocoClient struct {
	mu      sync.Mutex
	calls   int
	lastReq yoco.ChargeRequest
	resp    *yoco.ChargeResponse
	err     error
}

func (c *fakeYocoClient) Charge(_ context.Context, req yoco.ChargeRequest) (*yoco.ChargeResponse, error) {
	c.mu.Lock()
	c.calls++
	c.lastReq = req
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.resp, nil
}

func (c *fakeYocoClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
