package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/cedricplans/houseplans-backend/internal/model"
	"github.com/cedricplans/houseplans-backend/internal/yoco"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPendingPurchase(t *testing.T, repo *fakePurchaseRepo, price string) *model.Purchase {
	t.Helper()
	p := &model.Purchase{
		HousePlanID:   1,
		PlanPrice:     decimal.RequireFromString(price),
		FullName:      "Thandi Mokoena",
		Email:         "thandi@example.com",
		PhoneNumber:   "0812345678",
		Province:      "limpopo",
		City:          "Thohoyandou",
		PaymentStatus: model.PaymentStatusPending,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func paymentFixture(t *testing.T, price string, client *fakeYocoClient) (*fakePurchaseRepo, *model.Purchase, PaymentService) {
	t.Helper()
	plan := &model.HousePlan{ID: 1, Title: "Contemporary 3-Bed", Price: decimal.RequireFromString(price)}
	purchaseRepo := newFakePurchaseRepo()
	p := newPendingPurchase(t, purchaseRepo, price)
	svc := NewPaymentService(purchaseRepo, newFakePlanRepo(plan), client, zap.NewNop())
	return purchaseRepo, p, svc
}

func TestChargeEmptyTokenMakesNoNetworkCall(t *testing.T) {
	client := &fakeYocoClient{resp: &yoco.ChargeResponse{ID: "ch_123"}}
	_, p, svc := paymentFixture(t, "1999.99", client)

	_, err := svc.Charge(context.Background(), p.ID, "  ")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"token"}, verr.Fields)
	require.Zero(t, client.callCount())
}

func TestChargeUnknownPurchase(t *testing.T) {
	client := &fakeYocoClient{}
	_, _, svc := paymentFixture(t, "100.00", client)

	_, err := svc.Charge(context.Background(), 999, "tok_1")
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, client.callCount())
}

func TestChargeSuccessCompletesPurchase(t *testing.T) {
	client := &fakeYocoClient{resp: &yoco.ChargeResponse{ID: "ch_123"}}
	repo, p, svc := paymentFixture(t, "1999.99", client)

	outcome, err := svc.Charge(context.Background(), p.ID, "tok_1")
	require.NoError(t, err)
	require.Equal(t, "ch_123", outcome.Reference)
	require.Equal(t, p.ID, outcome.PurchaseID)

	require.EqualValues(t, 199999, client.lastReq.Amount)
	require.Equal(t, "ZAR", client.lastReq.Currency)
	require.Equal(t, "Contemporary 3-Bed", client.lastReq.Metadata.PlanName)

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusCompleted, stored.PaymentStatus)
	require.NotNil(t, stored.PaymentReference)
	require.Equal(t, "ch_123", *stored.PaymentReference)
	require.NotNil(t, stored.PaymentToken)
	require.Equal(t, "tok_1", *stored.PaymentToken)
	require.NotNil(t, stored.PaymentDate)

	// A second attempt on the resolved purchase must be rejected
	// without another charge call.
	_, err = svc.Charge(context.Background(), p.ID, "tok_2")
	require.ErrorIs(t, err, ErrNotPending)
	require.Equal(t, 1, client.callCount())
}

func TestChargeRejectedMarksFailed(t *testing.T) {
	client := &fakeYocoClient{err: &yoco.APIError{StatusCode: http.StatusPaymentRequired, Message: "insufficient_funds"}}
	repo, p, svc := paymentFixture(t, "1999.99", client)

	_, err := svc.Charge(context.Background(), p.ID, "tok_1")

	var perr *PaymentError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, PaymentRejected, perr.Kind)
	require.Equal(t, "insufficient_funds", perr.Message)

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusFailed, stored.PaymentStatus)
}

func TestChargeUnreachableLeavesPending(t *testing.T) {
	client := &fakeYocoClient{err: errors.New("dial tcp: connection refused")}
	repo, p, svc := paymentFixture(t, "1999.99", client)

	_, err := svc.Charge(context.Background(), p.ID, "tok_1")

	var perr *PaymentError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, PaymentUnreachable, perr.Kind)

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusPending, stored.PaymentStatus, "charge must stay retryable")
}

func TestConcurrentChargesExactlyOneWins(t *testing.T) {
	client := &fakeYocoClient{resp: &yoco.ChargeResponse{ID: "ch_123"}}
	repo, p, svc := paymentFixture(t, "250000.00", client)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Charge(context.Background(), p.ID, "tok_1")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, ErrNotPending)
	}
	require.Equal(t, 1, successes, "exactly one attempt may complete the purchase")

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusCompleted, stored.PaymentStatus)
}
