package model

import "testing"

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{"pending to completed", PaymentStatusPending, PaymentStatusCompleted, true},
		{"pending to failed", PaymentStatusPending, PaymentStatusFailed, true},
		{"pending to cancelled", PaymentStatusPending, PaymentStatusCancelled, false},
		{"pending to pending", PaymentStatusPending, PaymentStatusPending, false},
		{"completed to failed", PaymentStatusCompleted, PaymentStatusFailed, false},
		{"completed to completed", PaymentStatusCompleted, PaymentStatusCompleted, false},
		{"failed to completed", PaymentStatusFailed, PaymentStatusCompleted, false},
		{"cancelled to completed", PaymentStatusCancelled, PaymentStatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}
