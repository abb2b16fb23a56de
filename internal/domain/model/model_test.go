package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"pending", OrderStatusPending, "Pending"},
		{"offering", OrderStatusOffering, "Offering"},
		{"cancelled", OrderStatusCancelled, "Cancelled"},
		{"completed", OrderStatusCompleted, "Completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestPropertyStatusFor(t *testing.T) {
	cases := []struct {
		name    string
		status  OrderStatus
		want    PropertyStatus
		applies bool
	}{
		{"offering books", OrderStatusOffering, PropertyStatusBooked, true},
		{"completed sells", OrderStatusCompleted, PropertyStatusSold, true},
		{"cancelled frees", OrderStatusCancelled, PropertyStatusFree, true},
		{"pending untouched", OrderStatusPending, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, applies := tc.status.PropertyStatusFor()
			if applies != tc.applies {
				t.Fatalf("expected applies=%v, got %v", tc.applies, applies)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestTransactionTypeClasses(t *testing.T) {
	credits := []TransactionType{TransactionDeposit, TransactionRefund, TransactionBonus, TransactionTransferIn}
	debits := []TransactionType{TransactionWithdrawal, TransactionPenalty, TransactionTransferOut, TransactionPurchase}

	for _, tt := range credits {
		if !tt.IsCredit() || tt.IsDebit() || tt.IsLoyalty() {
			t.Fatalf("%s must be credit only", tt)
		}
	}
	for _, tt := range debits {
		if !tt.IsDebit() || tt.IsCredit() || tt.IsLoyalty() {
			t.Fatalf("%s must be debit only", tt)
		}
	}
	for _, tt := range []TransactionType{TransactionLoyaltyEarned, TransactionLoyaltySpent} {
		if !tt.IsLoyalty() || tt.IsCredit() || tt.IsDebit() {
			t.Fatalf("%s must be loyalty only", tt)
		}
	}
	if TransactionType("Barter").Valid() {
		t.Fatal("unknown type must not be valid")
	}
}

func TestOrderUpdateRetargets(t *testing.T) {
	id := int64(5)
	kind := ObjectKindApartment

	if (OrderUpdate{}).Retargets() {
		t.Fatal("empty update must not retarget")
	}
	if (OrderUpdate{ObjectID: &id}).Retargets() {
		t.Fatal("object id alone must not retarget")
	}
	if !(OrderUpdate{ObjectID: &id, ObjectKind: &kind}).Retargets() {
		t.Fatal("full pair must retarget")
	}
}

func TestObjectKindBookable(t *testing.T) {
	if !ObjectKindApartment.Bookable() || !ObjectKindCommercial.Bookable() {
		t.Fatal("apartments and commercial units are bookable")
	}
	if ObjectKindBuilding.Bookable() || ObjectKindComplex.Bookable() {
		t.Fatal("buildings and complexes are not bookable")
	}
}
