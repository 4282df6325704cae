package state

import (
	"errors"
	"testing"
	"time"
)

func TestBalanceUnknownUser(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	if got := led.Balance("g1", "nobody"); got != 0 {
		t.Errorf("Balance() for unknown user = %v, want 0", got)
	}
}

func TestTransferConservesTotal(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	if _, _, err := led.ClaimDaily("g1", "alice", 500, time.Hour); err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}

	if err := led.Transfer("g1", "alice", "bob", 200); err != nil {
		t.Fatalf("Transfer() returned error: %v", err)
	}

	alice := led.Balance("g1", "alice")
	bob := led.Balance("g1", "bob")
	if alice != 300 {
		t.Errorf("sender balance = %v, want 300", alice)
	}
	if bob != 200 {
		t.Errorf("recipient balance = %v, want 200", bob)
	}
	if alice+bob != 500 {
		t.Errorf("total = %v, want 500", alice+bob)
	}
}

func TestTransferInsufficientFunds(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	if _, _, err := led.ClaimDaily("g1", "alice", 50, time.Hour); err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}

	err := led.Transfer("g1", "alice", "bob", 100)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Transfer() error = %v, want ErrInsufficientFunds", err)
	}

	if got := led.Balance("g1", "alice"); got != 50 {
		t.Errorf("sender balance after declined transfer = %v, want 50", got)
	}
	if got := led.Balance("g1", "bob"); got != 0 {
		t.Errorf("recipient balance after declined transfer = %v, want 0", got)
	}
}

func TestTransferInvalidAmount(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	for _, amount := range []int64{0, -10} {
		if err := led.Transfer("g1", "a", "b", amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Transfer(%d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestClaimDailyCooldown(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	current := time.Unix(0, 0)
	led.now = func() time.Time { return current }

	// First ever claim is granted.
	granted, balance, err := led.ClaimDaily("g1", "u1", 100, 24*time.Hour)
	if err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}
	if !granted || balance != 100 {
		t.Errorf("first claim: granted=%v balance=%v, want true 100", granted, balance)
	}

	// An hour later the cooldown still holds.
	current = time.Unix(3600, 0)
	granted, balance, err = led.ClaimDaily("g1", "u1", 100, 24*time.Hour)
	if err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}
	if granted || balance != 100 {
		t.Errorf("early claim: granted=%v balance=%v, want false 100", granted, balance)
	}

	// Past 24 hours the claim is granted again.
	current = time.Unix(90000, 0)
	granted, balance, err = led.ClaimDaily("g1", "u1", 100, 24*time.Hour)
	if err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}
	if !granted || balance != 200 {
		t.Errorf("late claim: granted=%v balance=%v, want true 200", granted, balance)
	}
}

func TestPurchase(t *testing.T) {
	led := NewEconomyLedger(newTestStore(t))

	if _, _, err := led.ClaimDaily("g1", "u1", 500, time.Hour); err != nil {
		t.Fatalf("ClaimDaily() returned error: %v", err)
	}

	if err := led.Purchase("g1", "u1", 300); err != nil {
		t.Fatalf("Purchase() returned error: %v", err)
	}
	if got := led.Balance("g1", "u1"); got != 200 {
		t.Errorf("balance after purchase = %v, want 200", got)
	}

	if err := led.Purchase("g1", "u1", 1000); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Purchase() error = %v, want ErrInsufficientFunds", err)
	}
	if got := led.Balance("g1", "u1"); got != 200 {
		t.Errorf("balance after declined purchase = %v, want 200", got)
	}
}
