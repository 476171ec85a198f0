package payment

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const txnAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Simulator is the built-in payment provider. It performs no real
// charge: it holds for a short processing delay and approves roughly
// 95% of attempts.
type Simulator struct {
	// Delay mimics gateway latency. Zero means no wait (used in tests).
	Delay time.Duration
	// ApproveRate is the fraction of charges approved, in [0,1].
	ApproveRate float64

	// mu serializes rng access; one Simulator serves all requests and
	// *rand.Rand is not goroutine-safe.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator returns a Simulator with production-like behaviour:
// a 1.5s processing delay and a 95% approval rate.
func NewSimulator() *Simulator {
	return &Simulator{
		Delay:       1500 * time.Millisecond,
		ApproveRate: 0.95,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSimulatorWithSeed pins the random source so tests are deterministic.
func NewSimulatorWithSeed(seed int64) *Simulator {
	return &Simulator{
		ApproveRate: 0.95,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Charge validates the card shape, waits out the simulated processing
// delay, and rolls the approval dice.
func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	req.Card.Normalize()
	if err := req.Card.Validate(); err != nil {
		return nil, err
	}

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	roll := s.rng.Float64()
	s.mu.Unlock()

	if roll >= s.ApproveRate {
		slog.Warn("simulated charge declined", "booking_id", req.BookingID, "amount", req.Amount)
		return &ChargeResult{
			Approved: false,
			Message:  "Payment declined by bank. Please try again or use a different card.",
		}, nil
	}

	txn := s.newTransactionID()
	slog.Info("simulated charge approved", "booking_id", req.BookingID, "amount", req.Amount, "transaction_id", txn)
	return &ChargeResult{Approved: true, TransactionID: txn}, nil
}

func (s *Simulator) newTransactionID() string {
	var b strings.Builder
	b.WriteString("TXN")
	s.mu.Lock()
	for i := 0; i < 12; i++ {
		b.WriteByte(txnAlphabet[s.rng.Intn(len(txnAlphabet))])
	}
	s.mu.Unlock()
	return b.String()
}
