package domain

import "math"

// AmountTolerance is the allowed absolute drift, in major currency units,
// between a claimed total and the recomputed line-item total.
const AmountTolerance = 0.01

// Subtotal recomputes the expected charge total from the line items.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Reconcile compares a claimed total against the recomputed item total.
// Failure order: empty cart, non-positive claim, malformed line item,
// then mismatch beyond tolerance.
func Reconcile(items []LineItem, claimed float64) error {
	if len(items) == 0 {
		return NewEmptyCartError()
	}
	if claimed <= 0 {
		return NewNonPositiveAmountError(claimed)
	}
	for _, item := range items {
		if item.Quantity < 1 || item.Price < 0 {
			return NewInvalidLineItemError(item.ID)
		}
	}

	// The small epsilon keeps boundary cases like 30.00 vs 29.99 inside the
	// declared tolerance despite binary float representation error.
	expected := Subtotal(items)
	if math.Abs(expected-claimed) > AmountTolerance+1e-9 {
		return NewAmountMismatchError(expected, claimed)
	}
	return nil
}
