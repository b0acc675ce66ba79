package convert

import (
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// Totals aggregates one invoice group: item subtotal, per-tax sums and grand
// total. Arithmetic is exact decimal; no rounding happens here so repeated
// sums cannot compound rounding error.
func Totals(g entity.InvoiceGroup) entity.InvoiceTotals {
	var t entity.InvoiceTotals
	for _, r := range g.Rows {
		t.ItemTotal = t.ItemTotal.Add(r.ItemAmount())
		t.CGSTTotal = t.CGSTTotal.Add(r.CGSTAmount)
		t.SGSTTotal = t.SGSTTotal.Add(r.SGSTAmount)
		t.IGSTTotal = t.IGSTTotal.Add(r.IGSTAmount)
	}
	t.GrandTotal = t.ItemTotal.Add(t.CGSTTotal).Add(t.SGSTTotal).Add(t.IGSTTotal)
	return t
}
