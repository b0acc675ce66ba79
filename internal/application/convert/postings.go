package convert

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// Voucher type classification. Party polarity keys off "not purchase" while
// tax and stock polarity key off "is sales"; the two checks are independent,
// so an unrecognized voucher type debits the party but takes purchase-like
// tax/stock polarity. That asymmetry is carried over from the source system
// unchanged; see DESIGN.md before unifying the conditions.
type voucherKind struct {
	purchase bool
	sales    bool
}

func classifyVoucherType(s string) voucherKind {
	v := strings.ToLower(strings.TrimSpace(s))
	return voucherKind{purchase: v == "purchase", sales: v == "sales"}
}

// ResolvePostings turns one invoice group plus its totals into the signed
// ledger entries of a voucher.
func ResolvePostings(g entity.InvoiceGroup, t entity.InvoiceTotals) entity.VoucherPostings {
	kind := classifyVoucherType(g.VoucherType)

	var p entity.VoucherPostings

	// Party ledger: debit of the grand total unless purchasing.
	if !kind.purchase {
		p.Party = entity.LedgerPosting{
			Ledger:         g.PartyName,
			Amount:         t.GrandTotal.Neg(),
			DeemedPositive: true,
			IsParty:        true,
		}
	} else {
		p.Party = entity.LedgerPosting{
			Ledger:         g.PartyName,
			Amount:         t.GrandTotal,
			DeemedPositive: false,
			IsParty:        true,
		}
	}

	// Tax ledgers in fixed CGST, SGST, IGST order. The ledger name comes from
	// the group's first row; a blank or "nan" name (pandas artifact in legacy
	// sheets) or a non-positive sum suppresses the posting, though the amount
	// still counts toward the grand total above.
	first := g.Rows[0]
	taxes := []struct {
		ledger string
		sum    decimal.Decimal
	}{
		{first.CGSTLedger, t.CGSTTotal},
		{first.SGSTLedger, t.SGSTTotal},
		{first.IGSTLedger, t.IGSTTotal},
	}
	for _, tax := range taxes {
		if tax.ledger == "" || strings.EqualFold(tax.ledger, "nan") || !tax.sum.IsPositive() {
			continue
		}
		if kind.sales {
			p.Taxes = append(p.Taxes, entity.LedgerPosting{
				Ledger:         tax.ledger,
				Amount:         tax.sum,
				DeemedPositive: false,
			})
		} else {
			p.Taxes = append(p.Taxes, entity.LedgerPosting{
				Ledger:         tax.ledger,
				Amount:         tax.sum.Neg(),
				DeemedPositive: true,
			})
		}
	}

	// One inventory entry per row, unconditionally, each with its own
	// accounting allocation against the row's ledger.
	p.Inventory = make([]entity.InventoryEntry, 0, len(g.Rows))
	for _, r := range g.Rows {
		amount := r.ItemAmount()
		alloc := entity.LedgerPosting{Ledger: r.LedgerName}
		if kind.sales {
			alloc.Amount = amount
			alloc.DeemedPositive = false
		} else {
			alloc.Amount = amount.Neg()
			alloc.DeemedPositive = true
		}
		p.Inventory = append(p.Inventory, entity.InventoryEntry{
			StockItem:  r.StockItemName,
			Rate:       r.RatePerPiece,
			Amount:     amount,
			Quantity:   r.Quantity,
			Allocation: alloc,
		})
	}

	return p
}
