package convert

import (
	"fmt"

	"github.com/tallyflow/tallyflow/internal/domain"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// GroupByInvoice partitions normalized rows into one group per distinct
// invoice number, in order of first appearance. Rows keep their original
// relative order inside each group. The first row of a group is authoritative
// for date, voucher type, party and narration; use ValidateGroups to enforce
// homogeneity instead of assuming it.
func GroupByInvoice(rows []entity.Row) []entity.InvoiceGroup {
	byNumber := make(map[string]int, len(rows))
	groups := make([]entity.InvoiceGroup, 0, len(rows))
	for _, r := range rows {
		if i, ok := byNumber[r.InvoiceNumber]; ok {
			groups[i].Rows = append(groups[i].Rows, r)
			continue
		}
		byNumber[r.InvoiceNumber] = len(groups)
		groups = append(groups, entity.InvoiceGroup{
			InvoiceNumber: r.InvoiceNumber,
			Date:          r.Date,
			VoucherType:   r.VoucherType,
			PartyName:     r.PartyName,
			Narration:     r.Narration,
			Rows:          []entity.Row{r},
		})
	}
	return groups
}

// ValidateGroups rejects groups whose member rows disagree on voucher type,
// party name or date. Optional strict pass; the default contract is
// first-row-wins.
func ValidateGroups(groups []entity.InvoiceGroup) error {
	for _, g := range groups {
		for _, r := range g.Rows {
			if r.VoucherType != g.VoucherType || r.PartyName != g.PartyName || r.Date != g.Date {
				return fmt.Errorf("%w: invoice %s", domain.ErrInconsistentGroup, g.InvoiceNumber)
			}
		}
	}
	return nil
}
