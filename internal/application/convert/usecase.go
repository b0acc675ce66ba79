package convert

import (
	"context"

	"github.com/tallyflow/tallyflow/internal/domain/entity"
	infratally "github.com/tallyflow/tallyflow/internal/infrastructure/tally"
)

// Options tune one conversion pipeline instance.
type Options struct {
	// DefaultCompany is used when the sheet has no usable Company Name cell.
	DefaultCompany string
	// StrictGroups enables the defensive homogeneity check on invoice groups.
	StrictGroups bool
}

// Result is the outcome of one conversion: the serialized document plus
// figures for logging.
type Result struct {
	XML      []byte
	Company  string
	Invoices int
	Rows     int
}

// UseCase runs the conversion pipeline: normalize, group, total, resolve
// postings, build and serialize. It is stateless; concurrent conversions are
// independent.
type UseCase struct {
	builder *infratally.EnvelopeBuilder
	opts    Options
}

// NewUseCase builds the use case.
func NewUseCase(builder *infratally.EnvelopeBuilder, opts Options) *UseCase {
	return &UseCase{builder: builder, opts: opts}
}

// Convert transforms a raw worksheet into Tally import XML. Structural errors
// (missing columns, empty dataset, bad dates, strict-mode inconsistency)
// abort with no partial document.
func (uc *UseCase) Convert(ctx context.Context, table *entity.Table) (*Result, error) {
	rows, err := Normalize(table)
	if err != nil {
		return nil, err
	}

	groups := GroupByInvoice(rows)
	if uc.opts.StrictGroups {
		if err := ValidateGroups(groups); err != nil {
			return nil, err
		}
	}

	company := rows[0].CompanyName
	if company == "" {
		company = uc.opts.DefaultCompany
	}

	env := &infratally.Envelope{
		Company:  company,
		Vouchers: make([]infratally.VoucherRecord, 0, len(groups)),
	}
	for _, g := range groups {
		totals := Totals(g)
		env.Vouchers = append(env.Vouchers, infratally.VoucherRecord{
			Number:      g.InvoiceNumber,
			Date:        g.Date,
			VoucherType: g.VoucherType,
			PartyName:   g.PartyName,
			Narration:   g.Narration,
			Postings:    ResolvePostings(g, totals),
		})
	}

	xml, err := uc.builder.Build(env)
	if err != nil {
		return nil, err
	}

	return &Result{
		XML:      xml,
		Company:  company,
		Invoices: len(groups),
		Rows:     len(rows),
	}, nil
}
