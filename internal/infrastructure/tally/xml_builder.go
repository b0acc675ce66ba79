package tally

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
)

// Fixed markers of the Tally import request.
const (
	requestType = "Import Data"
	reportName  = "Vouchers"
	voucherView = "Invoice Voucher View"
)

// EnvelopeBuilder assembles the Tally import document
// (ENVELOPE/HEADER/BODY/IMPORTDATA/.../TALLYMESSAGE/VOUCHER) and serializes
// it to UTF-8 XML bytes.
type EnvelopeBuilder struct{}

// NewEnvelopeBuilder creates the builder.
func NewEnvelopeBuilder() *EnvelopeBuilder {
	return &EnvelopeBuilder{}
}

// Build generates the document for one conversion. It fails without partial
// output when a voucher's date cell cannot be read as a calendar date.
func (b *EnvelopeBuilder) Build(env *Envelope) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("tally: nil envelope")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	envelope := doc.CreateElement("ENVELOPE")
	envelope.CreateElement("HEADER").CreateElement("TALLYREQUEST").SetText(requestType)

	importData := envelope.CreateElement("BODY").CreateElement("IMPORTDATA")
	desc := importData.CreateElement("REQUESTDESC")
	desc.CreateElement("REPORTNAME").SetText(reportName)
	desc.CreateElement("STATICVARIABLES").CreateElement("SVCURRENTCOMPANY").SetText(env.Company)

	requestData := importData.CreateElement("REQUESTDATA")
	for _, v := range env.Vouchers {
		date, err := parseVoucherDate(v.Date)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: %w", v.Number, err)
		}

		voucher := requestData.CreateElement("TALLYMESSAGE").CreateElement("VOUCHER")
		voucher.CreateAttr("VCHTYPE", v.VoucherType)
		voucher.CreateAttr("ACTION", "Create")
		voucher.CreateAttr("OBJVIEW", voucherView)

		voucher.CreateElement("DATE").SetText(date.Format("20060102"))
		voucher.CreateElement("VOUCHERNUMBER").SetText(v.Number)
		voucher.CreateElement("PARTYNAME").SetText(v.PartyName)
		voucher.CreateElement("VOUCHERTYPENAME").SetText(v.VoucherType)
		voucher.CreateElement("ISINVOICE").SetText("Yes")
		voucher.CreateElement("NARRATION").SetText(v.Narration)

		writeLedgerEntry(voucher, v.Postings.Party)
		for _, tax := range v.Postings.Taxes {
			writeLedgerEntry(voucher, tax)
		}
		for _, item := range v.Postings.Inventory {
			writeInventoryEntry(voucher, item)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func writeLedgerEntry(voucher *etree.Element, p entity.LedgerPosting) {
	e := voucher.CreateElement("LEDGERENTRIES.LIST")
	e.CreateElement("LEDGERNAME").SetText(p.Ledger)
	e.CreateElement("ISDEEMEDPOSITIVE").SetText(yesNo(p.DeemedPositive))
	e.CreateElement("AMOUNT").SetText(formatAmount(p.Amount))
	if p.IsParty {
		e.CreateElement("ISPARTYLEDGER").SetText("Yes")
	}
}

func writeInventoryEntry(voucher *etree.Element, item entity.InventoryEntry) {
	e := voucher.CreateElement("ALLINVENTORYENTRIES.LIST")
	e.CreateElement("STOCKITEMNAME").SetText(item.StockItem)
	// Inventory entries are always credit-side; the debit/credit swing lives
	// in the accounting allocation below.
	e.CreateElement("ISDEEMEDPOSITIVE").SetText("No")
	e.CreateElement("RATE").SetText(item.Rate.String())
	e.CreateElement("AMOUNT").SetText(formatAmount(item.Amount))
	e.CreateElement("BILLEDQTY").SetText(item.Quantity.String())
	e.CreateElement("ACTUALQTY").SetText(item.Quantity.String())

	alloc := e.CreateElement("ACCOUNTINGALLOCATIONS.LIST")
	alloc.CreateElement("LEDGERNAME").SetText(item.Allocation.Ledger)
	alloc.CreateElement("ISDEEMEDPOSITIVE").SetText(yesNo(item.Allocation.DeemedPositive))
	alloc.CreateElement("AMOUNT").SetText(formatAmount(item.Allocation.Amount))
}

// formatAmount renders money with exactly two fractional digits. Rounding
// happens here and nowhere earlier.
func formatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
