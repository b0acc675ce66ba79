package tally_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyflow/tallyflow/internal/domain"
	"github.com/tallyflow/tallyflow/internal/domain/entity"
	"github.com/tallyflow/tallyflow/internal/infrastructure/tally"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// A resolved sales voucher: party debit of 218, CGST 18, one stock line of 200.
func salesVoucher() tally.VoucherRecord {
	return tally.VoucherRecord{
		Number:      "INV-1",
		Date:        "2025-04-01",
		VoucherType: "Sales",
		PartyName:   "Acme Traders",
		Narration:   "April supply",
		Postings: entity.VoucherPostings{
			Party: entity.LedgerPosting{
				Ledger: "Acme Traders", Amount: dec("-218"), DeemedPositive: true, IsParty: true,
			},
			Taxes: []entity.LedgerPosting{
				{Ledger: "Output CGST", Amount: dec("18"), DeemedPositive: false},
			},
			Inventory: []entity.InventoryEntry{
				{
					StockItem: "Widget 10mm",
					Rate:      dec("100"),
					Amount:    dec("200"),
					Quantity:  dec("2"),
					Allocation: entity.LedgerPosting{
						Ledger: "Sales Ledger", Amount: dec("200"), DeemedPositive: false,
					},
				},
			},
		},
	}
}

func buildDoc(t *testing.T, env *tally.Envelope) *etree.Document {
	t.Helper()
	out, err := tally.NewEnvelopeBuilder().Build(env)
	require.NoError(t, err)
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	return doc
}

func TestBuild_EnvelopeSkeleton(t *testing.T) {
	env := &tally.Envelope{Company: "My Company Pvt Ltd", Vouchers: []tally.VoucherRecord{salesVoucher()}}
	out, err := tally.NewEnvelopeBuilder().Build(env)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), `<?xml version="1.0" encoding="utf-8"?>`),
		"the document carries a standard XML declaration")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	assert.Equal(t, "Import Data", doc.FindElement("/ENVELOPE/HEADER/TALLYREQUEST").Text())
	assert.Equal(t, "Vouchers", doc.FindElement("//IMPORTDATA/REQUESTDESC/REPORTNAME").Text())
	assert.Equal(t, "My Company Pvt Ltd",
		doc.FindElement("//REQUESTDESC/STATICVARIABLES/SVCURRENTCOMPANY").Text())
	require.NotNil(t, doc.FindElement("//IMPORTDATA/REQUESTDATA"))
}

func TestBuild_VoucherRecord(t *testing.T) {
	doc := buildDoc(t, &tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{salesVoucher()}})

	v := doc.FindElement("//REQUESTDATA/TALLYMESSAGE/VOUCHER")
	require.NotNil(t, v)
	assert.Equal(t, "Sales", v.SelectAttrValue("VCHTYPE", ""))
	assert.Equal(t, "Create", v.SelectAttrValue("ACTION", ""))
	assert.Equal(t, "Invoice Voucher View", v.SelectAttrValue("OBJVIEW", ""))

	assert.Equal(t, "20250401", v.FindElement("DATE").Text())
	assert.Equal(t, "INV-1", v.FindElement("VOUCHERNUMBER").Text())
	assert.Equal(t, "Acme Traders", v.FindElement("PARTYNAME").Text())
	assert.Equal(t, "Sales", v.FindElement("VOUCHERTYPENAME").Text())
	assert.Equal(t, "Yes", v.FindElement("ISINVOICE").Text())
	assert.Equal(t, "April supply", v.FindElement("NARRATION").Text())
}

func TestBuild_LedgerEntries(t *testing.T) {
	doc := buildDoc(t, &tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{salesVoucher()}})

	entries := doc.FindElements("//VOUCHER/LEDGERENTRIES.LIST")
	require.Len(t, entries, 2, "party entry first, then the qualifying tax entries")

	party := entries[0]
	assert.Equal(t, "Acme Traders", party.FindElement("LEDGERNAME").Text())
	assert.Equal(t, "Yes", party.FindElement("ISDEEMEDPOSITIVE").Text())
	assert.Equal(t, "-218.00", party.FindElement("AMOUNT").Text())
	assert.Equal(t, "Yes", party.FindElement("ISPARTYLEDGER").Text())

	tax := entries[1]
	assert.Equal(t, "Output CGST", tax.FindElement("LEDGERNAME").Text())
	assert.Equal(t, "No", tax.FindElement("ISDEEMEDPOSITIVE").Text())
	assert.Equal(t, "18.00", tax.FindElement("AMOUNT").Text())
	assert.Nil(t, tax.FindElement("ISPARTYLEDGER"), "only the party entry carries ISPARTYLEDGER")
}

func TestBuild_InventoryEntries(t *testing.T) {
	doc := buildDoc(t, &tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{salesVoucher()}})

	item := doc.FindElement("//VOUCHER/ALLINVENTORYENTRIES.LIST")
	require.NotNil(t, item)
	assert.Equal(t, "Widget 10mm", item.FindElement("STOCKITEMNAME").Text())
	assert.Equal(t, "No", item.FindElement("ISDEEMEDPOSITIVE").Text())
	assert.Equal(t, "100", item.FindElement("RATE").Text())
	assert.Equal(t, "200.00", item.FindElement("AMOUNT").Text())
	assert.Equal(t, "2", item.FindElement("BILLEDQTY").Text())
	assert.Equal(t, "2", item.FindElement("ACTUALQTY").Text())

	alloc := item.FindElement("ACCOUNTINGALLOCATIONS.LIST")
	require.NotNil(t, alloc, "the allocation nests inside its inventory entry")
	assert.Equal(t, "Sales Ledger", alloc.FindElement("LEDGERNAME").Text())
	assert.Equal(t, "No", alloc.FindElement("ISDEEMEDPOSITIVE").Text())
	assert.Equal(t, "200.00", alloc.FindElement("AMOUNT").Text())
}

func TestBuild_AmountsSerializeWithTwoDecimals(t *testing.T) {
	v := salesVoucher()
	v.Postings.Party.Amount = dec("-218.005")
	v.Postings.Taxes[0].Amount = dec("18.1")
	doc := buildDoc(t, &tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{v}})

	entries := doc.FindElements("//VOUCHER/LEDGERENTRIES.LIST")
	require.Len(t, entries, 2)
	assert.Equal(t, "-218.01", entries[0].FindElement("AMOUNT").Text())
	assert.Equal(t, "18.10", entries[1].FindElement("AMOUNT").Text())
}

func TestBuild_UnparsableDate(t *testing.T) {
	v := salesVoucher()
	v.Date = "someday"

	_, err := tally.NewEnvelopeBuilder().Build(&tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{v}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnparsableDate)
	assert.Contains(t, err.Error(), "INV-1", "the error names the offending invoice")
}

func TestBuild_DateLayouts(t *testing.T) {
	cases := map[string]string{
		"2025-04-01":          "20250401",
		"01-04-2025":          "20250401", // day-first
		"01/04/2025":          "20250401",
		"1-Apr-2025":          "20250401",
		"2025-04-01 00:00:00": "20250401",
		"45748":               "20250401", // Excel serial
	}
	for in, want := range cases {
		v := salesVoucher()
		v.Date = in
		doc := buildDoc(t, &tally.Envelope{Company: "C", Vouchers: []tally.VoucherRecord{v}})
		assert.Equal(t, want, doc.FindElement("//VOUCHER/DATE").Text(), "input %q", in)
	}
}
