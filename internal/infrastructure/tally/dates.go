package tally

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tallyflow/tallyflow/internal/domain"
)

// Layouts accepted for the Date column. Day-first forms take precedence over
// month-first ones: the sheets feeding this service use Indian conventions.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"02-01-06",
	"02/01/06",
	"02-Jan-2006",
	"02-Jan-06",
	"2-Jan-2006",
	"01-02-06 15:04", // excelize's default rendering of date-formatted cells
}

// Excel stores dates as serial day counts from this epoch.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseVoucherDate interprets a raw Date cell as a calendar date: any of the
// known layouts, or an Excel serial number.
func parseVoucherDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, domain.ErrUnparsableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrUnparsableDate, s)
}
