package repository

import (
	"time"

	"finance-dashboard-backend/internal/money"
)

// InvoicesPerPage is the fixed page size for the invoices table.
const InvoicesPerPage = 6

// searchFilter is a SQL condition plus its arguments. The same filter is
// applied to the paged fetch and to the pagination count so the reported
// page total always agrees with the rows actually returned.
type searchFilter struct {
	cond string
	args []any
}

// invoiceSearchFilter turns a free-text query into an OR condition over the
// invoice/customer join: case-insensitive substring match on customer name,
// customer email and invoice status, plus exact matches on amount and date
// when the query parses as a number or a calendar date. A query that parses
// as neither simply omits those branches. The empty query matches every row.
func invoiceSearchFilter(query string) searchFilter {
	like := "%" + query + "%"
	f := searchFilter{
		cond: "customers.name ILIKE ? OR customers.email ILIKE ? OR invoices.status ILIKE ?",
		args: []any{like, like, like},
	}

	// Amounts are typed in major units, stored in cents.
	if cents, err := money.ParseCents(query); err == nil {
		f.cond += " OR invoices.amount = ?"
		f.args = append(f.args, cents)
	}
	if date, ok := parseQueryDate(query); ok {
		f.cond += " OR invoices.date = ?"
		f.args = append(f.args, date)
	}

	return f
}

func parseQueryDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "02-01-2006"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
