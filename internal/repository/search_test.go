package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceSearchFilter(t *testing.T) {
	t.Run("empty query keeps only the substring branches", func(t *testing.T) {
		f := invoiceSearchFilter("")

		assert.NotContains(t, f.cond, "invoices.amount")
		assert.NotContains(t, f.cond, "invoices.date")
		require.Len(t, f.args, 3)
		for _, arg := range f.args {
			assert.Equal(t, "%%", arg)
		}
	})

	t.Run("textual query", func(t *testing.T) {
		f := invoiceSearchFilter("pending")

		assert.Contains(t, f.cond, "customers.name ILIKE ?")
		assert.Contains(t, f.cond, "customers.email ILIKE ?")
		assert.Contains(t, f.cond, "invoices.status ILIKE ?")
		assert.NotContains(t, f.cond, "invoices.amount")
		assert.NotContains(t, f.cond, "invoices.date")
		require.Len(t, f.args, 3)
		assert.Equal(t, "%pending%", f.args[0])
	})

	t.Run("numeric query adds amount equality in cents", func(t *testing.T) {
		f := invoiceSearchFilter("250")

		assert.Contains(t, f.cond, "invoices.amount = ?")
		require.Len(t, f.args, 4)
		assert.Equal(t, int64(25000), f.args[3])
	})

	t.Run("decimal query converts exactly", func(t *testing.T) {
		f := invoiceSearchFilter("250.50")

		require.Len(t, f.args, 4)
		assert.Equal(t, int64(25050), f.args[3])
	})

	t.Run("date query adds date equality", func(t *testing.T) {
		f := invoiceSearchFilter("2023-06-15")

		assert.Contains(t, f.cond, "invoices.date = ?")
		require.Len(t, f.args, 4)
		assert.Equal(t, time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC), f.args[3])
	})

	t.Run("day-first date layout accepted", func(t *testing.T) {
		f := invoiceSearchFilter("15-06-2023")

		assert.Contains(t, f.cond, "invoices.date = ?")
	})

	t.Run("non-numeric non-date query omits both branches", func(t *testing.T) {
		f := invoiceSearchFilter("lee@robinson.com")

		assert.NotContains(t, f.cond, "invoices.amount")
		assert.NotContains(t, f.cond, "invoices.date")
		require.Len(t, f.args, 3)
	})
}

func TestParseQueryDate(t *testing.T) {
	d, ok := parseQueryDate("2023-06-15")
	require.True(t, ok)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())

	d, ok = parseQueryDate("15-06-2023")
	require.True(t, ok)
	assert.Equal(t, 15, d.Day())

	_, ok = parseQueryDate("not a date")
	assert.False(t, ok)

	_, ok = parseQueryDate("250")
	assert.False(t, ok)
}
