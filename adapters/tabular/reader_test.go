package tabular

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"leadhub/domain/lead"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTableCSV(t *testing.T) {
	input := "firstname,lastname,cellphone\nJane,Doe,5551234567\nJohn,Smith,5559876543\n"

	reader := NewReader()
	table, err := reader.ReadTable(context.Background(), strings.NewReader(input), "leads.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"firstname", "lastname", "cellphone"}, table.Headers)
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Jane", table.Rows[0][0])
	assert.Equal(t, "5559876543", table.Rows[1][2])
}

func TestReadTableRaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n1,2,3,4\n"

	reader := NewReader()
	table, err := reader.ReadTable(context.Background(), strings.NewReader(input), "ragged.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", ""}, table.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, table.Rows[1])
}

func TestReadTableStripsBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nAcme\n")...)

	reader := NewReader()
	table, err := reader.ReadTable(context.Background(), bytes.NewReader(input), "bom.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, table.Headers)
}

func TestReadTableWindows1252Fallback(t *testing.T) {
	// 0x92 is a curly apostrophe in Windows-1252 and invalid UTF-8.
	input := []byte("company\nBob\x92s Diner\n")

	reader := NewReader()
	table, err := reader.ReadTable(context.Background(), bytes.NewReader(input), "legacy.csv")
	require.NoError(t, err)

	assert.Equal(t, "Bob’s Diner", table.Rows[0][0])
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	reader := NewReader()
	_, err := reader.ReadTable(context.Background(), strings.NewReader("x"), "leads.pdf")
	assert.Error(t, err)
	assert.False(t, reader.Supports("leads.pdf"))
	assert.True(t, reader.Supports("LEADS.CSV"))
}

func TestWriteTable(t *testing.T) {
	table := &lead.CleanedTable{
		Headers: []string{"Business Name", "Phone 1"},
		Rows: [][]string{
			{"Acme LLC", "(555) 123-4567"},
			{"", ""},
		},
	}

	var buf bytes.Buffer
	err := NewWriter().WriteTable(context.Background(), &buf, table)
	require.NoError(t, err)

	assert.Equal(t, "Business Name,Phone 1\nAcme LLC,(555) 123-4567\n,\n", buf.String())
}

func TestCleanedName(t *testing.T) {
	assert.Equal(t, "leads_cleaned.csv", CleanedName("leads.xlsx"))
	assert.Equal(t, "march batch_cleaned.csv", CleanedName("/tmp/uploads/march batch.csv"))
}
