package dbf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	fields := []Field{
		{Name: "NAME", Type: Character, Length: 10},
		{Name: "POP", Type: Number, Length: 8, Decimals: 0},
		{Name: "COASTAL", Type: Logical, Length: 1},
	}
	records := []Record{
		{"NAME": "Nassau", "POP": float64(274400), "COASTAL": true},
		{"NAME": "Freeport", "POP": float64(26910), "COASTAL": false},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, fields, records))

	header, gotFields, gotRecords, err := ReadAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, len(records), header.RecordCount)
	require.Len(t, gotFields, len(fields))
	require.Len(t, gotRecords, len(records))
	require.Equal(t, "Nassau", gotRecords[0]["NAME"])
	require.Equal(t, float64(274400), gotRecords[0]["POP"])
	require.Equal(t, true, gotRecords[0]["COASTAL"])
	require.Equal(t, false, gotRecords[1]["COASTAL"])
}

func TestReadAllRejectsShortHeader(t *testing.T) {
	_, _, _, err := ReadAll(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestFieldNameTooLong(t *testing.T) {
	fields := []Field{{Name: "WAYTOOLONGNAME", Type: Character, Length: 5}}
	var buf bytes.Buffer
	require.Error(t, WriteAll(&buf, fields, nil))
}
