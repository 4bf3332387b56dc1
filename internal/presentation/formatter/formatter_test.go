package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		Table: "Classic",
		Birth: "1990-05-17 08:30",
		At:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Readings: []elapsed.Reading{
			{Label: "Seconds", RawCount: 1_061_177_400, Display: "1,061,177,400"},
			{Label: "Years", RawCount: 33.66, Display: "33"},
			{Label: "🐶 Dog years", RawCount: 235.62, Display: "235,62", Variant: units.VariantCustom},
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		output  string
		want    interface{}
		wantErr bool
	}{
		{"table", &TableFormatter{}, false},
		{"", &TableFormatter{}, false},
		{"json", &JSONFormatter{}, false},
		{"csv", &CSVFormatter{}, false},
		{"summary", &SummaryFormatter{}, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			f, err := New(tt.output, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(sampleReport()))

	out := buf.String()
	for _, want := range []string{"Classic table", "1990-05-17 08:30", "2024-01-15 12:00:00 UTC", "Unit", "Elapsed", "1,061,177,400", "🐶 Dog years", "235,62"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 1+3+3+1)
	assert.True(t, strings.HasPrefix(lines[1], "┌"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))

	// Every bordered line has the same cell width
	width := util.GetDisplayWidth(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, util.GetDisplayWidth(l), "line %q", l)
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(sampleReport()))

	var decoded struct {
		Table    string `json:"table"`
		Readings []struct {
			Label    string  `json:"label"`
			RawCount float64 `json:"raw_count"`
			Display  string  `json:"display"`
		} `json:"readings"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Classic", decoded.Table)
	require.Len(t, decoded.Readings, 3)
	assert.Equal(t, "Seconds", decoded.Readings[0].Label)
	assert.Equal(t, "235,62", decoded.Readings[2].Display)
}

func TestJSONFormatter_EmptyReadings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(Report{Table: "Classic"}))
	assert.Contains(t, buf.String(), `"readings": []`)
}

func TestCSVFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Table", "Unit", "Raw", "Display"}, records[0])
	assert.Equal(t, []string{"Classic", "Seconds", "1061177400", "1,061,177,400"}, records[1])
	assert.Equal(t, "235,62", records[3][3])
}

func TestSummaryFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter(&buf).Format(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Born 1990-05-17 08:30")
	assert.Contains(t, out, "about 1.1 billion")
	assert.Contains(t, out, "about 235,62")

	buf.Reset()
	require.NoError(t, NewSummaryFormatter(&buf).Format(Report{}))
	assert.Contains(t, buf.String(), "No readings.")
}
