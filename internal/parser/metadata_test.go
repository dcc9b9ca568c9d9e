package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "first plausible line wins",
			lines: []string{"Tian Tian Chicken Rice", "Maxwell Food Centre", "1x Chicken Rice $5.00"},
			want:  "Tian Tian Chicken Rice",
		},
		{
			name:  "skips short, dollar and digit-led lines",
			lines: []string{"#01", "$$$", "123 Main St", "Kopi Corner"},
			want:  "Kopi Corner",
		},
		{
			name:  "only first five lines are considered",
			lines: []string{"1", "2", "3", "4", "5", "Hidden Cafe"},
			want:  "",
		},
		{
			name:  "no candidate",
			lines: []string{"$5", "12"},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMerchant(tt.lines))
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  *time.Time
	}{
		{
			name:  "iso shaped",
			lines: []string{"Receipt", "2024-01-15 12:45"},
			want:  utcDate(2024, 1, 15),
		},
		{
			name:  "iso with slashes",
			lines: []string{"2023/07/04"},
			want:  utcDate(2023, 7, 4),
		},
		{
			name:  "labeled ddmmyyyy",
			lines: []string{"DATE: 15/01/2024"},
			want:  utcDate(2024, 1, 15),
		},
		{
			name:  "labeled with dots",
			lines: []string{"Date: 2.3.2024"},
			want:  utcDate(2024, 3, 2),
		},
		{
			name:  "iso wins over labeled",
			lines: []string{"DATE: 01/02/2020", "2024-01-15"},
			want:  utcDate(2024, 1, 15),
		},
		{
			name:  "invalid month rejected",
			lines: []string{"2024-13-15"},
			want:  nil,
		},
		{
			name:  "no date",
			lines: []string{"Chicken Rice $5.00"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDate(tt.lines)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tt.want), "got %v want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestExtractTotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  *float64
	}{
		{
			name:  "same line",
			lines: []string{"Chicken Rice $5.00", "TOTAL $5.00"},
			want:  f64(5.00),
		},
		{
			name:  "order total with colon",
			lines: []string{"ORDER TOTAL: 23.80"},
			want:  f64(23.80),
		},
		{
			name:  "comma decimal separator",
			lines: []string{"TOTAL $3,50"},
			want:  f64(3.50),
		},
		{
			name:  "amount on next line",
			lines: []string{"Total", "$18.90"},
			want:  f64(18.90),
		},
		{
			name:  "subtotal does not count as total keyword",
			lines: []string{"SUBTOTAL", "$9.00"},
			want:  nil,
		},
		{
			name:  "never invented",
			lines: []string{"Chicken Rice $5.00", "Thank you"},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTotal(tt.lines)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func utcDate(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func f64(v float64) *float64 { return &v }
