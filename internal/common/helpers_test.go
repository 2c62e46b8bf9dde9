package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "integer", in: "5000", want: "5000"},
		{name: "cents", in: "999.99", want: "999.99"},
		{name: "trailing zeros", in: "1000.000", want: "1000"},
		{name: "spaces", in: "  12.5 ", want: "12.5"},
		{name: "zero", in: "0", want: "0"},
		{name: "empty", in: "", wantErr: true},
		{name: "negative", in: "-1", wantErr: true},
		{name: "garbage", in: "12abc", wantErr: true},
		{name: "too precise", in: "0.001", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5000.00", FormatAmount(decimal.RequireFromString("5000")))
	assert.Equal(t, "0.10", FormatAmount(decimal.RequireFromString("0.1")))
}
