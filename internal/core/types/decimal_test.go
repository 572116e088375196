package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "12,50", want: "12.5"},
		{in: "12.5", want: "12.5"},
		{in: " 3 ", want: "3"},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMoney(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(MustMoney(tt.want)), "got %s", got)
		})
	}
}

func TestFormat_RoundsOnlyForDisplay(t *testing.T) {
	total := Zero()
	for i := 0; i < 3; i++ {
		total = total.Add(MustMoney("0.333"))
	}

	assert.True(t, total.Equal(MustMoney("0.999")))
	assert.Equal(t, "1.00", Fixed(total))
	assert.Equal(t, "R$ 1.00", Format(total))
}

func TestTimes(t *testing.T) {
	assert.True(t, Times(MustMoney("2.5"), 4).Equal(MustMoney("10")))
	assert.True(t, Times(MustMoney("2.5"), 0).IsZero())
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var body struct {
		Price Amount `json:"price"`
	}

	for in, want := range map[string]string{
		`{"price":"2,50"}`: "2.5",
		`{"price":"2.50"}`: "2.5",
		`{"price":7}`:      "7",
		`{"price":0.1}`:    "0.1",
	} {
		require.NoError(t, json.Unmarshal([]byte(in), &body), in)
		assert.True(t, body.Price.Equal(MustMoney(want)), "%s: got %s", in, body.Price)
	}

	assert.Error(t, json.Unmarshal([]byte(`{"price":"dois"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"price":""}`), &body))

	out, err := json.Marshal(Amount{Money: MustMoney("12.5")})
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(out))
}
