package vsdc

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeItem() map[string]any {
	return map[string]any{
		"tin":         "123",
		"bhfId":       "00",
		"itemCd":      "RW2NTU0000012",
		"itemClsCd":   "5059690800",
		"itemTyCd":    "2",
		"itemNm":      "Maize flour",
		"orgnNatCd":   "RW",
		"pkgUnitCd":   "NT",
		"qtyUnitCd":   "U",
		"taxTyCd":     "B",
		"dftPrc":      float64(0),
		"isrcAplcbYn": "N",
		"useYn":       "Y",
		"regrNm":      "Admin",
		"regrId":      "admin",
		"modrNm":      "Admin",
		"modrId":      "admin",
	}
}

func TestMissingFields_ZeroIsPresent(t *testing.T) {
	missing := MissingFields(completeItem(), ItemRequiredFields)
	assert.NotContains(t, missing, "dftPrc")
	assert.Empty(t, missing)
	assert.NotNil(t, missing)
}

func TestMissingFields_EmptyNameOnly(t *testing.T) {
	item := completeItem()
	item["itemNm"] = ""

	assert.Equal(t, []string{"itemNm"}, MissingFields(item, ItemRequiredFields))
}

func TestMissingFields_DeclarationOrder(t *testing.T) {
	item := completeItem()
	delete(item, "modrId")
	item["tin"] = nil
	item["useYn"] = false
	item["itemClsCd"] = ""

	assert.Equal(t, []string{"tin", "itemClsCd", "useYn", "modrId"}, MissingFields(item, ItemRequiredFields))
}

func TestMissingFields_AllMissing(t *testing.T) {
	assert.Equal(t, ItemRequiredFields, MissingFields(map[string]any{}, ItemRequiredFields))
}

func TestMissingFields_FromDecodedJSON(t *testing.T) {
	body := `{"tin":"123","bhfId":"00","dvcSrNo":0}`
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	require.NoError(t, dec.Decode(&payload))

	assert.Empty(t, MissingFields(payload, InitRequiredFields))
}

func TestIsBlank(t *testing.T) {
	var nilPtr *string
	empty := ""
	zero := 0

	tests := []struct {
		name  string
		value any
		blank bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"false", false, true},
		{"NaN", math.NaN(), true},
		{"nil pointer", nilPtr, true},
		{"pointer to empty", &empty, true},
		{"nil slice", []any(nil), true},
		{"zero int", 0, false},
		{"zero float", 0.0, false},
		{"negative zero", math.Copysign(0, -1), false},
		{"json zero", json.Number("0"), false},
		{"pointer to zero", &zero, false},
		{"true", true, false},
		{"text", "x", false},
		{"whitespace", " ", false},
		{"empty list", []any{}, false},
		{"empty object", map[string]any{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blank, IsBlank(tt.value))
		})
	}
}

func TestHasItems(t *testing.T) {
	assert.False(t, HasItems(nil))
	assert.False(t, HasItems([]any{}))
	assert.False(t, HasItems("items"))
	assert.True(t, HasItems([]any{map[string]any{"itemCd": "x"}}))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{json.Number("1500.50"), "1500.5", false},
		{float64(0), "0", false},
		{"250", "250", false},
		{" 12.75 ", "12.75", false},
		{42, "42", false},
		{"abc", "", true},
		{true, "", true},
		{math.Inf(1), "", true},
		{json.Number("1e400"), "", true},
		{"-1e400", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %v", tt.in)
			continue
		}
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got.String())
	}
}

func TestOptionalAmount(t *testing.T) {
	v, err := OptionalAmount(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalAmount("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = OptionalAmount(json.Number("0"))
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 0.0, *v)

	_, err = OptionalAmount("x")
	assert.Error(t, err)

	_, err = OptionalAmount(json.Number("1e400"))
	assert.Error(t, err)
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "123", String(json.Number("123")))
	assert.Equal(t, "1500.5", String(1500.5))
	assert.Equal(t, "", String(nil))
	assert.Equal(t, "00", StringOr("", "00"))
	assert.Equal(t, "01", StringOr("01", "00"))
	assert.Nil(t, OptionalString(""))
	assert.Equal(t, "x", *OptionalString("x"))
}
