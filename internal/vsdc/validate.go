package vsdc

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// Required field sets, in declaration order.
var (
	ItemRequiredFields = []string{
		"tin", "bhfId", "itemCd", "itemClsCd", "itemTyCd", "itemNm",
		"orgnNatCd", "pkgUnitCd", "qtyUnitCd", "taxTyCd", "dftPrc",
		"isrcAplcbYn", "useYn", "regrNm", "regrId", "modrNm", "modrId",
	}
	InitRequiredFields        = []string{"tin", "bhfId", "dvcSrNo"}
	SalesRequiredFields       = []string{"tin", "bhfId", "invcNo", "itemList"}
	StockRequiredFields       = []string{"tin", "bhfId", "sarNo", "sarTyCd", "itemList"}
	StockMasterRequiredFields = []string{"tin", "bhfId", "itemCd"}
	InvoiceRequiredFields     = []string{"adminId", "districtId", "schoolId"}
)

// MissingFields returns the names in required whose value in values is blank, in the
// order of required. It never returns nil for a non-empty result and returns an empty
// slice when everything is present.
func MissingFields(values map[string]any, required []string) []string {
	missing := []string{}
	for _, name := range required {
		v, ok := values[name]
		if !ok || IsBlank(v) {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsBlank reports whether v counts as missing: nil, empty string, false or NaN.
// Numeric zero is present, since prices and quantities may legitimately be zero.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number:
		return t == ""
	case float64:
		return math.IsNaN(t)
	case float32:
		return math.IsNaN(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	case reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// HasItems reports whether v is a non-empty list.
func HasItems(v any) bool {
	list, ok := v.([]any)
	return ok && len(list) > 0
}

// ParseAmount converts a JSON number or numeric string to a decimal. Amounts whose float64
// form overflows are rejected.
func ParseAmount(v any) (decimal.Decimal, error) {
	d, err := parseDecimal(v)
	if err != nil {
		return decimal.Zero, err
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("not a finite number: %v", v)
	}
	return d, nil
}

func parseDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, fmt.Errorf("not a finite number: %v", t)
		}
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case decimal.Decimal:
		return t, nil
	}
	return decimal.Zero, fmt.Errorf("not a number: %v", v)
}

// OptionalAmount parses v unless it is absent or the empty string.
func OptionalAmount(v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && s == "" {
		return nil, nil
	}
	d, err := ParseAmount(v)
	if err != nil {
		return nil, err
	}
	f := d.InexactFloat64()
	return &f, nil
}

// String renders a payload value as text; numbers keep their JSON form.
func String(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return decimal.NewFromFloat(t).String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	}
	return fmt.Sprint(v)
}

// OptionalString returns nil for blank values.
func OptionalString(v any) *string {
	if IsBlank(v) {
		return nil
	}
	s := String(v)
	return &s
}

// StringOr returns the value as text, or def when blank.
func StringOr(v any, def string) string {
	if IsBlank(v) {
		return def
	}
	return String(v)
}
