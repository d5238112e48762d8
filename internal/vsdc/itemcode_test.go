package vsdc

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateItemCode_DocumentedExample(t *testing.T) {
	code := GenerateItemCode(ItemCodeParts{
		OriginNationCode:  "RW",
		ItemTypeCode:      "2",
		PackagingUnitCode: "NT",
		QuantityUnitCode:  "U",
		Sequence:          "0000012",
	})
	assert.Equal(t, "RW2NTU0000012", code)
}

func TestGenerateItemCode_Defaults(t *testing.T) {
	gen := NewItemCodeGenerator(func() int { return 42 }, false)

	code, err := gen.Generate(ItemCodeParts{})
	require.NoError(t, err)
	assert.Equal(t, "RW2NTU0000042", code)
}

func TestGenerateItemCode_Length(t *testing.T) {
	origins := []string{"RW", "KE", "UG"}
	types := []string{"1", "2", "3"}
	packaging := []string{"NT", "BG", "BA", "AM"}
	units := []string{"U", "L"}

	for _, o := range origins {
		for _, ty := range types {
			for _, p := range packaging {
				for _, u := range units {
					code := GenerateItemCode(ItemCodeParts{
						OriginNationCode:  o,
						ItemTypeCode:      ty,
						PackagingUnitCode: p,
						QuantityUnitCode:  u,
					})
					assert.Len(t, code, ItemCodeLength, "code %s", code)
				}
			}
		}
	}
}

func TestGenerateItemCode_TwoLetterUnitAddsOneCharacter(t *testing.T) {
	code := GenerateItemCode(ItemCodeParts{QuantityUnitCode: "KG", Sequence: "0000001"})
	assert.Equal(t, "RW2NTKG0000001", code)
	assert.Len(t, code, ItemCodeLength+1)
}

func TestGenerateItemCode_ExplicitSequenceIsIdempotent(t *testing.T) {
	parts := ItemCodeParts{Sequence: "0000042"}
	first := GenerateItemCode(parts)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, GenerateItemCode(parts))
	}
	assert.Equal(t, "RW2NTU0000042", first)
}

func TestGenerateItemCode_CallerSequenceNotRepadded(t *testing.T) {
	code := GenerateItemCode(ItemCodeParts{Sequence: "42"})
	assert.Equal(t, "RW2NTU42", code)
}

func TestGenerateItemCode_RandomSequencesDiffer(t *testing.T) {
	seen := make(map[string]struct{})
	const trials = 200
	for i := 0; i < trials; i++ {
		seen[GenerateItemCode(ItemCodeParts{})] = struct{}{}
	}
	// Collisions are possible but a handful at most across 200 draws from 10^7.
	assert.Greater(t, len(seen), trials-5)
}

func TestGenerateItemCode_GeneratedSequenceIsPadded(t *testing.T) {
	for _, n := range []int{0, 7, 123456, 9999999} {
		gen := NewItemCodeGenerator(func() int { return n }, false)
		code, err := gen.Generate(ItemCodeParts{})
		require.NoError(t, err)
		assert.Equal(t, "RW2NTU"+fmt.Sprintf("%07d", n), code)
	}
}

func TestFormatSequence(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0000000"},
		{12, "0000012"},
		{9999999, "9999999"},
		{10000000, "0000000"},
		{10000012, "0000012"},
		{-1, "9999999"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSequence(tt.in), "input %d", tt.in)
	}
}

func TestRandomSequence_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := RandomSequence()
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10_000_000)
	}
}

func TestGenerateItemCodeStrict(t *testing.T) {
	tests := []struct {
		name    string
		parts   ItemCodeParts
		field   string
		wantErr bool
	}{
		{name: "defaults", parts: ItemCodeParts{}},
		{name: "two letter unit", parts: ItemCodeParts{QuantityUnitCode: "KG"}},
		{name: "explicit sequence", parts: ItemCodeParts{Sequence: "0000012"}},
		{name: "origin too long", parts: ItemCodeParts{OriginNationCode: "RWA"}, field: "orgnNatCd", wantErr: true},
		{name: "origin too short", parts: ItemCodeParts{OriginNationCode: "R"}, field: "orgnNatCd", wantErr: true},
		{name: "type too long", parts: ItemCodeParts{ItemTypeCode: "22"}, field: "itemTyCd", wantErr: true},
		{name: "packaging too short", parts: ItemCodeParts{PackagingUnitCode: "N"}, field: "pkgUnitCd", wantErr: true},
		{name: "unit too long", parts: ItemCodeParts{QuantityUnitCode: "KGS"}, field: "qtyUnitCd", wantErr: true},
		{name: "sequence short", parts: ItemCodeParts{Sequence: "42"}, field: "sequence", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := GenerateItemCodeStrict(tt.parts)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotEmpty(t, code)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFieldWidth))
			var widthErr *InvalidFieldWidthError
			require.ErrorAs(t, err, &widthErr)
			assert.Equal(t, tt.field, widthErr.Field)
			assert.Empty(t, code)
		})
	}
}

func TestInvalidFieldWidthError_Message(t *testing.T) {
	err := &InvalidFieldWidthError{Field: "qtyUnitCd", Value: "KGS", MinWidth: 1, MaxWidth: 2}
	assert.Equal(t, `invalid field width: qtyUnitCd "KGS" has length 3, want 1-2`, err.Error())

	err = &InvalidFieldWidthError{Field: "orgnNatCd", Value: "R", MinWidth: 2, MaxWidth: 2}
	assert.Equal(t, `invalid field width: orgnNatCd "R" has length 1, want 2`, err.Error())
}

func TestItemCodeGenerator_ConcurrentUse(t *testing.T) {
	gen := NewItemCodeGenerator(nil, true)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				code, err := gen.Generate(ItemCodeParts{})
				assert.NoError(t, err)
				assert.Len(t, code, ItemCodeLength)
			}
		}()
	}
	wg.Wait()
}
