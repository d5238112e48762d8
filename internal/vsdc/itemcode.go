package vsdc

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Item code layout: Country(2) + ProductType(1) + PackagingUnit(2) + QuantityUnit(2) + Sequence(7).
//
// The VSDC quantity unit table mixes one and two letter codes ("U", "L", "KG"). Codes built
// from a single letter unit, such as the documented RW2NTU0000012, are ItemCodeLength long;
// a two letter unit yields one more character.
const (
	OriginNationCodeWidth     = 2
	ItemTypeCodeWidth         = 1
	PackagingUnitCodeWidth    = 2
	QuantityUnitCodeMinWidth  = 1
	QuantityUnitCodeWidth     = 2
	SequenceWidth             = 7
	ItemCodeLength            = 13
	sequenceModulus           = 10_000_000
	DefaultOriginNationCode   = "RW"
	DefaultItemTypeCode       = "2"
	DefaultPackagingUnitCode  = "NT"
	DefaultQuantityUnitCode   = "U"
	ItemCodeFormatDescription = "Country(2) + ProductType(1) + PackagingUnit(2) + QuantityUnit(2) + Sequence(7)"
)

// ErrInvalidFieldWidth is the kind of every *InvalidFieldWidthError.
var ErrInvalidFieldWidth = errors.New("invalid field width")

// InvalidFieldWidthError reports an item code component whose length is outside its width.
type InvalidFieldWidthError struct {
	Field    string
	Value    string
	MinWidth int
	MaxWidth int
}

func (e *InvalidFieldWidthError) Error() string {
	want := fmt.Sprintf("%d", e.MaxWidth)
	if e.MinWidth != e.MaxWidth {
		want = fmt.Sprintf("%d-%d", e.MinWidth, e.MaxWidth)
	}
	return fmt.Sprintf("%s: %s %q has length %d, want %s", ErrInvalidFieldWidth, e.Field, e.Value, len(e.Value), want)
}

func (e *InvalidFieldWidthError) Is(target error) bool {
	return target == ErrInvalidFieldWidth
}

// ItemCodeParts are the components of an item code. Empty components take the
// documented defaults; an empty Sequence is generated.
type ItemCodeParts struct {
	OriginNationCode  string `json:"orgnNatCd"`
	ItemTypeCode      string `json:"itemTyCd"`
	PackagingUnitCode string `json:"pkgUnitCd"`
	QuantityUnitCode  string `json:"qtyUnitCd"`
	Sequence          string `json:"sequence,omitempty"`
}

// withDefaults fills empty components. Sequence is left untouched.
func (p ItemCodeParts) withDefaults() ItemCodeParts {
	if p.OriginNationCode == "" {
		p.OriginNationCode = DefaultOriginNationCode
	}
	if p.ItemTypeCode == "" {
		p.ItemTypeCode = DefaultItemTypeCode
	}
	if p.PackagingUnitCode == "" {
		p.PackagingUnitCode = DefaultPackagingUnitCode
	}
	if p.QuantityUnitCode == "" {
		p.QuantityUnitCode = DefaultQuantityUnitCode
	}
	return p
}

// SequenceSource yields the numeric part of generated item codes.
//
// RandomSequence is not collision free: by the birthday bound two random sequences under
// the same prefix collide with probability about 5% after 1,000 codes and about 39% after
// 3,000. Callers that need uniqueness supply a per-tenant monotonic counter instead.
type SequenceSource func() int

// RandomSequence draws from math/rand/v2. Not cryptographically random.
func RandomSequence() int {
	return rand.IntN(sequenceModulus)
}

// FormatSequence renders n as a zero padded SequenceWidth digit string. Values outside
// [0, 10^7) wrap.
func FormatSequence(n int) string {
	n = ((n % sequenceModulus) + sequenceModulus) % sequenceModulus
	return fmt.Sprintf("%0*d", SequenceWidth, n)
}

// ItemCodeGenerator builds item codes from a sequence source.
type ItemCodeGenerator struct {
	next   SequenceSource
	strict bool
}

// NewItemCodeGenerator returns a generator. A nil source uses RandomSequence. In strict
// mode every component is checked against its fixed width.
func NewItemCodeGenerator(next SequenceSource, strict bool) *ItemCodeGenerator {
	if next == nil {
		next = RandomSequence
	}
	return &ItemCodeGenerator{next: next, strict: strict}
}

// Strict reports whether component widths are enforced.
func (g *ItemCodeGenerator) Strict() bool {
	return g.strict
}

// Generate concatenates the components. A caller supplied sequence is used verbatim and is
// never re-padded; only generated sequences are padded.
func (g *ItemCodeGenerator) Generate(parts ItemCodeParts) (string, error) {
	parts = parts.withDefaults()
	if g.strict {
		if err := ValidateItemCodeParts(parts); err != nil {
			return "", err
		}
	}
	sequence := parts.Sequence
	if sequence == "" {
		sequence = FormatSequence(g.next())
	}
	return parts.OriginNationCode + parts.ItemTypeCode + parts.PackagingUnitCode + parts.QuantityUnitCode + sequence, nil
}

// GenerateItemCode is the permissive form: defaults, random sequence, no width checks.
func GenerateItemCode(parts ItemCodeParts) string {
	code, _ := NewItemCodeGenerator(RandomSequence, false).Generate(parts)
	return code
}

// GenerateItemCodeStrict fails with ErrInvalidFieldWidth when a component does not fit.
func GenerateItemCodeStrict(parts ItemCodeParts) (string, error) {
	return NewItemCodeGenerator(RandomSequence, true).Generate(parts)
}

// ValidateItemCodeParts checks component widths after defaults are applied. An empty
// sequence is accepted since it will be generated.
func ValidateItemCodeParts(parts ItemCodeParts) error {
	checks := []struct {
		field    string
		value    string
		min, max int
	}{
		{"orgnNatCd", parts.OriginNationCode, OriginNationCodeWidth, OriginNationCodeWidth},
		{"itemTyCd", parts.ItemTypeCode, ItemTypeCodeWidth, ItemTypeCodeWidth},
		{"pkgUnitCd", parts.PackagingUnitCode, PackagingUnitCodeWidth, PackagingUnitCodeWidth},
		{"qtyUnitCd", parts.QuantityUnitCode, QuantityUnitCodeMinWidth, QuantityUnitCodeWidth},
	}
	if parts.Sequence != "" {
		checks = append(checks, struct {
			field    string
			value    string
			min, max int
		}{"sequence", parts.Sequence, SequenceWidth, SequenceWidth})
	}
	for _, c := range checks {
		if len(c.value) < c.min || len(c.value) > c.max {
			return &InvalidFieldWidthError{Field: c.field, Value: c.value, MinWidth: c.min, MaxWidth: c.max}
		}
	}
	return nil
}
