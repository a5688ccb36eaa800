// aykutspohr | 2026
// entity.go

package designtoken

import (
	"fmt"
	"strings"
)

// Category groups design tokens by the CSS concern they describe.
type Category string

const (
	CategoryColor      Category = "color"
	CategoryTypography Category = "typography"
	CategorySpacing    Category = "spacing"
	CategoryShadow     Category = "shadow"
	CategoryBorder     Category = "border"
	CategoryTransition Category = "transition"
	CategoryZIndex     Category = "z-index"
	CategoryBreakpoint Category = "breakpoint"
)

// Type is the value type a token carries.
type Type string

const (
	TypeColor     Type = "color"
	TypeDimension Type = "dimension"
	TypeFont      Type = "font"
	TypeShadow    Type = "shadow"
	TypeDuration  Type = "duration"
	TypeNumber    Type = "number"
)

func IsCategory(s string) bool {
	switch Category(s) {
	case CategoryColor, CategoryTypography, CategorySpacing,
		CategoryShadow, CategoryBorder, CategoryTransition,
		CategoryZIndex, CategoryBreakpoint:
		return true
	}
	return false
}

func IsType(s string) bool {
	switch Type(s) {
	case TypeColor, TypeDimension, TypeFont,
		TypeShadow, TypeDuration, TypeNumber:
		return true
	}
	return false
}

// compatibleTypes maps each category to the token types it accepts.
var compatibleTypes = map[Category][]Type{
	CategoryColor:      {TypeColor},
	CategoryTypography: {TypeFont, TypeDimension, TypeNumber},
	CategorySpacing:    {TypeDimension},
	CategoryShadow:     {TypeShadow},
	CategoryBorder:     {TypeDimension, TypeColor},
	CategoryTransition: {TypeDuration},
	CategoryZIndex:     {TypeNumber},
	CategoryBreakpoint: {TypeDimension},
}

// Compatible reports whether a token type is allowed for a category,
// e.g. color tokens must carry the color type.
func Compatible(cat Category, typ Type) bool {
	for _, t := range compatibleTypes[cat] {
		if t == typ {
			return true
		}
	}
	return false
}

// Token is a design system primitive identified by its (category, name)
// pair. The schema is defined ahead of any authored token content; no
// tokens ship with the catalog yet.
type Token struct {
	Category    Category          `json:"category"               validate:"required"`
	Name        string            `json:"name"                   validate:"required,min=2,max=60"`
	CSSVariable string            `json:"css_variable"           validate:"required"`
	Type        Type              `json:"type"                   validate:"required"`
	Value       string            `json:"value"                  validate:"required"`
	DarkValue   string            `json:"dark_value,omitempty"`
	Deprecated  bool              `json:"deprecated,omitempty"`
	ReplacedBy  string            `json:"replaced_by,omitempty"`
	Platforms   map[string]string `json:"platforms,omitempty"`
}

// Key returns the token's identity.
func (t *Token) Key() string {
	return string(t.Category) + "/" + t.Name
}

// Validate checks the cross-field rules the struct tags cannot express.
func (t *Token) Validate() error {
	if !IsCategory(string(t.Category)) {
		return fmt.Errorf("token %s: unknown category %q", t.Name, t.Category)
	}

	if !IsType(string(t.Type)) {
		return fmt.Errorf("token %s: unknown type %q", t.Name, t.Type)
	}

	if !Compatible(t.Category, t.Type) {
		return fmt.Errorf(
			"token %s: type %q not allowed for category %q",
			t.Name, t.Type, t.Category,
		)
	}

	if !strings.HasPrefix(t.CSSVariable, "--") {
		return fmt.Errorf(
			"token %s: css variable %q must start with --",
			t.Name, t.CSSVariable,
		)
	}

	if t.Deprecated && t.ReplacedBy == "" {
		return fmt.Errorf(
			"token %s: deprecated tokens must name a replacement",
			t.Name,
		)
	}

	return nil
}
