package domain

import "strings"

// ObjectVariant refines an ObjectKind by optional brand/material
// (object_variants table). Blank brand and material mean a generic variant.
type ObjectVariant struct {
	VariantID string `db:"variant_id" json:"variant_id"`
	KindID    string `db:"kind_id" json:"kind_id"`
	Brand     string `db:"brand" json:"brand"`
	Material  string `db:"material" json:"material"`
	KindName  string `json:"kind_name,omitempty"`
}

// Label renders "Kind - Brand Material" with blank parts omitted.
func (v *ObjectVariant) Label() string {
	s := v.KindName
	extra := strings.TrimSpace(strings.TrimSpace(v.Brand) + " " + strings.TrimSpace(v.Material))
	if extra != "" {
		s += " - " + extra
	}
	return s
}
