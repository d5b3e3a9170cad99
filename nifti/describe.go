package nifti

import (
	"fmt"
	"strconv"
	"strings"

	"nifti-savior/nifti/nextension"
	"nifti-savior/nifti/nheader"
	"nifti-savior/nifti/nschema"
	"nifti-savior/nifti/ntype"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func formatValue(value nheader.Value) string {
	return strings.Join(lo.Map(value, func(v float64, _ int) string { return formatNumber(v) }), " ")
}

// Describe renders the header for a human reader. It has no side effects.
func (h *Header) Describe() string {
	s := h.Struct
	sb := strings.Builder{}

	code := ntype.Code(int16(s.Scalar(nschema.FieldNameDatatype)))
	fmt.Fprintf(&sb, "datatype: %s (%d)\n", code.Name(), code)
	fmt.Fprintf(&sb, "bitpix: %s\n", formatNumber(s.Scalar(nschema.FieldNameBitpix)))
	for _, name := range []string{nschema.FieldNameDim, nschema.FieldNamePixdim} {
		value, _ := s.Get(name)
		fmt.Fprintf(&sb, "%s: [%s]\n", name, formatValue(value))
	}
	fmt.Fprintf(
		&sb, "scl_slope: %s scl_inter: %s\n",
		formatNumber(s.Scalar(nschema.FieldNameSclSlope)),
		formatNumber(s.Scalar(nschema.FieldNameSclInter)),
	)
	if descrip := s.Text(nschema.FieldNameDescrip); descrip != "" {
		fmt.Fprintf(&sb, "descrip: %s\n", descrip)
	}

	qformCode := s.Scalar(nschema.FieldNameQformCode)
	sformCode := s.Scalar(nschema.FieldNameSformCode)
	fmt.Fprintf(&sb, "qform_code: %s sform_code: %s\n", formatNumber(qformCode), formatNumber(sformCode))
	if qformCode > 0 {
		fmt.Fprintf(
			&sb, "quatern: b=%s c=%s d=%s\n",
			formatNumber(s.Scalar(nschema.FieldNameQuaternB)),
			formatNumber(s.Scalar(nschema.FieldNameQuaternC)),
			formatNumber(s.Scalar(nschema.FieldNameQuaternD)),
		)
		fmt.Fprintf(
			&sb, "qoffset: x=%s y=%s z=%s\n",
			formatNumber(s.Scalar(nschema.FieldNameQoffsetX)),
			formatNumber(s.Scalar(nschema.FieldNameQoffsetY)),
			formatNumber(s.Scalar(nschema.FieldNameQoffsetZ)),
		)
	}
	if sformCode > 0 {
		writeSrowTable(&sb, s)
	}

	records := h.ExtensionRecords()
	fmt.Fprintf(&sb, "extensions: %d\n", len(records))
	for _, text := range nextension.Texts(records) {
		fmt.Fprintf(&sb, "  %s\n", text)
	}
	return sb.String()
}

func writeSrowTable(sb *strings.Builder, s *nheader.Struct) {
	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"srow", "i", "j", "k", "offset"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, name := range srowFieldNames {
		row, _ := s.Get(name)
		table.Append(append(
			[]string{name},
			lo.Map(row, func(v float64, _ int) string { return formatNumber(v) })...,
		))
	}
	table.Render()
}

// Fields lists every field as name, type, count, and rendered value, in
// layout order.
func (h *Header) Fields() [][]string {
	return lo.Map(
		h.Schema().Fields(),
		func(field nschema.Field, _ int) []string {
			value, ok := h.Struct.Get(field.Name)
			rendered := "<missing>"
			if ok {
				rendered = formatValue(value)
			}
			return []string{field.Name, field.Type.String(), strconv.Itoa(field.Count), rendered}
		},
	)
}
