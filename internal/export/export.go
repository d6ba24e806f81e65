// Package export writes the Store in formats meant for other tools:
// a spreadsheet, YAML, or the same JSON the data file uses.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/homework/internal/store"
	"github.com/idilsaglam/homework/internal/store/jsonstore"
)

// Format names accepted by Write.
const (
	FormatXLSX = "xlsx"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

const sheetName = "Homework"

var header = []interface{}{"Tag", "Class", "#", "Assignment"}

// Write encodes st to w in format.
func Write(w io.Writer, st *store.Store, format string) error {
	switch strings.ToLower(format) {
	case FormatXLSX:
		return writeXLSX(w, st)
	case FormatYAML, "yml":
		return writeYAML(w, st)
	case FormatJSON:
		return writeJSON(w, st)
	}
	return fmt.Errorf("unknown export format %q (want xlsx, yaml or json)", format)
}

// writeXLSX emits one row per assignment; a class without assignments still
// gets a row so it is not lost.
func writeXLSX(w io.Writer, st *store.Store) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "D1", bold); err != nil {
		return fmt.Errorf("style: %w", err)
	}

	row := 2
	put := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheetName, cell, &values)
	}
	for _, e := range st.Entries() {
		if len(e.Record.Assignments) == 0 {
			if err := put([]interface{}{e.Record.Tag, e.Name}); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
			continue
		}
		for i, a := range e.Record.Assignments {
			if err := put([]interface{}{e.Record.Tag, e.Name, i + 1, a}); err != nil {
				return fmt.Errorf("row %d: %w", row, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "B", "B", 24)
	_ = f.SetColWidth(sheetName, "D", "D", 48)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// writeYAML builds the document as a yaml.Node so class order survives.
func writeYAML(w io.Writer, st *store.Store) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range st.Entries() {
		items := &yaml.Node{Kind: yaml.SequenceNode}
		for _, a := range e.Record.Assignments {
			items.Content = append(items.Content, scalar(a))
		}
		if len(items.Content) == 0 {
			items.Style = yaml.FlowStyle
		}
		class := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			scalar("tag"), scalar(e.Record.Tag),
			scalar("assignments"), items,
		}}
		doc.Content = append(doc.Content, scalar(e.Name), class)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func writeJSON(w io.Writer, st *store.Store) error {
	data, err := jsonstore.Encode(st)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
