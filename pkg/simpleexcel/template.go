package simpleexcel

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a section of data in a sheet.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Data        interface{}    `yaml:"-"` // Data is bound at runtime
	ShowHeader  bool           `yaml:"show_header"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // Struct field name or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font *FontTemplate `yaml:"font"`
	Fill *FillTemplate `yaml:"fill"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// LoadTemplate decodes and validates a YAML layout.
func LoadTemplate(r io.Reader) (*ReportTemplate, error) {
	var tmpl ReportTemplate
	if err := yaml.NewDecoder(r).Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := tmpl.validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplateFile decodes a YAML layout from disk.
func LoadTemplateFile(path string) (*ReportTemplate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open yaml file: %w", err)
	}
	defer f.Close()

	return LoadTemplate(f)
}

func (t *ReportTemplate) validate() error {
	if len(t.Sheets) == 0 {
		return fmt.Errorf("template must have at least one sheet")
	}
	for i, sheet := range t.Sheets {
		if sheet.Name == "" {
			return fmt.Errorf("sheet[%d]: name is required", i)
		}
		for j, sec := range sheet.Sections {
			if len(sec.Columns) == 0 {
				return fmt.Errorf("sheet[%d].sections[%d]: at least one column is required", i, j)
			}
			for k, col := range sec.Columns {
				if col.FieldName == "" {
					return fmt.Errorf("sheet[%d].sections[%d].columns[%d]: field_name is required", i, j, k)
				}
			}
		}
	}
	return nil
}
