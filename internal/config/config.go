// =============================================================================
// Supplier Label Generator - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing the application
// configuration. It covers two layers:
//
//   1. Main Config (config.yaml): directories, logging, output naming,
//      concurrency, and the active label template.
//   2. Field Rules: per canonical field, the ordered keyword list used for
//      column detection, the default value, the blank-allowed policy, and
//      the truncation thresholds.
//
// The built-in field rules cover every canonical field of both label
// templates, so the application runs with no configuration file at all.
// A YAML file only needs to list what it wants to change.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Self-contained: built-in defaults make the config file optional
//   - Extensible: field rules are data, not code, so new header spellings
//     are a YAML edit away
//   - Validated: all configurations are validated on load
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agilomatrix/label-generator/internal/types"
)

// Ellipsis is the marker appended to truncated display values.
const Ellipsis = "..."

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for spreadsheet files to process.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the directory where generated PDF files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed input files are moved.
	// Files are only moved here after successful processing.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// LABEL SETTINGS
	// =========================================================================

	// Template selects the label geometry.
	// Valid values: "standard" (10cm x 15cm), "wide" (18cm x 12cm)
	// Default: "standard"
	Template string `yaml:"template"`

	// OutputNameFormat defines the format for output file names.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {template}  - The active template id
	// Default: "labels_{timestamp}_{uuid}.pdf"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the application log file.
	// Empty means log to stderr only.
	LogFile string `yaml:"log_file"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// Workers is the number of rows resolved and encoded concurrently while
	// building one document. Set to 1 for sequential processing.
	// Default: 4
	Workers int `yaml:"workers"`

	// CSV contains settings for parsing CSV input files.
	CSV CSVSettings `yaml:"csv"`

	// Fields contains per-field rule overrides, keyed by canonical field
	// name (e.g. "part_no"). An override replaces the built-in rule for
	// that field entirely.
	Fields map[string]FieldRule `yaml:"fields"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing CSV files.
type CSVSettings struct {
	// Delimiter is the character used to separate fields in the CSV.
	// Common values: "," (comma), "|" (pipe), "\t" (tab)
	// Default: ","
	Delimiter string `yaml:"delimiter"`
}

// =============================================================================
// FIELD RULE STRUCTURE
// =============================================================================

// FieldRule holds the column-detection and value-resolution policy for one
// canonical field.
type FieldRule struct {
	// Keywords is the ordered list of keywords used to detect the source
	// column. Keywords are scanned in order; for each keyword, headers are
	// scanned left to right; the first case-insensitive substring match
	// wins and stops the scan for this field.
	Keywords []string `yaml:"keywords"`

	// Default is the display value used when the field has no matching
	// column or the cell is empty, unless BlankAllowed is set.
	// The placeholder {row} is replaced with the 1-based row number.
	Default string `yaml:"default"`

	// BlankAllowed permits an empty display value instead of substituting
	// the default. A blank value also suppresses barcode rendering for
	// this field.
	BlankAllowed bool `yaml:"blank_allowed"`

	// Truncate limits the rendered length of the value, if set.
	Truncate *Truncation `yaml:"truncate"`
}

// Truncation describes a display-length limit: values longer than Max
// characters are cut to Keep characters plus the ellipsis marker. Limits
// count characters, not bytes.
type Truncation struct {
	Max  int `yaml:"max"`
	Keep int `yaml:"keep"`
}

// Apply enforces the truncation rule on a display string.
func (t *Truncation) Apply(s string) string {
	if t == nil || t.Max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= t.Max {
		return s
	}
	return string(runes[:t.Keep]) + Ellipsis
}

// =============================================================================
// BUILT-IN FIELD RULES
// =============================================================================

// builtinRules returns the built-in rule set covering the canonical fields
// of both label templates. The keyword dictionaries carry the header
// spellings seen across supplier spreadsheets; order matters, the more
// specific spellings come first within each list's intent.
func builtinRules() map[types.CanonicalField]FieldRule {
	return map[types.CanonicalField]FieldRule{
		types.FieldDocumentDate: {
			Keywords: []string{"DATE", "DOC_DATE", "DOCUMENT_DATE", "SHIP_DATE", "DOCUMENT DATE"},
			Default:  "11-07-24",
		},
		types.FieldASNNo: {
			Keywords:     []string{"ASN", "ASN_NO", "ASN NO", "ADVANCE_SHIPMENT", "ASN NUMBER", "ASN NO."},
			BlankAllowed: true,
		},
		types.FieldPartNo: {
			Keywords: []string{"PART", "PART_NO", "PART NO", "ITEM", "PART NUMBER", "PARTNO"},
			Default:  "PART{row}",
		},
		types.FieldDescription: {
			Keywords: []string{"DESC", "DESCRIPTION", "ITEM_DESC", "PART_DESC", "ITEM DESCRIPTION", "PART DESCRIPTION"},
			Default:  "Description",
			Truncate: &Truncation{Max: 25, Keep: 22},
		},
		types.FieldQuantity: {
			Keywords: []string{"QTY", "QUANTITY", "QTY_SHIPPED", "SHIPPED QTY"},
			Default:  "1",
		},
		types.FieldNetWeight: {
			Keywords: []string{"NET_WT", "NET_WEIGHT", "NET WEIGHT", "NET WEIGHT(KG)", "NET WT", "NET WT.", "NETWT"},
			Default:  "480",
		},
		types.FieldGrossWeight: {
			Keywords: []string{"GROSS_WT", "GROSS_WEIGHT", "GROSS WEIGHT", "GROSS WEIGHT(KG)", "GROSS WT", "GROSS WT.", "GROSSWT"},
			Default:  "500",
		},
		types.FieldShipperID: {
			Keywords: []string{"SHIPPER_PART", "VENDOR_PART", "SUPPLIER_PART", "VENDOR PART", "SHIPPER PART", "SHIPPER ID", "SHIPPER_ID", "DELIVERY PARTNER ID", "ID"},
			Default:  "V12345",
		},
		types.FieldShipperName: {
			Keywords: []string{"SHIPPER NAME", "SHIPPER_NAME", "VENDOR NAME", "SUPPLIER NAME", "SHIPPER", "VENDOR", "SUPPLIER", "FROM"},
			Default:  "Shipper Name",
			Truncate: &Truncation{Max: 15, Keep: 12},
		},
		types.FieldShipper: {
			Keywords: []string{"SHIPPER", "VENDOR", "SUPPLIER", "FROM", "VENDOR NAME", "SUPPLIER NAME", "SHIPPER NAME"},
			Default:  "Shipper",
		},
		types.FieldReceiver: {
			Keywords: []string{"RECEIVER", "CONSIGNEE", "SHIP TO", "SHIP_TO", "DESTINATION", "TO"},
			Default:  "Receiver",
		},
	}
}

// FieldRules returns the effective rule set: the built-in rules with any
// configured overrides applied on top.
func (c *MainConfig) FieldRules() map[types.CanonicalField]FieldRule {
	rules := builtinRules()
	for name, rule := range c.Fields {
		rules[types.CanonicalField(name)] = rule
	}
	return rules
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Default returns the built-in main configuration.
func Default() *MainConfig {
	cfg := &MainConfig{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the main configuration file and applies defaults.
//
// PARAMETERS:
//   - path: The path to the YAML configuration file. An empty path, or the
//     default "config.yaml" when no such file exists, yields the built-in
//     configuration.
//
// RETURNS:
//   - A pointer to the validated MainConfig.
//   - An error if the file cannot be read, parsed, or validated.
func Load(path string) (*MainConfig, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// A missing default config file is not an error; the built-in
		// configuration is complete.
		if os.IsNotExist(err) && path == "config.yaml" {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &MainConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in default values for unset fields.
func (c *MainConfig) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "./input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./output"
	}
	if c.ArchiveDir == "" {
		c.ArchiveDir = "./archive"
	}
	if c.Template == "" {
		c.Template = "standard"
	}
	if c.OutputNameFormat == "" {
		c.OutputNameFormat = "labels_{timestamp}_{uuid}.pdf"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.CSV.Delimiter == "" {
		c.CSV.Delimiter = ","
	}
}

// Validate checks the configuration for invalid values.
func (c *MainConfig) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if len(c.CSV.Delimiter) != 1 && c.CSV.Delimiter != "\t" {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.CSV.Delimiter)
	}

	for name, rule := range c.Fields {
		if t := rule.Truncate; t != nil {
			if t.Keep <= 0 || t.Max <= 0 || t.Keep > t.Max {
				return fmt.Errorf("field %q: truncation requires 0 < keep <= max", name)
			}
		}
	}

	return nil
}
