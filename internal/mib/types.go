// Package mib parses SCOS-2000 ASCII MIB tables (tab-delimited) and links
// them into a queryable command/telemetry index.
//
// Eight table kinds are understood: CCF (command definitions), CDF (command
// parameters), PID (telemetry definitions), PLF (telemetry parameter
// locations), PCF (parameter definitions), CVE (calibration/enum values),
// CVP (command-value associations) and TXP (telemetry text values). Columns
// are positional; rows missing their key column are skipped, short rows
// degrade to absent optional fields. The package never returns errors and
// never touches the filesystem — callers hand it materialized line sets.
package mib

// TableFile is one MIB table file handed to the builder: an origin
// identifier (usually a path, used for diagnostics only) and its lines in
// file order.
type TableFile struct {
	Source string
	Lines  []string
}

// ParamEntry is one parameter attached to a command or telemetry entry.
//
// BitLength and BitOffset keep their original textual form; MIB datasets
// leave them blank or non-numeric often enough that parsing them here would
// only lose information. Raw holds every column of the originating row.
type ParamEntry struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind,omitempty"`
	BitLength string   `json:"bit_length,omitempty"`
	BitOffset string   `json:"bit_offset,omitempty"`
	ParamID   string   `json:"param_id,omitempty"`
	EnumSetID string   `json:"enum_set_id,omitempty"`
	Raw       []string `json:"raw,omitempty"`

	// Enumerations holds human-readable enum labels attached by a later
	// enrichment pass (CVE or TXP); sorted and deduplicated.
	Enumerations []string `json:"enumerations,omitempty"`
}

// TcEntry is one telecommand: a CCF row plus the parameters appended from
// CDF rows, in CDF file-then-row order.
type TcEntry struct {
	ID          string        `json:"id"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Header      string        `json:"header,omitempty"`
	ServiceType string        `json:"service_type,omitempty"`
	SubService  string        `json:"sub_service,omitempty"`
	APID        string        `json:"apid,omitempty"`
	SourcePath  string        `json:"source_path,omitempty"`
	SourceLine  int           `json:"source_line,omitempty"`
	Params      []*ParamEntry `json:"params,omitempty"`
}

// TelemetryEntry is one telemetry report: a PID row plus the parameters
// appended from PLF rows, keyed by SID.
type TelemetryEntry struct {
	SID         string        `json:"sid"`
	Service     string        `json:"service,omitempty"`
	SubService  string        `json:"sub_service,omitempty"`
	Description string        `json:"description,omitempty"`
	SourcePath  string        `json:"source_path,omitempty"`
	SourceLine  int           `json:"source_line,omitempty"`
	Params      []*ParamEntry `json:"params,omitempty"`
}

// Index is the cross-linked MIB index. Build owns and mutates the entries
// until it returns; after that the index is read-only and safe for
// concurrent readers. There is no incremental update — rebuild on change.
type Index struct {
	TcByID   map[string]*TcEntry
	TcByName map[string]*TcEntry
	TmBySID  map[string]*TelemetryEntry
}

// Commands returns the indexed telecommands keyed by ID, in map order.
func (ix *Index) Commands() []*TcEntry {
	out := make([]*TcEntry, 0, len(ix.TcByID))
	for _, tc := range ix.TcByID {
		out = append(out, tc)
	}
	return out
}

// LookupCommand resolves ref first as a command ID, then as a command name.
func (ix *Index) LookupCommand(ref string) *TcEntry {
	if tc, ok := ix.TcByID[ref]; ok {
		return tc
	}
	if tc, ok := ix.TcByName[ref]; ok {
		return tc
	}
	return nil
}
