package mib

import "sort"

// CVE column layout (0-based).
const (
	cveColValueID   = 1
	cveColValueType = 2
	cveColRange     = 3
)

// collectCVE gathers enum labels per value ID from one CVE file. Only rows
// of value type E (enumeration) contribute; numeric calibration rows are
// ignored.
func collectCVE(f TableFile, labels map[string][]string) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		valueID := col(fields, cveColValueID)
		if valueID == "" {
			continue
		}
		if col(fields, cveColValueType) != "E" {
			continue
		}
		if r := col(fields, cveColRange); r != "" {
			labels[valueID] = append(labels[valueID], r)
		}
	}
}

// attachEnumsToCommands merges label sets into every command parameter
// whose ParamID matches a key of labels. Existing enumerations are kept;
// the merged set comes out sorted and deduplicated.
func attachEnumsToCommands(tcByID map[string]*TcEntry, labels map[string][]string) {
	for _, tc := range tcByID {
		for _, p := range tc.Params {
			if p.ParamID == "" {
				continue
			}
			if set, ok := labels[p.ParamID]; ok {
				p.Enumerations = mergeLabels(p.Enumerations, set)
			}
		}
	}
}

// CVP column layout (0-based).
const (
	cvpColTcID    = 0
	cvpColValueID = 2
)

// parseCVP maps command IDs to the value sets the CVP table associates
// with them. The result is not attached to any entry: the association has
// no consumer in the exposed model yet, but the table is parsed so the
// data is in hand when one appears.
func parseCVP(f TableFile, assoc map[string][]string) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		tcID := col(fields, cvpColTcID)
		if tcID == "" {
			continue
		}
		if v := col(fields, cvpColValueID); v != "" {
			assoc[tcID] = append(assoc[tcID], v)
		}
	}
}

// TXP column layout: the key is column 0 and the text label is whatever
// column comes last. TXP variants disagree on the columns in between, so
// nothing else is read.
const txpColKey = 0

// collectTXP gathers text labels per key from one TXP file. Rows with a
// single column carry no label and are skipped.
func collectTXP(f TableFile, labels map[string][]string) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		key := col(fields, txpColKey)
		if key == "" || len(fields) < 2 {
			continue
		}
		if label := fields[len(fields)-1]; label != "" {
			labels[key] = append(labels[key], label)
		}
	}
}

// attachEnumsToTelemetry merges label sets into every telemetry parameter
// whose EnumSetID matches a key of labels.
func attachEnumsToTelemetry(tmBySID map[string]*TelemetryEntry, labels map[string][]string) {
	for _, tm := range tmBySID {
		for _, p := range tm.Params {
			if p.EnumSetID == "" {
				continue
			}
			if set, ok := labels[p.EnumSetID]; ok {
				p.Enumerations = mergeLabels(p.Enumerations, set)
			}
		}
	}
}

// mergeLabels returns the union of two label sets, sorted and
// deduplicated. The inputs are not modified.
func mergeLabels(existing, incoming []string) []string {
	out := make([]string, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	out = append(out, incoming...)
	sort.Strings(out)
	n := 0
	for i, l := range out {
		if i > 0 && l == out[i-1] {
			continue
		}
		out[n] = l
		n++
	}
	return out[:n]
}
