package mib

// CCF column layout (0-based). The SCOS-2000 CCF table carries more
// columns; only the ones surfaced by the index are named here.
const (
	ccfColID          = 0
	ccfColName        = 1
	ccfColDescription = 2
	ccfColHeader      = 5
	ccfColServiceType = 6
	ccfColSubService  = 7
	ccfColAPID        = 8
)

// parseCCF folds one CCF file into the shared command maps. A duplicate ID
// in a later file replaces the earlier entry in tcByID; tcByName keeps
// whichever write happened last, independently of tcByID.
func parseCCF(f TableFile, tcByID map[string]*TcEntry, tcByName map[string]*TcEntry) {
	for i, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		id := col(fields, ccfColID)
		if id == "" {
			continue
		}
		tc := &TcEntry{
			ID:          id,
			Name:        col(fields, ccfColName),
			Description: col(fields, ccfColDescription),
			Header:      col(fields, ccfColHeader),
			ServiceType: col(fields, ccfColServiceType),
			SubService:  col(fields, ccfColSubService),
			APID:        col(fields, ccfColAPID),
			SourcePath:  f.Source,
			SourceLine:  i + 1,
		}
		tcByID[id] = tc
		if tc.Name != "" {
			tcByName[tc.Name] = tc
		}
	}
}

// CDF column layout (0-based).
const (
	cdfColTcID      = 0
	cdfColKind      = 1
	cdfColName      = 2
	cdfColBitLength = 3
	cdfColBitOffset = 4
	cdfColParamID   = 6
)

// applyCDF appends one parameter per CDF row to the command it references.
// Rows referencing an unknown command are dropped; enrichment is best
// effort over partially available datasets.
func applyCDF(f TableFile, tcByID map[string]*TcEntry) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		tcID := col(fields, cdfColTcID)
		if tcID == "" {
			continue
		}
		tc, ok := tcByID[tcID]
		if !ok {
			continue
		}
		tc.Params = append(tc.Params, &ParamEntry{
			Name:      col(fields, cdfColName),
			Kind:      col(fields, cdfColKind),
			BitLength: col(fields, cdfColBitLength),
			BitOffset: col(fields, cdfColBitOffset),
			ParamID:   col(fields, cdfColParamID),
			Raw:       fields,
		})
	}
}
