package mib

// PID column layout (0-based).
const (
	pidColService     = 0
	pidColSubService  = 1
	pidColSID         = 5
	pidColDescription = 6
)

// parsePID folds one PID file into the shared telemetry map, keyed by SID.
// Later files overwrite earlier entries for the same SID.
func parsePID(f TableFile, tmBySID map[string]*TelemetryEntry) {
	for i, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		sid := col(fields, pidColSID)
		if sid == "" {
			continue
		}
		tmBySID[sid] = &TelemetryEntry{
			SID:         sid,
			Service:     col(fields, pidColService),
			SubService:  col(fields, pidColSubService),
			Description: col(fields, pidColDescription),
			SourcePath:  f.Source,
			SourceLine:  i + 1,
		}
	}
}

// PLF column layout (0-based).
const (
	plfColParamID = 0
	plfColSID     = 1
)

// applyPLF appends one parameter per PLF row to the telemetry entry it
// references. The parameter name and enum set come from the PCF lookup;
// without a PCF row the name falls back to the parameter ID so the entry
// stays identifiable.
func applyPLF(f TableFile, tmBySID map[string]*TelemetryEntry, defs map[string]ParamDef) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		paramID := col(fields, plfColParamID)
		sid := col(fields, plfColSID)
		if paramID == "" || sid == "" {
			continue
		}
		tm, ok := tmBySID[sid]
		if !ok {
			continue
		}
		name := paramID
		var enumSet string
		if def, ok := defs[paramID]; ok {
			if def.Name != "" {
				name = def.Name
			}
			enumSet = def.EnumSetID
		}
		tm.Params = append(tm.Params, &ParamEntry{
			Name:      name,
			ParamID:   paramID,
			EnumSetID: enumSet,
			Raw:       fields,
		})
	}
}
