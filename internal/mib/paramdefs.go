package mib

// ParamDef is the slice of a PCF row the index cares about: the
// human-readable parameter name and the enumeration set it calibrates
// against.
type ParamDef struct {
	Name      string
	EnumSetID string
}

// PCF column layout (0-based).
const (
	pcfColParamID   = 0
	pcfColName      = 1
	pcfColEnumSetID = 11
)

// parsePCF folds one PCF file into the parameter definition lookup. Unlike
// the command tables, the first occurrence of a parameter ID wins — across
// files too. Real datasets ship overlay PCF files whose duplicates are
// deliberately shadowed by the base set.
func parsePCF(f TableFile, defs map[string]ParamDef) {
	for _, line := range f.Lines {
		if IsSkippable(line) {
			continue
		}
		fields := SplitFields(line)
		paramID := col(fields, pcfColParamID)
		if paramID == "" {
			continue
		}
		if _, ok := defs[paramID]; ok {
			continue
		}
		defs[paramID] = ParamDef{
			Name:      col(fields, pcfColName),
			EnumSetID: col(fields, pcfColEnumSetID),
		}
	}
}
