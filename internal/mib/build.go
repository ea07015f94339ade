package mib

// Inputs carries the materialized table files for one index build, one
// slice per table kind. Any slice may be empty; file order within a slice
// is significant (later files merge over earlier ones).
type Inputs struct {
	CCF []TableFile
	CDF []TableFile
	PID []TableFile
	PLF []TableFile
	PCF []TableFile
	CVE []TableFile
	CVP []TableFile
	TXP []TableFile
}

// BuildOptions selects optional builder behaviour.
type BuildOptions struct {
	// TxpCommandSide additionally applies TXP labels to command
	// parameters keyed by parameter ID. Some ground datasets use TXP this
	// way instead of (not in place of) the telemetry-side attachment.
	TxpCommandSide bool
}

// Build parses all table files and links them into a fresh Index.
//
// Pass order is fixed: primary rows first (CCF, PID), then the PCF lookup,
// then the parameter-appending passes (CDF, PLF), then enrichment (CVE,
// CVP, TXP). CDF and PLF mutate entries created by earlier passes, so the
// order is load-bearing. The build is deterministic for a fixed file and
// line ordering, and the returned index must not be mutated afterwards.
func Build(in Inputs, opts BuildOptions) *Index {
	ix := &Index{
		TcByID:   make(map[string]*TcEntry),
		TcByName: make(map[string]*TcEntry),
		TmBySID:  make(map[string]*TelemetryEntry),
	}

	for _, f := range in.CCF {
		parseCCF(f, ix.TcByID, ix.TcByName)
	}
	for _, f := range in.PID {
		parsePID(f, ix.TmBySID)
	}

	defs := make(map[string]ParamDef)
	for _, f := range in.PCF {
		parsePCF(f, defs)
	}

	for _, f := range in.CDF {
		applyCDF(f, ix.TcByID)
	}
	for _, f := range in.PLF {
		applyPLF(f, ix.TmBySID, defs)
	}

	cveLabels := make(map[string][]string)
	for _, f := range in.CVE {
		collectCVE(f, cveLabels)
	}
	attachEnumsToCommands(ix.TcByID, cveLabels)

	// CVP associations are parsed but attached to nothing; no exposed
	// entity consumes them yet.
	assoc := make(map[string][]string)
	for _, f := range in.CVP {
		parseCVP(f, assoc)
	}

	txpLabels := make(map[string][]string)
	for _, f := range in.TXP {
		collectTXP(f, txpLabels)
	}
	attachEnumsToTelemetry(ix.TmBySID, txpLabels)
	if opts.TxpCommandSide {
		attachEnumsToCommands(ix.TcByID, txpLabels)
	}

	return ix
}
