// Closed lookup tables for the analysis pipeline. These are data, not
// logic: swapping in a richer probe set or roster must not require touching
// the detector or the recommendation engine.

package amr

// Signature is a literal nucleotide substring standing in for a real
// gene-detection probe.
type Signature struct {
	Gene    string
	Pattern string
}

// Signatures is the fixed probe table, in detection order. Output gene
// ordering follows this slice.
var Signatures = []Signature{
	{Gene: "mecA", Pattern: "ATGAAAAAGATAAAAATTGTTC"},   // methicillin resistance
	{Gene: "vanA", Pattern: "ATGAAAATAGTTGTTAATA"},      // vancomycin resistance
	{Gene: "tetM", Pattern: "ATGAAAATTATTAATATTGGAG"},   // tetracycline resistance
	{Gene: "blaTEM", Pattern: "ATGAGTATTCAACATTTCCG"},   // beta-lactam resistance
	{Gene: "aac", Pattern: "ATGACCTTGCGATGCTCTATG"},     // aminoglycoside resistance
	{Gene: "qnrS", Pattern: "ATGGAAACCTACAATCATACA"},    // quinolone resistance
}

// resistanceTuple is one (antibiotic, level, mechanism) entry of the known
// gene mapping, before a confidence is drawn.
type resistanceTuple struct {
	Antibiotic string
	Level      ResistanceLevel
	Mechanism  string
}

// resistanceTable maps known gene symbols to their fixed resistance
// profiles.
var resistanceTable = map[string][]resistanceTuple{
	"mecA": {
		{"Methicillin", LevelHigh, "PBP2a production"},
		{"Oxacillin", LevelHigh, "PBP2a production"},
		{"Dicloxacillin", LevelHigh, "PBP2a production"},
	},
	"vanA": {
		{"Vancomycin", LevelHigh, "Cell wall target modification"},
		{"Teicoplanin", LevelHigh, "Cell wall target modification"},
	},
	"tetM": {
		{"Tetracycline", LevelHigh, "Ribosomal protection"},
		{"Doxycycline", LevelMedium, "Ribosomal protection"},
		{"Minocycline", LevelLow, "Ribosomal protection"},
	},
	"blaTEM": {
		{"Ampicillin", LevelHigh, "Beta-lactamase production"},
		{"Penicillin", LevelHigh, "Beta-lactamase production"},
		{"Cefazolin", LevelMedium, "Beta-lactamase production"},
	},
	"aac": {
		{"Gentamicin", LevelHigh, "Enzymatic modification"},
		{"Tobramycin", LevelHigh, "Enzymatic modification"},
		{"Amikacin", LevelMedium, "Enzymatic modification"},
	},
	"qnrS": {
		{"Ciprofloxacin", LevelMedium, "Target protection"},
		{"Levofloxacin", LevelMedium, "Target protection"},
		{"Moxifloxacin", LevelLow, "Target protection"},
	},
}

// proteinMotif associates a literal amino-acid motif with the resistance it
// hints at in novel candidates.
type proteinMotif struct {
	Motif      string
	Antibiotic string
	Level      ResistanceLevel
	Mechanism  string
}

var proteinMotifs = []proteinMotif{
	{Motif: "SXXK", Antibiotic: "Ampicillin", Level: LevelMedium, Mechanism: "Possible beta-lactamase activity"},
	{Motif: "HXXXD", Antibiotic: "Gentamicin", Level: LevelMedium, Mechanism: "Possible aminoglycoside modification"},
}

// Exploratory pools for the always-emitted novel-candidate record.
var (
	novelAntibiotics = []string{"Ceftriaxone", "Azithromycin", "Meropenem", "Colistin", "Tigecycline"}
	novelMechanisms  = []string{"Efflux pump", "Target modification", "Enzymatic inactivation", "Reduced permeability"}
	novelLevels      = []ResistanceLevel{LevelLow, LevelMedium}
)

// Roster is the closed list of antibiotics the recommendation engine
// evaluates. Every run produces exactly one Recommendation per entry.
var Roster = []string{
	"Ampicillin", "Penicillin", "Methicillin", "Oxacillin", "Dicloxacillin",
	"Cefazolin", "Ceftriaxone", "Ceftazidime", "Cefepime", "Meropenem",
	"Imipenem", "Aztreonam", "Vancomycin", "Teicoplanin", "Daptomycin",
	"Gentamicin", "Tobramycin", "Amikacin", "Tetracycline", "Doxycycline",
	"Minocycline", "Tigecycline", "Ciprofloxacin", "Levofloxacin", "Moxifloxacin",
	"Azithromycin", "Erythromycin", "Clarithromycin", "Clindamycin", "Linezolid",
	"Chloramphenicol", "Colistin", "Polymyxin B", "Trimethoprim", "Sulfamethoxazole",
}
