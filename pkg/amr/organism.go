package amr

// organismTable maps known AMR genes to the organisms they are most often
// carried by.
var organismTable = map[string]string{
	"mecA":          "Staphylococcus aureus",
	"vanA":          "Enterococcus faecium",
	"tetM":          "Multiple species",
	"blaTEM":        "Escherichia coli",
	"blaCTX-M":      "Enterobacteriaceae",
	"blaKPC":        "Klebsiella pneumoniae",
	"blaNDM":        "Enterobacteriaceae",
	"qnrA":          "Enterobacteriaceae",
	"qnrS":          "Enterobacteriaceae",
	"aac":           "Multiple species",
	"aac(6')-Ib-cr": "Enterobacteriaceae",
	"ermB":          "Streptococcus species",
}

// UnknownOrganism is the fallback mapping for genes with no known carrier.
const UnknownOrganism = "Unknown organism"

// OrganismFor returns the likely carrier organism for a gene symbol.
func OrganismFor(geneName string) string {
	if organism, ok := organismTable[geneName]; ok {
		return organism
	}
	return UnknownOrganism
}

// Organisms returns a copy of the full gene to organism table.
func Organisms() map[string]string {
	mapping := make(map[string]string, len(organismTable))
	for gene, organism := range organismTable {
		mapping[gene] = organism
	}
	return mapping
}

// OrganismMapping maps each gene name in the input to its likely organism.
func OrganismMapping(geneNames []string) map[string]string {
	mapping := make(map[string]string, len(geneNames))
	for _, name := range geneNames {
		mapping[name] = OrganismFor(name)
	}
	return mapping
}
