// Reference catalog of AMR genes, resistance mechanisms and antibiotic
// classes. This is curated demo data; a production deployment would pull
// from CARD, ResFinder or the NCBI AMR reference instead.

package amr

// GeneInfo is the curated description of one known resistance gene.
type GeneInfo struct {
	FullName            string   `json:"full_name"`
	Description         string   `json:"description"`
	Mechanism           string   `json:"mechanism"`
	Prevalence          string   `json:"prevalence"`
	AntibioticsAffected []string `json:"antibiotics_affected"`
}

// GeneCatalog maps known gene symbols to their reference descriptions.
var GeneCatalog = map[string]GeneInfo{
	"mecA": {
		FullName:            "Methicillin resistance gene A",
		Description:         "Confers resistance to beta-lactam antibiotics including methicillin and other penicillins",
		Mechanism:           "Produces altered penicillin-binding protein (PBP2a) with low affinity for beta-lactams",
		Prevalence:          "Common in MRSA (Methicillin-resistant Staphylococcus aureus)",
		AntibioticsAffected: []string{"methicillin", "oxacillin", "nafcillin", "dicloxacillin", "cefazolin"},
	},
	"vanA": {
		FullName:            "Vancomycin resistance gene A",
		Description:         "Confers high-level resistance to vancomycin and teicoplanin",
		Mechanism:           "Modifies the D-Ala-D-Ala terminus of peptidoglycan to D-Ala-D-Lac, reducing vancomycin binding",
		Prevalence:          "Found in VRE (Vancomycin-resistant Enterococcus)",
		AntibioticsAffected: []string{"vancomycin", "teicoplanin"},
	},
	"tetM": {
		FullName:            "Tetracycline resistance gene M",
		Description:         "Provides ribosomal protection against tetracyclines",
		Mechanism:           "Produces a protein that prevents tetracycline from binding to the ribosome",
		Prevalence:          "Widely distributed in gram-positive and gram-negative bacteria",
		AntibioticsAffected: []string{"tetracycline", "doxycycline", "minocycline"},
	},
	"blaTEM": {
		FullName:            "Beta-lactamase TEM",
		Description:         "Hydrolyzes the beta-lactam ring of many penicillins and some early cephalosporins",
		Mechanism:           "Enzymatic inactivation of beta-lactam antibiotics",
		Prevalence:          "One of the most common beta-lactamases in gram-negative bacteria",
		AntibioticsAffected: []string{"ampicillin", "penicillin", "amoxicillin", "cefazolin"},
	},
	"blaCTX-M": {
		FullName:            "Beta-lactamase CTX-M",
		Description:         "Extended-spectrum beta-lactamase with increased activity against cefotaxime",
		Mechanism:           "Enzymatic inactivation of extended-spectrum beta-lactam antibiotics",
		Prevalence:          "Increasingly common in Enterobacteriaceae",
		AntibioticsAffected: []string{"cefotaxime", "ceftriaxone", "ceftazidime", "aztreonam"},
	},
	"blaKPC": {
		FullName:            "Klebsiella pneumoniae carbapenemase",
		Description:         "Carbapenemase that hydrolyzes a broad range of beta-lactams including carbapenems",
		Mechanism:           "Enzymatic inactivation of all beta-lactam antibiotics including carbapenems",
		Prevalence:          "Increasing globally, especially in Klebsiella and other Enterobacteriaceae",
		AntibioticsAffected: []string{"ertapenem", "imipenem", "meropenem", "doripenem", "all penicillins and cephalosporins"},
	},
	"blaNDM": {
		FullName:            "New Delhi metallo-beta-lactamase",
		Description:         "Metallo-beta-lactamase that confers resistance to almost all beta-lactams",
		Mechanism:           "Zinc-dependent hydrolysis of the beta-lactam ring",
		Prevalence:          "Emerging global threat, especially in Enterobacteriaceae",
		AntibioticsAffected: []string{"all beta-lactams except aztreonam"},
	},
	"qnrA": {
		FullName:            "Quinolone resistance gene A",
		Description:         "Protects DNA gyrase from quinolone inhibition",
		Mechanism:           "Protein binding that prevents quinolones from interacting with target enzymes",
		Prevalence:          "Increasingly common in Enterobacteriaceae",
		AntibioticsAffected: []string{"ciprofloxacin", "levofloxacin", "moxifloxacin", "norfloxacin"},
	},
	"aac(6')-Ib-cr": {
		FullName:            "Aminoglycoside acetyltransferase Ib-cr variant",
		Description:         "Modified aminoglycoside acetyltransferase that also affects fluoroquinolones",
		Mechanism:           "Acetylation of aminoglycosides and some fluoroquinolones",
		Prevalence:          "Increasingly common in Enterobacteriaceae",
		AntibioticsAffected: []string{"kanamycin", "tobramycin", "ciprofloxacin", "norfloxacin"},
	},
	"ermB": {
		FullName:            "Erythromycin ribosome methylase B",
		Description:         "Methylates 23S rRNA, reducing binding of macrolides, lincosamides, and streptogramins",
		Mechanism:           "Target modification of bacterial ribosome",
		Prevalence:          "Common in gram-positive bacteria",
		AntibioticsAffected: []string{"erythromycin", "clarithromycin", "azithromycin", "clindamycin"},
	},
}

// MechanismInfo describes one broad class of resistance mechanism.
type MechanismInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Mechanisms lists the broad resistance mechanism classes.
var Mechanisms = []MechanismInfo{
	{
		Name:        "Enzymatic inactivation",
		Description: "Production of enzymes that modify or destroy the antibiotic molecule",
		Examples:    []string{"Beta-lactamases", "Aminoglycoside-modifying enzymes", "Chloramphenicol acetyltransferases"},
	},
	{
		Name:        "Target modification",
		Description: "Alteration of the antibiotic target site to reduce binding affinity",
		Examples:    []string{"PBP modifications", "Ribosomal methylation", "DNA gyrase mutations"},
	},
	{
		Name:        "Reduced permeability",
		Description: "Decreased antibiotic entry into the bacterial cell",
		Examples:    []string{"Porin mutations", "Altered membrane composition", "Biofilm formation"},
	},
	{
		Name:        "Efflux pumps",
		Description: "Active export of antibiotics from the bacterial cell",
		Examples:    []string{"RND family pumps", "MFS transporters", "ABC transporters"},
	},
	{
		Name:        "Target protection",
		Description: "Production of proteins that shield the target from antibiotic binding",
		Examples:    []string{"Tet(M)", "Qnr proteins", "Ribosomal protection proteins"},
	},
	{
		Name:        "Target overproduction",
		Description: "Increased production of the antibiotic target",
		Examples:    []string{"DHPS overexpression", "DHFR overexpression"},
	},
	{
		Name:        "Bypass pathway",
		Description: "Use of alternative metabolic pathways to circumvent antibiotic action",
		Examples:    []string{"Alternative PBPs", "Alternative folate synthesis"},
	},
}

// ClassInfo describes one antibiotic class.
type ClassInfo struct {
	Class     string   `json:"class"`
	Mechanism string   `json:"mechanism"`
	Examples  []string `json:"examples"`
}

// AntibioticClasses lists the antibiotic classes and representative drugs.
var AntibioticClasses = []ClassInfo{
	{Class: "Penicillins", Mechanism: "Cell wall synthesis inhibition", Examples: []string{"Penicillin G", "Ampicillin", "Amoxicillin", "Nafcillin", "Oxacillin", "Dicloxacillin"}},
	{Class: "Cephalosporins", Mechanism: "Cell wall synthesis inhibition", Examples: []string{"Cefazolin", "Cefuroxime", "Ceftriaxone", "Cefotaxime", "Ceftazidime", "Cefepime"}},
	{Class: "Carbapenems", Mechanism: "Cell wall synthesis inhibition", Examples: []string{"Imipenem", "Meropenem", "Ertapenem", "Doripenem"}},
	{Class: "Monobactams", Mechanism: "Cell wall synthesis inhibition", Examples: []string{"Aztreonam"}},
	{Class: "Glycopeptides", Mechanism: "Cell wall synthesis inhibition", Examples: []string{"Vancomycin", "Teicoplanin"}},
	{Class: "Lipopeptides", Mechanism: "Cell membrane disruption", Examples: []string{"Daptomycin", "Polymyxin B", "Colistin"}},
	{Class: "Aminoglycosides", Mechanism: "Protein synthesis inhibition (30S)", Examples: []string{"Gentamicin", "Tobramycin", "Amikacin", "Streptomycin"}},
	{Class: "Tetracyclines", Mechanism: "Protein synthesis inhibition (30S)", Examples: []string{"Tetracycline", "Doxycycline", "Minocycline", "Tigecycline"}},
	{Class: "Macrolides", Mechanism: "Protein synthesis inhibition (50S)", Examples: []string{"Erythromycin", "Clarithromycin", "Azithromycin"}},
	{Class: "Lincosamides", Mechanism: "Protein synthesis inhibition (50S)", Examples: []string{"Clindamycin", "Lincomycin"}},
	{Class: "Streptogramins", Mechanism: "Protein synthesis inhibition (50S)", Examples: []string{"Quinupristin/Dalfopristin"}},
	{Class: "Phenicols", Mechanism: "Protein synthesis inhibition (50S)", Examples: []string{"Chloramphenicol"}},
	{Class: "Oxazolidinones", Mechanism: "Protein synthesis inhibition (50S)", Examples: []string{"Linezolid", "Tedizolid"}},
	{Class: "Fluoroquinolones", Mechanism: "DNA replication inhibition", Examples: []string{"Ciprofloxacin", "Levofloxacin", "Moxifloxacin", "Ofloxacin"}},
	{Class: "Folate pathway inhibitors", Mechanism: "Nucleic acid synthesis inhibition", Examples: []string{"Trimethoprim", "Sulfamethoxazole", "Trimethoprim-Sulfamethoxazole"}},
}
