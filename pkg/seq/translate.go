// DNA to protein translation with the standard genetic code.

package seq

import "fmt"

// TranslationError is returned when a sequence reaching the translator
// contains characters outside the nucleotide alphabet. Upstream validation
// should prevent this; the check is kept anyway.
type TranslationError struct {
	Codon string
	Pos   int
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("cannot translate codon %q at offset %d", e.Codon, e.Pos)
}

// standardCode maps each of the 64 codons to a one-letter amino acid code,
// with '*' for the three stop codons.
var standardCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate reads dna in consecutive non-overlapping codons from offset 0
// and returns the amino-acid string. Translation stops at the first stop
// codon, which is not included in the output. A trailing partial codon is
// ignored. Characters outside {A,T,G,C} produce a *TranslationError.
func Translate(dna string) (string, error) {

	out := make([]byte, 0, len(dna)/3)

	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]

		aa, ok := standardCode[codon]
		if !ok {
			return "", &TranslationError{Codon: codon, Pos: i}
		}

		if aa == '*' {
			break
		}
		out = append(out, aa)
	}

	return string(out), nil
}
