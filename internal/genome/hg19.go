// internal/genome/hg19.go
package genome

// hg19Lengths are the GRCh37/hg19 assembled chromosome lengths in bp.
var hg19Lengths = []Chromosome{
	{"chr1", 249250621},
	{"chr2", 243199373},
	{"chr3", 198022430},
	{"chr4", 191154276},
	{"chr5", 180915260},
	{"chr6", 171115067},
	{"chr7", 159138663},
	{"chr8", 146364022},
	{"chr9", 141213431},
	{"chr10", 135534747},
	{"chr11", 135006516},
	{"chr12", 133851895},
	{"chr13", 115169878},
	{"chr14", 107349540},
	{"chr15", 102531392},
	{"chr16", 90354753},
	{"chr17", 81195210},
	{"chr18", 78077248},
	{"chr19", 59128983},
	{"chr20", 63025520},
	{"chr21", 48129895},
	{"chr22", 51304566},
	{"chrX", 155270560},
	{"chrY", 59373566},
}

// HG19 returns the built-in human hg19 length table (chr1..chr22, chrX, chrY).
func HG19() *Table {
	list := make([]Chromosome, len(hg19Lengths))
	copy(list, hg19Lengths)
	t, err := newTable(list)
	if err != nil {
		panic("genome: invalid built-in hg19 table: " + err.Error())
	}
	return t
}
