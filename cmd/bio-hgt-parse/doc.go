/*Command bio-hgt-parse reads the report of a horizontal gene transfer
  detector and writes it to stdout in a canonical form: a transfer count
  ("NaN" if the report has none), a list of p-values, tab-separated
  putative HGT rows, or a list of protein ids.

  Usage:

    bio-hgt-parse -method=trex -hgt-results-fp=trex.out
    bio-hgt-parse -method=darkhorse -hgt-results-fp=x.smry \
      -darkhorse-high-lpi=0.5 -darkhorse-output-fp=best_hits.txt
    bio-hgt-parse -method=egid -hgt-results-fp=islands.txt -genbank-fp=genome.gbk

  -genbank-fp also accepts GFF (.gff, .gff3) and GTF (.gtf) annotations,
  optionally gzip-compressed.
*/
package main
