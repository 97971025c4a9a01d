/*Package hgt normalizes the text reports of horizontal-gene-transfer
  detectors and related tools into one canonical string per run:

    ranger-dtl, trex, jane4, riata-hgt   number of transfers, or "NaN"
    consel                               AU p-values, one per line
    darkhorse                            putative HGT rows (8 columns)
    hgtector                             putative HGT rows (6 columns)
    egid                                 protein ids inside genomic islands
    genemark                             protein ids of atypical genes

  Run and RunPath are the entry points; everything else is a pure function
  over the report's lines.  EGID and GeneMark also need the genome's coding
  genes, supplied through GeneSource (see package annotation).
*/
package hgt
