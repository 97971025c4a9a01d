/*Package interval holds the coordinate primitives shared by the HGT report
  parsers: 1-based closed spans, a whitespace tokenizer for coordinate
  lines, and a containment index that answers "which genes lie entirely
  inside this range" without scanning every gene.

  All positions are 1-based and both ends are closed, which is how GenBank
  feature tables and the EGID/GeneMark reports write them.
*/
package interval
