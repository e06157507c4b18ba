// Package heading implements the heading detection pipeline: candidate
// filtering, document font profiling, multi-strategy level classification,
// and outline finalization.
//
// The pipeline for one document runs in a fixed data-dependency order:
//
//	candidates := filter.Filter(fragments)
//	profile := heading.AnalyzeFonts(candidates)
//	for _, frag := range candidates {
//	    if level, ok := classifier.Classify(frag, profile); ok {
//	        detected = append(detected, model.Heading{Level: level, Text: frag.Text, Page: frag.Page})
//	    }
//	}
//	outline := heading.Finalize(detected)
//
// Classification is stateless per fragment, so candidates may be
// classified in any order; Finalize restores the canonical output order.
//
// The classifier applies four strategies in fixed priority: lexical
// pattern matching, typography, structural numbering, and content
// keywords. The first strategy producing a level wins and later
// strategies are not consulted. Ties between overlapping patterns are
// always resolved by table order, not by pattern specificity.
package heading
