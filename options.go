package contour

import "github.com/tsawler/contour/heading"

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// maxPages caps how many pages are read from a PDF (0 = default cap)
	maxPages int

	// strictness controls the candidate filter's length bound
	strictness heading.Strictness

	// metaTitle and toc feed the title selector's fallback chain when
	// fragments are supplied directly instead of read from a file
	metaTitle string
	toc       []string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:   0, // 0 means the pdfdoc default cap
		strictness: heading.StrictnessNormal,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		maxPages:   o.maxPages,
		strictness: o.strictness,
		metaTitle:  o.metaTitle,
	}

	if o.toc != nil {
		newOpts.toc = make([]string, len(o.toc))
		copy(newOpts.toc, o.toc)
	}

	return newOpts
}
