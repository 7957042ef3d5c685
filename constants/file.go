package constants

import "strings"

// DocumentTypes holds the allowed values for the doc_type field on documents.
var DocumentTypes = []string{
	"REGISTRY_EXTRACT", // business registration extract (Kbis, ONRC)
	"SUBSIDY",          // subsidy description / call text
	"FINANCIAL",        // financial statement or filing
	"PERMIT",           // operating permit
	"OTHER",
}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
	"md":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// LargeDocumentBytes is the size above which the worker throttles before the
// expensive extraction call. Crude backpressure for shared downstream
// services, not an algorithmic requirement.
const LargeDocumentBytes = 2 << 20
