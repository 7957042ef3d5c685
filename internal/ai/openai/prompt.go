package openai

import (
	"fmt"
	"strings"

	"github.com/agrosuivi/farmdesk/internal/ai"
)

func buildSystemPrompt(req ai.Request) string {
	var b strings.Builder
	b.WriteString("You extract structured fields from agricultural business documents ")
	b.WriteString("(French and Romanian registry extracts, subsidy descriptions, financial filings). ")
	b.WriteString("Return values exactly as written in the document, normalized only as the schema requires. ")
	b.WriteString("Omit any field the document does not contain; never guess. ")
	b.WriteString("Report an overall confidence between 0 and 1.")
	if req.CountryHint != "" {
		fmt.Fprintf(&b, " The document is expected to originate from country %s.", req.CountryHint)
	}
	if req.DocumentType != "" {
		fmt.Fprintf(&b, " The document is registered as type %s.", req.DocumentType)
	}
	return b.String()
}

func buildUserPrompt(req ai.Request) string {
	var b strings.Builder
	if len(req.TargetFields) > 0 {
		fmt.Fprintf(&b, "Extract these fields: %s.\n", strings.Join(req.TargetFields, ", "))
	} else {
		b.WriteString("Extract every field the schema defines.\n")
	}
	if req.IncludeNarrative {
		b.WriteString("Also summarize the farm's activity into activity_description.\n")
	}
	b.WriteString("\nDOCUMENT:\n")
	b.WriteString(req.DocumentText)
	return b.String()
}
