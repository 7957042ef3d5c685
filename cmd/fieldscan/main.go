// fieldscan runs the deterministic pattern pass over a local document and
// prints every extracted field. Useful for tuning rules against real
// registry extracts without a database or an API key.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/agrosuivi/farmdesk/internal/extract/assess"
	"github.com/agrosuivi/farmdesk/internal/extract/pattern"
)

func main() {
	var text []byte
	var err error
	switch len(os.Args) {
	case 1:
		text, err = io.ReadAll(os.Stdin)
	case 2:
		text, err = os.ReadFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "usage: fieldscan [file]")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	fields := pattern.Default().Extract(string(text))
	if len(fields) == 0 {
		fmt.Println("no fields matched")
		return
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fr := fields[name]
		fmt.Printf("%-22s %-10s %.2f  %v\n", name, fr.Source, fr.Confidence, fr.Value)
	}

	a := assess.Assess(fields, assess.Options{})
	fmt.Printf("\nextracted %d/%d fields, overall confidence %.2f\n",
		a.ExtractedCount, a.TotalFields, a.OverallConfidence)
	if a.NeedsEscalation {
		fmt.Printf("would escalate to AI for: %v\n", a.EscalationFields)
	}
}
