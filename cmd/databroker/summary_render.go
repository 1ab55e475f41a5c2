package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/textutil"
	"github.com/Awesome-Austin/DataBrokerBreaker/internal/workflow"
)

func summaryRows(summary *workflow.Summary) [][]string {
	if summary == nil {
		return nil
	}
	var rows [][]string
	for _, person := range summary.People {
		for _, site := range person.Sites {
			rows = append(rows, []string{
				person.Name,
				site.Site,
				strconv.Itoa(site.Collected),
				strconv.Itoa(site.Ignored),
				strconv.Itoa(site.Accepted),
				strconv.Itoa(site.Rejected),
				siteStatus(site),
			})
		}
	}
	return rows
}

func siteStatus(site workflow.SiteSummary) string {
	switch {
	case site.Err != "":
		return "failed: " + site.Err
	case site.Skipped != "":
		return "skipped (" + site.Skipped + ")"
	case site.ResultsPath != "":
		return site.ResultsPath
	default:
		return "ok"
	}
}

func summaryFooter(summary *workflow.Summary) string {
	people := len(summary.People)
	added := summary.RelativesAdded()
	return fmt.Sprintf("Run %s: %d %s reviewed, %d %s added in %s",
		summary.RunID,
		people, plural(people, "person", "people"),
		added, plural(added, "relative", "relatives"),
		summary.Duration().Round(time.Millisecond),
	)
}

func plural(n int, one, many string) string {
	return textutil.Ternary(n == 1, one, many)
}
