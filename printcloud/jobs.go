package printcloud

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventio"
)

var _ eventio.JobFetcher = &Client{}

// printList is one page of the vendor's print listing.
type printList struct {
	Prints []eventio.PrintJob `json:"prints"`
}

// FetchJobsInWindow pages through the printer's job history and returns the
// finished jobs whose effective end lies within [from, to] inclusive,
// compared at second precision. Jobs lacking a start time or a resolvable
// effective end are discarded.
func (c *Client) FetchJobsInWindow(ctx context.Context, printerSerial string, from, to time.Time) ([]eventio.PrintJob, error) {
	logger := c.logger.Session("fetch-jobs", lager.Data{
		"printer_serial": printerSerial,
		"from":           from.UTC().Format(time.RFC3339),
		"to":             to.UTC().Format(time.RFC3339),
	})
	startTime := time.Now()

	jobs := []eventio.PrintJob{}
	seen := 0
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(c.pageSize))
		query.Set("date__gt", from.UTC().Format(time.RFC3339))
		query.Set("date__lt", to.UTC().Format(time.RFC3339))

		list := printList{}
		path := fmt.Sprintf("/api/printers/%s/prints/", printerSerial)
		if err := c.get(ctx, path, query, &list); err != nil {
			return nil, err
		}
		seen += len(list.Prints)
		for _, job := range list.Prints {
			if !job.Finished() {
				continue
			}
			end, _ := job.EffectiveEnd()
			if secondsBetween(from, end, to) {
				jobs = append(jobs, job)
			}
		}
		if len(list.Prints) < c.pageSize {
			break
		}
	}

	logger.Info("fetched", lager.Data{
		"seen_count":    seen,
		"matched_count": len(jobs),
		"elapsed":       int64(time.Since(startTime)),
	})
	return jobs, nil
}

// secondsBetween reports from <= t <= to, compared at UTC second
// precision so formatting and DST offsets cannot skew the match.
func secondsBetween(from, t, to time.Time) bool {
	return from.Unix() <= t.Unix() && t.Unix() <= to.Unix()
}
