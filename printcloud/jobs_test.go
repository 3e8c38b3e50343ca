package printcloud_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/makerlabs/print-billing/eventio"
	. "github.com/makerlabs/print-billing/printcloud"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func timePtr(t time.Time) *time.Time { return &t }

var _ = Describe("FetchJobsInWindow", func() {

	var (
		ctx    context.Context
		server *httptest.Server
		pages  [][]eventio.PrintJob
		status int

		windowStart = time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
		windowStop  = time.Date(2023, 4, 1, 11, 0, 0, 0, time.UTC)
	)

	newClient := func() *Client {
		client, err := New(ctx, Config{
			APIAddress: server.URL,
			PageSize:   2,
			Logger:     lager.NewLogger("test"),
			HTTPClient: server.Client(),
		})
		Expect(err).ToNot(HaveOccurred())
		return client
	}

	BeforeEach(func() {
		ctx = context.Background()
		status = http.StatusOK
		pages = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.URL.Path).To(Equal("/api/printers/Form3-XYZ/prints/"))
			Expect(r.URL.Query().Get("per_page")).To(Equal("2"))
			if status != http.StatusOK {
				w.WriteHeader(status)
				return
			}
			page := 0
			fmt.Sscanf(r.URL.Query().Get("page"), "%d", &page)
			prints := []eventio.PrintJob{}
			if page >= 1 && page <= len(pages) {
				prints = pages[page-1]
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{"prints": prints})
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("pages until a short page is returned", func() {
		pages = [][]eventio.PrintJob{
			{
				{
					GUID:       "job-1",
					StartedAt:  timePtr(windowStart.Add(5 * time.Minute)),
					FinishedAt: timePtr(windowStart.Add(20 * time.Minute)),
				},
				{
					GUID:       "job-2",
					StartedAt:  timePtr(windowStart.Add(25 * time.Minute)),
					FinishedAt: timePtr(windowStart.Add(40 * time.Minute)),
				},
			},
			{
				{
					GUID:       "job-3",
					StartedAt:  timePtr(windowStart.Add(45 * time.Minute)),
					FinishedAt: timePtr(windowStart.Add(55 * time.Minute)),
				},
			},
		}

		jobs, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		Expect(err).ToNot(HaveOccurred())
		Expect(jobs).To(HaveLen(3))
		Expect(jobs[0].GUID).To(Equal("job-1"))
		Expect(jobs[2].GUID).To(Equal("job-3"))
	})

	It("discards jobs without a start time or effective end", func() {
		pages = [][]eventio.PrintJob{
			{
				{
					GUID:       "no-start",
					FinishedAt: timePtr(windowStart.Add(20 * time.Minute)),
				},
				{
					GUID:      "still-running",
					StartedAt: timePtr(windowStart.Add(5 * time.Minute)),
				},
			},
			{
				{
					GUID:      "confirmed",
					StartedAt: timePtr(windowStart.Add(5 * time.Minute)),
					RunSuccess: &eventio.PrintRunSuccess{
						Status:    "SUCCESS",
						CreatedAt: windowStart.Add(30 * time.Minute),
					},
				},
			},
		}

		jobs, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		Expect(err).ToNot(HaveOccurred())
		Expect(jobs).To(HaveLen(1))
		Expect(jobs[0].GUID).To(Equal("confirmed"))
	})

	It("retains jobs ending exactly on the window bounds", func() {
		pages = [][]eventio.PrintJob{
			{
				{
					GUID:       "on-stop",
					StartedAt:  timePtr(windowStart),
					FinishedAt: timePtr(windowStop),
				},
			},
		}

		jobs, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		Expect(err).ToNot(HaveOccurred())
		Expect(jobs).To(HaveLen(1))
	})

	It("excludes jobs ending outside the window", func() {
		pages = [][]eventio.PrintJob{
			{
				{
					GUID:       "too-late",
					StartedAt:  timePtr(windowStart.Add(5 * time.Minute)),
					FinishedAt: timePtr(windowStop.Add(time.Minute)),
				},
			},
		}

		jobs, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		Expect(err).ToNot(HaveOccurred())
		Expect(jobs).To(BeEmpty())
	})

	It("returns a FetchError on a non-success status", func() {
		status = http.StatusBadGateway

		_, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		fetchErr, ok := err.(*eventio.FetchError)
		Expect(ok).To(BeTrue())
		Expect(fetchErr.StatusCode).To(Equal(http.StatusBadGateway))
	})

	It("returns a FetchError when the API is unreachable", func() {
		server.Close()

		_, err := newClient().FetchJobsInWindow(ctx, "Form3-XYZ", windowStart, windowStop)
		Expect(err).To(BeAssignableToTypeOf(&eventio.FetchError{}))
	})
})
