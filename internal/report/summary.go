package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/internboard/backend/internal/dataset"
	"github.com/internboard/backend/internal/models"
	"github.com/internboard/backend/internal/status"
)

// WriteSummary renders the human-readable recruitment summary: overview
// counts, contact statistics, interview statistics, the ratings
// distribution and the onboarding-ready count.
func WriteSummary(w io.Writer, ds *dataset.Store, ss *status.Store, generatedAt time.Time) error {
	ov := BuildOverview(ds, ss)

	if _, err := fmt.Fprintf(w, "INTERNSHIP RECRUITMENT SUMMARY REPORT\nGenerated: %s\n\n",
		generatedAt.Format("2006-01-02 15:04:05")); err != nil {
		return err
	}

	section(w, "OVERVIEW")
	fmt.Fprintf(w, "Total Applications: %d\n", ov.Total)
	fmt.Fprintf(w, "Shortlisted: %d\n", ov.Shortlisted)
	fmt.Fprintf(w, "Rejected: %d\n", ov.Rejected)
	fmt.Fprintf(w, "Pending Review: %d\n\n", ov.Pending)

	section(w, "CONTACT STATISTICS")
	fmt.Fprintf(w, "Total Contacted: %d\n", ov.Contacted)
	fmt.Fprintf(w, "Interested Candidates: %d\n", len(ss.InterestedIDs()))
	fmt.Fprintf(w, "Follow-ups Needed: %d\n", len(ss.FollowUpIDs()))
	if rows := ContactBreakdown(ss); len(rows) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Status", "Count"})
		for _, row := range rows {
			table.Append([]string{row.Label, strconv.Itoa(row.Count)})
		}
		table.Render()
	}
	fmt.Fprintln(w)

	section(w, "INTERVIEW STATISTICS")
	fmt.Fprintf(w, "Interviews Scheduled: %d\n\n", ov.Interviews)

	section(w, "RATINGS DISTRIBUTION")
	hist := RatingsHistogram(ss)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stars", "Candidates"})
	for stars := models.MaxRating; stars >= 1; stars-- {
		table.Append([]string{strconv.Itoa(stars), strconv.Itoa(hist[stars])})
	}
	table.Render()
	fmt.Fprintln(w)

	section(w, "READY FOR ONBOARDING")
	fmt.Fprintf(w, "Candidates Ready: %d\n", len(OnboardingReadyIDs(ss)))

	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	for range title {
		fmt.Fprint(w, "=")
	}
	fmt.Fprint(w, "\n")
}
