package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/floatsync/internal/calendar"
	"github.com/alexanderramin/floatsync/internal/domain"
)

var (
	updateHeaders = []string{"SEQ", "ROW", "ROW ID", "BUCKET", "FLOAT"}
	runHeaders    = []string{"RUN ID", "SHEET", "STATUS", "UPDATES", "COMPLETION", "STARTED"}
)

// FormatRun renders a run summary followed by its update batch. Plain output
// is tab-separated with a single summary line.
func FormatRun(run *domain.Run, updates []domain.FloatUpdate, styled bool) string {
	rows := make([][]string, 0, len(updates))
	for i, u := range updates {
		bucket := string(u.Bucket)
		if styled {
			bucket = BucketStyle(u.Bucket).Render(bucket)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(u.RowNumber),
			strconv.FormatInt(u.RowID, 10),
			bucket,
			floatText(u.Value),
		})
	}

	if !styled {
		return fmt.Sprintf("# run %s sheet %s status %s completion %s\n",
			run.ID, run.SheetID, run.Status, completionText(run.CompletionDate)) +
			RenderTSV(updateHeaders, rows)
	}

	var b strings.Builder
	b.WriteString(Header("Float run"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", Dim("run"), run.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("sheet"), run.SheetID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("status"), StatusIndicator(run.Status))
	fmt.Fprintf(&b, "%s  %s\n", Dim("completion"), completionText(run.CompletionDate))
	fmt.Fprintf(&b, "%s  %d critical, %d connected, %d isolated\n",
		Dim("buckets"), run.Counts.Critical, run.Counts.Connected, run.Counts.Isolated)
	if run.Error != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("error"), StyleRed.Render(run.Error))
	}
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(Dim("No float updates."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(RenderTable(updateHeaders, rows))
	return b.String()
}

// FormatRunList renders run history, newest first as given.
func FormatRunList(runs []*domain.Run, styled bool) string {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		status := string(r.Status)
		if styled {
			status = StatusIndicator(r.Status)
		}
		rows = append(rows, []string{
			r.ID,
			r.SheetID,
			status,
			strconv.Itoa(r.Counts.Updates),
			completionText(r.CompletionDate),
			r.StartedAt.UTC().Format(time.RFC3339),
		})
	}

	if !styled {
		return RenderTSV(runHeaders, rows)
	}
	if len(rows) == 0 {
		return Dim("No runs recorded yet.") + "\n"
	}
	return Header("Run history") + "\n" + RenderTable(runHeaders, rows)
}

func floatText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func completionText(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return calendar.Format(*d)
}
