package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/report"
	"github.com/alexanderramin/floatsync/internal/repository"
	"github.com/alexanderramin/floatsync/internal/service"
	"github.com/alexanderramin/floatsync/internal/sheet"
	"github.com/alexanderramin/floatsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// testApp wires a full App backed by an in-memory DB and a mocked sheet client.
func testApp(t *testing.T) (*App, *sheet.MockClient) {
	t.Helper()
	database := testutil.NewTestDB(t)
	client := sheet.NewMockClient(gomock.NewController(t))

	return &App{
		Float:            service.NewFloatService(client, testutil.NewTestUoW(database)),
		History:          service.NewHistoryService(repository.NewSQLiteRunRepo(database)),
		SheetID:          "4242",
		FloatColumnTitle: domain.DefaultFloatTitle,
	}, client
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func criticalSheet() *domain.Sheet {
	return testutil.NewTestSheet(
		testutil.NewTestRow(1, testutil.WithDates("2024-01-02", "2024-01-04")),
		testutil.NewTestRow(2, testutil.WithDates("2024-01-05", "2024-01-09"),
			testutil.WithPredecessors(testutil.NewTestDependency(1, testutil.Critical()))),
	)
}

func runIDFrom(t *testing.T, out string) string {
	t.Helper()
	fields := strings.Fields(strings.SplitN(out, "\n", 2)[0])
	require.GreaterOrEqual(t, len(fields), 3)
	return fields[2]
}

func TestRunCmd_SubmitsAndPrintsBatch(t *testing.T) {
	app, client := testApp(t)
	client.EXPECT().GetSheet(gomock.Any(), "4242").Return(criticalSheet(), nil)
	client.EXPECT().UpdateRows(gomock.Any(), "4242", gomock.Len(2)).Return(nil)

	out, err := executeCmd(t, app, "run")
	require.NoError(t, err)

	assert.Contains(t, out, "status succeeded")
	assert.Contains(t, out, "1\t1\t1001\tcritical\t0")
	assert.Contains(t, out, "2\t2\t1002\tcritical\t0")
}

func TestRunCmd_SheetFlagAndDryRun(t *testing.T) {
	app, client := testApp(t)
	client.EXPECT().GetSheet(gomock.Any(), "777").Return(criticalSheet(), nil)

	out, err := executeCmd(t, app, "run", "--sheet", "777", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "sheet 777 status dry_run")
}

func TestRunCmd_WritesWorkbook(t *testing.T) {
	app, client := testApp(t)
	client.EXPECT().GetSheet(gomock.Any(), "4242").Return(criticalSheet(), nil)

	path := filepath.Join(t.TempDir(), "float.xlsx")
	_, err := executeCmd(t, app, "run", "--dry-run", "--xlsx", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.FloatSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRunCmd_PropagatesSubmissionError(t *testing.T) {
	app, client := testApp(t)
	client.EXPECT().GetSheet(gomock.Any(), "4242").Return(criticalSheet(), nil)
	client.EXPECT().UpdateRows(gomock.Any(), "4242", gomock.Any()).Return(sheet.ErrUnavailable)

	_, err := executeCmd(t, app, "run")
	require.ErrorIs(t, err, sheet.ErrUnavailable)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "\tfailed\t")
}

func TestHistoryAndShowCmd(t *testing.T) {
	app, client := testApp(t)
	client.EXPECT().GetSheet(gomock.Any(), "4242").Return(criticalSheet(), nil)

	out, err := executeCmd(t, app, "run", "--dry-run")
	require.NoError(t, err)
	runID := runIDFrom(t, out)

	out, err = executeCmd(t, app, "history", "--limit", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], runID+"\t4242\tdry_run\t2\t"))

	out, err = executeCmd(t, app, "show", runID)
	require.NoError(t, err)
	assert.Contains(t, out, "2\t2\t1002\tcritical\t0")
}

func TestShowCmd_UnknownRun(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "show", "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestShowCmd_RequiresRunID(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "show")
	require.Error(t, err)
}

func TestHistoryCmd_StyledWhenInteractive(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}

func TestRunCmd_PreflightStopsRun(t *testing.T) {
	app, _ := testApp(t)
	var checked string
	app.Preflight = func(sheetID string) error {
		checked = sheetID
		return assert.AnError
	}

	_, err := executeCmd(t, app, "run", "--sheet", "99")
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "99", checked)
}
