package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/alexanderramin/floatsync/internal/report"
	"github.com/spf13/pflag"
)

func addXLSXFlag(fs *pflag.FlagSet, path *string) {
	fs.StringVar(path, "xlsx", "", "Also write the update batch to an XLSX workbook at `path`")
}

func writeXLSX(path string, run *domain.Run, updates []domain.FloatUpdate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteXLSX(f, run, updates); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
