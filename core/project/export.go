package project

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const marksSheet = "Marks"

var exportHeader = []interface{}{
	"Group", "Project", "Supervisor", "Status",
	"Proposal", "Implementation", "Documentation", "Presentation", "GitHub", "Final",
	"Total", "Percentage", "Grade", "Evaluated",
}

// ExportMarks writes an XLSX workbook with one row per project to w.
func ExportMarks(w io.Writer, list []Project) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", marksSheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}
	if err := f.SetSheetRow(marksSheet, "A1", &exportHeader); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetRowStyle(marksSheet, 1, 1, style)
	}

	for i, p := range list {
		var m Marks
		if p.Marks != nil {
			m = *p.Marks
		}
		row := []interface{}{
			p.Group.Name, p.DisplayTitle(), p.SupervisorName(), string(p.Status),
			m.Proposal, m.Implementation, m.Documentation, m.Presentation, m.Github, m.Final,
			m.TotalMarks(), m.Percentage(), m.Grade(), yesNo(p.EvaluationComplete),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "computing cell name")
		}
		if err := f.SetSheetRow(marksSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "writing row %d", i+2)
		}
	}
	_ = f.SetColWidth(marksSheet, "A", "C", 28)

	return errors.Wrap(f.Write(w), "writing workbook")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
