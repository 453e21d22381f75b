// Package excel exports kernel-phase observables to spreadsheets for
// inspection outside the pipeline.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gokern/domain/core"
	"gokern/domain/observation"
	"gokern/internal"
)

// SheetName is the worksheet holding the observable table.
const SheetName = "KernelPhases"

// ObservableExporter writes kernel-phase observables to an .xlsx workbook,
// one row per kernel phase: index, measured value, uncertainty.
type ObservableExporter struct {
	logger *internal.Logger
}

// NewObservableExporter creates an exporter with the default logger.
func NewObservableExporter() *ObservableExporter {
	return &ObservableExporter{logger: internal.NewDefaultLogger()}
}

// Export writes the observable table to dest, replacing any existing file.
func (e *ObservableExporter) Export(kp *observation.KernelPhaseSet, dest string) error {
	if kp == nil {
		return core.NewConfigurationError("observation", "is unset")
	}
	if err := kp.Validate(); err != nil {
		return err
	}

	wb := excelize.NewFile()
	defer wb.Close()

	idx, err := wb.NewSheet(SheetName)
	if err != nil {
		return core.NewIOError(dest, err)
	}
	wb.SetActiveSheet(idx)
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return core.NewIOError(dest, err)
	}

	headers := []string{"Index", "KernelPhase", "Error"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return core.NewIOError(dest, err)
		}
		if err := wb.SetCellValue(SheetName, cell, h); err != nil {
			return core.NewIOError(dest, err)
		}
	}

	for i := 0; i < kp.Len(); i++ {
		row := i + 2
		if err := wb.SetCellValue(SheetName, fmt.Sprintf("A%d", row), i); err != nil {
			return core.NewIOError(dest, err)
		}
		if err := wb.SetCellValue(SheetName, fmt.Sprintf("B%d", row), kp.Values[i]); err != nil {
			return core.NewIOError(dest, err)
		}
		if err := wb.SetCellValue(SheetName, fmt.Sprintf("C%d", row), kp.Errors[i]); err != nil {
			return core.NewIOError(dest, err)
		}
	}

	if err := wb.SaveAs(dest); err != nil {
		return core.NewIOError(dest, err)
	}
	e.logger.Info("[ObservableExporter] exported %d kernel phases to %s", kp.Len(), dest)
	return nil
}
