package loader

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"spreadcal/entities"
)

// ReadXLSX reads the wide chart from the first sheet of a workbook.
func ReadXLSX(r io.Reader, source string) ([]entities.Device, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("first sheet is empty")
	}
	return fromGrid(rows[0], rows[1:], source)
}
