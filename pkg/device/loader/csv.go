package loader

import (
	"encoding/csv"
	"errors"
	"io"

	"spreadcal/entities"
)

func ReadCSV(r io.Reader, source string) ([]entities.Device, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return fromGrid(head, rows, source)
}
