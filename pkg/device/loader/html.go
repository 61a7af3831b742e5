package loader

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"spreadcal/entities"
)

// ReadHTML reads the first <table> on a page whose header row has a rate
// column, the way manufacturers publish spreader settings charts online.
func ReadHTML(r io.Reader, source string) ([]entities.Device, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var (
		out   []entities.Device
		found bool
		gerr  error
	)
	doc.Find("table").EachWithBreak(func(_ int, tbl *goquery.Selection) bool {
		var grid [][]string
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var rec []string
			tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
				rec = append(rec, strings.Join(strings.Fields(cell.Text()), " "))
			})
			if len(rec) > 0 {
				grid = append(grid, rec)
			}
		})
		if len(grid) == 0 || rateColumn(grid[0]) == -1 {
			return true
		}
		found = true
		out, gerr = fromGrid(grid[0], grid[1:], source)
		return false
	})
	if !found {
		return nil, errors.New("no calibration table found on page")
	}
	return out, gerr
}
