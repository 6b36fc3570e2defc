package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mauv0809/mahjong-rating/internal/records"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
)

// Export writes games as CP949 CSV, one row per game in the order given.
// Characters CP949 cannot represent are replaced.
func Export(w io.Writer, games []records.Game) error {
	enc := encoding.ReplaceUnsupported(korean.EUCKR.NewEncoder())
	ew := enc.Writer(w)

	cw := csv.NewWriter(ew)
	cw.UseCRLF = true
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, g := range games {
		p, err := g.Record().Place()
		if err != nil {
			return fmt.Errorf("game %d: %w", g.ID, err)
		}
		names, scores := g.Names(), g.Scores()
		row := make([]string, 0, len(exportHeader))
		row = append(row, strconv.FormatInt(g.ID, 10), g.CreatedAt)
		for i := range names {
			row = append(row, names[i], strconv.Itoa(scores[i]), fmt.Sprintf("%.1f", p.Points[i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
