package csvio

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/scoring"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// sniffLines is how many leading lines are inspected to pick the delimiter.
const sniffLines = 5

var utf8BOM = []byte("\xef\xbb\xbf")

// Decode converts raw upload bytes to UTF-8. It tries UTF-8 with a BOM,
// plain UTF-8 and finally CP949.
func Decode(raw []byte) (string, error) {
	body := bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(body) {
		return string(body), nil
	}
	text, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), raw)
	if err != nil || bytes.ContainsRune(text, utf8.RuneError) {
		return "", ErrUnknownEncoding
	}
	return string(text), nil
}

// SniffDelimiter picks ';' when the leading lines use it more than ','.
func SniffDelimiter(text string) rune {
	lines := strings.SplitN(text, "\n", sniffLines+1)
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}
	sample := strings.Join(lines, "\n")
	if strings.Count(sample, ";") > strings.Count(sample, ",") {
		return ';'
	}
	return ','
}

// Import parses an uploaded CSV into games. Both the export layout and
// the raw column names are understood. Rows without any player name are
// skipped, missing or invalid scores become 0, and a missing time is left
// blank for the store to fill in.
func Import(r io.Reader) ([]records.Game, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = SniffDelimiter(text)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return []records.Game{}, nil
	}
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	games := []records.Game{}
	rowNum := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rowNum++

		row := fields{index: index, values: rec}
		var names [4]string
		var scores [4]int
		empty := true
		for i := range names {
			names[i] = row.pick(nameKeys[i])
			scores[i] = row.pickInt(scoreKeys[i])
			if names[i] != "" {
				empty = false
			}
		}
		if empty {
			log.Debug("Skipping CSV row without names", "row", rowNum)
			continue
		}
		games = append(games, records.Game{
			CreatedAt:    row.pick(createdAtKeys),
			Player1Name:  names[0],
			Player2Name:  names[1],
			Player3Name:  names[2],
			Player4Name:  names[3],
			Player1Score: scores[0],
			Player2Score: scores[1],
			Player3Score: scores[2],
			Player4Score: scores[3],
		})
	}
	log.Info("Parsed CSV upload", "games", len(games), "delimiter", string(cr.Comma))
	return games, nil
}

// fields looks up a record's values by header name.
type fields struct {
	index  map[string]int
	values []string
}

func (f fields) pick(keys []string) string {
	for _, k := range keys {
		i, ok := f.index[k]
		if !ok || i >= len(f.values) {
			continue
		}
		if v := f.values[i]; v != "" {
			return v
		}
	}
	return ""
}

// pickInt parses a score, accepting decimals and truncating toward zero.
// Unparsable or out-of-range scores count as 0.
func (f fields) pickInt(keys []string) int {
	v := strings.TrimSpace(f.pick(keys))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.Abs(n) > scoring.MaxScore {
		return 0
	}
	return int(n)
}
