package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func toCP949(t *testing.T, s string) []byte {
	t.Helper()
	b, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return b
}

func fromCP949(t *testing.T, b []byte) string {
	t.Helper()
	s, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), b)
	require.NoError(t, err)
	return string(s)
}

func TestExport(t *testing.T) {
	games := []records.Game{
		{
			ID: 1, CreatedAt: "2025-11-19T05:30",
			Player1Name: "김철수", Player1Score: 45000,
			Player2Name: "Bob", Player2Score: 25000,
			Player3Name: "Carol", Player3Score: 20000,
			Player4Name: "Dan", Player4Score: 10000,
		},
		{
			ID: 2, CreatedAt: "2025-11-19T06:00",
			Player1Name: "A", Player1Score: 30050,
			Player2Name: "B", Player2Score: 29950,
			Player3Name: "C", Player3Score: 20000,
			Player4Name: "D", Player4Score: 20000,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, games))

	out := fromCP949(t, buf.Bytes())
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,시간,P1 이름,P1 점수,P1 pt,P2 이름,P2 점수,P2 pt,P3 이름,P3 점수,P3 pt,P4 이름,P4 점수,P4 pt", lines[0])
	assert.Equal(t, "1,2025-11-19T05:30,김철수,45000,65.0,Bob,25000,5.0,Carol,20000,-20.0,Dan,10000,-50.0", lines[1])
	assert.Equal(t, "2,2025-11-19T06:00,A,30050,50.1,B,29950,10.0,C,20000,-20.0,D,20000,-40.0", lines[2])
}

func TestExport_ReplacesUnsupported(t *testing.T) {
	games := []records.Game{{
		ID: 1, CreatedAt: "x",
		Player1Name: "🀄", Player1Score: 25000,
		Player2Name: "B", Player2Score: 25000,
		Player3Name: "C", Player3Score: 25000,
		Player4Name: "D", Player4Score: 25000,
	}}
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, games))
	assert.NotContains(t, fromCP949(t, buf.Bytes()), "🀄")
}

func TestImport_ExportRoundTrip(t *testing.T) {
	in := []records.Game{{
		ID: 9, CreatedAt: "2025-11-19T05:30",
		Player1Name: "김철수", Player1Score: 45000,
		Player2Name: "Bob", Player2Score: 25000,
		Player3Name: "Carol", Player3Score: 20000,
		Player4Name: "Dan", Player4Score: 10000,
	}}
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, in))

	games, err := Import(&buf)
	require.NoError(t, err)
	require.Len(t, games, 1)
	want := in[0]
	want.ID = 0
	assert.Equal(t, want, games[0])
}

func TestImport(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []records.Game
	}{
		{
			name: "english headers",
			input: []byte("created_at,player1_name,player2_name,player3_name,player4_name,player1_score,player2_score,player3_score,player4_score\n" +
				"2025-01-01T10:00,A,B,C,D,40000,30000,20000,10000\n"),
			want: []records.Game{{
				CreatedAt:   "2025-01-01T10:00",
				Player1Name: "A", Player2Name: "B", Player3Name: "C", Player4Name: "D",
				Player1Score: 40000, Player2Score: 30000, Player3Score: 20000, Player4Score: 10000,
			}},
		},
		{
			name:  "utf-8 bom, semicolons, compact korean headers",
			input: []byte("\xef\xbb\xbf시간;P1이름;P1점수;P2이름;P2점수;P3이름;P3점수;P4이름;P4점수\n;가;25000.9;나;abc;다;;라;-5000\n"),
			want: []records.Game{{
				Player1Name: "가", Player2Name: "나", Player3Name: "다", Player4Name: "라",
				Player1Score: 25000, Player2Score: 0, Player3Score: 0, Player4Score: -5000,
			}},
		},
		{
			name: "rows without names are skipped",
			input: []byte("P1 이름,P1 점수,P2 이름,P2 점수,P3 이름,P3 점수,P4 이름,P4 점수\n" +
				",1,,2,,3,,4\n" +
				",,Solo,100,,,,\n"),
			want: []records.Game{{
				Player2Name: "Solo", Player2Score: 100,
			}},
		},
		{
			name: "out-of-range scores count as zero",
			input: []byte("player1_name,player1_score,player2_name,player2_score,player3_name,player3_score,player4_name,player4_score\n" +
				"A,1e20,B,-99999999999,C,2147483647,D,-2147483647\n"),
			want: []records.Game{{
				Player1Name: "A", Player2Name: "B", Player3Name: "C", Player4Name: "D",
				Player1Score: 0, Player2Score: 0, Player3Score: 2147483647, Player4Score: -2147483647,
			}},
		},
		{
			name:  "short rows",
			input: []byte("player1_name,player1_score,player2_name\nA,100\n"),
			want:  []records.Game{{Player1Name: "A", Player1Score: 100}},
		},
		{
			name:  "empty file",
			input: []byte(""),
			want:  []records.Game{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := Import(bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, games)
		})
	}
}

func TestImport_CP949(t *testing.T) {
	raw := toCP949(t, "ID,시간,P1 이름,P1 점수,P1 pt,P2 이름,P2 점수,P2 pt,P3 이름,P3 점수,P3 pt,P4 이름,P4 점수,P4 pt\r\n"+
		"1,2025-11-19T05:30,김철수,45000,65.0,이영희,25000,5.0,박민수,20000,-20.0,최지우,10000,-50.0\r\n")

	games, err := Import(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "김철수", games[0].Player1Name)
	assert.Equal(t, "최지우", games[0].Player4Name)
	assert.Equal(t, 45000, games[0].Player1Score)
}

func TestDecode_Unknown(t *testing.T) {
	_, err := Decode([]byte{0xff, 0xff, 0xff})
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ',', SniffDelimiter("a,b,c\n1,2,3"))
	assert.Equal(t, ';', SniffDelimiter("a;b;c\n1;2,5;3"))
	assert.Equal(t, ',', SniffDelimiter(""))
}
