package csvio

import "errors"

// ErrUnknownEncoding is returned when an upload is neither UTF-8 nor CP949.
var ErrUnknownEncoding = errors.New("unknown encoding, save the file as UTF-8 or CP949")

// ExportFilename is the attachment name used for downloads.
const ExportFilename = "madang_majhong_rating.csv"

// ExportContentType is the MIME type of the export.
const ExportContentType = "text/csv; charset=cp949"

// exportHeader is the column layout of the export. The import reads it back.
var exportHeader = []string{
	"ID", "시간",
	"P1 이름", "P1 점수", "P1 pt",
	"P2 이름", "P2 점수", "P2 pt",
	"P3 이름", "P3 점수", "P3 pt",
	"P4 이름", "P4 점수", "P4 pt",
}

// Header aliases accepted on import, first match wins.
var (
	createdAtKeys = []string{"created_at", "시간"}
	nameKeys      = [4][]string{
		{"player1_name", "P1 이름", "P1이름"},
		{"player2_name", "P2 이름", "P2이름"},
		{"player3_name", "P3 이름", "P3이름"},
		{"player4_name", "P4 이름", "P4이름"},
	}
	scoreKeys = [4][]string{
		{"player1_score", "P1 점수", "P1점수"},
		{"player2_score", "P2 점수", "P2점수"},
		{"player3_score", "P3 점수", "P3점수"},
		{"player4_score", "P4 점수", "P4점수"},
	}
)
