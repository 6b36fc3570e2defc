package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/mahjong-rating/internal/csvio"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/records"
)

// maxUploadBytes bounds CSV uploads.
const maxUploadBytes = 10 << 20

const importForm = `<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <title>개인전 CSV 업로드</title>
</head>
<body>
  <h1>개인전 CSV 업로드</h1>
  <p>/export 에서 받은 파일이나 ID / 시간 / P1 이름 / P1 점수 / ... 형식의 파일을 모두 인식합니다.</p>
  <form method="post" enctype="multipart/form-data">
    <p><input type="file" name="file" accept=".csv" required></p>
    <p><button type="submit">업로드</button></p>
  </form>
</body>
</html>
`

// ExportHandler downloads all games, oldest first, as CP949 CSV.
func ExportHandler(store records.Store, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := store.ListGames(r.Context())
		if err != nil {
			writeStoreError(w, err, "list games")
			return
		}
		slices.Reverse(games)

		w.Header().Set("Content-Type", csvio.ExportContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", csvio.ExportFilename))
		if err := csvio.Export(w, games); err != nil {
			log.Error("Failed to export games", "error", err)
			return
		}
		counters.Increment(metrics.KeyCSVExports)
		log.Info("Exported games", "count", len(games))
	}
}

func ImportFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, importForm)
	}
}

// ImportHandler stores the games of an uploaded CSV and redirects home.
func ImportHandler(store records.Store, m metrics.Metrics, counters metrics.MetricsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "파일이 없습니다.", http.StatusBadRequest)
			return
		}
		defer file.Close()

		games, err := csvio.Import(file)
		if errors.Is(err, csvio.ErrUnknownEncoding) {
			http.Error(w, "알 수 없는 인코딩입니다. UTF-8 또는 CP949로 저장해주세요.", http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Error("Failed to parse CSV upload", "error", err)
			http.Error(w, "CSV 형식이 올바르지 않습니다.", http.StatusBadRequest)
			return
		}

		n, err := store.CreateGames(r.Context(), games)
		if err != nil {
			log.Error("Failed to store imported games", "error", err)
			http.Error(w, "Failed to store games", http.StatusInternalServerError)
			return
		}
		m.AddRowsImported(n)
		counters.Add(metrics.KeyRowsImported, n)
		log.Info("Imported games from CSV", "inserted", n)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
