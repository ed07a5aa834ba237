package ingest

import (
    "encoding/csv"
    "os"

    "github.com/rs/zerolog"

    "github.com/HamedShams/sprint-lens/internal/apperrors"
)

// Raw is an unvalidated CSV snapshot: the header row plus data rows, padded
// to header width. Duplicate header names (several "Sprint" columns) are kept.
type Raw struct {
    Headers []string
    Rows    [][]string
}

// Load reads the CSV at path. Failures come back as tagged apperrors; no
// partial Raw is ever returned alongside an error.
func Load(path string, log zerolog.Logger) (*Raw, error) {
    f, err := os.Open(path)
    if err != nil {
        if os.IsNotExist(err) {
            return nil, apperrors.New(apperrors.ErrFileNotFound, "data file not found: %s", path)
        }
        return nil, apperrors.New(apperrors.ErrFileNotFound, "cannot open %s: %v", path, err)
    }
    defer f.Close()

    r := csv.NewReader(f)
    r.FieldsPerRecord = -1
    recs, err := r.ReadAll()
    if err != nil {
        log.Error().Err(err).Str("file", path).Msg("csv read failed")
        return nil, apperrors.New(apperrors.ErrEmptyDataset, "unreadable csv %s: %v", path, err)
    }
    if len(recs) < 2 {
        return nil, apperrors.New(apperrors.ErrEmptyDataset, "empty dataset loaded from %s", path)
    }

    headers := recs[0]
    rows := make([][]string, 0, len(recs)-1)
    for _, rec := range recs[1:] {
        if len(rec) < len(headers) {
            padded := make([]string, len(headers))
            copy(padded, rec)
            rec = padded
        }
        rows = append(rows, rec[:len(headers)])
    }
    log.Info().Str("file", path).Int("rows", len(rows)).Int("columns", len(headers)).Msg("csv loaded")
    return &Raw{Headers: headers, Rows: rows}, nil
}
