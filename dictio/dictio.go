// Package dictio loads the tab-separated dictionary resources described in
// the external interface contract (word, pos, pos2, phoneme, and an
// optional spoken/writing frequency pair) into morphdict.Entry values.
package dictio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/yiunsr/hinsaem/morphdict"
)

// ErrMissingResource is wrapped into the error returned by LoadTSV when the
// dictionary file itself cannot be opened. Unlike a malformed row, this is
// always fatal: an engine cannot be built from a partially-missing resource
// set.
var ErrMissingResource = errors.New("dictio: missing dictionary resource")

const (
	colWord = iota
	colPos
	colPos2
	colPhoneme
	colSpoken
	colWriting
)

// LoadTSV reads the tab-separated dictionary at path. Rows with fewer than
// the two required columns (word, pos) are logged at Warn via logger and
// skipped rather than aborting the load; logger may be nil, in which case
// a discard logger is used. A missing or unreadable file is fatal and
// returns an error wrapping ErrMissingResource.
func LoadTSV(path string, logger logrus.FieldLogger) ([]morphdict.Entry, error) {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingResource, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var entries []morphdict.Entry
	lineNo := 0
	for {
		rec, err := r.Read()
		lineNo++
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.WithFields(logrus.Fields{"path": path, "line": lineNo}).
				Warnf("dictio: skipping malformed row: %v", err)
			continue
		}
		entry, ok := parseRow(rec)
		if !ok {
			logger.WithFields(logrus.Fields{"path": path, "line": lineNo}).
				Warn("dictio: skipping row with missing required columns")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseRow(rec []string) (morphdict.Entry, bool) {
	if len(rec) <= colPos || rec[colWord] == "" || rec[colPos] == "" {
		return morphdict.Entry{}, false
	}
	e := morphdict.Entry{Word: rec[colWord], Pos: rec[colPos]}
	if len(rec) > colPos2 {
		e.Pos2 = rec[colPos2]
	}
	if len(rec) > colPhoneme {
		e.Phoneme = rec[colPhoneme]
	}
	if len(rec) > colWriting {
		spoken, errS := strconv.ParseFloat(rec[colSpoken], 64)
		writing, errW := strconv.ParseFloat(rec[colWriting], 64)
		if errS == nil && errW == nil {
			e.Spoken, e.Writing, e.HasFreq = spoken, writing, true
		}
	}
	return e, true
}
