// Package stats provides opt-in, out-of-the-hot-path progress reporting for
// an rlnc.Decoder, the way xtaci/kcptun's std/snmp.go periodically dumps KCP
// connection counters to a CSV file: neither is on any latency-critical
// path, both tick on a time.Ticker and log.Println on I/O failure rather
// than returning an error no caller is positioned to handle.
package stats

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Source is the subset of *rlnc.Decoder this package reports on. Defined as
// an interface so this package does not import rlnc and create a dependency
// cycle with any future rlnc-side consumer of stats.
type Source interface {
	ReceivedPieceCount() int
	UsefulPieceCount() int
	RequiredPieceCount() int
	IsDecoded() bool
}

// Snapshot is one row of decoder progress.
type Snapshot struct {
	Unix                int64
	ReceivedPieceCount  int
	UsefulPieceCount    int
	RequiredPieceCount  int
	IsDecoded           bool
}

func (s Snapshot) header() []string {
	return []string{"Unix", "ReceivedPieceCount", "UsefulPieceCount", "RequiredPieceCount", "IsDecoded"}
}

func (s Snapshot) row() []string {
	return []string{
		fmt.Sprint(s.Unix),
		fmt.Sprint(s.ReceivedPieceCount),
		fmt.Sprint(s.UsefulPieceCount),
		fmt.Sprint(s.RequiredPieceCount),
		fmt.Sprint(s.IsDecoded),
	}
}

// Take captures the current state of src.
func Take(src Source) Snapshot {
	return Snapshot{
		Unix:               time.Now().Unix(),
		ReceivedPieceCount: src.ReceivedPieceCount(),
		UsefulPieceCount:   src.UsefulPieceCount(),
		RequiredPieceCount: src.RequiredPieceCount(),
		IsDecoded:          src.IsDecoded(),
	}
}

// Logger periodically appends a Decoder's progress to a CSV file named by
// formatting path through time.Format (the directory portion of path is
// left untouched; only the filename is treated as a strftime-style
// pattern), exactly as std/snmp.go's SnmpLogger does for KCP counters. It
// stops once stop is closed or src reports IsDecoded.
func Logger(path string, interval time.Duration, src Source, stop <-chan struct{}) {
	if path == "" || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			writeRow(path, Take(src))
			if src.IsDecoded() {
				return
			}
		}
	}
}

func writeRow(path string, snap Snapshot) {
	logDir, logFile := filepath.Split(path)
	f, err := os.OpenFile(logDir+time.Now().Format(logFile), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write(snap.header()); err != nil {
			log.Println(err)
		}
	}
	if err := w.Write(snap.row()); err != nil {
		log.Println(err)
	}
	w.Flush()
}
