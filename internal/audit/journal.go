// Package audit implements the append-only audit journal shared by the
// station and the tallier.
//
// Records are pipe-delimited lines written to a day file
// <prefix>_YYYYMMDD.log under a configured directory. The file handle is
// acquired per write; durability is at OS-flush granularity.
package audit

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/urna/internal/filex"
)

// Record kinds. The line layout per kind is fixed:
//
//	RECEPCION|ballot_id|station_id|EXITOSO/FALLIDO
//	VERIFICACION|ballot_id|station_id|EXITOSO/FALLIDO
//	CONTABILIZACION|ballot_id|station_id|candidate_id
//	DUPLICADO|ballot_id|station_id
//	TRANSMISION|ballot_id|station_id|EXITOSO/FALLIDO
//	INTENTO_VOTO|station_id|masked_document|EXITOSO/FALLIDO
//	INTENTO_FRAUDE|station_id|masked_document|reason
const (
	KindReception    = "RECEPCION"
	KindVerification = "VERIFICACION"
	KindTabulation   = "CONTABILIZACION"
	KindDuplicate    = "DUPLICADO"
	KindTransmission = "TRANSMISION"
	KindVoteAttempt  = "INTENTO_VOTO"
	KindFraudAttempt = "INTENTO_FRAUDE"

	outcomeOK     = "EXITOSO"
	outcomeFailed = "FALLIDO"
)

// Journal writes structured audit records. Safe for concurrent use.
type Journal struct {
	dir    string
	prefix string

	mu  sync.Mutex
	now func() time.Time
}

// NewJournal ensures dir exists and returns a journal whose day files carry
// the given prefix.
func NewJournal(dir, prefix string) (*Journal, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("audit dir: %w", err)
	}
	return &Journal{dir: abs, prefix: prefix, now: time.Now}, nil
}

// FilePath returns the path of the current day file.
func (j *Journal) FilePath() string {
	name := fmt.Sprintf("%s_%s.log", j.prefix, j.now().Format("20060102"))
	return filepath.Join(j.dir, name)
}

func (j *Journal) append(fields ...string) error {
	line := fields[0]
	for _, f := range fields[1:] {
		line += "|" + f
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	return filex.AppendLine(j.FilePath(), line)
}

func outcome(ok bool) string {
	if ok {
		return outcomeOK
	}
	return outcomeFailed
}

// Reception records the outcome of a ballot arriving at the tallier.
func (j *Journal) Reception(ballotID, stationID string, ok bool) error {
	return j.append(KindReception, ballotID, stationID, outcome(ok))
}

// Verification records the outcome of a signature check.
func (j *Journal) Verification(ballotID, stationID string, ok bool) error {
	return j.append(KindVerification, ballotID, stationID, outcome(ok))
}

// Tabulation records a counted ballot.
func (j *Journal) Tabulation(ballotID, stationID, candidateID string) error {
	return j.append(KindTabulation, ballotID, stationID, candidateID)
}

// Duplicate records a replayed ballot id.
func (j *Journal) Duplicate(ballotID, stationID string) error {
	return j.append(KindDuplicate, ballotID, stationID)
}

// Transmission records the outcome of a station-side transmit attempt.
func (j *Journal) Transmission(ballotID, stationID string, ok bool) error {
	return j.append(KindTransmission, ballotID, stationID, outcome(ok))
}

// VoteAttempt records a voter presenting at a station. The document is
// masked before it reaches the journal.
func (j *Journal) VoteAttempt(stationID, document string, ok bool) error {
	return j.append(KindVoteAttempt, stationID, MaskDocument(document), outcome(ok))
}

// FraudAttempt records a rejected voter with the rejection reason.
func (j *Journal) FraudAttempt(stationID, document, reason string) error {
	return j.append(KindFraudAttempt, stationID, MaskDocument(document), reason)
}

// MaskDocument hides all but the last four characters of a voter document.
func MaskDocument(document string) string {
	start := len(document) - 4
	if start < 0 {
		start = 0
	}
	return "XXXX" + document[start:]
}
