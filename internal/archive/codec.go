package archive

import (
	"encoding/json"
	"errors"

	"mendel/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRun(run model.RunRecord) ([]byte, error) {
	return json.Marshal(run)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeFitnessHistory(history []float64) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeFitnessHistory(data []byte) ([]float64, error) {
	var history []float64
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeDiagnostics(diagnostics []model.GenerationDiagnostics) ([]byte, error) {
	return json.Marshal(diagnostics)
}

func DecodeDiagnostics(data []byte) ([]model.GenerationDiagnostics, error) {
	var diagnostics []model.GenerationDiagnostics
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, err
	}
	return diagnostics, nil
}

func EncodeHallOfFame(entries []model.HallOfFameEntry) ([]byte, error) {
	return json.Marshal(entries)
}

func DecodeHallOfFame(data []byte) ([]model.HallOfFameEntry, error) {
	var entries []model.HallOfFameEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
