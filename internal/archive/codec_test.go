package archive

import (
	"errors"
	"testing"

	"mendel/internal/model"
)

func TestRunCodecRoundTrip(t *testing.T) {
	input := testRunRecord("run-1", "2026-08-24T10:00:00Z")

	data, err := EncodeRun(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeRun(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if output.RunID != input.RunID || output.BestFitness != input.BestFitness {
		t.Fatalf("unexpected decode: %+v", output)
	}
}

func TestDecodeRunVersionMismatch(t *testing.T) {
	run := testRunRecord("run-1", "2026-08-24T10:00:00Z")
	run.SchemaVersion = CurrentSchemaVersion + 1

	data, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRun(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestDecodeRunInvalidJSON(t *testing.T) {
	if _, err := DecodeRun([]byte("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestHallOfFameCodecRoundTrip(t *testing.T) {
	input := []model.HallOfFameEntry{
		{Rank: 1, Fitness: -0.01, Generation: 42, Genome: "355/113 = 3.14159"},
		{Rank: 2, Fitness: -0.05, Generation: 40, Genome: "22/7 = 3.14285"},
	}

	data, err := EncodeHallOfFame(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeHallOfFame(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(output) != 2 || output[0].Genome != input[0].Genome {
		t.Fatalf("unexpected decode: %+v", output)
	}
}
