package util

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/models"
	"github.com/aip-otel-exporter/aip-otel-exporter/pkg/recorder"
)

type Kind string

const (
	KindIntegrity    Kind = "integrity"
	KindVerification Kind = "verification"
	KindCoherence    Kind = "coherence"
	KindDrift        Kind = "drift"
)

var AllKinds = []Kind{KindIntegrity, KindVerification, KindCoherence, KindDrift}

func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(s))
	for _, k := range AllKinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", errors.Errorf("unknown record kind %q: must be one of integrity, verification, coherence, drift", s)
}

// DriftInput is the file shape of a drift detection run. A bare list of alerts is also accepted.
type DriftInput struct {
	Alerts         []models.DriftAlert `json:"alerts"`
	TracesAnalyzed *int64              `json:"traces_analyzed,omitempty"`
}

// Input holds exactly one decoded record, selected by Kind.
type Input struct {
	Kind         Kind
	Integrity    *models.IntegritySignal
	Verification *models.VerificationResult
	Coherence    *models.CoherenceResult
	Drift        *DriftInput
}

// ReadInput decodes a JSON or YAML record from path. A path of "-" reads from stdin.
func ReadInput(kind Kind, path string, stdin io.Reader) (*Input, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s input", kind)
	}
	return DecodeInput(kind, raw)
}

func DecodeInput(kind Kind, raw []byte) (*Input, error) {
	data, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s input", kind)
	}

	in := &Input{Kind: kind}
	switch kind {
	case KindIntegrity:
		in.Integrity = &models.IntegritySignal{}
		err = json.Unmarshal(data, in.Integrity)
	case KindVerification:
		in.Verification = &models.VerificationResult{}
		err = json.Unmarshal(data, in.Verification)
	case KindCoherence:
		in.Coherence = &models.CoherenceResult{}
		err = json.Unmarshal(data, in.Coherence)
	case KindDrift:
		in.Drift = &DriftInput{}
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
			err = json.Unmarshal(data, &in.Drift.Alerts)
		} else {
			err = json.Unmarshal(data, in.Drift)
		}
	default:
		return nil, errors.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s input", kind)
	}
	return in, nil
}

// SpanSpec maps the decoded record to its span.
func (in *Input) SpanSpec() recorder.SpanSpec {
	switch in.Kind {
	case KindIntegrity:
		return recorder.IntegrityCheck(in.Integrity)
	case KindVerification:
		return recorder.Verification(in.Verification)
	case KindCoherence:
		return recorder.Coherence(in.Coherence)
	default:
		return recorder.Drift(in.Drift.Alerts, in.Drift.TracesAnalyzed)
	}
}
