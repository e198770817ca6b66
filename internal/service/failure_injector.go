// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/upload-sink/models"

// Decision is the verdict of the [FailureInjector] for one chunk.
type Decision int

const (
	DecisionContinue Decision = iota
	DecisionAbort
)

func (d Decision) String() string {
	if d == DecisionAbort {
		return "abort"
	}
	return "continue"
}

// FailureInjector decides whether an upload must be aborted to exercise the
// client's retry logic. It is a pure value; the same injector is shared by
// every session.
type FailureInjector struct {
	threshold float64
}

// NewFailureInjector returns an injector tripping once received/declared
// strictly exceeds threshold.
func NewFailureInjector(threshold float64) FailureInjector {
	return FailureInjector{threshold: threshold}
}

// Threshold returns the configured ratio.
func (f FailureInjector) Threshold() float64 {
	return f.threshold
}

// Decide returns [DecisionAbort] exactly when shouldFail is set, the ratio
// is known and ratio > threshold. An unknown ratio never aborts.
func (f FailureInjector) Decide(shouldFail bool, ratio float64, known bool) Decision {
	if shouldFail && known && ratio > f.threshold {
		return DecisionAbort
	}
	return DecisionContinue
}

// DecideFor evaluates the current progress of session.
func (f FailureInjector) DecideFor(session *models.UploadSession) Decision {
	ratio, known := session.ProgressRatio()
	return f.Decide(session.ShouldFail, ratio, known)
}
