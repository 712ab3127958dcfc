package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QualityTier is an ordered cargo quality grade. The zero value is Poor.
type QualityTier int

const (
	QualityPoor QualityTier = iota
	QualityCommon
	QualityAverage
	QualityHigh
	QualityExceptional
)

var qualityNames = []string{"Poor", "Common", "Average", "High", "Exceptional"}

// String returns the tier name
func (q QualityTier) String() string {
	if q < QualityPoor || int(q) >= len(qualityNames) {
		return "Unknown"
	}
	return qualityNames[q]
}

// Downgrade moves the tier down by steps, stopping at Poor.
func (q QualityTier) Downgrade(steps int) QualityTier {
	if steps <= 0 {
		return q
	}
	next := int(q) - steps
	if next < int(QualityPoor) {
		return QualityPoor
	}
	return QualityTier(next)
}

// MarshalJSON renders the tier by name
func (q QualityTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}

// UnmarshalJSON accepts a tier name
func (q *QualityTier) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	tier, err := ParseQualityTier(name)
	if err != nil {
		return err
	}
	*q = tier
	return nil
}

// ParseQualityTier parses a tier name in any casing
func ParseQualityTier(name string) (QualityTier, error) {
	for i, n := range qualityNames {
		if strings.EqualFold(n, name) {
			return QualityTier(i), nil
		}
	}
	return QualityPoor, fmt.Errorf("unknown quality tier %q", name)
}
