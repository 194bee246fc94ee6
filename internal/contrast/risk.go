package contrast

// RiskLevel grades how dangerous an insufficient contrast pairing is in a
// clinical interface. Alert colors that users can miss are treated as a
// patient-safety issue, not just an accessibility one.
type RiskLevel int

const (
	RiskNone RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "HIGH"
	case RiskMedium:
		return "MEDIUM"
	case RiskLow:
		return "LOW"
	default:
		return "NONE"
	}
}

// Risk pairs a graded level with a human-readable rationale.
type Risk struct {
	Level   RiskLevel
	Message string
}

// The LOW cutoff for alert colors sits above the AA minimum: 4.5 is legally
// sufficient but leaves no margin for poor displays in clinical settings.
const alertAdequateRatio = 5.0

// AssessRisk applies the clinical risk policy to a family/ratio pairing.
// The family is matched by name so audit tooling can grade colors that did
// not come from the resolver. Cutoffs are inclusive on the stricter side.
func AssessRisk(family string, ratio float64) Risk {
	switch family {
	case "error", "warning":
		switch {
		case ratio < ThresholdAA:
			return Risk{Level: RiskHigh, Message: "patient safety critical"}
		case ratio < alertAdequateRatio:
			return Risk{Level: RiskMedium, Message: "may miss alerts"}
		default:
			return Risk{Level: RiskLow, Message: "adequate for medical use"}
		}
	case "success":
		if ratio < ThresholdAA {
			return Risk{Level: RiskMedium, Message: "positive status unclear"}
		}
	}

	if ratio < ThresholdAA {
		return Risk{Level: RiskLow, Message: "general accessibility concern"}
	}
	return Risk{Level: RiskNone, Message: "acceptable contrast"}
}
