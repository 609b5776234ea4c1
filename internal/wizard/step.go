package wizard

// Step шаг мастера бронирования
type Step int

const (
	StepSelectingDateTime Step = iota
	StepEnteringDetails
	StepReviewingSummary
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepSelectingDateTime:
		return "selecting_date_time"
	case StepEnteringDetails:
		return "entering_details"
	case StepReviewingSummary:
		return "reviewing_summary"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// IsValid true для известных шагов
func (s Step) IsValid() bool {
	return s >= StepSelectingDateTime && s <= StepSubmitted
}
