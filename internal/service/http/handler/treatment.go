package handler

// Treatment plans are fixed per severity band so a record always reads
// the same on revisit. The bands follow the contamination scale: up to
// 33 mild, up to 66 moderate, above that severe.
var (
	mildTreatment = []string{
		"Two weeks of gritty documentary photography, twice daily",
		"Replace all forest spirits with municipal park signage",
		"Reduce wonder intake to clinically acceptable levels",
	}
	moderateTreatment = []string{
		"Immediate course of brutalist architecture viewing",
		"Mandatory exposure to fluorescent office lighting, 40 hours weekly",
		"All flying machines grounded pending FAA inspection",
	}
	severeTreatment = []string{
		"Emergency realism transfusion, administered without anesthesia",
		"Complete quarantine from hand-painted skies and rolling meadows",
		"Patient must commute by regular bus, not one shaped like a cat",
	}
)

func treatmentPlan(contaminationLevel int) []string {
	switch {
	case contaminationLevel <= 33:
		return mildTreatment
	case contaminationLevel <= 66:
		return moderateTreatment
	default:
		return severeTreatment
	}
}
