package render

// Headline extracts the subject and summary lines common to every document
// shape, for status lines and history listings.
func Headline(doc Document) (subject, summary string) {
	switch d := doc.(type) {
	case MissionBrief:
		return d.Subject, d.Summary
	case VelocityReport:
		return d.Headline, d.Summary
	case ConsultingReport:
		return d.Subject, d.Summary
	case Newsletter:
		return d.Subject, d.Summary
	default:
		return "", ""
	}
}
