package language_detector_port

// LanguageDetector returns an ISO 639-1 code for text.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}
