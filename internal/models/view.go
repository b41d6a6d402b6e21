package models

// ViewState identifies the active screen of the page session.
type ViewState string

const (
	ViewUpload         ViewState = "upload"
	ViewManage         ViewState = "manage"
	ViewJobMatcher     ViewState = "job-matcher"
	ViewJobDescription ViewState = "job-description" // legacy tab
	ViewFakeDetector   ViewState = "fake-detector"
)

// Valid reports whether v is one of the known screen tags.
func (v ViewState) Valid() bool {
	switch v {
	case ViewUpload, ViewManage, ViewJobMatcher, ViewJobDescription, ViewFakeDetector:
		return true
	}
	return false
}
