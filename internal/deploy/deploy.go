// Package deploy defines the bounded, typed outcome of a deployment attempt.
// Provider errors never escape as errors; they are converted to a Failed
// outcome so a broken or slow provider can only ever degrade the deployment
// field of an otherwise successful generation.
package deploy

// Status is the terminal state of a deployment attempt.
type Status string

const (
	// StatusNotAttempted means no deployment credential was configured.
	// This is a valid outcome, not a degraded one.
	StatusNotAttempted Status = "not_attempted"
	StatusDeployed     Status = "deployed"
	StatusFailed       Status = "failed"
)

// Outcome is the result of at most one deployment attempt.
type Outcome struct {
	Status Status
	URL    string // public URL, set only when Status is StatusDeployed
	Reason string // failure reason, set only when Status is StatusFailed
}

// NotAttempted returns the outcome used when deployment is not configured.
func NotAttempted() Outcome {
	return Outcome{Status: StatusNotAttempted}
}

// Deployed returns a successful outcome carrying the live URL.
func Deployed(url string) Outcome {
	return Outcome{Status: StatusDeployed, URL: url}
}

// Failed returns a failed outcome carrying the reason.
func Failed(reason string) Outcome {
	return Outcome{Status: StatusFailed, Reason: reason}
}
