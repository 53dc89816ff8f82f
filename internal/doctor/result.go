package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of a check report.
type Result struct {
	CheckName      string
	Status         Status
	Message        string
	Recommendation string
}

// HasFailure reports whether any result failed. Warnings do not count.
func HasFailure(results []Result) bool {
	return hasStatus(results, StatusFail)
}

// HasWarning reports whether any result warned.
func HasWarning(results []Result) bool {
	return hasStatus(results, StatusWarn)
}

func hasStatus(results []Result, status Status) bool {
	for _, r := range results {
		if r.Status == status {
			return true
		}
	}
	return false
}
