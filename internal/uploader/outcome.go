package uploader

// Outcome is the terminal result of one upload task: either a public
// URL or the error that stopped the task. Outcomes are independent of
// each other and arrive in completion order.
type Outcome struct {
	Path string
	URL  string
	Err  error
}

// Succeeded reports whether the task reached the finalized state.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}
