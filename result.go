package komand

// Result is the outcome of one successful Parse call, a mapping from
// argument label to bound value. Value flags and positionals bind the
// token text as string, bare flags bind true. Results are read-only for
// callers.
type Result struct {
	order  []string
	values map[string]any
}

func newResult() *Result {
	return &Result{
		values: make(map[string]any),
	}
}

func (r *Result) set(label string, value any) {
	if _, ok := r.values[label]; !ok {
		r.order = append(r.order, label)
	}
	r.values[label] = value
}

// Get returns the raw value bound under label.
func (r *Result) Get(label string) (any, bool) {
	value, ok := r.values[label]
	return value, ok
}

// GetString returns the string bound under label. The second return is
// false when the label is absent or bound to a bare flag.
func (r *Result) GetString(label string) (string, bool) {
	value, ok := r.values[label].(string)
	return value, ok
}

// GetBool reports whether the bare flag labelled label was present.
func (r *Result) GetBool(label string) bool {
	value, _ := r.values[label].(bool)
	return value
}

// Has reports whether any value is bound under label.
func (r *Result) Has(label string) bool {
	_, ok := r.values[label]
	return ok
}

// Labels returns the bound labels in binding order.
func (r *Result) Labels() []string {
	return append([]string(nil), r.order...)
}

// Values returns a copy of all bound values keyed by label.
func (r *Result) Values() map[string]any {
	values := make(map[string]any, len(r.values))
	for label, value := range r.values {
		values[label] = value
	}
	return values
}
