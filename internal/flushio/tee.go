package flushio

// Tee returns a WriteFlusher that copies every write to each of the given
// ones, in order; nil entries are skipped, and nested tees are flattened.
// Every writer sees every write, even after another fails; the first error
// encountered is returned.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return discardWriteFlusher
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	var first error
	for _, wf := range t {
		if _, err := wf.Write(p); err != nil && first == nil {
			first = err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(p), nil
}

func (t tee) Flush() error {
	var first error
	for _, wf := range t {
		if err := wf.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
