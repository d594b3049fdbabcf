package engine

// Triggers is the per-frame input source; each query is edge-triggered
type Triggers interface {
	AddRequested() bool
	ReportRequested() bool
}

// Reporter receives fire-and-forget labeled values
type Reporter interface {
	Emit(label string, value int64)
}

// Presenter presents the finished frame
type Presenter interface {
	Present()
}

// Cue is played after a bouncer is inserted
type Cue interface {
	Play()
}

type nopReporter struct{}

func (nopReporter) Emit(string, int64) {}

type nopPresenter struct{}

func (nopPresenter) Present() {}
