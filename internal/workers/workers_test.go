package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingWorker struct {
	log  *[]string
	name string
}

func (w *recordingWorker) Run() {
	*w.log = append(*w.log, "run:"+w.name)
}

func (w *recordingWorker) Stop() {
	*w.log = append(*w.log, "stop:"+w.name)
}

type runOnlyWorker struct {
	ran bool
}

func (w *runOnlyWorker) Run() { w.ran = true }

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var log []string
	w := &Workers{workers: []Worker{
		&recordingWorker{log: &log, name: "first"},
		&recordingWorker{log: &log, name: "second"},
	}}

	w.Run()
	w.Stop()

	assert.Equal(t, []string{"run:first", "run:second", "stop:second", "stop:first"}, log)
}

func TestWorkers_StopSkipsUnstoppable(t *testing.T) {
	var log []string
	plain := &runOnlyWorker{}
	w := &Workers{workers: []Worker{
		plain,
		&recordingWorker{log: &log, name: "stoppable"},
	}}

	w.Run()
	w.Stop()

	assert.True(t, plain.ran)
	assert.Equal(t, []string{"run:stoppable", "stop:stoppable"}, log)
}

type stubSyncJob struct {
	started  bool
	stopped  bool
	interval time.Duration
}

func (j *stubSyncJob) Start(_ context.Context, interval time.Duration) {
	j.started = true
	j.interval = interval
}

func (j *stubSyncJob) Stop() { j.stopped = true }

func TestSyncWorker_DelegatesToJob(t *testing.T) {
	job := &stubSyncJob{}
	w := &syncWorker{ctx: context.Background(), job: job, interval: time.Minute}

	w.Run()
	assert.True(t, job.started)
	assert.Equal(t, time.Minute, job.interval)

	w.Stop()
	assert.True(t, job.stopped)
}
