package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrosuivi/farmdesk/constants"
	"github.com/agrosuivi/farmdesk/internal/entity"
	"github.com/agrosuivi/farmdesk/internal/extract"
	"github.com/agrosuivi/farmdesk/internal/extract/assess"
	"github.com/agrosuivi/farmdesk/internal/hybrid"
)

func TestRunnerProcessesQueuedJobs(t *testing.T) {
	store := newMemStore()
	proc := &stubProcessor{
		res: hybrid.Result{
			Fields:     extract.ResultSet{},
			Assessment: assess.Assessment{TotalFields: len(extract.SchemaFields)},
		},
	}
	var done atomic.Int32
	mgr := NewManager(store, &memResults{}, &stubFetcher{size: 1, text: "doc"}, proc, testConfig(), hybrid.Options{}, testLogger(),
		WithCompletionHook(func(entity.ProcessingJob) { done.Add(1) }))

	runner := NewRunner(mgr, testLogger(),
		WithWorkers(2),
		WithPollInterval(10*time.Millisecond))
	runner.Start(context.Background())
	defer runner.Shutdown(context.Background())

	for i := 0; i < 5; i++ {
		_, err := mgr.Enqueue(context.Background(), testDocument(), constants.JobPriorityNormal)
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool { return done.Load() == 5 },
		5*time.Second, 10*time.Millisecond)
}

func TestRunnerShutdownIsIdempotent(t *testing.T) {
	mgr := NewManager(newMemStore(), &memResults{}, &stubFetcher{}, &stubProcessor{}, testConfig(), hybrid.Options{}, testLogger())
	runner := NewRunner(mgr, testLogger(), WithPollInterval(5*time.Millisecond))
	runner.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	runner.Shutdown(ctx)
	runner.Shutdown(ctx)
}
