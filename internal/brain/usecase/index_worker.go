package usecase

import (
	"context"
	"sync"
	"time"

	"brainly-backend/pkg/logger"
)

const indexJobTimeout = 30 * time.Second

type indexOp int

const (
	indexUpsert indexOp = iota
	indexDelete
)

// IndexJob is one pending change to the semantic index
type IndexJob struct {
	op     indexOp
	DocID  string
	UserID string
	Kind   string
	Title  string
	Text   string
}

// IndexWorker keeps the vector store in step with notes and content in the background
type IndexWorker struct {
	store       VectorStore
	jobQueue    chan IndexJob
	workerWg    sync.WaitGroup
	workerCount int
	started     bool
	stopped     bool
	mu          sync.RWMutex
}

// NewIndexWorker creates a new index worker
func NewIndexWorker(store VectorStore, workerCount, queueSize int) *IndexWorker {
	if workerCount <= 0 {
		workerCount = 2
	}
	if queueSize <= 0 {
		queueSize = 500
	}

	return &IndexWorker{
		store:       store,
		jobQueue:    make(chan IndexJob, queueSize),
		workerCount: workerCount,
	}
}

// Start starts the index workers
func (w *IndexWorker) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.stopped {
		return
	}

	for i := 0; i < w.workerCount; i++ {
		w.workerWg.Add(1)
		go w.worker(i)
	}
	w.started = true
	logger.Infof(context.Background(), "[IndexWorker] Started %d workers", w.workerCount)
}

// Stop drains queued jobs and waits for the workers to exit
func (w *IndexWorker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.jobQueue)
	w.mu.Unlock()

	w.workerWg.Wait()
	logger.Infof(context.Background(), "[IndexWorker] All workers stopped")
}

func (w *IndexWorker) worker(id int) {
	defer w.workerWg.Done()

	for job := range w.jobQueue {
		w.processJob(job)
	}

	logger.Debugf(context.Background(), "[IndexWorker] Worker %d stopped", id)
}

func (w *IndexWorker) processJob(job IndexJob) {
	ctx, cancel := context.WithTimeout(context.Background(), indexJobTimeout)
	defer cancel()

	var err error
	switch job.op {
	case indexUpsert:
		err = w.store.UpsertDocument(ctx, job.DocID, job.UserID, job.Kind, job.Title, job.Text)
	case indexDelete:
		err = w.store.DeleteDocument(ctx, job.DocID)
	}
	if err != nil {
		logger.Errorf(ctx, "[IndexWorker] job for %s failed: %v", job.DocID, err)
	}
}

// QueueJob adds a job without blocking; it reports false when the queue is full or stopped
func (w *IndexWorker) QueueJob(job IndexJob) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		return false
	}
	select {
	case w.jobQueue <- job:
		return true
	default:
		logger.Warnf(context.Background(), "[IndexWorker] queue full, skipping %s", job.DocID)
		return false
	}
}

// IndexDocument queues an upsert of a note or saved item
func (w *IndexWorker) IndexDocument(userID, docID, kind, title, text string) {
	w.QueueJob(IndexJob{op: indexUpsert, DocID: docID, UserID: userID, Kind: kind, Title: title, Text: text})
}

// RemoveDocument queues a delete of a note or saved item
func (w *IndexWorker) RemoveDocument(docID string) {
	w.QueueJob(IndexJob{op: indexDelete, DocID: docID})
}
