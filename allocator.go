package main

import (
	"fmt"
	"strconv"
)

// RemainderPolicy selects what happens to records left over after every full
// batch is assigned. The two policies match the two behaviors observed in
// production use: pad the last annotator's batch, or hold the leftovers back.
type RemainderPolicy string

const (
	PolicyDistributeToLast RemainderPolicy = "distribute_to_last"
	PolicyDropRemainder    RemainderPolicy = "drop_remainder"
)

// AnnotatorBatch is one annotator's contiguous slice of the dataset.
type AnnotatorBatch struct {
	Name    string
	Records []Record
}

// Allocation is the immutable result of partitioning a dataset. Every export
// artifact is a pure projection of this value.
type Allocation struct {
	BatchSize   int
	Policy      RemainderPolicy
	Annotators  []AnnotatorBatch
	Unallocated []Record
}

// AllocatedCount returns the number of records assigned to annotators.
func (a *Allocation) AllocatedCount() int {
	n := 0
	for _, b := range a.Annotators {
		n += len(b.Records)
	}
	return n
}

// SlotCount is the widest batch, which sizes the CSV header and the HTML
// page's per-slot containers. Under drop-remainder it is exactly BatchSize;
// under distribute-to-last the final batch may be wider.
func (a *Allocation) SlotCount() int {
	slots := a.BatchSize
	for _, b := range a.Annotators {
		if len(b.Records) > slots {
			slots = len(b.Records)
		}
	}
	return slots
}

// planBatches computes how many full batches of batchSize fit into total
// records. Rejects batch sizes that cannot produce at least one full batch.
func planBatches(total, batchSize int) (numAnnotators, remainder int, err error) {
	if batchSize <= 0 {
		return 0, 0, fmt.Errorf("batch size must be greater than 0, got %d", batchSize)
	}
	if batchSize > total {
		return 0, 0, fmt.Errorf("batch size %d exceeds dataset size %d", batchSize, total)
	}
	return total / batchSize, total % batchSize, nil
}

// allocate walks the dataset once with a single cursor and hands annotator k
// (1-indexed) the half-open slice [(k-1)*batchSize, k*batchSize). Purely
// positional: no randomization, no reordering. Trailing records go to the
// last annotator or to the unallocated slice depending on policy.
func allocate(records []Record, batchSize int, policy RemainderPolicy) (*Allocation, error) {
	numAnnotators, _, err := planBatches(len(records), batchSize)
	if err != nil {
		return nil, err
	}

	alloc := &Allocation{
		BatchSize:  batchSize,
		Policy:     policy,
		Annotators: make([]AnnotatorBatch, 0, numAnnotators),
	}

	cursor := 0
	for k := 1; k <= numAnnotators; k++ {
		alloc.Annotators = append(alloc.Annotators, AnnotatorBatch{
			Name:    strconv.Itoa(k),
			Records: records[cursor : cursor+batchSize],
		})
		cursor += batchSize
	}

	leftover := records[cursor:]
	switch policy {
	case PolicyDistributeToLast:
		if len(leftover) > 0 {
			last := &alloc.Annotators[len(alloc.Annotators)-1]
			last.Records = records[cursor-batchSize:]
		}
	case PolicyDropRemainder:
		alloc.Unallocated = leftover
	default:
		return nil, fmt.Errorf("unknown remainder policy %q", policy)
	}

	return alloc, nil
}
