package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int // Plies searched, 0 for a greedy scan
	Branching int // Root moves counted, capped at one past the threshold
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Cutoffs   int
	Score     int
}

type MoveMetric struct {
	Step   int
	Player string // Side that moved
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // "" if the game was stopped without a winner
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, branching int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	branching int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, branching int) {
	m.startTime = time.Now()
	m.depth = depth
	m.branching = branching
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Branching: m.branching,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, branching int) {}
func (m *dummyCollector) AddNode()                   {}
func (m *dummyCollector) AddLeaf()                   {}
func (m *dummyCollector) AddCutoff()                 {}
func (m *dummyCollector) Complete() SearchMetric     { return SearchMetric{} }
