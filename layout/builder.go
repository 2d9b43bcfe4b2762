package layout

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BuilderConfig holds configuration for the block tree builder
type BuilderConfig struct {
	// Parallel builds independent subtrees concurrently
	Parallel bool

	// MaxWorkers bounds the number of concurrent subtree builds when
	// Parallel is set (default: GOMAXPROCS)
	MaxWorkers int

	// MaxDepth stops splitting at this depth; 0 means unbounded
	MaxDepth int

	// Logger receives split decisions at debug level (default: logrus
	// standard logger)
	Logger logrus.FieldLogger
}

// DefaultBuilderConfig returns a sequential, unbounded configuration
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Parallel:   false,
		MaxWorkers: runtime.GOMAXPROCS(0),
		MaxDepth:   0,
	}
}

// Builder recursively partitions areas into blocks along valid lanes
type Builder struct {
	rule   Rule
	config BuilderConfig
	log    logrus.FieldLogger
}

// NewBuilder creates a builder with default configuration
func NewBuilder(rule Rule) *Builder {
	return NewBuilderWithConfig(rule, DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a builder with custom configuration
func NewBuilderWithConfig(rule Rule, config BuilderConfig) *Builder {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = runtime.GOMAXPROCS(0)
	}
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{rule: rule, config: config, log: log}
}

// pending is a node under construction. Each pending node is written by
// exactly one goroutine.
type pending struct {
	area     *Area
	depth    int
	lane     Lane
	split    bool
	children [2]*pending
}

// Build segments area into a block tree. Every area first tries a vertical
// lane, then a horizontal one; an area where neither is found becomes a
// leaf. The result is identical for sequential and parallel builds.
func (b *Builder) Build(area *Area) (*Tree, error) {
	if b.rule == nil {
		return nil, ErrNilRule
	}
	if area == nil {
		return nil, ErrNilArea
	}

	root := &pending{area: area}
	if b.config.Parallel {
		b.growParallel(root)
	} else {
		b.grow(root)
	}

	tree := &Tree{}
	b.flatten(tree, root, NoNode)

	b.log.WithFields(logrus.Fields{
		"page":   area.Page().Number,
		"nodes":  tree.Len(),
		"blocks": len(tree.Leaves()),
		"depth":  tree.Depth(),
	}).Debug("built block tree")

	return tree, nil
}

// Segment builds the block tree of area with rule using the default builder
// configuration.
func Segment(area *Area, rule Rule) (*Tree, error) {
	return NewBuilder(rule).Build(area)
}

func (b *Builder) grow(p *pending) {
	b.decide(p)
	for _, c := range p.children {
		if c != nil {
			b.grow(c)
		}
	}
}

func (b *Builder) growParallel(root *pending) {
	var g errgroup.Group
	g.SetLimit(b.config.MaxWorkers)

	var grow func(p *pending)
	grow = func(p *pending) {
		b.decide(p)
		for _, c := range p.children {
			if c == nil {
				continue
			}
			// All workers busy: continue inline.
			if !g.TryGo(func() error { grow(c); return nil }) {
				grow(c)
			}
		}
	}

	grow(root)
	_ = g.Wait()
}

// decide searches a lane for p and creates its children if one is found.
func (b *Builder) decide(p *pending) {
	if b.config.MaxDepth > 0 && p.depth >= b.config.MaxDepth {
		return
	}

	lane, ok := FindVerticalLane(p.area, b.rule)
	if !ok {
		lane, ok = FindHorizontalLane(p.area, b.rule)
	}
	if !ok {
		b.log.WithFields(logrus.Fields{
			"page":     p.area.Page().Number,
			"depth":    p.depth,
			"elements": p.area.Len(),
			"rect":     p.area.Rect().String(),
		}).Trace("leaf block")
		return
	}

	first, second := p.area.split(lane.Axis, lane.Cut())
	p.lane = lane
	p.split = true
	p.children = [2]*pending{
		{area: first, depth: p.depth + 1},
		{area: second, depth: p.depth + 1},
	}

	b.log.WithFields(logrus.Fields{
		"page":     p.area.Page().Number,
		"axis":     lane.Axis.String(),
		"at":       lane.Cut(),
		"depth":    p.depth,
		"elements": p.area.Len(),
	}).Debug("split area")
}

// flatten appends p and its subtree to t in pre-order.
func (b *Builder) flatten(t *Tree, p *pending, parent NodeID) NodeID {
	id := t.add(Node{
		Parent:   parent,
		Children: [2]NodeID{NoNode, NoNode},
		Area:     p.area,
		Depth:    p.depth,
		Page:     p.area.Page().Number,
	})
	if !p.split {
		return id
	}

	first := b.flatten(t, p.children[0], id)
	second := b.flatten(t, p.children[1], id)

	n := &t.nodes[id]
	n.Axis = p.lane.Axis
	n.Lane = p.lane.Rect
	n.Cut = p.lane.Cut()
	n.Children = [2]NodeID{first, second}
	return id
}
