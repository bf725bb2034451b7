package metrics

import (
	"github.com/jumboframes/gstree/loader"
	"github.com/jumboframes/gstree/suffixtree"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gstree"

func newDesc(name, help string) *prometheus.Desc {
	return prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "", name),
		help,
		nil,
		nil,
	)
}

var (
	nodesDesc   = newDesc("nodes", "Number of nodes in the tree, root included.")
	edgesDesc   = newDesc("edges", "Number of edges in the tree.")
	leavesDesc  = newDesc("leaves", "Number of leaf nodes.")
	stringsDesc = newDesc("strings", "Number of Insert calls.")
	countedDesc = newDesc("counted", "1 if result counts are up to date.")

	linesDesc   = newDesc("load_lines_total", "Lines read by the loader.")
	loadedDesc  = newDesc("load_loaded_total", "Lines inserted by the loader.")
	skippedDesc = newDesc("load_skipped_total", "Lines skipped by the loader.")
)

type CollectorOption func(*Collector)

// OptionCollectorLoader also exports the loader's progress.
func OptionCollectorLoader(l *loader.Loader) CollectorOption {
	return func(c *Collector) {
		c.loader = l
	}
}

// Collector exports tree statistics. Collect reads the tree, so scrapes
// must not overlap an Insert or ComputeCount.
type Collector struct {
	tree   suffixtree.Tree
	loader *loader.Loader
}

func NewCollector(tree suffixtree.Tree, options ...CollectorOption) *Collector {
	c := &Collector{tree: tree}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nodesDesc
	ch <- edgesDesc
	ch <- leavesDesc
	ch <- stringsDesc
	ch <- countedDesc
	if c.loader != nil {
		ch <- linesDesc
		ch <- loadedDesc
		ch <- skippedDesc
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.tree.Stats()
	counted := 0.0
	if stats.Counted {
		counted = 1
	}
	ch <- prometheus.MustNewConstMetric(nodesDesc, prometheus.GaugeValue, float64(stats.Nodes))
	ch <- prometheus.MustNewConstMetric(edgesDesc, prometheus.GaugeValue, float64(stats.Edges))
	ch <- prometheus.MustNewConstMetric(leavesDesc, prometheus.GaugeValue, float64(stats.Leaves))
	ch <- prometheus.MustNewConstMetric(stringsDesc, prometheus.GaugeValue, float64(stats.Strings))
	ch <- prometheus.MustNewConstMetric(countedDesc, prometheus.GaugeValue, counted)

	if c.loader != nil {
		p := c.loader.Progress()
		ch <- prometheus.MustNewConstMetric(linesDesc, prometheus.CounterValue, float64(p.Lines))
		ch <- prometheus.MustNewConstMetric(loadedDesc, prometheus.CounterValue, float64(p.Loaded))
		ch <- prometheus.MustNewConstMetric(skippedDesc, prometheus.CounterValue, float64(p.Skipped))
	}
}
