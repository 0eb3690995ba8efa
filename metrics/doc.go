// Package metrics exports chain activity as Prometheus metrics.
//
// A Collector owns one set of counters and a walk-length histogram and
// feeds them from chain.Hooks:
//
//	col, _ := metrics.New(reg, "tweets")
//	c, _ := chain.New(ops, chain.WithHooks(col.Hooks()))
//
// Every series carries a constant model label, so several chains can share
// one registry. WriteText renders a Gatherer in the text exposition format.
package metrics
