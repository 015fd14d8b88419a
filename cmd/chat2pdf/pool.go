package main

import (
	chat2pdf "github.com/alnah/go-chat2pdf"
)

// exporterPool adapts the library's exporter pool to the CLI's Pool
// interface so tests can substitute a fake.
type exporterPool struct {
	inner *chat2pdf.ExporterPool
}

// Compile-time check that exporterPool implements Pool.
var _ Pool = (*exporterPool)(nil)

func (p *exporterPool) Acquire() PageExporter {
	return p.inner.Acquire()
}

func (p *exporterPool) Release(exp PageExporter) {
	if e, ok := exp.(*chat2pdf.Exporter); ok {
		p.inner.Release(e)
	}
}

func (p *exporterPool) Size() int {
	return p.inner.Size()
}

// Close releases all browser resources.
func (p *exporterPool) Close() error {
	return p.inner.Close()
}
