package cmd

import (
	"fmt"
	"io"

	"github.com/gosuri/uilive"

	"github.com/masmgr/rust-commits-go/internal/github"
)

// pageProgress redraws a single status line as pages arrive.
// A disabled progress discards updates.
type pageProgress struct {
	writer *uilive.Writer
}

func newPageProgress(out io.Writer, enabled bool) *pageProgress {
	if !enabled {
		return &pageProgress{}
	}
	w := uilive.New()
	w.Out = out
	w.Start()
	return &pageProgress{writer: w}
}

// Update is suitable as github.Options.OnPage.
func (p *pageProgress) Update(info github.PageInfo) {
	if p.writer == nil {
		return
	}
	_, _ = fmt.Fprintf(p.writer, "Fetching commits: page %d, %d so far\n", info.Page, info.Total)
}

// Stop flushes the last status line and stops redrawing.
func (p *pageProgress) Stop() {
	if p.writer == nil {
		return
	}
	p.writer.Stop()
	p.writer = nil
}
