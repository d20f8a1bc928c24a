package decode

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"epochs/internal/domain"
	"epochs/internal/epoch"
)

type batchLine struct {
	n       int // 1-based line number in the input
	text    string
	tooLong bool
}

type batchResult struct {
	out    string
	failed bool
}

// Batch decodes one integer per line of r under scheme and writes one line
// per input to w, in input order. Blank lines and lines starting with '#' are
// skipped.
//
// Decoded lines are written as "<raw>\t<datetime>". Lines that fail to parse
// or convert are written as "line N: <reason>" and counted as failed; with
// FallbackOrigin a conversion failure is written as "<raw>\t<origin>" and
// still counted as failed. Per-line failures never abort the batch; read,
// write and context errors do. Nothing is saved as the last input.
func (s *Service) Batch(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	scheme epoch.Scheme,
) (domain.BatchReport, error) {
	var report domain.BatchReport
	if !scheme.Valid() {
		return report, fmt.Errorf("%w: %d", epoch.ErrUnknownScheme, uint8(scheme))
	}

	lines, err := readBatch(r)
	if err != nil {
		return report, err
	}

	results := make([]batchResult, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, ln := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.batchOne(scheme, ln)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	bw := bufio.NewWriter(w)
	for _, res := range results {
		report.Lines++
		if res.failed {
			report.Failed++
		} else {
			report.Decoded++
		}
		if _, err := fmt.Fprintln(bw, res.out); err != nil {
			return report, err
		}
	}
	if err := bw.Flush(); err != nil {
		return report, err
	}

	s.metrics.ObserveBatch(report.Decoded, report.Failed)
	s.log.Debug().
		Str("scheme", scheme.Name()).
		Int("lines", report.Lines).
		Int("failed", report.Failed).
		Msg("batch decoded")
	return report, nil
}

func (s *Service) batchOne(scheme epoch.Scheme, ln batchLine) batchResult {
	if ln.tooLong {
		return batchResult{out: fmt.Sprintf("line %d: invalid timestamp: longer than %d bytes", ln.n, maxLineLen), failed: true}
	}
	raw, err := ParseRaw(ln.text)
	if err != nil {
		return batchResult{out: fmt.Sprintf("line %d: %v", ln.n, err), failed: true}
	}
	d, err := s.decode(scheme, raw)
	if err != nil {
		return batchResult{out: fmt.Sprintf("line %d: %v", ln.n, err), failed: true}
	}
	return batchResult{out: fmt.Sprintf("%d\t%s", raw, d.Text), failed: d.Fallback}
}

// maxLineLen bounds a batch line; any int64 in decimal, hex or with
// underscores is far shorter.
const maxLineLen = 4096

func readBatch(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	br := bufio.NewReaderSize(r, maxLineLen)
	for n := 1; ; n++ {
		b, isPrefix, err := br.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read batch input: %w", err)
		}
		if isPrefix {
			if err := skipLine(br); err != nil {
				return nil, fmt.Errorf("read batch input: %w", err)
			}
			lines = append(lines, batchLine{n: n, tooLong: true})
			continue
		}
		text := strings.TrimSpace(string(b))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{n: n, text: text})
	}
}

// skipLine discards the rest of an oversized line.
func skipLine(br *bufio.Reader) error {
	for {
		_, isPrefix, err := br.ReadLine()
		if errors.Is(err, io.EOF) || (err == nil && !isPrefix) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
