package decode_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"epochs/internal/domain"
	"epochs/internal/epoch"
	"epochs/internal/services/decode"
)

func TestBatch_OrderAndFailures(t *testing.T) {
	in := strings.Join([]string{
		"# unix seconds",
		"0",
		"",
		"1600000000",
		"not-a-number",
		"9223372036854775807",
		"  -1  ",
	}, "\n")

	st := &memStore{}
	svc := decode.New(st, decode.WithWorkers(3))
	var out bytes.Buffer
	report, err := svc.Batch(context.Background(), strings.NewReader(in), &out, epoch.Unix)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}

	want := strings.Join([]string{
		"0\t1970-01-01 00:00:00",
		"1600000000\t2020-09-13 12:26:40",
		`line 5: invalid timestamp "not-a-number"`,
		"line 6: epoch: convert unix 9223372036854775807: instant outside calendar range",
		"-1\t1969-12-31 23:59:59",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.BatchReport{Lines: 5, Decoded: 3, Failed: 2}, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if st.saves != 0 {
		t.Fatal("batch must not touch the last-input state")
	}
}

func TestBatch_FallbackOrigin(t *testing.T) {
	svc := decode.New(nil, decode.WithFallback(decode.FallbackOrigin))
	var out bytes.Buffer
	report, err := svc.Batch(context.Background(), strings.NewReader("9223372036854775807\n"), &out, epoch.Java)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if out.String() != "9223372036854775807\t1970-01-01 00:00:00\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	if report.Failed != 1 || report.Decoded != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestBatch_LargeInputKeepsOrder(t *testing.T) {
	var in strings.Builder
	var want strings.Builder
	for i := int64(0); i < 2000; i++ {
		fmt.Fprintf(&in, "%d\n", i*86400)
		fmt.Fprintf(&want, "%d\t%s\n", i*86400, decode.Format(time.Unix(i*86400, 0), decode.LayoutISO))
	}
	svc := decode.New(nil, decode.WithWorkers(8), decode.WithLayout(decode.LayoutISO))

	var out bytes.Buffer
	report, err := svc.Batch(context.Background(), strings.NewReader(in.String()), &out, epoch.Unix)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if report.Lines != 2000 || report.Failed != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	if out.String() != want.String() {
		t.Fatal("batch output out of order")
	}
}

func TestBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := decode.New(nil).Batch(ctx, strings.NewReader("1\n2\n"), &out, epoch.Unix)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("wrote output after cancel: %q", out.String())
	}
}

func TestBatch_UnknownScheme(t *testing.T) {
	_, err := decode.New(nil).Batch(context.Background(), strings.NewReader("1\n"), &bytes.Buffer{}, epoch.Scheme(9))
	if !errors.Is(err, epoch.ErrUnknownScheme) {
		t.Fatalf("want ErrUnknownScheme, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestBatch_WriteError(t *testing.T) {
	_, err := decode.New(nil).Batch(context.Background(), strings.NewReader("1\n"), failingWriter{}, epoch.Unix)
	if err == nil {
		t.Fatal("expected write error")
	}
}

func TestBatch_OversizedLineReportedInPlace(t *testing.T) {
	in := "0\n" + strings.Repeat("9", 70_000) + "\n1600000000\n"

	var out bytes.Buffer
	report, err := decode.New(nil).Batch(context.Background(), strings.NewReader(in), &out, epoch.Unix)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}

	want := "0\t1970-01-01 00:00:00\n" +
		"line 2: invalid timestamp: longer than 4096 bytes\n" +
		"1600000000\t2020-09-13 12:26:40\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(domain.BatchReport{Lines: 3, Decoded: 2, Failed: 1}, report); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBatch_OversizedLastLineWithoutNewline(t *testing.T) {
	in := "1\n" + strings.Repeat("1", 10_000)

	var out bytes.Buffer
	report, err := decode.New(nil).Batch(context.Background(), strings.NewReader(in), &out, epoch.Unix)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if report.Lines != 2 || report.Failed != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if !strings.HasSuffix(out.String(), "line 2: invalid timestamp: longer than 4096 bytes\n") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
