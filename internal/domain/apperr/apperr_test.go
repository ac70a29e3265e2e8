package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "tagged", err: New(KindRateLimited, "quota exhausted"), want: KindRateLimited},
		{name: "wrapped cause", err: Wrap(KindTransport, "request failed", errors.New("dial tcp")), want: KindTransport},
		{name: "double wrapped", err: fmt.Errorf("pipeline: %w", New(KindNoData, "empty series")), want: KindNoData},
		{name: "untagged", err: errors.New("boom"), want: KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	e := Wrap(KindTransport, "failed to fetch stock data", cause)

	if e.Error() != "failed to fetch stock data: connection refused" {
		t.Fatalf("unexpected Error(): %q", e.Error())
	}
	if e.Message() != "failed to fetch stock data" {
		t.Fatalf("Message leaked cause: %q", e.Message())
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected errors.Is to find wrapped cause")
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(New(KindInvalidSymbol, "no data for XYZ"), "fallback"); got != "no data for XYZ" {
		t.Fatalf("got %q", got)
	}
	if got := MessageOf(errors.New("raw detail"), "internal server error"); got != "internal server error" {
		t.Fatalf("untagged error must use fallback, got %q", got)
	}
}
