package bfvm

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/quirl/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Run func(ctx context.Context, src *Source, input io.Reader) *Result

func (Module) Run(
	logger logs.Logger,
) Run {
	return func(ctx context.Context, src *Source, input io.Reader) *Result {
		result := RunSource(src, input)
		switch result.Status {
		case StatusOK:
			logger.DebugContext(ctx, "program finished",
				"source", src.Name,
				"steps", result.Steps,
				"output", len(result.Output),
			)
		case StatusLoadError:
			logger.InfoContext(ctx, "program rejected",
				"source", src.Name,
				"error", result.Err,
			)
		case StatusFault:
			logger.WarnContext(ctx, "program faulted",
				"source", src.Name,
				"steps", result.Steps,
				"error", result.Err,
			)
		default:
			result.Err = logs.WrapSpan(ctx, result.Err)
			logger.ErrorContext(ctx, "program aborted",
				"source", src.Name,
				"error", result.Err,
			)
		}
		return result
	}
}
