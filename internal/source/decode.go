package source

import (
	"context"
	"errors"

	"github.com/locvowork/payroll_reconciliation/internal/logger"
	"github.com/locvowork/payroll_reconciliation/pkg/dataflow"
)

type decodeFunc func(interface{}) (interface{}, error)

// decodeBufferSize lets the decode stage run ahead of the collector.
const decodeBufferSize = 64

// decodeAll runs items through decode in order. Under Lenient, records failing
// with a *Error are dropped and reported as warnings; anything else aborts.
func decodeAll(ctx context.Context, source string, policy ParsePolicy, items []interface{}, decode decodeFunc) ([]interface{}, []string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctx = logger.WithLogger(ctx, map[string]interface{}{"source": source})

	var warnings []string
	skip := func(err error) bool {
		var srcErr *Error
		if policy != Lenient || !errors.As(err, &srcErr) {
			return false
		}
		logger.WarnLog(ctx, "skipping record: %v", err)
		warnings = append(warnings, err.Error())
		return true
	}

	// a single worker keeps records in source order
	decoded := dataflow.Map(ctx, dataflow.From(ctx, items...), decode,
		dataflow.WithWorkers(1),
		dataflow.WithBufferSize(decodeBufferSize),
		dataflow.WithErrorHandler(skip),
	)
	records, err := dataflow.Collect(ctx, decoded)
	if err != nil {
		return nil, nil, err
	}
	return records, warnings, nil
}
