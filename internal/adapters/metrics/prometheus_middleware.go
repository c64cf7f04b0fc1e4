package metrics

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/starship-engine/internal/application/common"
	"github.com/andrescamacho/starship-engine/internal/application/mediator"
)

// PrometheusMiddleware times every command and query sent through the mediator.
// Failed requests are also reported to the context logger.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		commandName := extractCommandName(request)
		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(commandName, time.Since(start), err)

		if err != nil {
			common.LoggerFromContext(ctx).Log("ERROR", fmt.Sprintf("[Mediator] %s failed", commandName), map[string]interface{}{
				"error": err.Error(),
			})
		}
		return response, err
	}
}

// extractCommandName drops the pointer and package prefix of the request type:
//   - "*combat.SimulateEngagementCommand" → "SimulateEngagementCommand"
//   - "ship.GetShipStatsQuery" → "GetShipStatsQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
