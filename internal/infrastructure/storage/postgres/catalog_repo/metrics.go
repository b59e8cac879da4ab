package catalog_repo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"woodshop/internal/domain"
)

var commandOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "woodshop_command_outcomes_total",
		Help: "Write commands by entity, action and decoded outcome",
	},
	[]string{"entity", "action", "code"},
)

func observeOutcome(entity string, action domain.Action, code domain.ErrorCode) {
	commandOutcomes.WithLabelValues(entity, action.String(), code.String()).Inc()
}
