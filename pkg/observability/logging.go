package observability

import (
	"log/slog"

	"github.com/aretw0/bemjson/pkg/domain"
)

// LogHooks returns lifecycle hooks writing one debug record per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(e *domain.NodeEvent) {
			logger.Debug("node_enter",
				"block", e.Block,
				"elem", e.Elem,
				"pos", e.Position,
				"siblings", e.SiblingCount,
				"handlers", e.Handlers,
			)
		},
		OnNodeLeave: func(e *domain.NodeEvent) {
			logger.Debug("node_leave", "block", e.Block, "elem", e.Elem)
		},
		OnHandler: func(e *domain.HandlerEvent) {
			logger.Debug("handler",
				"decl", e.Descriptor,
				"elem", e.Elem,
				"skipped", e.Skipped,
				"stopped", e.Stopped,
			)
		},
		OnRemove: func(e *domain.NodeEvent) {
			logger.Debug("node_remove", "block", e.Block, "elem", e.Elem, "pos", e.Position)
		},
		OnBuild: func(e *domain.BuildEvent) {
			logger.Info("build", "duration", e.Duration)
		},
	}
}
