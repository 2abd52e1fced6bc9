package update

import (
	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/models"
)

// LogMessage records a message about to be dispatched. Contract errors are
// the only place gateway failures surface, so they are logged at error level.
func LogMessage(log logrus.FieldLogger, msg models.Msg) {
	entry := log.WithField("msg", msg.Name())
	switch msg := msg.(type) {
	case models.ContractError:
		entry.WithError(msg.Err).Error("Something went wrong calling the contract")
	case models.ReceivedCount:
		entry.WithField("value", msg.Value).Trace("dispatching msg")
	default:
		entry.Trace("dispatching msg")
	}
}
